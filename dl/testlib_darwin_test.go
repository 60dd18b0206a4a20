package dl

const (
	existingLib = "libm.dylib"
	existingSym = "cos"
)
