package dl

const (
	existingLib = "libm.so.6"
	existingSym = "cos"
)
