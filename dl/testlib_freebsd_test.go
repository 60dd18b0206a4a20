package dl

const (
	existingLib = "libm.so.5"
	existingSym = "cos"
)
