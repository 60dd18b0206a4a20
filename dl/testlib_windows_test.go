package dl

const (
	existingLib = "kernel32.dll"
	existingSym = "GetLastError"
)
