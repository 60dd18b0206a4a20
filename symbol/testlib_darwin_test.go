package symbol

const existingLib = "libm.dylib"
