package symbol

const existingLib = "libm.so.5"
