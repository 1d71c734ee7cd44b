package utils

// Version from source control, set by the linker.
var Version string = "unknown"
