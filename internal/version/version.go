// Package version contains information on the current version of the program.
// It is split from the main program for easy use.
package version

// Current is the string representing the current version of ghostq. Builds
// may override it with -ldflags "-X"; if it is set to empty, the VERSION
// command shows the configured fallback instead.
var Current = "0.1.0"

// Title is the name of the program.
const Title = "ghostq"
