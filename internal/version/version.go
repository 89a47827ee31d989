// Package version holds the build version, set through ldflags at build time.
package version

// Version is the server version string.
var Version = "dev"
