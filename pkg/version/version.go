// Package version holds the application version string.
package version

// Version is the current application version. Overridden at build time via
// -ldflags "-X maproute/pkg/version.Version=...".
var Version = "dev"
