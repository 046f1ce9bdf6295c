// Package build provides build information that is linked into the application.
// Other packages within this project can use this information in logs etc.
package build

var (
	// Version is the build version of the binary (e.g. v0.2.0, v1.0.0, etc).
	Version = "dev"

	// Commit is the git commit hash that the binary was built from.
	Commit = "none"

	// Date is the date that the binary was built.
	Date = "unknown"
)
