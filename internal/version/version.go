// Package version carries build identification for the term2md binary.
package version

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build identification for -version output.
func String() string {
	return "term2md " + Version + " (" + CommitHash + ", " + BuildDate + ")"
}
