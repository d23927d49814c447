package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("camoo-payment %s (commit=%s, date=%s)", Version, Commit, Date)
}

// Runtime identifies the Go runtime, sent with every API request for
// diagnostics.
func Runtime() string {
	return runtime.Version()
}
