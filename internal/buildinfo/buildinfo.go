// Package buildinfo carries version metadata injected with -ldflags.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("brandkit %s (commit=%s, date=%s)", Version, Commit, Date)
}
