// Package buildinfo holds the version stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/ganttline/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/ganttline/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/ganttline/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template is the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
