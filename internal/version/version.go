// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/version.Version=1.0.0 \
//	  -X github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Bambang Trikodono"
	Year   = "2025"
)

// Standard is the design specification every capacity check follows.
const Standard = "SNI 1729:2020"

// String is the one-line build description printed by the version command.
func String() string {
	return fmt.Sprintf("steelcalc v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
