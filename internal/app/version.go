package app

import (
	"fmt"
	"runtime/debug"

	"github.com/prometheus/client_golang/prometheus"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/catalog-backend/internal/app.Version=1.0.0"
// Unset Commit and BuildTime fall back to the VCS stamp of the binary.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	commit, built := buildStamp()
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func buildStamp() (commit, built string) {
	commit, built = Commit, BuildTime

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, built
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "unknown":
			commit = s.Value
		case s.Key == "vcs.time" && built == "unknown":
			built = s.Value
		}
	}
	return commit, built
}

// buildInfoGauge is the constant catalog_build_info{version,commit} = 1.
func buildInfoGauge() prometheus.Collector {
	commit, _ := buildStamp()
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "catalog",
		Name:        "build_info",
		Help:        "Build version of the running catalog server.",
		ConstLabels: prometheus.Labels{"version": Version, "commit": commit},
	})
	g.Set(1)
	return g
}
