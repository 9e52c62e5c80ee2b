package metrics

import (
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registry = prometheus.NewRegistry()

	reloads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rewatch",
		Name:      "reloads_total",
		Help:      "Total number of reloads triggered by watched-file changes.",
	})

	childStarts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rewatch",
		Name:      "child_starts_total",
		Help:      "Total number of supervised child processes started.",
	})

	watchedFiles = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "rewatch",
		Name:      "watched_files",
		Help:      "Number of files tracked in the last poll cycle.",
	})

	buildInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "rewatch",
		Name:      "build_info",
		Help:      "Build metadata for the running rewatch binary.",
	}, []string{"go_version", "vcs", "vcs_revision", "vcs_time", "vcs_modified"})

	buildInfoOnce sync.Once
)

func init() {
	registry.MustRegister(reloads, childStarts, watchedFiles, buildInfo)
}

// Registry returns the Prometheus registry containing all rewatch metrics.
func Registry() *prometheus.Registry {
	return registry
}

// IncrementReloads records a completed reload cycle.
func IncrementReloads() {
	reloads.Inc()
}

// IncrementChildStarts records a child process launch.
func IncrementChildStarts() {
	childStarts.Inc()
}

// SetWatchedFiles records the size of the current watch set.
func SetWatchedFiles(n int) {
	watchedFiles.Set(float64(n))
}

// EmitBuildInfo publishes build metadata about the running binary.
func EmitBuildInfo() {
	buildInfoOnce.Do(func() {
		labels := prometheus.Labels{
			"go_version":   runtime.Version(),
			"vcs":          "",
			"vcs_revision": "",
			"vcs_time":     "",
			"vcs_modified": "",
		}
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.GoVersion != "" {
				labels["go_version"] = info.GoVersion
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs":
					labels["vcs"] = setting.Value
				case "vcs.revision":
					labels["vcs_revision"] = setting.Value
				case "vcs.time":
					labels["vcs_time"] = setting.Value
				case "vcs.modified":
					labels["vcs_modified"] = setting.Value
				}
			}
		}
		buildInfo.With(labels).Set(1)
	})
}
