package ports

import (
	"context"
	"time"
)

// MetricsExporter exports install metrics to an external observability system.
type MetricsExporter interface {
	// ExportInstallMetrics exports the outcome of one installer run.
	ExportInstallMetrics(ctx context.Context, m *InstallMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// InstallMetrics describes a single installer run.
type InstallMetrics struct {
	InvocationID   string
	Tool           string
	PackageManager string

	Success  bool
	ExitCode int
	Duration time.Duration
}

// Outcome returns the metric label for the run result.
func (m *InstallMetrics) Outcome() string {
	if m.Success {
		return "success"
	}
	return "failure"
}
