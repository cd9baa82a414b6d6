// Package installer implements the pre-build hook that installs a tool
// through its package manager before the main build step runs.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/installhook/internal/domain"
	"github.com/emiliopalmerini/installhook/internal/ports"
)

// Hook installs Tool when the host runs the pre-build phase.
type Hook struct {
	Tool    domain.Tool
	Runner  ports.CommandRunner
	Out     io.Writer
	Logger  *zap.Logger
	Metrics ports.MetricsExporter
}

// NewHook creates a Hook. A nil logger or metrics exporter disables that concern.
func NewHook(tool domain.Tool, runner ports.CommandRunner, out io.Writer, logger *zap.Logger, metrics ports.MetricsExporter) *Hook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hook{
		Tool:    tool,
		Runner:  runner,
		Out:     out,
		Logger:  logger,
		Metrics: metrics,
	}
}

// OnPreBuild prints the status line, then runs the installer once and waits
// for it. The lifecycle input is not used. Any installer failure is returned
// as *domain.InstallError so the host aborts the build.
func (h *Hook) OnPreBuild(ctx context.Context, _ *domain.LifecycleInput) error {
	args := h.Tool.InstallCommand()
	invocationID := uuid.NewString()
	log := h.Logger.With(
		zap.String("invocation_id", invocationID),
		zap.String("tool", h.Tool.Name),
	)

	if _, err := fmt.Fprintln(h.Out, h.Tool.StatusMessage()); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}

	log.Debug("running installer", zap.Strings("args", args))
	start := time.Now()
	runErr := h.Runner.Run(ctx, args)
	elapsed := time.Since(start)

	exitCode := 0
	if runErr != nil {
		exitCode = exitCodeOf(runErr)
	}
	h.export(ctx, log, &ports.InstallMetrics{
		InvocationID:   invocationID,
		Tool:           h.Tool.Name,
		PackageManager: h.Tool.PackageManager,
		Success:        runErr == nil,
		ExitCode:       exitCode,
		Duration:       elapsed,
	})

	if runErr != nil {
		log.Error("installer failed",
			zap.Int("exit_code", exitCode),
			zap.Duration("duration", elapsed),
			zap.Error(runErr),
		)
		return &domain.InstallError{
			Tool:     h.Tool.Name,
			Args:     args,
			ExitCode: exitCode,
			Err:      runErr,
		}
	}

	log.Info("installer finished", zap.Duration("duration", elapsed))
	return nil
}

func (h *Hook) export(ctx context.Context, log *zap.Logger, m *ports.InstallMetrics) {
	if h.Metrics == nil {
		return
	}
	if err := h.Metrics.ExportInstallMetrics(ctx, m); err != nil {
		log.Warn("failed to export install metrics", zap.Error(err))
	}
}

// exitCodeOf returns the child's exit status, or -1 if it never ran.
func exitCodeOf(err error) int {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return -1
}
