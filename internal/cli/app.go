package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/installhook/internal/adapters/otel"
	"github.com/emiliopalmerini/installhook/internal/adapters/process"
	"github.com/emiliopalmerini/installhook/internal/domain"
	"github.com/emiliopalmerini/installhook/internal/infrastructure/config"
	"github.com/emiliopalmerini/installhook/internal/installer"
	"github.com/emiliopalmerini/installhook/internal/plugin"
	"github.com/emiliopalmerini/installhook/internal/ports"
)

// testRunnerOverride allows tests to inject a command runner.
// When set, NewAppContext uses it instead of spawning real processes.
var testRunnerOverride ports.CommandRunner

const metricsFlushTimeout = 5 * time.Second

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config  *config.Hook
	Logger  *zap.Logger
	Runner  ports.CommandRunner
	Metrics ports.MetricsExporter
	Hook    *installer.Hook
	Plugin  *plugin.Plugin
}

// NewAppContext creates an AppContext with all dependencies initialized
// and the install hook registered for onPreBuild.
func NewAppContext(ctx context.Context, logger *zap.Logger) (*AppContext, error) {
	cfg, err := config.LoadHook()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var runner ports.CommandRunner = process.NewRunner()
	if testRunnerOverride != nil {
		runner = testRunnerOverride
	}

	metrics := newMetricsExporter(ctx, logger)
	tool := cfg.Tool.Domain()
	hook := installer.NewHook(tool, runner, os.Stdout, logger, metrics)

	p := plugin.New(cfg.PluginName, fmt.Sprintf("Install %s before the build", tool.Name))
	if err := p.Register(domain.EventPreBuild, hook.OnPreBuild); err != nil {
		_ = metrics.Close(ctx)
		return nil, err
	}

	return &AppContext{
		Config:  cfg,
		Logger:  logger,
		Runner:  runner,
		Metrics: metrics,
		Hook:    hook,
		Plugin:  p,
	}, nil
}

// newMetricsExporter returns the OTEL exporter when enabled, falling back
// to a no-op exporter so metrics never block the build.
func newMetricsExporter(ctx context.Context, logger *zap.Logger) ports.MetricsExporter {
	cfg, err := otel.LoadConfig()
	if err != nil {
		logger.Warn("invalid OTEL configuration, metrics disabled", zap.Error(err))
		return otel.NewNoOpExporter()
	}
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}

	exp, err := otel.NewExporter(ctx, cfg)
	if err != nil {
		logger.Warn("failed to create OTEL exporter, metrics disabled", zap.Error(err))
		return otel.NewNoOpExporter()
	}
	return exp
}

// Close flushes metrics. It uses its own timeout so a cancelled build
// context still gets its metrics out.
func (a *AppContext) Close() error {
	if a.Metrics == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), metricsFlushTimeout)
	defer cancel()
	return a.Metrics.Close(ctx)
}

// dispatch runs one lifecycle event through a freshly built plugin.
// Nothing is shared between calls.
func dispatch(ctx context.Context, input *domain.LifecycleInput) error {
	log := cmdLogger()

	app, err := NewAppContext(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("failed to flush metrics", zap.Error(err))
		}
	}()

	log.Debug("dispatching lifecycle event",
		zap.String("plugin", app.Plugin.Name),
		zap.String("event", string(input.Event)),
		zap.Bool("handled", app.Plugin.Handles(input.Event)),
	)
	return app.Plugin.Dispatch(ctx, input)
}
