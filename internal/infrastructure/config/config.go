package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/installhook/internal/domain"
)

// Tool holds the tool the pre-build hook installs.
type Tool struct {
	Name           string `envconfig:"INSTALLHOOK_TOOL" default:"trunk"`
	Label          string `envconfig:"INSTALLHOOK_TOOL_LABEL" default:"Trunk"`
	PackageManager string `envconfig:"INSTALLHOOK_PACKAGE_MANAGER" default:"cargo"`
}

// Hook holds configuration for the build hook.
type Hook struct {
	PluginName string `envconfig:"INSTALLHOOK_PLUGIN_NAME" default:"install-trunk"`
	Tool       Tool
}

// Domain converts the configured tool to its domain form.
func (t Tool) Domain() domain.Tool {
	return domain.Tool{
		Name:           t.Name,
		Label:          t.Label,
		PackageManager: t.PackageManager,
	}
}

// LoadHook loads hook configuration from environment variables.
func LoadHook() (*Hook, error) {
	var cfg Hook
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg.Tool); err != nil {
		return nil, err
	}
	if err := cfg.Tool.Domain().Validate(); err != nil {
		return nil, fmt.Errorf("invalid tool configuration: %w", err)
	}
	return &cfg, nil
}
