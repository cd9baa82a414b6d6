package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Tool describes a command-line tool installed through a package manager.
type Tool struct {
	Name           string
	Label          string
	PackageManager string
}

// StatusMessage is the line printed to the build log before installing.
func (t Tool) StatusMessage() string {
	label := t.Label
	if label == "" {
		label = t.Name
	}
	return fmt.Sprintf("Installing %s...", label)
}

// InstallCommand returns the installer argv, e.g. ["cargo", "install", "trunk"].
func (t Tool) InstallCommand() []string {
	return []string{t.PackageManager, "install", t.Name}
}

// Validate checks that the tool can be turned into an installer command.
func (t Tool) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if t.PackageManager == "" {
		return fmt.Errorf("package manager is required")
	}
	if strings.IndexFunc(t.Name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("tool name %q must not contain whitespace", t.Name)
	}
	if strings.IndexFunc(t.PackageManager, unicode.IsSpace) >= 0 {
		return fmt.Errorf("package manager %q must not contain whitespace", t.PackageManager)
	}
	return nil
}
