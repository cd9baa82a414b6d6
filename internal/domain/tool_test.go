package domain

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestTool_StatusMessage(t *testing.T) {
	tests := []struct {
		name string
		tool Tool
		want string
	}{
		{"label", Tool{Name: "trunk", Label: "Trunk", PackageManager: "cargo"}, "Installing Trunk..."},
		{"name fallback", Tool{Name: "wasm-pack", PackageManager: "cargo"}, "Installing wasm-pack..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, "StatusMessage", tt.want, tt.tool.StatusMessage())
		})
	}
}

func TestTool_InstallCommand(t *testing.T) {
	tool := Tool{Name: "trunk", Label: "Trunk", PackageManager: "cargo"}

	got := strings.Join(tool.InstallCommand(), " ")
	assertEqual(t, "InstallCommand", "cargo install trunk", got)
}

func TestTool_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tool    Tool
		wantErr bool
	}{
		{"valid", Tool{Name: "trunk", PackageManager: "cargo"}, false},
		{"missing name", Tool{PackageManager: "cargo"}, true},
		{"missing package manager", Tool{Name: "trunk"}, true},
		{"name with space", Tool{Name: "trunk --force", PackageManager: "cargo"}, true},
		{"package manager with space", Tool{Name: "trunk", PackageManager: "cargo +nightly"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tool.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInstallError(t *testing.T) {
	cause := exec.ErrNotFound
	err := error(&InstallError{
		Tool:     "trunk",
		Args:     []string{"cargo", "install", "trunk"},
		ExitCode: -1,
		Err:      cause,
	})

	if !errors.Is(err, ErrInstallerFailed) {
		t.Error("expected InstallError to match ErrInstallerFailed")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Error("expected InstallError to unwrap to its cause")
	}

	var ie *InstallError
	if !errors.As(err, &ie) {
		t.Fatal("expected errors.As to find *InstallError")
	}
	assertEqual(t, "ExitCode", -1, ie.ExitCode)

	if !strings.Contains(err.Error(), "cargo install trunk") {
		t.Errorf("expected command in message, got %q", err.Error())
	}
}
