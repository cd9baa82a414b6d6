package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInstallerFailed is matched by every installer failure, whether the
// process could not be started or exited non-zero.
var ErrInstallerFailed = errors.New("installer process failed")

// InstallError reports a failed installer run.
type InstallError struct {
	Tool string
	Args []string
	// ExitCode is -1 when the process never started.
	ExitCode int
	Err      error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install %s: %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInstallerFailed) match any InstallError.
func (e *InstallError) Is(target error) bool {
	return target == ErrInstallerFailed
}
