package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/installhook/internal/domain"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Handle a build lifecycle event",
	Long: `Reads lifecycle event JSON from stdin and dispatches it to the plugin.

This is the unified entry point for the build host. The host writes the
event and its context, for example:

  {"event": "onPreBuild", "constants": {...}, "inputs": {...}}

onPreBuild installs the configured tool. Other events are accepted and
complete without side effects.`,
	Args: cobra.NoArgs,
	RunE: runHook,
}

func runHook(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	input, err := domain.ParseLifecycleInput(data)
	if err != nil {
		return fmt.Errorf("failed to parse lifecycle input: %w", err)
	}

	return dispatch(cmdContext(cmd), input)
}
