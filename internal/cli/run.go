package cli

import (
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/installhook/internal/domain"
)

var runCmd = &cobra.Command{
	Use:   "run <event>",
	Short: "Run a lifecycle event without stdin input",
	Long: `Dispatches a single lifecycle event, for hosts that call one command
per build phase instead of piping event JSON.

Examples:
  installhook run onPreBuild
  installhook run onPreBuild && trunk build --release`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: eventNames(),
	RunE:      runEvent,
}

func runEvent(cmd *cobra.Command, args []string) error {
	event, err := domain.ParseEvent(args[0])
	if err != nil {
		return err
	}

	return dispatch(cmdContext(cmd), &domain.LifecycleInput{Event: event})
}

func eventNames() []string {
	var names []string
	for _, e := range domain.Events() {
		names = append(names, string(e))
	}
	return names
}
