package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/installhook/internal/plugin"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the plugin manifest.yml",
	Long: `Prints the manifest the build host reads to load the plugin.

  installhook manifest > .netlify/plugins/install-trunk/manifest.yml`,
	Args: cobra.NoArgs,
	RunE: runManifest,
}

func runManifest(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext(cmdContext(cmd), cmdLogger())
	if err != nil {
		return err
	}
	defer app.Close()

	return plugin.WriteManifest(os.Stdout, app.Plugin.Manifest())
}
