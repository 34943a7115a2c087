package commands

import (
	"github.com/spf13/cobra"

	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the declared packs until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, _ := cmd.Flags().GetString("manifest")
			listen, _ := cmd.Flags().GetString("listen")
			noWarmup, _ := cmd.Flags().GetBool("no-warmup")
			noMinify, _ := cmd.Flags().GetBool("no-minify")
			noWatch, _ := cmd.Flags().GetBool("no-watch")
			jsonLogs, _ := cmd.Flags().GetBool("json-logs")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Manifest: manifest,
				Listen:   listen,
				NoWarmup: noWarmup,
				NoMinify: noMinify,
				NoWatch:  noWatch,
				JSONLogs: jsonLogs,
			})
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Path to stitch.yaml (default: search upwards from the working directory)")
	cmd.Flags().StringP("listen", "l", "", "Listen address, overrides the manifest")
	cmd.Flags().Bool("no-warmup", false, "Skip the eager build of all packs at startup")
	cmd.Flags().Bool("no-minify", false, "Disable minification for all packs")
	cmd.Flags().Bool("no-watch", false, "Disable file-change invalidation, cache artifacts for the process lifetime")
	cmd.Flags().Bool("json-logs", false, "Emit logs as JSON")
	return cmd
}
