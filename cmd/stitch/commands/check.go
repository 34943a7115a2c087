package commands

import (
	"github.com/spf13/cobra"

	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Build every declared pack once and report the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, _ := cmd.Flags().GetString("manifest")
			return c.app.Check(cmd.Context(), app.CheckOptions{
				Manifest: manifest,
			})
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Path to stitch.yaml (default: search upwards from the working directory)")
	return cmd
}
