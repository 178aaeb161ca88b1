package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/cascade/internal/cli"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long:  `Opens a full-screen board. Press q to quit; run "cascade keys" for all bindings.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunPlay(cmd.Context(), cli.RunOptions{
			Config: cfg,
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	// Playing is the default when no command is given.
	rootCmd.RunE = playCmd.RunE
}
