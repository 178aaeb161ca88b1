package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cascade"
	"github.com/aretw0/cascade/internal/presentation/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := tui.RenderKeys()
		if err != nil {
			return fmt.Errorf("failed to render keys: %w", err)
		}
		tui.PrintBanner(cmd.OutOrStdout(), cascade.Version)
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
