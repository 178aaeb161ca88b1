package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/cascade/internal/cli"
)

var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Replay a script of actions without a terminal",
	Long: `Reads one action per line from file (or stdin when omitted or "-"),
dispatches them in order and prints the final board with a summary.

  reveal X Y | mark X Y | up | down | left | right
  difficulty NAME | new | quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		trace, _ := cmd.Flags().GetBool("trace")
		jsonMode, _ := cmd.Flags().GetBool("json")

		opts := cli.RunOptions{
			Config: cfg,
			Trace:  trace,
			JSON:   jsonMode,
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}
		if len(args) > 0 {
			opts.ScriptPath = args[0]
		}
		return cli.RunScript(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)

	scriptCmd.Flags().Bool("trace", false, "Print the board after every action")
	scriptCmd.Flags().Bool("json", false, "Emit boards and the summary as JSON lines")
}
