package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/terminal"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show terminal play statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := appCtx.stats.Get(cmd.Context(), localPlayer)
			if err != nil {
				return err
			}
			terminal.NewRenderer(os.Stdout).Stats(st)
			return nil
		},
	}
}
