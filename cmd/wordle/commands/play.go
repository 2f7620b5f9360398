package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/terminal"
	"github.com/robalobadob/wordle/internal/words"
)

// localPlayer keys the terminal player's stats row.
const localPlayer = "local"

func playCmd() *cobra.Command {
	var answer string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := appCtx.stats.Get(ctx, localPlayer)
			if err != nil {
				return err
			}
			if answer != "" {
				answer = words.Normalize(answer)
				if !appCtx.dict.IsAnswer(answer) {
					return fmt.Errorf("%q is not in the answers list", answer)
				}
			} else {
				var next int
				answer, next = appCtx.picker.Pick(st.WordTracker, time.Now())
				if next != st.WordTracker {
					st.WordTracker = next
					if err := appCtx.stats.Save(ctx, localPlayer, st); err != nil {
						return err
					}
				}
			}

			sess := game.NewSession(answer, game.WithDictionary(appCtx.dict), game.WithOwner(localPlayer))
			r := terminal.NewRenderer(os.Stdout)
			if err := terminal.Play(ctx, os.Stdin, r, sess); err != nil {
				if errors.Is(err, terminal.ErrQuit) {
					log.Info().Msg("game abandoned, not recorded")
					return nil
				}
				return err
			}

			st, err = appCtx.stats.Finish(ctx, localPlayer, sess)
			if err != nil {
				return err
			}
			r.Printf("\n")
			r.Stats(st)
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "play against a fixed answer")
	return cmd
}
