package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/seabattle-go/internal/services/bot"
)

func newSimulateCmd() *cobra.Command {
	var (
		games         int
		humanStrategy string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play computer against computer and report the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games <= 0 {
				return fmt.Errorf("--games must be positive, got %d", games)
			}

			for range games {
				if _, err := app.SimulateGame(cmd.Context(), humanStrategy); err != nil {
					return err
				}
			}

			summaries, err := app.GameController.ListSummaries(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(NewReport(summaries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of games to play")
	cmd.Flags().StringVar(&humanStrategy, "human-strategy", bot.StrategyShuffledPool, "Strategy playing the human seat")

	return cmd
}
