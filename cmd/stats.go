package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anika/sprout/internal/config"
	"github.com/anika/sprout/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg := config.Load()
		stats, err := st.SessionRepo().FetchStats(cmd.Context(), cfg.ChildID)
		if err != nil {
			return fmt.Errorf("fetch stats: %w", err)
		}

		if stats.TotalSessions == 0 {
			fmt.Printf("No sessions yet for %s.\n", cfg.ChildName)
			return nil
		}

		fmt.Printf("Stats for %s\n\n", cfg.ChildName)
		fmt.Printf("  Sessions:        %d\n", stats.TotalSessions)
		fmt.Printf("  Finished:        %d\n", stats.CompletedSessions)
		fmt.Printf("  Stopped early:   %d\n", stats.AbandonedSessions)
		fmt.Printf("  Learning time:   %s\n", stats.TotalActive.Round(time.Second))
		fmt.Printf("  Interactions:    %d\n", stats.TotalInteractions)
		if stats.CompletedSessions > 0 {
			fmt.Printf("  Avg completion:  %.0f%%\n", stats.AvgCompletionRate*100)
		}
		return nil
	},
}
