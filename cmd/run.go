package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anika/sprout/internal/app"
	"github.com/anika/sprout/internal/config"
	"github.com/anika/sprout/internal/engine"
	"github.com/anika/sprout/internal/store"
)

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.SessionRepo()
	eng := engine.New(engine.WithRepository(repo))

	return app.Run(app.Options{
		Engine: eng,
		Repo:   repo,
		Config: config.Load(),
	})
}
