package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gongduet/voquab/internal/config"
	"github.com/gongduet/voquab/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "voquab",
	Short: "Adaptive vocabulary review scheduler",
	Long: "Voquab — review scheduler for book-based vocabulary learning.\n" +
		"Tracks per-word retention and mastery, and composes prioritized review sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOQUAB_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides VOQUAB_CONFIG env var)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VOQUAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveConfig loads the config from --config, VOQUAB_CONFIG, or the
// default XDG path.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	p, err := config.DefaultPath()
	if err != nil {
		return config.Default(), err
	}
	return config.Load(p)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
