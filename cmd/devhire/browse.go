package main

import (
	"github.com/spf13/cobra"

	"github.com/devhire/devhire/internal/browse"
	"github.com/devhire/devhire/internal/store"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive job board",
	Long:  "Open the full-screen board: search, filter, save, and like jobs fetched from every enabled source.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	st := openStore(cfg, logger)
	if closer, ok := st.(*store.SQLiteStore); ok {
		defer closer.Close()
	}

	co := buildCoordinator(cfg, logger)
	return browse.Run(co, st, logger)
}
