package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devhire/devhire/internal/store"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved job ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printIDSet("saved", func(s *store.SQLiteStore) ([]string, error) {
			return s.SavedJobs()
		})
	},
}

var likedCmd = &cobra.Command{
	Use:   "liked",
	Short: "List liked job ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printIDSet("liked", func(s *store.SQLiteStore) ([]string, error) {
			return s.LikedJobs()
		})
	},
}

func init() {
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(likedCmd)
}

func printIDSet(kind string, fetch func(*store.SQLiteStore) ([]string, error)) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	st, err := store.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ids, err := fetch(st)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Printf("no %s jobs\n", kind)
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
