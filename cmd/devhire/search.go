package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devhire/devhire/internal/model"
)

var (
	searchLocation string
	searchRemote   bool
	searchPage     int
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot search and print the ranked results",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "location filter")
	searchCmd.Flags().BoolVar(&searchRemote, "remote", false, "remote jobs only")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "result page")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	req := model.SearchRequest{
		Location:   searchLocation,
		RemoteOnly: searchRemote,
		Page:       searchPage,
		PageSize:   cfg.Search.PageSize,
	}
	if len(args) > 0 {
		req.Query = args[0]
	}

	co := buildCoordinator(cfg, logger)
	res := co.Aggregate(cmd.Context(), req)

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Jobs)
	}

	for _, r := range res.Reports {
		if r.Err != nil {
			fmt.Printf("source %-9s failed: %v\n", r.Source, r.Err)
		} else {
			fmt.Printf("source %-9s contributed %d jobs\n", r.Source, r.Count)
		}
	}
	if res.Supplemented() {
		fmt.Println("live results were thin; synthetic jobs added")
	}
	fmt.Printf("%d jobs\n\n", res.Count)

	for i, job := range res.Jobs {
		printJobLine(i+1, job)
	}
	return nil
}

func printJobLine(n int, job model.Job) {
	var flags []string
	if job.Featured {
		flags = append(flags, "featured")
	}
	if job.IsHot {
		flags = append(flags, "hot")
	}
	if job.NoWhiteboard {
		flags = append(flags, "no-whiteboard")
	}
	suffix := ""
	if len(flags) > 0 {
		suffix = " [" + strings.Join(flags, ",") + "]"
	}
	fmt.Printf("%3d. %s — %s (%s, %s)%s\n", n, job.Title, job.Company, job.Location, job.Type, suffix)
	if job.AIMatchScore > 0 {
		fmt.Printf("     match %d%%", job.AIMatchScore)
		if job.Salary.Min > 0 || job.Salary.Max > 0 {
			fmt.Printf("  %s %d-%d", job.Salary.Currency, job.Salary.Min, job.Salary.Max)
		}
		fmt.Println()
	}
}
