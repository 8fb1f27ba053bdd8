//go:build !lambda

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"relic-optimizer/internal/solver"
)

// solveOutput is the JSON-serializable result of one solve run.
type solveOutput struct {
	Builds int                  `json:"builds"`
	TimeMs int64                `json:"timeMs"`
	Top    []solver.BuildResult `json:"top"`
}

var (
	jsonOut bool
	topN    int
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "relic-solver <request.json>",
		Short: "Find relic builds satisfying category and skill thresholds",
		Long: `relic-solver reads a solve request (inventory, constraints, taxonomy,
skill overrides) from a JSON document and prints the ranked feasible
builds. Search tuning can be overridden through SOLVER_* environment
variables.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().BoolVar(&jsonOut, "json", false, "output results as JSON")
	root.Flags().IntVar(&topN, "top", 10, "number of builds to print (0 = all)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search progress")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var cfg solver.Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Debug("tuning", "topPerCategory", cfg.TopPerCategory,
		"minCandidates", cfg.MinCandidates, "maxResults", cfg.MaxResults)

	req, err := solver.LoadRequest(args[0])
	if err != nil {
		return err
	}
	logger.Info("request loaded", "items", len(req.Relics),
		"categoryMinimums", len(req.Constraints.CategoryMinimums),
		"skillMinimums", len(req.Constraints.SkillMinimums),
		"quotas", len(req.Constraints.CategoryQuotas))

	start := time.Now()
	results, err := solver.Solve(req, cfg)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	logger.Info("solve finished", "builds", len(results), "elapsed", elapsed)

	if jsonOut {
		top := results
		if topN > 0 && len(top) > topN {
			top = top[:topN]
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{
			Builds: len(results),
			TimeMs: elapsed.Milliseconds(),
			Top:    top,
		})
	}
	fmt.Println(solver.FormatResults(results, topN))
	return nil
}
