package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gideongeny/dailynews/internal/config"
	"github.com/gideongeny/dailynews/internal/news"
)

var (
	flagFetchCategory string
	flagFetchRegion   string
	flagFetchQuery    string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch aggregated news once and print it as JSON",
	Long:  "Run one aggregation pass against the configured sources and write the resulting articles to stdout. Useful for cron jobs and debugging provider credentials.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		params, err := fetchParams(cfg)
		if err != nil {
			return err
		}

		agg, cleanup, err := buildAggregator(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestBudgetDuration())
		defer cancel()

		articles, err := agg.GetNews(ctx, params)
		if err != nil {
			return fmt.Errorf("fetching news: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(articles)
	},
}

func init() {
	fetchCmd.Flags().StringVar(&flagFetchCategory, "category", "", "category to fetch (e.g., politics, sports, tech)")
	fetchCmd.Flags().StringVar(&flagFetchRegion, "region", "", "region to fetch (kenya, africa, world)")
	fetchCmd.Flags().StringVar(&flagFetchQuery, "query", "", "free-text search query")
}

func fetchParams(cfg *config.Config) (news.Params, error) {
	switch {
	case flagFetchCategory != "":
		params, ok := news.Categories[strings.ToLower(flagFetchCategory)]
		if !ok {
			return news.Params{}, fmt.Errorf("unknown category %q", flagFetchCategory)
		}
		return params, nil
	case flagFetchRegion != "":
		params, ok := news.Regions[strings.ToLower(flagFetchRegion)]
		if !ok {
			return news.Params{}, fmt.Errorf("unknown region %q", flagFetchRegion)
		}
		return params, nil
	case flagFetchQuery != "":
		return news.Params{Query: flagFetchQuery}, nil
	default:
		return news.Params{Country: cfg.DefaultCountry}, nil
	}
}
