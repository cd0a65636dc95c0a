package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipedex/internal/api"
	"recipedex/internal/ingredient"
)

var (
	suggestLimit   int
	suggestExclude string
)

// suggestCmd looks up ingredient suggestions for a prefix. Mostly a
// debugging aid for the autosuggest endpoint.
var suggestCmd = &cobra.Command{
	Use:   "suggest [prefix]",
	Short: "Look up ingredient suggestions for a prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "maximum number of suggestions")
	suggestCmd.Flags().StringVar(&suggestExclude, "exclude", "", "comma-separated ingredients to exclude")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit := suggestLimit
	if limit <= 0 {
		limit = cfg.Suggest.Limit
	}

	client := api.NewClient(cfg.Server.BaseURL, logger)
	suggestions, err := client.Suggest(cmd.Context(), args[0], ingredient.NormalizeList(suggestExclude), limit)
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}
	for _, s := range suggestions {
		fmt.Println(s)
	}
	return nil
}
