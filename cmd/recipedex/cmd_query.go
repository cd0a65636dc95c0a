package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recipedex/cmd/recipedex/ui"
	"recipedex/internal/api"
	"recipedex/internal/ingredient"
)

var (
	queryIngredients string
	queryName        string
	queryLimit       int
	queryCategory    string
	queryCuisine     string
)

// queryCmd runs a one-shot search and prints a result table.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search recipes by ingredients or name",
	Long: `Searches the recipe service and prints matching recipes.

Examples:
  recipedex query --ingredients "egg, tomato, onion"
  recipedex query --name shakshuka --cuisine "Middle Eastern"
  recipedex query --name curry --ingredients "coconut milk" -k 10`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryIngredients, "ingredients", "i", "", "comma-separated ingredient list")
	queryCmd.Flags().StringVarP(&queryName, "name", "n", "", "recipe name to search for")
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "k", 0, "number of results")
	queryCmd.Flags().StringVar(&queryCategory, "category", "", "filter by category")
	queryCmd.Flags().StringVar(&queryCuisine, "cuisine", "", "filter by cuisine")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ingredients := ingredient.NormalizeList(queryIngredients)
	if queryName == "" && len(ingredients) == 0 {
		return fmt.Errorf("provide --name and/or --ingredients")
	}

	k := queryLimit
	if k <= 0 {
		k = cfg.Query.Limit
	}

	client := api.NewClient(cfg.Server.BaseURL, logger)

	var rows []api.Recipe
	if queryName != "" {
		logger.Info("querying by name", zap.String("name", queryName))
		rows, err = client.QueryByName(cmd.Context(), api.NameQuery{
			Name:        queryName,
			K:           k,
			Category:    queryCategory,
			Cuisine:     queryCuisine,
			Ingredients: ingredients,
		})
	} else {
		logger.Info("querying by ingredients", zap.Strings("ingredients", ingredients))
		rows, err = client.QueryByIngredients(cmd.Context(), api.IngredientQuery{
			Ingredients: ingredients,
			K:           k,
			Category:    queryCategory,
			Cuisine:     queryCuisine,
		})
	}
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}

	table := ui.NewTable("", []string{"Name", "Rating", "Cuisine", "Prep", "Ingredients"})
	for _, r := range rows {
		rating := "-"
		if r.RatingCount > 0 {
			rating = fmt.Sprintf("%.1f (%d)", r.RatingValue, r.RatingCount)
		}
		prep := "-"
		if r.PreparationTime > 0 {
			prep = fmt.Sprintf("%d min", r.PreparationTime)
		}
		table.AddRow(r.Name, rating, r.Cuisine, prep, strings.Join(r.Ingredients, ", "))
	}
	fmt.Print(table.View(ui.DefaultStyles()))
	return nil
}
