package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"recipedex/internal/api"
)

var addFile string

// addCmd submits a recipe described in a YAML file.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Submit a new recipe from a YAML file",
	Long: `Reads a recipe draft from a YAML file, validates it locally and submits it.

Example file:
  name: Omelette
  cuisine: European
  category: [Breakfast & Brunch]
  ingredients: [egg, butter]
  ingredients_raw: ["3 eggs", "a knob of butter"]
  instructions:
    - Whisk the eggs.
    - Fry in butter.
  preparation_time: 5
  nutrition: '{"calories": 250}'`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "path to the recipe YAML file (required)")
	_ = addCmd.MarkFlagRequired("file")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(addFile)
	if err != nil {
		return fmt.Errorf("failed to read recipe file: %w", err)
	}

	var draft api.Draft
	if err := yaml.Unmarshal(data, &draft); err != nil {
		return fmt.Errorf("failed to parse recipe file: %w", err)
	}
	if len(draft.IngredientsRaw) == 0 {
		draft.IngredientsRaw = draft.Ingredients
	}

	// Local rejection means the request is never sent.
	if err := draft.Validate(); err != nil {
		return err
	}

	client := api.NewClient(cfg.Server.BaseURL, logger)
	logger.Info("submitting recipe", zap.String("name", draft.Name))

	id, err := client.AddRecipe(cmd.Context(), draft)
	if err != nil {
		return err
	}

	fmt.Printf("Recipe added (id %d).\n", id)
	return nil
}
