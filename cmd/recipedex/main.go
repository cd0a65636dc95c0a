// recipedex is an interactive client for the recipe service: search recipes
// by ingredients or name, browse the results, and submit new recipes, with
// chip-style ingredient entry and live autosuggest.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"recipedex/cmd/recipedex/tui"
	"recipedex/internal/api"
	"recipedex/internal/config"
)

var (
	// Global flags
	verbose    bool
	serverURL  string
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command. Without arguments it launches the
// interactive client.
var rootCmd = &cobra.Command{
	Use:   "recipedex",
	Short: "recipedex - recipe search and entry client",
	Long: `recipedex talks to a recipe service: find recipes by the ingredients you
have, look them up by name, and submit your own.

Run without arguments to start the interactive interface. The one-shot
subcommands (query, add, suggest) cover scripted use.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive mode owns the terminal; no logger there.
		if cmd.Use == "recipedex" || cmd.Use == "browse" {
			logger = zap.NewNop()
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

// browseCmd launches the interactive interface explicitly.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "recipe service base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(suggestCmd)
}

// loadConfig resolves configuration: defaults, then file, then environment,
// then the --server flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
	}
	return cfg, nil
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/recipedex/config.yaml"
}

func runBrowse() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.Server.BaseURL, zap.NewNop())
	program := tea.NewProgram(tui.New(cfg, client), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
