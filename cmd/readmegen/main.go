package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	githubadapter "readme-generator/internal/adapter/github"
	"readme-generator/internal/config"
	"readme-generator/internal/logging"
	"readme-generator/internal/ui"
	"readme-generator/internal/usecase"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "readmegen",
	Short:         "Generate a GitHub profile README",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.Long = ui.Green.Render("readmegen") + "\n" +
		ui.Dim.Render("Builds a profile README from a few fields, enriched with your public GitHub repositories.")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(formCmd, renderCmd, statsCmd)
}

func newSession() *usecase.Session {
	client := githubadapter.New(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.GitHubTimeout)
	return usecase.NewSession(usecase.NewFetcher(client, logger, cfg.GitHubTimeout), nil, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Red.Render("error:"), err)
		os.Exit(1)
	}
}
