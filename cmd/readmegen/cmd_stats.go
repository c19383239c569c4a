package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	githubadapter "readme-generator/internal/adapter/github"
	"readme-generator/internal/ui"
	"readme-generator/internal/usecase"
)

var statsCmd = &cobra.Command{
	Use:   "stats <username>",
	Short: "Show the repository count and language ranking for a GitHub user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GitHubTimeout)
		defer cancel()

		client := githubadapter.New(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.GitHubTimeout)
		username := args[0]

		count, err := client.PublicRepos(ctx, username)
		if err != nil {
			return err
		}
		langs, err := client.RepoLanguages(ctx, username)
		if err != nil {
			return err
		}
		ranked := usecase.RankLanguages(langs)

		fmt.Println(ui.Green.Render(username))
		fmt.Println(ui.Dim.Render("public repos:"), count)
		if len(ranked) == 0 {
			fmt.Println(ui.Dim.Render("languages:"), "none detected")
			return nil
		}
		fmt.Println(ui.Dim.Render("languages:"), ui.Cyan.Render(strings.Join(ranked, ", ")))
		return nil
	},
}
