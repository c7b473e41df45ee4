package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/templui/postpage/internal/app"
	"github.com/templui/postpage/internal/config"
	"github.com/templui/postpage/internal/logger"
	"github.com/templui/postpage/internal/service"
)

func ShowCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Look a post up through the configured source and print the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.IsDevelopment(), cfg.AppEnv, "")

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			result := a.PostService.Lookup(cmd.Context(), args[0])
			printResult(cmd.OutOrStdout(), a, result, lang)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Accept-Language used to format the date")
	return cmd
}

func printResult(w io.Writer, a *app.App, result service.PostResult, lang string) {
	if !result.Found() {
		fmt.Fprintf(w, "not found (%s)\n", result.Reason)
		if result.Err != nil {
			fmt.Fprintf(w, "error: %v\n", result.Err)
		}
		return
	}

	post := result.Post
	fmt.Fprintf(w, "id:          %d\n", post.ID)
	fmt.Fprintf(w, "title:       %s\n", post.Title)
	fmt.Fprintf(w, "description: %s\n", post.Description)
	fmt.Fprintf(w, "image:       %s\n", post.Image)
	fmt.Fprintf(w, "published:   %s\n", a.Dates.Format(post.Date, a.Locales.Match(lang)))
}
