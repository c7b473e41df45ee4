package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/postpage/cmd/posts/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "posts",
		Short:         "Operator tools for the post page server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(cmd.MigrateCmd())
	rootCmd.AddCommand(cmd.SeedCmd())
	rootCmd.AddCommand(cmd.ShowCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
