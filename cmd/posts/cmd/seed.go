package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/postpage/internal/config"
	"github.com/templui/postpage/internal/db"
	"github.com/templui/postpage/internal/logger"
	"github.com/templui/postpage/internal/model"
	"github.com/templui/postpage/internal/repository"
	"github.com/templui/postpage/internal/validation"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.json|->",
		Short: "Insert a JSON array of posts into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			posts, err := readPosts(in)
			if err != nil {
				return err
			}

			return seed(cmd, posts)
		},
	}
}

// readPosts decodes and validates every post before anything is written.
func readPosts(r io.Reader) ([]*model.Post, error) {
	var posts []*model.Post
	err := json.NewDecoder(r).Decode(&posts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	for i, post := range posts {
		err = validation.ValidatePost(post)
		if err != nil {
			return nil, fmt.Errorf("post #%d: %w", i, err)
		}
	}

	return posts, nil
}

func seed(cmd *cobra.Command, posts []*model.Post) error {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.AppEnv, "")

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = database.Close() }()

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return err
	}

	repo := repository.NewPostRepository(database)
	for _, post := range posts {
		err = repo.Create(cmd.Context(), post)
		if err != nil {
			return fmt.Errorf("failed to insert post %d: %w", post.ID, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts\n", len(posts))
	return nil
}
