package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/templui/postpage/internal/markdown"
	"github.com/templui/postpage/internal/model"
	"github.com/templui/postpage/internal/repository"
	"github.com/templui/postpage/internal/validation"
)

// RepositorySource adapts a PostRepository to PostFetcher.
type RepositorySource struct {
	repo repository.PostRepository
}

func NewRepositorySource(repo repository.PostRepository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) PostByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.ByID(ctx, id)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post %s: %w", id, err)
	}

	err = validation.ValidatePost(post)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", id, err)
	}

	return post, nil
}

// MarkdownSource serves posts from <contentPath>/posts/<id>.md.
// Frontmatter supplies title, description, image (or hero_image) and date.
type MarkdownSource struct {
	parser      *markdown.Parser
	contentPath string
}

func NewMarkdownSource(contentPath string) *MarkdownSource {
	return &MarkdownSource{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
	}
}

func (s *MarkdownSource) PostByID(_ context.Context, id string) (*model.Post, error) {
	// Only canonical integers name a file; this also keeps ids from escaping the directory
	postID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, nil
	}

	path := filepath.Join(s.contentPath, "posts", strconv.FormatInt(postID, 10)+".md")
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read post %s: %w", id, err)
	}

	meta, err := s.parser.Frontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", id, err)
	}

	post := &model.Post{
		ID:          postID,
		Title:       metaString(meta, "title"),
		Description: metaString(meta, "description"),
		Image:       metaString(meta, "image"),
		Date:        metaString(meta, "date"),
	}
	if post.Image == "" {
		post.Image = metaString(meta, "hero_image")
	}

	err = validation.ValidatePost(post)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", id, err)
	}

	return post, nil
}

// metaString reads a frontmatter value as a string.
// YAML timestamps may decode as time.Time; those are rendered as RFC 3339.
func metaString(meta map[string]any, key string) string {
	switch v := meta[key].(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return ""
	}
}
