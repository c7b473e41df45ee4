package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/templui/postpage/internal/model"
)

var (
	ErrPostNotFound = errors.New("post not found")
)

type PostRepository interface {
	ByID(ctx context.Context, id string) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// ByID looks a post up by its route identifier.
// Identifiers that are not integers cannot match a row and report ErrPostNotFound.
func (r *postRepository) ByID(ctx context.Context, id string) (*model.Post, error) {
	postID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, ErrPostNotFound
	}

	post := &model.Post{}
	query := `SELECT id, title, description, image, date FROM posts WHERE id = $1`

	err = r.db.GetContext(ctx, post, query, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `INSERT INTO posts (id, title, description, image, date)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		post.ID,
		post.Title,
		post.Description,
		post.Image,
		post.Date,
	)

	return err
}
