package service

import (
	"context"
	"log/slog"

	"github.com/templui/postpage/internal/model"
	"github.com/templui/postpage/internal/validation"
)

// PostFetcher retrieves a post by its route identifier.
// It returns (nil, nil) when no such post exists.
type PostFetcher interface {
	PostByID(ctx context.Context, id string) (*model.Post, error)
}

// Reason explains why a lookup did not find a post.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInvalidID
	ReasonMissing
	ReasonFetchFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidID:
		return "invalid_id"
	case ReasonMissing:
		return "missing"
	case ReasonFetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}

// PostResult is either Found (Post set) or NotFound (Reason set).
type PostResult struct {
	Post   *model.Post
	Reason Reason
	Err    error // set for ReasonFetchFailed
}

func (r PostResult) Found() bool {
	return r.Post != nil
}

type PostService struct {
	fetcher PostFetcher
	log     *slog.Logger
}

func NewPostService(fetcher PostFetcher, log *slog.Logger) *PostService {
	if log == nil {
		log = slog.Default()
	}
	return &PostService{
		fetcher: fetcher,
		log:     log,
	}
}

// Lookup validates id and fetches the post once.
// Every failure collapses to NotFound; fetch errors are also logged.
func (s *PostService) Lookup(ctx context.Context, id string) PostResult {
	err := validation.ValidatePostID(id)
	if err != nil {
		return PostResult{Reason: ReasonInvalidID}
	}

	post, err := s.fetcher.PostByID(ctx, id)
	if err != nil {
		s.log.ErrorContext(ctx, "post fetch failed", "id", id, "error", err)
		return PostResult{Reason: ReasonFetchFailed, Err: err}
	}

	if post == nil {
		return PostResult{Reason: ReasonMissing}
	}

	return PostResult{Post: post}
}
