package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sampleapp/internal/errors"
	"sampleapp/internal/metrics"
	"sampleapp/internal/model"
	"sampleapp/internal/repository"
	"sampleapp/internal/validation"
)

var postSchema = validation.Schema{
	{Name: "content", Label: "Content", Rules: []validation.Rule{validation.Presence(), validation.MaxLength(140)}},
}

// PostService handles micropost operations.
type PostService interface {
	Create(ctx context.Context, actor *model.Account, content string) (*model.Post, error)
	Delete(ctx context.Context, actor *model.Account, id uuid.UUID) (*model.Post, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]model.Post, int64, error)
	Feed(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]model.Post, int64, error)
}

type postService struct {
	repo      repository.PostRepository
	validator *validation.Validator
}

// NewPostService creates a new micropost service.
func NewPostService(repo repository.PostRepository, validator *validation.Validator) PostService {
	return &postService{
		repo:      repo,
		validator: validator,
	}
}

// Create publishes a micropost owned by actor.
func (s *postService) Create(ctx context.Context, actor *model.Account, content string) (*model.Post, error) {
	if actor == nil {
		return nil, errors.ErrNotSignedIn
	}
	if msgs := s.validator.Validate(postSchema, map[string]string{"content": content}); len(msgs) > 0 {
		return nil, errors.ValidationErrors(msgs)
	}

	post := &model.Post{Content: content, UserID: actor.ID}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create micropost: %w", err)
	}
	metrics.PostsTotal.Inc()
	return post, nil
}

// Delete removes a micropost authored by actor.
func (s *postService) Delete(ctx context.Context, actor *model.Account, id uuid.UUID) (*model.Post, error) {
	if actor == nil {
		return nil, errors.ErrNotSignedIn
	}
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find micropost: %w", err)
	}
	if err := CanDeletePost(actor, post); err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("delete micropost: %w", err)
	}
	return post, nil
}

// ListByAccount returns a page of an account's microposts, newest first.
func (s *postService) ListByAccount(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]model.Post, int64, error) {
	total, err := s.repo.CountByUser(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("count microposts: %w", err)
	}
	posts, err := s.repo.ListByUser(ctx, accountID, offset(page, perPage), perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list microposts: %w", err)
	}
	return posts, total, nil
}

// Feed returns a page of the account's home feed.
func (s *postService) Feed(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]model.Post, int64, error) {
	total, err := s.repo.CountFeed(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("count feed: %w", err)
	}
	posts, err := s.repo.Feed(ctx, accountID, offset(page, perPage), perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("load feed: %w", err)
	}
	return posts, total, nil
}
