package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sampleapp/internal/errors"
	"sampleapp/internal/metrics"
	"sampleapp/internal/model"
	"sampleapp/internal/repository"
)

// FollowStats holds the counted projections of the follow graph for one account.
type FollowStats struct {
	Following int64
	Followers int64
}

// FollowService manages the directed follow graph between accounts.
type FollowService interface {
	Follow(ctx context.Context, actor *model.Account, targetID uuid.UUID) (*model.Relationship, error)
	Unfollow(ctx context.Context, actor *model.Account, relationshipID uuid.UUID) (*model.Relationship, error)
	Relationship(ctx context.Context, followerID, followedID uuid.UUID) (*model.Relationship, error)
	Follows(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	Stats(ctx context.Context, accountID uuid.UUID) (FollowStats, error)
	Following(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]model.Account, int64, error)
	Followers(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]model.Account, int64, error)
}

type followService struct {
	accountRepo repository.AccountRepository
	relRepo     repository.RelationshipRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(accountRepo repository.AccountRepository, relRepo repository.RelationshipRepository) FollowService {
	return &followService{
		accountRepo: accountRepo,
		relRepo:     relRepo,
	}
}

// Follow adds the edge actor -> target.
func (s *followService) Follow(ctx context.Context, actor *model.Account, targetID uuid.UUID) (*model.Relationship, error) {
	if err := CanFollow(actor, targetID); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.FindByID(ctx, targetID); err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find followed account: %w", err)
	}

	existing, err := s.Relationship(ctx, actor.ID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrAlreadyFollowing
	}

	rel := &model.Relationship{FollowerID: actor.ID, FollowedID: targetID}
	if err := s.relRepo.Create(ctx, rel); err != nil {
		return nil, fmt.Errorf("create relationship: %w", err)
	}
	metrics.FollowsTotal.WithLabelValues("follow").Inc()
	return rel, nil
}

// Unfollow removes an edge owned by actor, identified by its ID.
func (s *followService) Unfollow(ctx context.Context, actor *model.Account, relationshipID uuid.UUID) (*model.Relationship, error) {
	if actor == nil {
		return nil, errors.ErrNotSignedIn
	}
	rel, err := s.relRepo.FindByID(ctx, relationshipID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.ErrRelationshipNotFound
		}
		return nil, fmt.Errorf("find relationship: %w", err)
	}
	if rel.FollowerID != actor.ID {
		return nil, errors.ErrForbidden
	}

	if err := s.relRepo.Delete(ctx, rel.ID); err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.ErrRelationshipNotFound
		}
		return nil, fmt.Errorf("delete relationship: %w", err)
	}
	metrics.FollowsTotal.WithLabelValues("unfollow").Inc()
	return rel, nil
}

// Relationship returns the edge follower -> followed, or nil when there is none.
func (s *followService) Relationship(ctx context.Context, followerID, followedID uuid.UUID) (*model.Relationship, error) {
	rel, err := s.relRepo.Find(ctx, followerID, followedID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find relationship: %w", err)
	}
	return rel, nil
}

// Follows reports whether follower follows followed.
func (s *followService) Follows(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	rel, err := s.Relationship(ctx, followerID, followedID)
	return rel != nil, err
}

// Stats counts both directions of the graph around accountID.
func (s *followService) Stats(ctx context.Context, accountID uuid.UUID) (FollowStats, error) {
	following, err := s.relRepo.CountFollowing(ctx, accountID)
	if err != nil {
		return FollowStats{}, fmt.Errorf("count following: %w", err)
	}
	followers, err := s.relRepo.CountFollowers(ctx, accountID)
	if err != nil {
		return FollowStats{}, fmt.Errorf("count followers: %w", err)
	}
	return FollowStats{Following: following, Followers: followers}, nil
}

// Following returns a page of the accounts accountID follows.
func (s *followService) Following(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]model.Account, int64, error) {
	total, err := s.relRepo.CountFollowing(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("count following: %w", err)
	}
	accounts, err := s.relRepo.ListFollowing(ctx, accountID, offset(page, perPage), perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list following: %w", err)
	}
	return accounts, total, nil
}

// Followers returns a page of the accounts following accountID.
func (s *followService) Followers(ctx context.Context, accountID uuid.UUID, page, perPage int) ([]model.Account, int64, error) {
	total, err := s.relRepo.CountFollowers(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("count followers: %w", err)
	}
	accounts, err := s.relRepo.ListFollowers(ctx, accountID, offset(page, perPage), perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list followers: %w", err)
	}
	return accounts, total, nil
}
