package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sampleapp/internal/model"
)

// RelationshipRepository defines follow-graph persistence operations.
type RelationshipRepository interface {
	Create(ctx context.Context, rel *model.Relationship) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Relationship, error)
	Find(ctx context.Context, followerID, followedID uuid.UUID) (*model.Relationship, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountFollowing(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountFollowers(ctx context.Context, accountID uuid.UUID) (int64, error)
	ListFollowing(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]model.Account, error)
	ListFollowers(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]model.Account, error)
}

type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository creates a new relationship repository.
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

// Create inserts a follow edge. The unique pair index rejects duplicates.
func (r *relationshipRepository) Create(ctx context.Context, rel *model.Relationship) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

// FindByID finds a follow edge by ID.
func (r *relationshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Relationship, error) {
	var rel model.Relationship
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rel).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

// Find looks up the edge follower -> followed.
func (r *relationshipRepository) Find(ctx context.Context, followerID, followedID uuid.UUID) (*model.Relationship, error) {
	var rel model.Relationship
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&rel).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

// Delete removes a follow edge.
func (r *relationshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Relationship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountFollowing returns how many accounts accountID follows.
func (r *relationshipRepository) CountFollowing(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Relationship{}).
		Where("follower_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountFollowers returns how many accounts follow accountID.
func (r *relationshipRepository) CountFollowers(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Relationship{}).
		Where("followed_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListFollowing returns a page of the accounts accountID follows.
func (r *relationshipRepository) ListFollowing(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).
		Select("accounts.*").
		Joins("JOIN relationships ON relationships.followed_id = accounts.id").
		Where("relationships.follower_id = ?", accountID).
		Order("relationships.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListFollowers returns a page of the accounts following accountID.
func (r *relationshipRepository) ListFollowers(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).
		Select("accounts.*").
		Joins("JOIN relationships ON relationships.follower_id = accounts.id").
		Where("relationships.followed_id = ?", accountID).
		Order("relationships.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
