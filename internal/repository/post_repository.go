package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sampleapp/internal/model"
)

// PostRepository defines micropost persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Post, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Feed(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Post, error)
	CountFeed(ctx context.Context, userID uuid.UUID) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new micropost repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new micropost.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// FindByID finds a micropost by ID.
func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a micropost.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUser returns a page of a user's microposts, newest first.
func (r *postRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByUser returns how many microposts a user has.
func (r *postRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Feed returns a page of the user's own microposts and those of the
// accounts they follow, newest first, with authors preloaded.
func (r *postRepository) Feed(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	if err := r.feedScope(ctx, userID).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountFeed returns the size of the user's feed.
func (r *postRepository) CountFeed(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.feedScope(ctx, userID).Model(&model.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postRepository) feedScope(ctx context.Context, userID uuid.UUID) *gorm.DB {
	followed := r.db.WithContext(ctx).Model(&model.Relationship{}).
		Select("followed_id").
		Where("follower_id = ?", userID)
	return r.db.WithContext(ctx).
		Where("user_id IN (?) OR user_id = ?", followed, userID)
}
