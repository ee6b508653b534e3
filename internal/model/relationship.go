package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Relationship is a directed follow edge: FollowerID follows FollowedID.
// The pair is unique, so an account follows another at most once.
type Relationship struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FollowerID uuid.UUID `json:"follower_id" gorm:"type:char(36);not null;index;uniqueIndex:idx_relationships_pair"`
	FollowedID uuid.UUID `json:"followed_id" gorm:"type:char(36);not null;index;uniqueIndex:idx_relationships_pair"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Relationship) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
