package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a short text item published by an account.
type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Content   string    `json:"content" gorm:"size:140;not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index:idx_posts_user_created,priority:1"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_posts_user_created,priority:2"`

	// Relations
	User Account `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
