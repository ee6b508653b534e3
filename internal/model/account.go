package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents a person who signed up for the site.
type Account struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string    `json:"name" gorm:"size:50;not null;index"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"` // Always stored lowercase
	PasswordDigest string    `json:"-" gorm:"size:255;not null"`                 // Never expose in JSON
	Admin          bool      `json:"admin" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Posts []Post `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Is reports whether other refers to the same account.
func (a *Account) Is(other *Account) bool {
	return a != nil && other != nil && a.ID == other.ID
}
