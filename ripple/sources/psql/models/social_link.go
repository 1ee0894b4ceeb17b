package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLink is one entry in a user's ordered social-link list. Platform is
// unique per user and a user holds at most three entries; both rules are
// enforced by the DAO, the unique index backs the first one up.
type SocialLink struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_social_links_user_platform"`
	Platform  string    `json:"platform" gorm:"type:varchar(64);not null;uniqueIndex:idx_social_links_user_platform"`
	Link      string    `json:"link" gorm:"type:varchar(512);not null"`
	Position  int       `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (SocialLink) TableName() string {
	return "social_links"
}

func (s *SocialLink) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
