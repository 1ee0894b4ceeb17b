package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is a stored reference to an object on the external image host.
// FileID is the host-side object id used for deletion.
type Image struct {
	URL    string `json:"url" gorm:"type:varchar(512)"`
	FileID string `json:"fileId" gorm:"type:varchar(255)"`
}

type User struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string       `json:"name" gorm:"type:varchar(255);not null"`
	Username     string       `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string       `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string       `json:"-" gorm:"type:varchar(255);not null"`
	ProfileImage Image        `json:"profileImage" gorm:"embedded;embeddedPrefix:profile_image_"`
	Location     string       `json:"location" gorm:"type:varchar(255);not null"`
	Occupation   string       `json:"occupation" gorm:"type:varchar(255);default:'Student'"`
	Friends      []*User      `json:"-" gorm:"many2many:user_friends"`
	SocialLinks  []SocialLink `json:"socialLinks"`
	CreatedAt    time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`

	// FriendIDs is filled by the DAO from the user_friends join table so
	// profile responses can carry the raw friend set without loading users.
	FriendIDs []uuid.UUID `json:"friends" gorm:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is the projection exposed when a user appears inside someone
// else's data (friend lists, like sets, comment authors). Password and the
// friend set are excluded.
type PublicUser struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	ProfileImage Image     `json:"profileImage"`
	Location     string    `json:"location"`
	Occupation   string    `json:"occupation"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		ProfileImage: u.ProfileImage,
		Location:     u.Location,
		Occupation:   u.Occupation,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
