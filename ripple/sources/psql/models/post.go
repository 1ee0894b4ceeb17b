package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PostedByID  uuid.UUID `json:"postedById" gorm:"type:uuid;not null;index"`
	PostedBy    *User     `json:"postedBy,omitempty" gorm:"foreignKey:PostedByID"`
	Description *string   `json:"description" gorm:"type:text"`
	PostImage   Image     `json:"postImage" gorm:"embedded;embeddedPrefix:post_image_"`
	Likes       []User    `json:"-" gorm:"many2many:post_likes"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// LikedBy is the like set expanded to public projections, filled by the
	// DAO when the post is returned to a client.
	LikedBy []PublicUser `json:"likes" gorm:"-"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Comment rows are append-only; there is no update or delete path.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `json:"postId" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
