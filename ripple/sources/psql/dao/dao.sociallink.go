package dao

import (
	"context"
	"errors"
	"strings"

	"ripple/ripple/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxSocialLinks = 3

var (
	ErrSocialLinkLimit  = errors.New("social link limit reached")
	ErrSocialLinkExists = errors.New("social link already exists")
	ErrPlatformNotFound = errors.New("platform not found")
)

type SocialLinkDAO struct {
	DB *gorm.DB
}

func NewSocialLinkDAO(db *gorm.DB) *SocialLinkDAO {
	return &SocialLinkDAO{DB: db}
}

func (dao *SocialLinkDAO) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position asc").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// AddLink appends {platform, link} to the user's list. At most three entries
// are kept and platform must not already be present.
func (dao *SocialLinkDAO) AddLink(ctx context.Context, userID uuid.UUID, platform, link string) error {
	platform = strings.TrimSpace(platform)
	link = strings.TrimSpace(link)
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SocialLink{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= maxSocialLinks {
			return ErrSocialLinkLimit
		}
		var existing int64
		if err := tx.Model(&models.SocialLink{}).
			Where("user_id = ? AND platform = ?", userID, platform).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrSocialLinkExists
		}
		// Positions only grow; count can shrink after deletes.
		var maxPos int
		if err := tx.Model(&models.SocialLink{}).
			Where("user_id = ?", userID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPos).Error; err != nil {
			return err
		}
		entry := models.SocialLink{
			UserID:   userID,
			Platform: platform,
			Link:     link,
			Position: maxPos + 1,
		}
		return tx.Create(&entry).Error
	})
}

// UpdateLink replaces the link of the entry matching platform. The new link
// is applied only when non-empty after trimming; an empty link leaves the
// entry untouched but still succeeds.
func (dao *SocialLinkDAO) UpdateLink(ctx context.Context, userID uuid.UUID, platform, link string) error {
	platform = strings.TrimSpace(platform)
	link = strings.TrimSpace(link)
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.SocialLink
		err := tx.Where("user_id = ? AND platform = ?", userID, platform).
			First(&entry).Error
		if err == gorm.ErrRecordNotFound {
			return ErrPlatformNotFound
		}
		if err != nil {
			return err
		}
		if link == "" {
			return nil
		}
		entry.Link = link
		return tx.Save(&entry).Error
	})
}

// DeleteLink removes the entry matching platform. Deleting a platform the
// user never added is not an error.
func (dao *SocialLinkDAO) DeleteLink(ctx context.Context, userID uuid.UUID, platform string) error {
	platform = strings.TrimSpace(platform)
	return dao.DB.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, platform).
		Delete(&models.SocialLink{}).Error
}
