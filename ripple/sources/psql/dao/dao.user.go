package dao

import (
	"context"

	"ripple/ripple/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile loads a user with social links and the raw friend id set, the
// shape profile and sign-in responses carry.
func (dao *UserDAO) GetProfile(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).
		Preload("SocialLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("social_links.position asc")
		}).
		Where("username = ?", username).
		First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := dao.fillFriendIDs(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) fillFriendIDs(ctx context.Context, user *models.User) error {
	user.FriendIDs = []uuid.UUID{}
	return dao.DB.WithContext(ctx).
		Table("user_friends").
		Where("user_id = ?", user.ID).
		Pluck("friend_id", &user.FriendIDs).Error
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *models.User) error {
	return dao.DB.WithContext(ctx).Create(user).Error
}

func (dao *UserDAO) UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error {
	return dao.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

func (dao *UserDAO) UpdateProfileImage(ctx context.Context, id uuid.UUID, image models.Image) error {
	return dao.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"profile_image_url":     image.URL,
			"profile_image_file_id": image.FileID,
		}).Error
}

// ToggleFriend flips the friendship between userID and friendID. Both sides
// of the symmetric relation are written in one transaction, and membership is
// decided by the conditional insert itself rather than a prior read, so two
// concurrent toggles cannot leave a one-sided friendship behind.
func (dao *UserDAO) ToggleFriend(ctx context.Context, userID, friendID uuid.UUID) (added bool, err error) {
	err = dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			userID, friendID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already friends: remove both directions.
			if err := tx.Exec(
				`DELETE FROM user_friends WHERE user_id = ? AND friend_id = ?`,
				userID, friendID,
			).Error; err != nil {
				return err
			}
			return tx.Exec(
				`DELETE FROM user_friends WHERE user_id = ? AND friend_id = ?`,
				friendID, userID,
			).Error
		}
		added = true
		return tx.Exec(
			`INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			friendID, userID,
		).Error
	})
	return added, err
}

// ListFriends resolves a user's friend set to public projections.
func (dao *UserDAO) ListFriends(ctx context.Context, userID uuid.UUID) ([]models.PublicUser, error) {
	var users []models.User
	err := dao.DB.WithContext(ctx).
		Joins("JOIN user_friends uf ON uf.friend_id = users.id").
		Where("uf.user_id = ?", userID).
		Order("users.username asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	friends := make([]models.PublicUser, 0, len(users))
	for i := range users {
		friends = append(friends, users[i].Public())
	}
	return friends, nil
}
