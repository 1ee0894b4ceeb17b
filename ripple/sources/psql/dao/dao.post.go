package dao

import (
	"context"

	"ripple/ripple/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostDAO struct {
	DB *gorm.DB
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{DB: db}
}

func (dao *PostDAO) CreatePost(ctx context.Context, post *models.Post) error {
	return dao.DB.WithContext(ctx).Create(post).Error
}

func (dao *PostDAO) GetPostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := dao.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func withEngagement(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PostedBy").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at asc")
		}).
		Preload("Comments.User")
}

// GetPostWithEngagement returns a post with author, like set and comments
// resolved, ready to serialize.
func (dao *PostDAO) GetPostWithEngagement(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := withEngagement(dao.DB.WithContext(ctx)).First(&post, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	expandLikes(&post)
	return &post, nil
}

// ListPosts returns every post, newest first.
func (dao *PostDAO) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := withEngagement(dao.DB.WithContext(ctx)).
		Order("posts.created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for i := range posts {
		expandLikes(&posts[i])
	}
	return posts, nil
}

func (dao *PostDAO) ListPostsByUser(ctx context.Context, userID uuid.UUID) ([]models.Post, error) {
	var posts []models.Post
	err := withEngagement(dao.DB.WithContext(ctx)).
		Where("posts.posted_by_id = ?", userID).
		Order("posts.created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for i := range posts {
		expandLikes(&posts[i])
	}
	return posts, nil
}

func (dao *PostDAO) UpdatePostImage(ctx context.Context, id uuid.UUID, image models.Image, description *string) error {
	updates := map[string]interface{}{
		"post_image_url":     image.URL,
		"post_image_file_id": image.FileID,
		"description":        description,
	}
	return dao.DB.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ToggleLike flips userID's membership in the post's like set. The flip is a
// single conditional insert with a delete fallback inside one transaction, so
// concurrent identical requests converge instead of racing a read against a
// write.
func (dao *PostDAO) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (liked bool, err error) {
	err = dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO post_likes (post_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			postID, userID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Exec(
				`DELETE FROM post_likes WHERE post_id = ? AND user_id = ?`,
				postID, userID,
			).Error
		}
		liked = true
		return nil
	})
	return liked, err
}

func (dao *PostDAO) AddComment(ctx context.Context, comment *models.Comment) error {
	return dao.DB.WithContext(ctx).Create(comment).Error
}

func expandLikes(post *models.Post) {
	post.LikedBy = make([]models.PublicUser, 0, len(post.Likes))
	for i := range post.Likes {
		post.LikedBy = append(post.LikedBy, post.Likes[i].Public())
	}
	post.Likes = nil
}
