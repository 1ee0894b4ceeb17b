// ripple/controllers/post.go
package controllers

import (
	"context"
	"strings"

	"ripple/ripple/sources/psql/dao"
	"ripple/ripple/sources/psql/models"
	"ripple/ripple/types"
	"ripple/ripple/utils/apierr"
	"ripple/ripple/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const postImageFolder = "posts"

type PostController struct {
	postDAO *dao.PostDAO
	userDAO *dao.UserDAO
	media   MediaStore
}

func NewPostController(postDAO *dao.PostDAO, userDAO *dao.UserDAO, media MediaStore) *PostController {
	return &PostController{
		postDAO: postDAO,
		userDAO: userDAO,
		media:   media,
	}
}

// CreatePost uploads the image, persists the post and returns the refreshed
// feed, newest first.
func (c *PostController) CreatePost(ctx context.Context, userID uuid.UUID, description string, image types.ImageUpload) ([]models.Post, error) {
	user, err := c.userDAO.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("User does not exists!")
	}

	uploaded, err := c.media.UploadImage(ctx, image, postImageFolder)
	if err != nil {
		return nil, apierr.Upstream("Image upload failed!")
	}

	post := &models.Post{
		PostedByID: userID,
		PostImage:  uploaded,
	}
	if desc := strings.TrimSpace(description); desc != "" {
		post.Description = &desc
	}
	if err := c.postDAO.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return c.postDAO.ListPosts(ctx)
}

// UpdatePost swaps the post image (upload first, delete the old object last)
// and overwrites the description.
func (c *PostController) UpdatePost(ctx context.Context, postID uuid.UUID, description string, image types.ImageUpload) error {
	post, err := c.postDAO.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apierr.NotFound("Post not found!")
	}

	uploaded, err := c.media.UploadImage(ctx, image, postImageFolder)
	if err != nil {
		return apierr.Upstream("Failed to update post")
	}
	var desc *string
	if d := strings.TrimSpace(description); d != "" {
		desc = &d
	}
	if err := c.postDAO.UpdatePostImage(ctx, postID, uploaded, desc); err != nil {
		return err
	}
	if old := post.PostImage.FileID; old != "" {
		if err := c.media.DeleteImage(ctx, old); err != nil && logging.AppLogger != nil {
			logging.AppLogger.Warn("orphaned post image on host",
				zap.String("file_id", old), zap.Error(err))
		}
	}
	return nil
}

// Feed returns every post, newest first, with authors and engagement
// resolved.
func (c *PostController) Feed(ctx context.Context) ([]models.Post, error) {
	return c.postDAO.ListPosts(ctx)
}

// UserFeed returns one user's posts, newest first, plus their public
// profile.
func (c *PostController) UserFeed(ctx context.Context, username string) (*models.User, []models.Post, error) {
	user, err := c.userDAO.GetProfile(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apierr.NotFound("User not found!")
	}
	posts, err := c.postDAO.ListPostsByUser(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, posts, nil
}

// ToggleLike flips userID's like on the post and returns the post with the
// like set expanded. liked reports the direction of the flip.
func (c *PostController) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*models.Post, bool, error) {
	post, err := c.postDAO.GetPostByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	if post == nil {
		return nil, false, apierr.NotFound("Post not found!")
	}
	liked, err := c.postDAO.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, false, err
	}
	updated, err := c.postDAO.GetPostWithEngagement(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	return updated, liked, nil
}

// AddComment appends a comment and returns the post with comment authors
// expanded.
func (c *PostController) AddComment(ctx context.Context, postID, userID uuid.UUID, text string) (*models.Post, error) {
	post, err := c.postDAO.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apierr.NotFound("Post not found!")
	}
	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := c.postDAO.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return c.postDAO.GetPostWithEngagement(ctx, postID)
}
