// ripple/controllers/user.go
package controllers

import (
	"context"
	"errors"

	"ripple/ripple/sources/psql/dao"
	"ripple/ripple/sources/psql/models"
	"ripple/ripple/utils/apierr"

	"github.com/google/uuid"
)

type UserController struct {
	userDAO *dao.UserDAO
	linkDAO *dao.SocialLinkDAO
}

func NewUserController(userDAO *dao.UserDAO, linkDAO *dao.SocialLinkDAO) *UserController {
	return &UserController{userDAO: userDAO, linkDAO: linkDAO}
}

// GetProfile returns the public profile for username.
func (c *UserController) GetProfile(ctx context.Context, username string) (*models.User, error) {
	user, err := c.userDAO.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("User not found!")
	}
	return user, nil
}

// GetFriends resolves username's friend set to public projections.
func (c *UserController) GetFriends(ctx context.Context, username string) ([]models.PublicUser, error) {
	user, err := c.userDAO.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("User not found!")
	}
	return c.userDAO.ListFriends(ctx, user.ID)
}

// ToggleFriend adds the friendship if absent, removes it if present, and
// returns the requester's resolved friend list. Both users must exist.
func (c *UserController) ToggleFriend(ctx context.Context, username string, friendID uuid.UUID) ([]models.PublicUser, error) {
	user, err := c.userDAO.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("User not found!")
	}
	if user.ID == friendID {
		return nil, apierr.BadRequest("Cannot friend yourself!")
	}
	friend, err := c.userDAO.GetUserByID(ctx, friendID)
	if err != nil {
		return nil, err
	}
	if friend == nil {
		return nil, apierr.NotFound("Friend not found!")
	}
	if _, err := c.userDAO.ToggleFriend(ctx, user.ID, friendID); err != nil {
		return nil, err
	}
	return c.userDAO.ListFriends(ctx, user.ID)
}

// AddSocialLink appends a {platform, link} entry for username.
func (c *UserController) AddSocialLink(ctx context.Context, username, platform, link string) ([]models.SocialLink, error) {
	user, err := c.userDAO.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("User not found!")
	}
	if err := c.linkDAO.AddLink(ctx, user.ID, platform, link); err != nil {
		switch {
		case errors.Is(err, dao.ErrSocialLinkExists):
			return nil, apierr.Conflict("Social link for this platform already exists!")
		case errors.Is(err, dao.ErrSocialLinkLimit):
			return nil, apierr.BadRequest("You can add at most 3 social links!")
		default:
			return nil, err
		}
	}
	return c.linkDAO.ListByUser(ctx, user.ID)
}

// UpdateSocialLink updates the entry matching platform.
func (c *UserController) UpdateSocialLink(ctx context.Context, username, platform, link string) ([]models.SocialLink, error) {
	user, err := c.userDAO.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("User not found!")
	}
	if err := c.linkDAO.UpdateLink(ctx, user.ID, platform, link); err != nil {
		if errors.Is(err, dao.ErrPlatformNotFound) {
			return nil, apierr.NotFound("Platform not found!")
		}
		return nil, err
	}
	return c.linkDAO.ListByUser(ctx, user.ID)
}

// DeleteSocialLink removes the entry matching platform; deleting an absent
// platform still succeeds.
func (c *UserController) DeleteSocialLink(ctx context.Context, username, platform string) ([]models.SocialLink, error) {
	user, err := c.userDAO.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("User not found!")
	}
	if err := c.linkDAO.DeleteLink(ctx, user.ID, platform); err != nil {
		return nil, err
	}
	return c.linkDAO.ListByUser(ctx, user.ID)
}
