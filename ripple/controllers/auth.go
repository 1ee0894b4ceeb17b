// ripple/controllers/auth.go
package controllers

import (
	"context"
	"strings"
	"time"

	"ripple/ripple/config"
	"ripple/ripple/sources/psql/dao"
	"ripple/ripple/sources/psql/models"
	"ripple/ripple/types"
	"ripple/ripple/utils/apierr"
	"ripple/ripple/utils/logging"
	"ripple/ripple/utils/validate"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const profileImageFolder = "users"

type AuthController struct {
	userDAO *dao.UserDAO
	media   MediaStore
	cfg     config.Config
}

func NewAuthController(userDAO *dao.UserDAO, media MediaStore, cfg config.Config) *AuthController {
	return &AuthController{
		userDAO: userDAO,
		media:   media,
		cfg:     cfg,
	}
}

// SignUp registers a user: validate, reject duplicate email/username, hash
// the password, push the profile image to the image host and persist.
func (c *AuthController) SignUp(ctx context.Context, req types.SignUpRequest, image types.ImageUpload) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apierr.BadRequest(validate.Messages(err))
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.TrimSpace(req.Email)

	existing, err := c.userDAO.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("User already exists with this email!")
	}
	existing, err = c.userDAO.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflict("Username is already taken!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profileImage, err := c.media.UploadImage(ctx, image, profileImageFolder)
	if err != nil {
		return nil, apierr.Upstream("Image upload failed!")
	}

	occupation := strings.TrimSpace(req.Occupation)
	if occupation == "" {
		occupation = "Student"
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Password:     string(hashed),
		ProfileImage: profileImage,
		Location:     req.Location,
		Occupation:   occupation,
	}
	if err := c.userDAO.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn checks credentials and issues a bearer token.
func (c *AuthController) SignIn(ctx context.Context, req types.SignInRequest) (string, *models.User, error) {
	if err := validate.Struct(req); err != nil {
		return "", nil, apierr.BadRequest(validate.Messages(err))
	}

	user, err := c.userDAO.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apierr.Unauthorized("Invalid credentials!")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return "", nil, apierr.Unauthorized("Invalid credentials!")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"exp":     time.Now().Add(c.cfg.JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}

	full, err := c.userDAO.GetProfile(ctx, user.Username)
	if err != nil {
		return "", nil, err
	}
	return signed, full, nil
}

func (c *AuthController) ChangePassword(ctx context.Context, req types.ChangePasswordRequest) error {
	if err := validate.Struct(req); err != nil {
		return apierr.BadRequest(validate.Messages(err))
	}

	user, err := c.userDAO.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return err
	}
	if user == nil {
		return apierr.Unauthorized("Invalid credentials!")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return apierr.Unauthorized("Incorrect old password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return c.userDAO.UpdatePassword(ctx, user.ID, string(hashed))
}

// ChangeProfileImage swaps the stored profile image. The new object is
// uploaded and the record updated before the old object is deleted, so a
// failed upload never leaves the record pointing at a missing image. A failed
// delete only leaks the old object and is logged.
func (c *AuthController) ChangeProfileImage(ctx context.Context, userID uuid.UUID, image types.ImageUpload) error {
	user, err := c.userDAO.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apierr.NotFound("User not found!")
	}

	uploaded, err := c.media.UploadImage(ctx, image, profileImageFolder)
	if err != nil {
		return apierr.Upstream("Failed to update profile image")
	}
	if err := c.userDAO.UpdateProfileImage(ctx, userID, uploaded); err != nil {
		return err
	}
	if old := user.ProfileImage.FileID; old != "" {
		if err := c.media.DeleteImage(ctx, old); err != nil && logging.AppLogger != nil {
			logging.AppLogger.Warn("orphaned profile image on host",
				zap.String("file_id", old), zap.Error(err))
		}
	}
	return nil
}
