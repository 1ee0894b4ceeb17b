package controllers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ripple/ripple/config"
	"ripple/ripple/sources/psql"
	"ripple/ripple/sources/psql/dao"
	"ripple/ripple/sources/psql/models"
	"ripple/ripple/types"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- Helpers ---

// fakeMedia stands in for the image host and records the operation order.
type fakeMedia struct {
	uploads    int
	ops        []string
	failUpload bool
}

func (f *fakeMedia) UploadImage(ctx context.Context, file types.ImageUpload, folder string) (models.Image, error) {
	if f.failUpload {
		return models.Image{}, errors.New("image host unreachable")
	}
	f.uploads++
	key := fmt.Sprintf("%s/file-%d", folder, f.uploads)
	f.ops = append(f.ops, "upload:"+key)
	return models.Image{URL: "http://media.local/" + key, FileID: key}, nil
}

func (f *fakeMedia) DeleteImage(ctx context.Context, fileID string) error {
	f.ops = append(f.ops, "delete:"+fileID)
	return nil
}

type testEnv struct {
	db    *gorm.DB
	media *fakeMedia
	auth  *AuthController
	users *UserController
	posts *PostController
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	cfg := config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	media := &fakeMedia{}
	userDAO := dao.NewUserDAO(db)
	postDAO := dao.NewPostDAO(db)
	linkDAO := dao.NewSocialLinkDAO(db)
	return &testEnv{
		db:    db,
		media: media,
		auth:  NewAuthController(userDAO, media, cfg),
		users: NewUserController(userDAO, linkDAO),
		posts: NewPostController(postDAO, userDAO, media),
	}
}

func testImage(name string) types.ImageUpload {
	return types.ImageUpload{
		Filename:    name,
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}
}

func signUpTestUser(t *testing.T, env *testEnv, name string) *models.User {
	t.Helper()
	user, err := env.auth.SignUp(context.Background(), types.SignUpRequest{
		Name:     name + " Example",
		Username: name,
		Email:    name + "@example.com",
		Password: "secret123",
		Location: "Dhaka",
	}, testImage(name+".png"))
	if err != nil {
		t.Fatalf("sign up %s failed: %v", name, err)
	}
	return user
}
