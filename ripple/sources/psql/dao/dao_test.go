package dao

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ripple/ripple/sources/psql"
	"ripple/ripple/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- Helpers ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, userDAO *UserDAO, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:       name,
		Username:   name,
		Email:      fmt.Sprintf("%s@example.com", name),
		Password:   "hashed-password",
		Location:   "Dhaka",
		Occupation: "Student",
	}
	if err := userDAO.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

func createTestPost(t *testing.T, postDAO *PostDAO, author uuid.UUID) *models.Post {
	t.Helper()
	post := &models.Post{
		PostedByID: author,
		PostImage:  models.Image{URL: "http://media.local/posts/p1.png", FileID: "posts/p1.png"},
	}
	if err := postDAO.CreatePost(context.Background(), post); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return post
}

// --- Friend toggle ---

func TestToggleFriendIsSymmetric(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	bob := createTestUser(t, userDAO, "bob")

	added, err := userDAO.ToggleFriend(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !added {
		t.Errorf("expected first toggle to add the friendship")
	}

	aliceFriends, err := userDAO.ListFriends(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list friends failed: %v", err)
	}
	bobFriends, err := userDAO.ListFriends(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list friends failed: %v", err)
	}
	if len(aliceFriends) != 1 || aliceFriends[0].ID != bob.ID {
		t.Errorf("expected alice's friends to be [bob], got %v", aliceFriends)
	}
	if len(bobFriends) != 1 || bobFriends[0].ID != alice.ID {
		t.Errorf("expected bob's friends to be [alice], got %v", bobFriends)
	}
}

func TestToggleFriendTwiceRestoresOriginalState(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	bob := createTestUser(t, userDAO, "bob")

	if _, err := userDAO.ToggleFriend(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	added, err := userDAO.ToggleFriend(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if added {
		t.Errorf("expected second toggle to remove the friendship")
	}

	aliceFriends, _ := userDAO.ListFriends(ctx, alice.ID)
	bobFriends, _ := userDAO.ListFriends(ctx, bob.ID)
	if len(aliceFriends) != 0 || len(bobFriends) != 0 {
		t.Errorf("expected both friend sets empty, got %d and %d", len(aliceFriends), len(bobFriends))
	}
}

func TestToggleFriendRemovalWorksFromEitherSide(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	bob := createTestUser(t, userDAO, "bob")

	if _, err := userDAO.ToggleFriend(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	// Bob removes Alice; both directions must go.
	if _, err := userDAO.ToggleFriend(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	aliceFriends, _ := userDAO.ListFriends(ctx, alice.ID)
	bobFriends, _ := userDAO.ListFriends(ctx, bob.ID)
	if len(aliceFriends) != 0 || len(bobFriends) != 0 {
		t.Errorf("expected both friend sets empty, got %d and %d", len(aliceFriends), len(bobFriends))
	}
}

func TestGetProfileFillsFriendIDs(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	bob := createTestUser(t, userDAO, "bob")
	if _, err := userDAO.ToggleFriend(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	profile, err := userDAO.GetProfile(ctx, "alice")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if len(profile.FriendIDs) != 1 || profile.FriendIDs[0] != bob.ID {
		t.Errorf("expected friend ids [%s], got %v", bob.ID, profile.FriendIDs)
	}
}

// --- Like toggle ---

func TestToggleLikeFlipsMembership(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	postDAO := NewPostDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	post := createTestPost(t, postDAO, alice.ID)

	liked, err := postDAO.ToggleLike(ctx, post.ID, alice.ID)
	if err != nil {
		t.Fatalf("toggle like failed: %v", err)
	}
	if !liked {
		t.Errorf("expected first toggle to like")
	}
	got, err := postDAO.GetPostWithEngagement(ctx, post.ID)
	if err != nil {
		t.Fatalf("get post failed: %v", err)
	}
	if len(got.LikedBy) != 1 || got.LikedBy[0].ID != alice.ID {
		t.Errorf("expected like set [alice], got %v", got.LikedBy)
	}

	liked, err = postDAO.ToggleLike(ctx, post.ID, alice.ID)
	if err != nil {
		t.Fatalf("toggle like failed: %v", err)
	}
	if liked {
		t.Errorf("expected second toggle to unlike")
	}
	got, _ = postDAO.GetPostWithEngagement(ctx, post.ID)
	if len(got.LikedBy) != 0 {
		t.Errorf("expected empty like set, got %v", got.LikedBy)
	}
}

func TestToggleLikeCountGrowsByOne(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	postDAO := NewPostDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	bob := createTestUser(t, userDAO, "bob")
	post := createTestPost(t, postDAO, alice.ID)

	if _, err := postDAO.ToggleLike(ctx, post.ID, alice.ID); err != nil {
		t.Fatalf("toggle like failed: %v", err)
	}
	before, _ := postDAO.GetPostWithEngagement(ctx, post.ID)
	if _, err := postDAO.ToggleLike(ctx, post.ID, bob.ID); err != nil {
		t.Fatalf("toggle like failed: %v", err)
	}
	after, _ := postDAO.GetPostWithEngagement(ctx, post.ID)
	if len(after.LikedBy) != len(before.LikedBy)+1 {
		t.Errorf("expected like count %d, got %d", len(before.LikedBy)+1, len(after.LikedBy))
	}
}

// --- Comments ---

func TestCommentsPreserveInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	postDAO := NewPostDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	post := createTestPost(t, postDAO, alice.ID)

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		comment := &models.Comment{PostID: post.ID, UserID: alice.ID, Text: text}
		if err := postDAO.AddComment(ctx, comment); err != nil {
			t.Fatalf("add comment failed: %v", err)
		}
	}

	got, err := postDAO.GetPostWithEngagement(ctx, post.ID)
	if err != nil {
		t.Fatalf("get post failed: %v", err)
	}
	if len(got.Comments) != len(texts) {
		t.Fatalf("expected %d comments, got %d", len(texts), len(got.Comments))
	}
	for i, text := range texts {
		if got.Comments[i].Text != text {
			t.Errorf("comment %d: expected %q, got %q", i, text, got.Comments[i].Text)
		}
		if got.Comments[i].User == nil || got.Comments[i].User.ID != alice.ID {
			t.Errorf("comment %d: expected resolved author", i)
		}
	}
}

// --- Feed ordering ---

func TestListPostsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	postDAO := NewPostDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	first := createTestPost(t, postDAO, alice.ID)
	second := createTestPost(t, postDAO, alice.ID)
	// Force distinct timestamps; sqlite stores what gorm sets.
	db.Model(&models.Post{}).Where("id = ?", second.ID).
		Update("created_at", first.CreatedAt.Add(time.Second))

	posts, err := postDAO.ListPosts(ctx)
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != second.ID {
		t.Errorf("expected newest post first")
	}
	if posts[0].PostedBy == nil || posts[0].PostedBy.ID != alice.ID {
		t.Errorf("expected resolved author on feed posts")
	}
}

// --- Social links ---

func TestAddSocialLinkEnforcesLimitAndUniqueness(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	linkDAO := NewSocialLinkDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")

	for _, platform := range []string{"twitter", "github", "linkedin"} {
		if err := linkDAO.AddLink(ctx, alice.ID, platform, "https://"+platform+".com/alice"); err != nil {
			t.Fatalf("add %s failed: %v", platform, err)
		}
	}
	if err := linkDAO.AddLink(ctx, alice.ID, "mastodon", "https://mastodon.social/@alice"); !errors.Is(err, ErrSocialLinkLimit) {
		t.Errorf("expected ErrSocialLinkLimit for a 4th platform, got %v", err)
	}

	links, err := linkDAO.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(links) != 3 {
		t.Errorf("expected exactly 3 links, got %d", len(links))
	}
	for i, platform := range []string{"twitter", "github", "linkedin"} {
		if links[i].Platform != platform {
			t.Errorf("position %d: expected %s, got %s", i, platform, links[i].Platform)
		}
	}
}

func TestAddSocialLinkRejectsDuplicatePlatform(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	linkDAO := NewSocialLinkDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	if err := linkDAO.AddLink(ctx, alice.ID, "twitter", "https://twitter.com/alice"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := linkDAO.AddLink(ctx, alice.ID, "twitter", "https://twitter.com/alice2"); !errors.Is(err, ErrSocialLinkExists) {
		t.Errorf("expected ErrSocialLinkExists, got %v", err)
	}
}

func TestUpdateSocialLink(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	linkDAO := NewSocialLinkDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	if err := linkDAO.AddLink(ctx, alice.ID, "twitter", "https://twitter.com/alice"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := linkDAO.UpdateLink(ctx, alice.ID, "twitter", "https://twitter.com/alice_new"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	links, _ := linkDAO.ListByUser(ctx, alice.ID)
	if links[0].Link != "https://twitter.com/alice_new" {
		t.Errorf("expected updated link, got %s", links[0].Link)
	}

	// Empty link after trimming leaves the entry untouched but succeeds.
	if err := linkDAO.UpdateLink(ctx, alice.ID, "twitter", "   "); err != nil {
		t.Fatalf("update with blank link failed: %v", err)
	}
	links, _ = linkDAO.ListByUser(ctx, alice.ID)
	if links[0].Link != "https://twitter.com/alice_new" {
		t.Errorf("expected link unchanged, got %s", links[0].Link)
	}

	if err := linkDAO.UpdateLink(ctx, alice.ID, "github", "https://github.com/alice"); !errors.Is(err, ErrPlatformNotFound) {
		t.Errorf("expected ErrPlatformNotFound, got %v", err)
	}
}

func TestDeleteSocialLinkIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	linkDAO := NewSocialLinkDAO(db)
	ctx := context.Background()

	alice := createTestUser(t, userDAO, "alice")
	if err := linkDAO.AddLink(ctx, alice.ID, "twitter", "https://twitter.com/alice"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := linkDAO.DeleteLink(ctx, alice.ID, "twitter"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	// Deleting again must still succeed.
	if err := linkDAO.DeleteLink(ctx, alice.ID, "twitter"); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
	links, _ := linkDAO.ListByUser(ctx, alice.ID)
	if len(links) != 0 {
		t.Errorf("expected no links, got %d", len(links))
	}
}

// --- Uniqueness at the store level ---

func TestCreateUserDuplicateEmailFails(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	ctx := context.Background()

	createTestUser(t, userDAO, "alice")
	dup := &models.User{
		Name:     "Alice Again",
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "hashed-password",
		Location: "Dhaka",
	}
	if err := userDAO.CreateUser(ctx, dup); err == nil {
		t.Errorf("expected duplicate email insert to fail")
	}
}
