// ripple/types/user.go
package types

type ToggleFriendRequest struct {
	FriendID string `json:"friendId" validate:"required"`
}

type SocialLinkRequest struct {
	Platform string `json:"platform" validate:"required"`
	Link     string `json:"link"`
}
