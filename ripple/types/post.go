// ripple/types/post.go
package types

type LikePostRequest struct {
	PostID string `json:"postId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

type AddCommentRequest struct {
	PostID  string `json:"postId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}
