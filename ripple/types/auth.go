// ripple/types/auth.go
package types

type SignUpRequest struct {
	Name       string `json:"name" validate:"required,min=3"`
	Username   string `json:"username" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email_format"`
	Password   string `json:"password" validate:"required,min=6"`
	Location   string `json:"location" validate:"required"`
	Occupation string `json:"occupation"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required,min=6"`
}

type ChangePasswordRequest struct {
	Email       string `json:"email" validate:"required,email_format"`
	OldPassword string `json:"oldPassword" validate:"required,min=6"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
