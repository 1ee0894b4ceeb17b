// ripple/routes/auth.go
package routes

import (
	"net/http"

	"ripple/ripple/config"
	"ripple/ripple/controllers"
	"ripple/ripple/middlewares"
	"ripple/ripple/types"
	"ripple/ripple/utils/apierr"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func AuthRoutes(ctrl *controllers.AuthController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	// sign up (multipart: fields + image)
	r.Post("/signup", handleJSON(func(r *http.Request) (any, int, error) {
		image, err := formImage(r)
		if err != nil {
			return nil, 0, err
		}
		req := types.SignUpRequest{
			Name:       r.FormValue("name"),
			Username:   r.FormValue("username"),
			Email:      r.FormValue("email"),
			Password:   r.FormValue("password"),
			Location:   r.FormValue("location"),
			Occupation: r.FormValue("occupation"),
		}
		if _, err := ctrl.SignUp(r.Context(), req, image); err != nil {
			return nil, 0, err
		}
		return map[string]any{
			"success": true,
			"message": "User registered successfully!",
		}, http.StatusCreated, nil
	}))

	// sign in
	r.Post("/signin", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.SignInRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		token, user, err := ctrl.SignIn(r.Context(), req)
		if err != nil {
			return nil, 0, err
		}
		return map[string]any{
			"success": true,
			"message": "Logged in success",
			"token":   token,
			"user":    user,
		}, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Patch("/change-password", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.ChangePasswordRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			if err := ctrl.ChangePassword(r.Context(), req); err != nil {
				return nil, 0, err
			}
			return map[string]any{
				"success": true,
				"message": "Password changed successfully!",
			}, http.StatusOK, nil
		}))

		gr.Patch("/change-profile", handleJSON(func(r *http.Request) (any, int, error) {
			image, err := formImage(r)
			if err != nil {
				return nil, 0, err
			}
			userID, err := uuid.Parse(r.FormValue("userId"))
			if err != nil {
				return nil, 0, apierr.BadRequest("userId is required!")
			}
			if err := ctrl.ChangeProfileImage(r.Context(), userID, image); err != nil {
				return nil, 0, err
			}
			return map[string]any{
				"success": true,
				"message": "Profile picture updated!",
			}, http.StatusOK, nil
		}))
	})

	return r
}
