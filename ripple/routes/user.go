// ripple/routes/user.go
package routes

import (
	"net/http"

	"ripple/ripple/config"
	"ripple/ripple/controllers"
	"ripple/ripple/middlewares"
	"ripple/ripple/types"
	"ripple/ripple/utils/apierr"
	"ripple/ripple/utils/validate"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func UserRoutes(ctrl *controllers.UserController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/{username}", handleJSON(func(r *http.Request) (any, int, error) {
			username := chi.URLParam(r, "username")
			user, err := ctrl.GetProfile(r.Context(), username)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{"success": true, "user": user}, http.StatusOK, nil
		}))

		gr.Get("/{username}/friends", handleJSON(func(r *http.Request) (any, int, error) {
			username := chi.URLParam(r, "username")
			friends, err := ctrl.GetFriends(r.Context(), username)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{"success": true, "friends": friends}, http.StatusOK, nil
		}))

		// friend toggle
		gr.Patch("/{username}", handleJSON(func(r *http.Request) (any, int, error) {
			username := chi.URLParam(r, "username")
			var req types.ToggleFriendRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			if err := validate.Struct(req); err != nil {
				return nil, 0, apierr.BadRequest(validate.Messages(err))
			}
			friendID, err := uuid.Parse(req.FriendID)
			if err != nil {
				return nil, 0, apierr.BadRequest("friendId is invalid!")
			}
			friends, err := ctrl.ToggleFriend(r.Context(), username, friendID)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{"success": true, "friends": friends}, http.StatusOK, nil
		}))

		gr.Post("/{username}/add-social-link", handleJSON(func(r *http.Request) (any, int, error) {
			username := chi.URLParam(r, "username")
			var req types.SocialLinkRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			if err := validate.Struct(req); err != nil {
				return nil, 0, apierr.BadRequest(validate.Messages(err))
			}
			links, err := ctrl.AddSocialLink(r.Context(), username, req.Platform, req.Link)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{
				"success":     true,
				"message":     "Social link added!",
				"socialLinks": links,
			}, http.StatusOK, nil
		}))

		gr.Patch("/{username}/update-social-link", handleJSON(func(r *http.Request) (any, int, error) {
			username := chi.URLParam(r, "username")
			var req types.SocialLinkRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			if err := validate.Struct(req); err != nil {
				return nil, 0, apierr.BadRequest(validate.Messages(err))
			}
			links, err := ctrl.UpdateSocialLink(r.Context(), username, req.Platform, req.Link)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{
				"success":     true,
				"message":     "Social link updated!",
				"socialLinks": links,
			}, http.StatusOK, nil
		}))

		gr.Patch("/{username}/delete-social-link", handleJSON(func(r *http.Request) (any, int, error) {
			username := chi.URLParam(r, "username")
			var req types.SocialLinkRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			if err := validate.Struct(req); err != nil {
				return nil, 0, apierr.BadRequest(validate.Messages(err))
			}
			links, err := ctrl.DeleteSocialLink(r.Context(), username, req.Platform)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{
				"success":     true,
				"message":     "Social link deleted!",
				"socialLinks": links,
			}, http.StatusOK, nil
		}))
	})

	return r
}
