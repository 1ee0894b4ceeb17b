// ripple/routes/post.go
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

func PostRoutes(ctrl *controllers.PostController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// feed, newest first
		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			posts, err := ctrl.Feed(r.Context())
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{"success": true, "posts": posts}, http.StatusOK, nil
		}))

		gr.Get("/{username}", handleJSON(func(r *http.Request) (any, int, error) {
			username := chi.URLParam(r, "username")
			user, posts, err := ctrl.UserFeed(r.Context(), username)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{
				"success": true,
				"user":    user,
				"posts":   posts,
			}, http.StatusOK, nil
		}))

		gr.Post("/create-post", handleJSON(func(r *http.Request) (any, int, error) {
			image, err := formImage(r)
			if err != nil {
				return nil, 0, err
			}
			userID, err := uuid.Parse(r.FormValue("userId"))
			if err != nil {
				return nil, 0, apierr.BadRequest("userId is required!")
			}
			posts, err := ctrl.CreatePost(r.Context(), userID, r.FormValue("description"), image)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{"success": true, "posts": posts}, http.StatusCreated, nil
		}))

		gr.Patch("/update-post", handleJSON(func(r *http.Request) (any, int, error) {
			image, err := formImage(r)
			if err != nil {
				return nil, 0, err
			}
			postID, err := uuid.Parse(r.FormValue("postId"))
			if err != nil {
				return nil, 0, apierr.BadRequest("postId is required!")
			}
			if err := ctrl.UpdatePost(r.Context(), postID, r.FormValue("description"), image); err != nil {
				return nil, 0, err
			}
			return map[string]any{
				"success": true,
				"message": "Post updated!",
			}, http.StatusOK, nil
		}))

		gr.Patch("/like", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.LikePostRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			if err := validate.Struct(req); err != nil {
				return nil, 0, apierr.BadRequest(validate.Messages(err))
			}
			postID, err := uuid.Parse(req.PostID)
			if err != nil {
				return nil, 0, apierr.BadRequest("postId is invalid!")
			}
			userID, err := uuid.Parse(req.UserID)
			if err != nil {
				return nil, 0, apierr.BadRequest("userId is invalid!")
			}
			post, liked, err := ctrl.ToggleLike(r.Context(), postID, userID)
			if err != nil {
				return nil, 0, err
			}
			message := "Post unliked"
			if liked {
				message = "Post liked"
			}
			return map[string]any{
				"success": true,
				"message": message,
				"post":    post,
			}, http.StatusOK, nil
		}))

		gr.Patch("/add-comment", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.AddCommentRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			if err := validate.Struct(req); err != nil {
				return nil, 0, apierr.BadRequest(validate.Messages(err))
			}
			postID, err := uuid.Parse(req.PostID)
			if err != nil {
				return nil, 0, apierr.BadRequest("postId is invalid!")
			}
			userID, err := uuid.Parse(req.UserID)
			if err != nil {
				return nil, 0, apierr.BadRequest("userId is invalid!")
			}
			post, err := ctrl.AddComment(r.Context(), postID, userID, req.Comment)
			if err != nil {
				return nil, 0, err
			}
			return map[string]any{
				"success": true,
				"message": "Comment added successfully",
				"post":    post,
			}, http.StatusOK, nil
		}))
	})

	return r
}
