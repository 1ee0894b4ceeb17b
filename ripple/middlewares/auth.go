// ripple/middlewares/auth.go
package middlewares

import (
	"context"
	"net/http"
	"strings"

	"ripple/ripple/config"
	"ripple/ripple/utils/apierr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// AuthMiddleware verifies the bearer token and puts the caller's user id in
// the request context. Every failure mode is a 401.
func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				apierr.Write(w, apierr.Unauthorized("Not Authenticated"))
				return
			}
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				apierr.Write(w, apierr.Unauthorized("Not Authenticated"))
				return
			}
			tokenStr := parts[1]
			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				apierr.Write(w, apierr.Unauthorized("Access Denied!"))
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				apierr.Write(w, apierr.Unauthorized("Access Denied!"))
				return
			}
			idStr, ok := claims["user_id"].(string)
			if !ok {
				apierr.Write(w, apierr.Unauthorized("Access Denied!"))
				return
			}
			userID, err := uuid.Parse(idStr)
			if err != nil {
				apierr.Write(w, apierr.Unauthorized("Access Denied!"))
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
