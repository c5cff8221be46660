package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"social-api/models"
	"social-api/repositories"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// Middleware resolves bearer tokens to users. The resolved user is the only
// source of truth for who performs a mutation; request bodies are never
// trusted to name an acting user.
type Middleware struct {
	Users  repositories.UserRepository
	Secret []byte
}

func NewMiddleware(users repositories.UserRepository, secret []byte) *Middleware {
	return &Middleware{Users: users, Secret: secret}
}

// RequireAuth rejects the request unless a valid token resolves to an
// existing user, then stores that user in the request context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "Missing token")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			unauthorized(w, "Invalid token")
			return
		}

		userID, err := GetUserIDFromToken(tokenString, m.Secret)
		if err != nil {
			unauthorized(w, "Invalid token")
			return
		}

		user, err := m.Users.FindByID(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Valid token but no matching row. Users are never deleted in
			// practice, still handled rather than assumed away.
			logrus.WithField("userID", userID).Warn("token resolved to missing user")
			unauthorized(w, "User not found")
			return
		}
		if err != nil {
			http.Error(w, `{"error": "Database error"}`, http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil outside an
// authenticated request.
func CurrentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "` + msg + `"}`))
}
