package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"social-api/auth"
	"social-api/dto"
	"social-api/monitoring"
	"social-api/repositories"
)

// UserHandler handles profile and follow-graph endpoints
type UserHandler struct {
	Users repositories.UserRepository
	Posts repositories.PostRepository
}

func NewUserHandler(users repositories.UserRepository, posts repositories.PostRepository) *UserHandler {
	return &UserHandler{Users: users, Posts: posts}
}

// GetProfile returns a public profile with posts/followers/following counts.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	counts, err := h.Users.Counts(user.ID)
	if err != nil {
		logrus.Errorf("failed to count profile relations: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, dto.NewProfileView(user, counts))
}

// Follow toggles the authenticated user's follow edge towards the target
// and reports the edge's state after the call.
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	currentUser := auth.CurrentUser(r)

	targetID, ok := pathID(w, r)
	if !ok {
		return
	}

	if currentUser.ID == targetID {
		writeError(w, http.StatusBadRequest, "Can't follow yourself")
		return
	}

	_, err := h.Users.FindByID(targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	following, err := h.Users.ToggleFollow(currentUser.ID, targetID)
	if err != nil {
		logrus.Errorf("failed to toggle follow: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	monitoring.FollowToggles.WithLabelValues(strconv.FormatBool(following)).Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"following": following,
	})
}

// ListPosts returns the target user's posts in the same view-model shape as
// the global feed. An unknown user simply yields an empty list.
func (h *UserHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	posts, err := h.Posts.FeedByAuthor(userID)
	if err != nil {
		logrus.Errorf("failed to fetch posts by author: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, dto.NewPostViews(posts))
}

// pathID parses the {id} path variable shared by the user and post routes.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
