package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"social-api/auth"
	"social-api/dto"
	"social-api/models"
	"social-api/monitoring"
	"social-api/repositories"
)

// PostHandler handles the feed, post creation, comments and likes
type PostHandler struct {
	Posts repositories.PostRepository
}

func NewPostHandler(posts repositories.PostRepository) *PostHandler {
	return &PostHandler{Posts: posts}
}

// Create stores a new post attributed to the authenticated user.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	currentUser := auth.CurrentUser(r)

	var requestData struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	content := strings.TrimSpace(requestData.Content)
	if content == "" {
		writeError(w, http.StatusBadRequest, "content required")
		return
	}

	post := models.Post{
		Content:  content,
		AuthorID: currentUser.ID,
	}
	if err := h.Posts.Create(&post); err != nil {
		logrus.Errorf("failed to create post: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	post.Author = *currentUser
	monitoring.PostsCreated.Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"post": dto.NewPostView(&post),
	})
}

// List returns the global feed, newest posts first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.Feed()
	if err != nil {
		logrus.Errorf("failed to fetch feed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, dto.NewPostViews(posts))
}

// CreateComment attaches a comment to an existing post and returns it with
// its author embedded.
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	currentUser := auth.CurrentUser(r)

	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.Posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	var requestData struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	content := strings.TrimSpace(requestData.Content)
	if content == "" {
		writeError(w, http.StatusBadRequest, "content required")
		return
	}

	comment := models.Comment{
		Content:  content,
		AuthorID: currentUser.ID,
		PostID:   postID,
	}
	if err := h.Posts.CreateComment(&comment); err != nil {
		logrus.Errorf("failed to create comment: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	comment.Author = *currentUser
	monitoring.CommentsCreated.Inc()
	writeJSON(w, http.StatusOK, dto.NewCommentView(&comment))
}

// ToggleLike flips the authenticated user's like on a post and reports the
// state after the call.
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	currentUser := auth.CurrentUser(r)

	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.Posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	liked, err := h.Posts.ToggleLike(currentUser.ID, postID)
	if err != nil {
		logrus.Errorf("failed to toggle like: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	monitoring.LikeToggles.WithLabelValues(strconv.FormatBool(liked)).Inc()
	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}
