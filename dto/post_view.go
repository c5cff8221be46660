package dto

import (
	"time"

	"social-api/models"
)

// UserRef is the minimal user shape embedded in likers and comment authors.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// AuthorView is the post-author shape, which also carries location.
type AuthorView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Location string `json:"location"`
}

type CommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Author    UserRef   `json:"author"`
}

// PostView is the denormalized feed entry: author, aggregated likers and
// ordered comments in one shape. likesCount is always len(likedBy).
type PostView struct {
	ID         uint          `json:"id"`
	Content    string        `json:"content"`
	CreatedAt  time.Time     `json:"createdAt"`
	Author     AuthorView    `json:"author"`
	LikesCount int           `json:"likesCount"`
	LikedBy    []UserRef     `json:"likedBy"`
	Comments   []CommentView `json:"comments"`
}

// NewPostView shapes a fully-preloaded post into its view-model.
func NewPostView(post *models.Post) PostView {
	likedBy := make([]UserRef, len(post.Likes))
	for i, like := range post.Likes {
		likedBy[i] = UserRef{ID: like.User.ID, Username: like.User.Username}
	}

	comments := make([]CommentView, len(post.Comments))
	for i, comment := range post.Comments {
		comments[i] = NewCommentView(&comment)
	}

	return PostView{
		ID:        post.ID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		Author: AuthorView{
			ID:       post.Author.ID,
			Username: post.Author.Username,
			Location: post.Author.Location,
		},
		LikesCount: len(likedBy),
		LikedBy:    likedBy,
		Comments:   comments,
	}
}

// NewPostViews shapes a feed page; the slice keeps the query's ordering.
func NewPostViews(posts []models.Post) []PostView {
	views := make([]PostView, len(posts))
	for i, post := range posts {
		views[i] = NewPostView(&post)
	}
	return views
}

func NewCommentView(comment *models.Comment) CommentView {
	return CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Author:    UserRef{ID: comment.Author.ID, Username: comment.Author.Username},
	}
}
