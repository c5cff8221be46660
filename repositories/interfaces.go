package repositories

import "social-api/models"

// ProfileCounts aggregates a user's graph cardinalities. Always computed
// from the underlying rows, never read from a denormalized counter.
type ProfileCounts struct {
	Posts     int64
	Followers int64
	Following int64
}

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Counts(userID uint) (*ProfileCounts, error)
	ToggleFollow(followerID, followingID uint) (following bool, err error)
}

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	Feed() ([]models.Post, error)
	FeedByAuthor(authorID uint) ([]models.Post, error)
	CreateComment(comment *models.Comment) error
	ToggleLike(userID, postID uint) (liked bool, err error)
}
