package repositories

import (
	"errors"

	"gorm.io/gorm"

	"social-api/models"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// feedQuery preloads the whole view tree in a fixed number of batched
// queries (one per association, keyed by the post id set), regardless of
// how many posts come back.
func (r *postRepository) feedQuery() *gorm.DB {
	return r.db.
		Preload("Author").
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Likes.User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.Author").
		Order("created_at DESC, id ASC")
}

func (r *postRepository) Feed() ([]models.Post, error) {
	var posts []models.Post
	if err := r.feedQuery().Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) FeedByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.feedQuery().Where("author_id = ?", authorID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ToggleLike mirrors ToggleFollow: check-then-flip with the composite
// primary key on likes as the race backstop.
func (r *postRepository) ToggleLike(userID, postID uint) (bool, error) {
	var edge models.Like
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&edge).Error

	switch {
	case err == nil:
		err = r.db.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{}).Error
		if err != nil {
			return false, err
		}
		return false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		edge = models.Like{UserID: userID, PostID: postID}
		if err := r.db.Create(&edge).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return true, nil
			}
			return false, err
		}
		return true, nil

	default:
		return false, err
	}
}
