package repositories

import (
	"errors"

	"gorm.io/gorm"

	"social-api/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Duplicate username or email surfaces as
// gorm.ErrDuplicatedKey.
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Counts loads the profile cardinalities with three count queries against
// the posts and follows tables.
func (r *userRepository) Counts(userID uint) (*ProfileCounts, error) {
	var counts ProfileCounts

	if err := r.db.Model(&models.Post{}).Where("author_id = ?", userID).Count(&counts.Posts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&counts.Followers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&counts.Following).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}

// ToggleFollow flips the presence of the (follower, following) edge and
// reports its state after the call. The check-then-flip is not atomic: two
// concurrent calls may both see the edge absent and both insert. The
// composite primary key on follows rejects the second insert; that
// duplicate-key error is swallowed and the edge reported present.
func (r *userRepository) ToggleFollow(followerID, followingID uint) (bool, error) {
	var edge models.Follow
	err := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).First(&edge).Error

	switch {
	case err == nil:
		err = r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{}).Error
		if err != nil {
			return false, err
		}
		return false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		edge = models.Follow{FollowerID: followerID, FollowingID: followingID}
		if err := r.db.Create(&edge).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a race with a concurrent insert; the edge exists.
				return true, nil
			}
			return false, err
		}
		return true, nil

	default:
		return false, err
	}
}
