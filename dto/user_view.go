package dto

import (
	"social-api/models"
	"social-api/repositories"
)

// UserView is the account shape returned alongside a fresh token.
type UserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

func NewUserView(user *models.User) UserView {
	return UserView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Location: user.Location,
		Bio:      user.Bio,
	}
}

// ProfileView is the public profile with graph cardinalities.
type ProfileView struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	PostsCount     int64  `json:"postsCount"`
	FollowersCount int64  `json:"followersCount"`
	FollowingCount int64  `json:"followingCount"`
}

func NewProfileView(user *models.User, counts *repositories.ProfileCounts) ProfileView {
	return ProfileView{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		Location:       user.Location,
		PostsCount:     counts.Posts,
		FollowersCount: counts.Followers,
		FollowingCount: counts.Following,
	}
}
