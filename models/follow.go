package models

import "time"

// Follow is a directed edge: follower follows following. The composite
// primary key is the uniqueness constraint that keeps concurrent toggles
// from ever producing a duplicate edge.
type Follow struct {
	FollowerID  uint      `gorm:"primaryKey;autoIncrement:false" json:"followerId"`
	FollowingID uint      `gorm:"primaryKey;autoIncrement:false" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}
