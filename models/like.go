package models

import "time"

// Like is a (user, post) edge. Set semantics: the composite primary key
// rejects a second insert for the same pair at the store level.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name used by GORM
func (Like) TableName() string {
	return "likes"
}
