package models

import "time"

// User represents a registered account. Identity fields (username, email)
// are immutable after registration; bio and location may change.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Bio          string    `gorm:"type:text" json:"bio"`
	Location     string    `gorm:"size:255" json:"location"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
