package models

import "time"

// User is an identity record resolved from a trusted (username, email) pair.
// Uniqueness of the pair is enforced by lookup-before-insert, not by a
// storage constraint.
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:text;not null;index:idx_users_identity" json:"username"`
	Email     string    `gorm:"column:email;type:text;not null;index:idx_users_identity" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }
