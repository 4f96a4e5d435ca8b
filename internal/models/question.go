package models

import "time"

// Question is one append-only (question, answer) turn. ConversationID is
// nullable: rows written before threading existed carry NULL until the
// legacy migration assigns them to a conversation.
type Question struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID         uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	ConversationID *uint64   `gorm:"column:conversation_id;index" json:"conversation_id"`
	Question       string    `gorm:"column:question;type:text;not null" json:"question"`
	Answer         string    `gorm:"column:answer;type:text;not null" json:"answer"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Question) TableName() string { return "questions" }
