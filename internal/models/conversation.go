package models

import "time"

const (
	// DefaultConversationTitle is the sentinel placed on a freshly created
	// conversation. The first appended question replaces it exactly once.
	DefaultConversationTitle = "new conversation"

	// LegacyConversationTitle marks the conversation created by the legacy
	// migration to absorb pre-threading question rows.
	LegacyConversationTitle = "previous conversation"
)

// Conversation is a thread container owned by exactly one user. UpdatedAt
// advances on every appended question and drives most-recent-first listings.
type Conversation struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Title     string    `gorm:"column:title;type:text;not null" json:"title"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Conversation) TableName() string { return "conversations" }
