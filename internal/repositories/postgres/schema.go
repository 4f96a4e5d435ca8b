package postgres

import (
	"gemchat-backend/internal/models"

	"gorm.io/gorm"
)

// EnsureSchema creates the users, conversations and questions tables if they
// are absent and applies additive column migrations to pre-existing tables.
// It inspects live column metadata before altering, never drops anything, and
// is safe to call on every process start.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Conversation{}); err != nil {
		return err
	}

	m := db.Migrator()
	if !m.HasTable(&models.Question{}) {
		return db.AutoMigrate(&models.Question{})
	}

	// A questions table written before threading existed has no
	// conversation_id. Add it nullable; the legacy migration fills it in.
	if !m.HasColumn(&models.Question{}, "conversation_id") {
		if err := m.AddColumn(&models.Question{}, "ConversationID"); err != nil {
			return err
		}
	}
	return nil
}
