package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment record in the database
type CommentDB struct {
	ID         uuid.UUID `db:"id"`           // Primary key
	BlogPostID uuid.UUID `db:"blog_post_id"` // Commented post
	UserID     uuid.UUID `db:"user_id"`      // Commenting user
	Comment    string    `db:"comment"`      // Comment body
	CreatedAt  time.Time `db:"created_at"`   // Creation timestamp
}
