package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxBlogPostTitleLen mirrors the VARCHAR(200) column constraint.
const MaxBlogPostTitleLen = 200

// BlogPostDB represents a blog post record in the database
type BlogPostDB struct {
	ID        uuid.UUID `db:"id"`         // Primary key
	Title     string    `db:"title"`      // Bounded-length title
	Content   string    `db:"content"`    // Unbounded body text
	CreatedAt time.Time `db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `db:"updated_at"` // Last update timestamp
	AuthorID  uuid.UUID `db:"author_id"`  // Owning user
}

// BlogPostUpdate describes a partial blog post update. Nil fields keep their prior value.
type BlogPostUpdate struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether no field is set.
func (u BlogPostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}
