// internal/domain/blog.go
package domain

import "time"

// BlogPost represents a single blog entry.
// The JSON field names mirror the documents served by the original API,
// so existing clients keep working against either backend.
type BlogPost struct {
	ID        string    `db:"id" json:"_id"`               // assigned by the store, immutable
	Title     string    `db:"title" json:"title"`          // required, non-empty
	Content   string    `db:"content" json:"content"`      // required, non-empty
	CreatedAt time.Time `db:"created_at" json:"createdAt"` // set once at creation
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"` // refreshed on every update
}

// NewBlogPost creates a new BlogPost instance with both timestamps set to now.
// The ID is left empty; the storage layer assigns it on insert.
func NewBlogPost(title, content string) *BlogPost {
	now := time.Now().UTC()
	return &BlogPost{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
