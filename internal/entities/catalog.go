package entities

import (
	"time"
)

// Book is the primary catalog entity. Deletes are hard deletes; there is
// no soft-delete or versioning of catalog rows.
type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"index;size:512" json:"title"`
	Author      string    `gorm:"index;size:256" json:"author"`
	ISBN        string    `gorm:"size:32" json:"isbn,omitempty"`
	CoverURL    string    `gorm:"size:2048" json:"cover_url,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Comment is an unauthenticated free-text annotation tied to a book.
// BookID is a soft reference: no foreign-key constraint is declared, so
// comments survive the deletion of the book they point at.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    uint      `gorm:"index" json:"book_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (Comment) TableName() string {
	return "comments"
}
