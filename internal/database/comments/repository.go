// Package comments provides database operations for public book comments.
package comments

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog/internal/entities"
)

// Repository handles comment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new comments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateComment inserts a comment. The referenced book is not checked
// for existence; the reference is soft by design.
func (r *Repository) CreateComment(comment *entities.Comment) error {
	return r.db.Create(comment).Error
}

// ListCommentsForBook retrieves a book's comments, oldest first.
func (r *Repository) ListCommentsForBook(bookID uint) ([]entities.Comment, error) {
	var list []entities.Comment
	err := r.db.Where("book_id = ?", bookID).Order("id ASC").Find(&list).Error
	return list, err
}
