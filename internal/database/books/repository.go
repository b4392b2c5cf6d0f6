// Package books provides database operations for catalog books.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
package books

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog/internal/entities"
)

// UpdateFields holds the full set of editable book fields for the
// single-statement edit operation.
type UpdateFields struct {
	Title       string
	Author      string
	ISBN        string
	Description string
	Notes       string
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBooks retrieves all books ordered by ID ascending, the catalog's
// default listing order regardless of insertion order.
func (r *Repository) ListBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("id ASC").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a single book by its ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook inserts a new book row. Notes are left unset on creation.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

// UpdateBook updates all editable fields of a book in one statement.
// Empty values overwrite: last writer wins, no optimistic check.
func (r *Repository) UpdateBook(id uint, fields UpdateFields) error {
	return r.db.Model(&entities.Book{}).Where("id = ?", id).
		Updates(map[string]any{
			"title":       fields.Title,
			"author":      fields.Author,
			"isbn":        fields.ISBN,
			"description": fields.Description,
			"notes":       fields.Notes,
		}).Error
}

// UpdateNotes updates only the notes field of a book.
func (r *Repository) UpdateNotes(id uint, notes string) error {
	return r.db.Model(&entities.Book{}).Where("id = ?", id).
		Update("notes", notes).Error
}

// DeleteBook removes a book row. Comments referencing the book are left
// in place.
func (r *Repository) DeleteBook(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}
