package core

import "time"

// Book is a persisted catalog entry.
// ID and AddedAt are assigned once at creation and never change afterwards.
type Book struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Author   string    `json:"author"`
	Language string    `json:"language"`
	Pages    int32     `json:"pages"`
	AddedAt  time.Time `json:"added_at"`
}

// BookRequest is the inbound payload used to create or patch a Book.
// It never carries an id or a creation timestamp.
type BookRequest struct {
	Name     string `form:"name" json:"name" validate:"min=3,max=100"`
	Author   string `form:"author" json:"author"`
	Language string `form:"language" json:"language"`
	Pages    int32  `form:"pages" json:"pages"`
}

// NewBook builds a Book from a request with a server-assigned id and timestamp.
func NewBook(req BookRequest, id string, addedAt time.Time) Book {
	return Book{
		ID:       id,
		Name:     req.Name,
		Author:   req.Author,
		Language: req.Language,
		Pages:    req.Pages,
		AddedAt:  addedAt,
	}
}

// Request returns the mutable fields of b, used to prefill the edit form.
func (b Book) Request() BookRequest {
	return BookRequest{
		Name:     b.Name,
		Author:   b.Author,
		Language: b.Language,
		Pages:    b.Pages,
	}
}

// Apply returns a copy of b with the mutable fields replaced by req.
func (b Book) Apply(req BookRequest) Book {
	b.Name = req.Name
	b.Author = req.Author
	b.Language = req.Language
	b.Pages = req.Pages
	return b
}
