package templates

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/JonMunkholm/bookshelf/internal/core"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestBookList_EscapesUserContent(t *testing.T) {
	books := []core.Book{{
		ID:       "id-1",
		Name:     `<script>alert("x")</script>`,
		Author:   "O'Brien & Sons",
		Language: "en",
		Pages:    12,
		AddedAt:  time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC),
	}}

	out := render(t, BookList(books))

	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "O&#39;Brien &amp; Sons")
	assert.Contains(t, out, `hx-delete="/books/delete/id-1"`)
	assert.Contains(t, out, `href="/books/edit/id-1"`)
	assert.Contains(t, out, "2024-01-02 03:04 UTC")
}

func TestBookList_Empty(t *testing.T) {
	out := render(t, BookList(nil))
	assert.Contains(t, out, "No books yet.")
	assert.NotContains(t, out, "<table")
}

func TestBookForm_Create(t *testing.T) {
	out := render(t, BookForm(FormParams{Title: "Add book"}))

	assert.Contains(t, out, `hx-post="/books/new"`)
	assert.NotContains(t, out, "hx-put")
	assert.Contains(t, out, `minlength="3" maxlength="100"`)
	assert.NotContains(t, out, "alert-danger")
}

func TestBookForm_EditWithError(t *testing.T) {
	out := render(t, BookForm(FormParams{
		Title:        "Edit book",
		BookID:       "id-1",
		Values:       core.BookRequest{Name: "Du", Author: "Herbert", Language: "en"},
		Pages:        "412",
		Alert:        &Alert{Message: "Name must be at least 3 characters", Code: "VAL001"},
		InvalidField: "name",
	}))

	assert.Contains(t, out, `hx-put="/books/edit/id-1"`)
	assert.Contains(t, out, `value="Du"`)
	assert.Contains(t, out, `value="412"`)
	assert.Contains(t, out, "Name must be at least 3 characters")
	assert.Contains(t, out, "VAL001")
	assert.Contains(t, out, `form-control is-invalid" type="text" id="book-name"`)
}

func TestPage_WrapsBody(t *testing.T) {
	out := render(t, Page("Books", Home()))

	assert.Contains(t, out, "<title>Books · Bookshelf</title>")
	assert.Contains(t, out, `<div id="alerts"></div>`)
	assert.Contains(t, out, "Welcome to Bookshelf")
	assert.Contains(t, out, `src="/static/app.js"`)
}

func TestErrorPage(t *testing.T) {
	out := render(t, ErrorPage(404, "Page not found", "Check the address", "HTTP404"))

	assert.Contains(t, out, "404")
	assert.Contains(t, out, "Page not found")
	assert.Contains(t, out, "HTTP404")
}

func TestErrorAlert(t *testing.T) {
	out := render(t, ErrorAlert("Book not found", "", "BOOK001"))

	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "BOOK001")
}
