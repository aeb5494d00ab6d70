package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Home is the welcome page. It is only rendered after the database answered a
// ping.
func Home() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="p-5 mb-4 bg-body-tertiary rounded-3"><h1 class="display-5">Welcome to Bookshelf</h1>`)
		h.raw(`<p class="lead">Keep track of the books you own: add, edit and remove entries.</p>`)
		h.raw(`<p class="text-success small">Database connection OK</p>`)
		h.raw(`<a class="btn btn-primary me-2" href="/books/list">Browse books</a>`)
		h.raw(`<a class="btn btn-outline-secondary" href="/books/new">Add a book</a></div>`)
		return h.err
	})
}
