package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorAlert renders a dismissible alert for a mapped error.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		writeAlert(h, message, action, code)
		return h.err
	})
}

func writeAlert(h *htmlWriter, message, action, code string) {
	h.raw(`<div class="alert alert-danger alert-dismissible" role="alert"><strong>`)
	h.text(message)
	h.raw(`</strong>`)
	if action != "" {
		h.raw(` `)
		h.text(action)
	}
	if code != "" {
		h.raw(` <span class="badge text-bg-secondary">`)
		h.text(code)
		h.raw(`</span>`)
	}
	h.raw(`<button type="button" class="btn-close" data-bs-dismiss="alert" aria-label="Close"></button></div>`)
}

// ErrorPage is the body of a full-page error response, e.g. an unknown route
// or a book that no longer exists.
func ErrorPage(status int, message, action, code string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="text-center py-5"><h1 class="display-1">`)
		h.text(strconv.Itoa(status))
		h.raw(`</h1><p class="lead">`)
		h.text(message)
		h.raw(`</p>`)
		if action != "" {
			h.raw(`<p class="text-body-secondary">`)
			h.text(action)
			h.raw(`</p>`)
		}
		if code != "" {
			h.raw(`<p><span class="badge text-bg-secondary">`)
			h.text(code)
			h.raw(`</span></p>`)
		}
		h.raw(`<a class="btn btn-primary" href="/">Back to home</a></div>`)
		return h.err
	})
}
