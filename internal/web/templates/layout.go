package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Third-party assets loaded by the layout. The server's Content-Security-Policy
// allows exactly these origins.
const (
	BootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	BootstrapJS  = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"
	HTMXScript   = "https://unpkg.com/htmx.org@1.9.12"
)

// Page wraps body in the full HTML document with navigation and the alert
// area that error fragments are retargeted to.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` · Bookshelf</title>`)
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", BootstrapCSS)
		h.raw(`><script`)
		h.attr("src", HTMXScript)
		h.raw(`></script><script src="/static/app.js" defer></script></head>`)
		h.raw(`<body hx-ext="bs-validation"><nav class="navbar navbar-expand bg-body-tertiary mb-4"><div class="container">`)
		h.raw(`<a class="navbar-brand" href="/">Bookshelf</a><ul class="navbar-nav">`)
		h.raw(`<li class="nav-item"><a class="nav-link" href="/books/list">Books</a></li>`)
		h.raw(`<li class="nav-item"><a class="nav-link" href="/books/new">Add book</a></li>`)
		h.raw(`</ul></div></nav><div class="container"><div id="alerts"></div><main id="content">`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main></div><script`)
		h.attr("src", BootstrapJS)
		h.raw(`></script></body></html>`)
		return h.err
	})
}
