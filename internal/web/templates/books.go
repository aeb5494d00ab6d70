package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/bookshelf/internal/core"
	"github.com/a-h/templ"
)

const dateLayout = "2006-01-02 15:04 MST"

// BookList renders the table of all books.
func BookList(books []core.Book) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="d-flex justify-content-between align-items-center mb-3"><h1 class="h3 mb-0">Books</h1>`)
		h.raw(`<a class="btn btn-primary" href="/books/new">Add book</a></div>`)
		if len(books) == 0 {
			h.raw(`<p class="text-body-secondary" id="no-books">No books yet.</p>`)
			return h.err
		}
		h.raw(`<table class="table table-hover align-middle"><thead><tr>`)
		h.raw(`<th>Name</th><th>Author</th><th>Language</th><th class="text-end">Pages</th><th>Added</th><th></th>`)
		h.raw(`</tr></thead><tbody id="book-rows">`)
		for _, b := range books {
			writeBookRow(h, b)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

func writeBookRow(h *htmlWriter, b core.Book) {
	h.raw(`<tr`)
	h.attr("id", "book-"+b.ID)
	h.raw(`><td>`)
	h.text(b.Name)
	h.raw(`</td><td>`)
	h.text(b.Author)
	h.raw(`</td><td>`)
	h.text(b.Language)
	h.raw(`</td><td class="text-end">`)
	h.text(strconv.FormatInt(int64(b.Pages), 10))
	h.raw(`</td><td>`)
	h.text(b.AddedAt.UTC().Format(dateLayout))
	h.raw(`</td><td class="text-end text-nowrap"><a class="btn btn-sm btn-outline-secondary me-1"`)
	h.attr("href", "/books/edit/"+b.ID)
	h.raw(`>Edit</a><button type="button" class="btn btn-sm btn-outline-danger"`)
	h.attr("hx-delete", "/books/delete/"+b.ID)
	h.attr("hx-confirm", "Delete "+b.Name+"?")
	h.raw(` hx-target="closest tr" hx-swap="outerHTML">Delete</button></td></tr>`)
}

// FormParams describes a book form.
type FormParams struct {
	Title  string
	BookID string // Empty for the creation form
	Values core.BookRequest
	Pages  string // Raw pages value, shown as entered

	// Alert and InvalidField are set when a submission was rejected.
	Alert        *Alert
	InvalidField string
}

// Alert is a mapped error shown inside a form.
type Alert struct {
	Message string
	Action  string
	Code    string
}

// BookForm renders the create or edit form. With BookID set the form submits
// via hx-put to the edit route, otherwise it posts to /books/new.
func BookForm(p FormParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<form id="book-form" class="needs-validation" novalidate hx-target="this" hx-swap="outerHTML"`)
		if p.BookID == "" {
			h.raw(` method="post" action="/books/new" hx-post="/books/new"`)
		} else {
			h.attr("hx-put", "/books/edit/"+p.BookID)
		}
		h.raw(`><h1 class="h3 mb-3">`)
		h.text(p.Title)
		h.raw(`</h1>`)
		if p.Alert != nil {
			writeAlert(h, p.Alert.Message, p.Alert.Action, p.Alert.Code)
		}

		writeInput(h, p, inputSpec{
			name: "name", label: "Name", value: p.Values.Name, typ: "text",
			extra:    ` minlength="3" maxlength="100"`,
			feedback: "Name must be between 3 and 100 characters.",
		})
		writeInput(h, p, inputSpec{
			name: "author", label: "Author", value: p.Values.Author, typ: "text",
			feedback: "Author is required.",
		})
		writeInput(h, p, inputSpec{
			name: "language", label: "Language", value: p.Values.Language, typ: "text",
			feedback: "Language is required.",
		})
		writeInput(h, p, inputSpec{
			name: "pages", label: "Pages", value: p.Pages, typ: "number",
			extra:    ` min="0" step="1"`,
			feedback: "Pages must be a whole number.",
		})

		h.raw(`<button type="submit" class="btn btn-primary">Save</button> `)
		h.raw(`<a class="btn btn-link" href="/books/list">Cancel</a></form>`)
		return h.err
	})
}

type inputSpec struct {
	name, label, value, typ string
	extra                   string // Trusted markup appended to the input tag
	feedback                string
}

func writeInput(h *htmlWriter, p FormParams, in inputSpec) {
	id := "book-" + in.name
	h.raw(`<div class="mb-3"><label class="form-label"`)
	h.attr("for", id)
	h.raw(`>`)
	h.text(in.label)
	h.raw(`</label><input class="form-control`)
	if p.InvalidField == in.name {
		h.raw(` is-invalid`)
	}
	h.raw(`"`)
	h.attr("type", in.typ)
	h.attr("id", id)
	h.attr("name", in.name)
	h.attr("value", in.value)
	h.raw(` required` + in.extra + `><div class="invalid-feedback">`)
	h.text(in.feedback)
	h.raw(`</div></div>`)
}
