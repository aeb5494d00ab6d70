package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/bookshelf/internal/core"
	"github.com/JonMunkholm/bookshelf/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// listPath is where successful writes send the browser.
const listPath = "/books/list"

// handleHome renders the welcome page once the store answers a ping.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if _, err := s.service.Home(r.Context()); err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}
	renderHTML(w, r, http.StatusOK, "Home", templates.Home())
}

// handleListBooks renders every book.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.ListBooks(r.Context())
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	if wantsJSON(r) {
		books := view.Books
		if books == nil {
			books = []core.Book{}
		}
		writeJSON(w, r, http.StatusOK, books)
		return
	}
	renderHTML(w, r, http.StatusOK, "Books", templates.BookList(view.Books))
}

// handleNewBookForm renders an empty creation form.
func (s *Server) handleNewBookForm(w http.ResponseWriter, r *http.Request) {
	s.renderBookForm(w, r, http.StatusOK, s.service.NewBookForm(), "")
}

// handleCreateBook decodes, validates and stores a new book.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBookRequest(w, r)
	if err != nil {
		view := s.service.RejectBookForm(r.Context(), core.ViewNewBook, "", req, err)
		s.renderBookForm(w, r, statusFor(view.Err), view, rawPages(r))
		return
	}

	view := s.service.CreateBook(r.Context(), req)
	if view.Failed() {
		s.renderBookForm(w, r, statusFor(view.Err), view, rawPages(r))
		return
	}

	if wantsJSON(r) {
		writeJSON(w, r, http.StatusCreated, view.Book)
		return
	}
	redirectToList(w, r)
}

// handleEditBookForm renders the edit form prefilled with the stored book.
func (s *Server) handleEditBookForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "book_id")

	view, err := s.service.EditBookForm(r.Context(), id)
	if err != nil {
		respondError(w, r, err, statusFor(err))
		return
	}

	if wantsJSON(r) {
		writeJSON(w, r, http.StatusOK, view.Book)
		return
	}
	s.renderBookForm(w, r, http.StatusOK, view, "")
}

// handleUpdateBook overwrites the mutable fields of a book.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "book_id")

	req, err := decodeBookRequest(w, r)
	if err != nil {
		view := s.service.RejectBookForm(r.Context(), core.ViewEditBook, id, req, err)
		s.renderBookForm(w, r, statusFor(view.Err), view, rawPages(r))
		return
	}

	view := s.service.UpdateBook(r.Context(), id, req)
	if view.Failed() {
		s.renderBookForm(w, r, statusFor(view.Err), view, rawPages(r))
		return
	}

	if wantsJSON(r) {
		writeJSON(w, r, http.StatusOK, writeResult{ID: id, Affected: view.Affected})
		return
	}
	redirectToList(w, r)
}

// handleDeleteBook removes a book. Deleting a missing id still answers 200
// so htmx drops the row either way.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "book_id")

	view := s.service.DeleteBook(r.Context(), id)
	if view.Failed() {
		respondError(w, r, view.Err, http.StatusInternalServerError)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, r, http.StatusOK, writeResult{ID: id, Affected: view.Affected})
		return
	}
	w.WriteHeader(http.StatusOK)
}

// handleNotFound answers any unmatched route.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, core.ErrRouteNotFound, http.StatusNotFound)
}

// writeResult is the JSON body for update and delete.
type writeResult struct {
	ID       string `json:"id"`
	Affected int64  `json:"affected"`
}

// redirectToList sends htmx clients an HX-Redirect and browsers a 303.
func redirectToList(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", listPath)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, listPath, http.StatusSeeOther)
}

// renderBookForm renders a create or edit form view. A rejected view carries
// its error as an alert inside the form.
func (s *Server) renderBookForm(w http.ResponseWriter, r *http.Request, status int, view core.View, pages string) {
	if view.Failed() && wantsJSON(r) {
		respondError(w, r, view.Err, status)
		return
	}

	p := templates.FormParams{
		Title:  "Add book",
		Values: view.Form,
		Pages:  pages,
	}
	if view.Name == core.ViewEditBook {
		p.Title = "Edit book"
		p.BookID = view.BookID
	}
	if p.Pages == "" && (view.Name == core.ViewEditBook || view.Failed()) {
		p.Pages = strconv.FormatInt(int64(view.Form.Pages), 10)
	}

	if view.Failed() {
		msg := core.MapError(view.Err)
		p.Alert = &templates.Alert{Message: msg.Message, Action: msg.Action, Code: msg.Code}
		p.InvalidField = invalidField(view.Err)
	}

	renderHTML(w, r, status, p.Title, templates.BookForm(p))
}

// rawPages returns pages exactly as submitted so a rejected value is shown
// back to the user unchanged.
func rawPages(r *http.Request) string {
	if r.PostForm == nil {
		return ""
	}
	return r.PostForm.Get("pages")
}

func invalidField(err error) string {
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	var de *core.DecodeError
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}
