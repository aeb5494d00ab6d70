package web

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/JonMunkholm/bookshelf/internal/core"
	"github.com/go-playground/form/v4"
)

// maxBodyBytes caps a submitted book form.
const maxBodyBytes = 64 << 10

// bookFields are the form keys every submission must carry.
var bookFields = []string{"name", "author", "language", "pages"}

var formDecoder = form.NewDecoder()

// decodeBookRequest reads a BookRequest from a url-encoded form or a JSON
// body. Whatever could be decoded is returned alongside a *core.DecodeError
// so the form can be re-rendered with the submitted values.
func decodeBookRequest(w http.ResponseWriter, r *http.Request) (core.BookRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if isJSONBody(r) {
		return decodeBookJSON(r)
	}

	var req core.BookRequest
	if err := r.ParseForm(); err != nil {
		return req, &core.DecodeError{Reason: "malformed body", Err: err}
	}

	decodeErr := formDecoder.Decode(&req, r.PostForm)

	for _, field := range bookFields {
		if _, ok := r.PostForm[field]; !ok {
			return req, &core.DecodeError{Field: field, Reason: "is missing"}
		}
	}
	if strings.TrimSpace(r.PostForm.Get("pages")) == "" {
		return req, &core.DecodeError{Field: "pages", Reason: "must be a whole number"}
	}

	if decodeErr != nil {
		var fieldErrs form.DecodeErrors
		if errors.As(decodeErr, &fieldErrs) {
			for _, field := range bookFields {
				if ferr, ok := fieldErrs[field]; ok {
					return req, &core.DecodeError{Field: field, Reason: "must be a whole number", Err: ferr}
				}
			}
		}
		return req, &core.DecodeError{Reason: "malformed body", Err: decodeErr}
	}
	return req, nil
}

// bookJSON uses pointers so absent keys can be told apart from zero values.
type bookJSON struct {
	Name     *string `json:"name"`
	Author   *string `json:"author"`
	Language *string `json:"language"`
	Pages    *int32  `json:"pages"`
}

func decodeBookJSON(r *http.Request) (core.BookRequest, error) {
	var body bookJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return core.BookRequest{}, &core.DecodeError{Reason: "malformed JSON body", Err: err}
	}

	var req core.BookRequest
	if body.Name != nil {
		req.Name = *body.Name
	}
	if body.Author != nil {
		req.Author = *body.Author
	}
	if body.Language != nil {
		req.Language = *body.Language
	}
	if body.Pages != nil {
		req.Pages = *body.Pages
	}

	switch {
	case body.Name == nil:
		return req, &core.DecodeError{Field: "name", Reason: "is missing"}
	case body.Author == nil:
		return req, &core.DecodeError{Field: "author", Reason: "is missing"}
	case body.Language == nil:
		return req, &core.DecodeError{Field: "language", Reason: "is missing"}
	case body.Pages == nil:
		return req, &core.DecodeError{Field: "pages", Reason: "is missing"}
	}
	return req, nil
}

func isJSONBody(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
