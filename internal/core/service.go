package core

import (
	"context"
	"errors"
	"time"

	"github.com/JonMunkholm/bookshelf/internal/logging"
	"github.com/google/uuid"
)

// Store is the data access contract for the book table.
// Implementations must be safe for concurrent use.
type Store interface {
	Create(ctx context.Context, book Book) (int64, error)
	FindAll(ctx context.Context) ([]Book, error)
	FindOne(ctx context.Context, id string) (Book, error)
	Update(ctx context.Context, id string, patch BookRequest) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Ping(ctx context.Context) error
}

// Service holds the request handlers. It keeps no per-request state; the
// store is the only resource shared between concurrent calls.
type Service struct {
	store        Store
	now          func() time.Time
	newID        func() string
	writeTimeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used for AddedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator sets the function used to generate book ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// WithWriteTimeout bounds each store write. Non-positive values are ignored.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// NewService creates a new Service instance.
func NewService(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	s := &Service{
		store:        store,
		now:          defaultClock,
		newID:        uuid.NewString,
		writeTimeout: DefaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// defaultClock truncates to microseconds, the precision of a timestamptz
// column, so a created book equals the one read back.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Home verifies the store is reachable before rendering the welcome page.
func (s *Service) Home(ctx context.Context) (View, error) {
	if err := s.store.Ping(ctx); err != nil {
		return View{}, err
	}
	return View{Name: ViewHome}, nil
}

// ListBooks returns every book.
func (s *Service) ListBooks(ctx context.Context) (View, error) {
	books, err := s.store.FindAll(ctx)
	if err != nil {
		return View{}, err
	}
	return View{Name: ViewBookList, Books: books}, nil
}

// NewBookForm returns an empty creation form.
func (s *Service) NewBookForm() View {
	return View{Name: ViewNewBook}
}

// EditBookForm loads a book for editing. A missing id is returned as a
// *NotFoundError.
func (s *Service) EditBookForm(ctx context.Context, id string) (View, error) {
	book, err := s.store.FindOne(ctx, id)
	if err != nil {
		return View{}, err
	}
	return View{
		Name:   ViewEditBook,
		Book:   book,
		BookID: book.ID,
		Form:   book.Request(),
	}, nil
}

// CreateBook validates req and inserts a new book with a fresh id and the
// current time. Validation and store failures come back as a ViewNewBook
// carrying the submitted values and the error; nothing is persisted on a
// validation failure.
func (s *Service) CreateBook(ctx context.Context, req BookRequest) View {
	logger := logging.FromContext(ctx)

	if err := Validate(req); err != nil {
		logger.Info("book rejected", "error", err)
		return View{Name: ViewNewBook, Form: req, Err: err}
	}

	book := NewBook(req, s.newID(), s.now())

	wctx, cancel := writeContext(ctx, s.writeTimeout)
	defer cancel()

	n, err := s.store.Create(wctx, book)
	if err != nil {
		logger.Error("book insert failed", "error", err)
		return View{Name: ViewNewBook, Form: req, Err: err}
	}

	logger.Info("book created", "book_id", book.ID, "rows_affected", n)
	return View{Name: ViewBookCreated, Book: book, BookID: book.ID, Affected: n}
}

// UpdateBook validates req and overwrites the mutable fields of the book with
// the given id. An Affected of 0 means there was no such id; that is not an
// error. Failures come back as a ViewEditBook carrying the submitted values.
func (s *Service) UpdateBook(ctx context.Context, id string, req BookRequest) View {
	logger := logging.WithFields(ctx, "book_id", id)

	if err := Validate(req); err != nil {
		logger.Info("book update rejected", "error", err)
		return View{Name: ViewEditBook, BookID: id, Form: req, Err: err}
	}

	wctx, cancel := writeContext(ctx, s.writeTimeout)
	defer cancel()

	n, err := s.store.Update(wctx, id, req)
	if err != nil {
		logger.Error("book update failed", "error", err)
		return View{Name: ViewEditBook, BookID: id, Form: req, Err: err}
	}

	if n == 0 {
		logger.Warn("book update matched no rows")
	} else {
		logger.Info("book updated", "rows_affected", n)
	}
	return View{Name: ViewBookUpdated, BookID: id, Form: req, Affected: n}
}

// DeleteBook removes the book with the given id. Deleting a missing id yields
// Affected 0. A store failure is reported in View.Err and never returned.
func (s *Service) DeleteBook(ctx context.Context, id string) View {
	logger := logging.WithFields(ctx, "book_id", id)

	wctx, cancel := writeContext(ctx, s.writeTimeout)
	defer cancel()

	n, err := s.store.Delete(wctx, id)
	if err != nil {
		logger.Error("book delete failed", "error", err)
		return View{Name: ViewBookDeleted, BookID: id, Err: err}
	}

	logger.Info("book delete", "rows_affected", n)
	return View{Name: ViewBookDeleted, BookID: id, Affected: n}
}

// RejectBookForm builds the form view for a body that failed to decode.
// name must be ViewNewBook or ViewEditBook; id is empty for creation.
func (s *Service) RejectBookForm(ctx context.Context, name ViewName, id string, req BookRequest, err error) View {
	if err == nil {
		err = &DecodeError{Reason: "empty form"}
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		err = &DecodeError{Reason: err.Error(), Err: err}
	}
	logging.WithFields(ctx, "book_id", id).Info("book form rejected", "view", name, "error", err)
	return View{Name: name, BookID: id, Form: req, Err: err}
}
