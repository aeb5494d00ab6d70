package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/bookshelf/internal/core"
	"github.com/JonMunkholm/bookshelf/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	opCreate  = "create"
	opFindAll = "find_all"
	opFindOne = "find_one"
	opUpdate  = "update"
	opDelete  = "delete"
	opPing    = "ping"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// BookStore runs the book table operations against a shared DBTX.
// It holds no other state and is safe for concurrent use.
type BookStore struct {
	db DBTX
}

var _ core.Store = (*BookStore)(nil)

// NewBookStore creates a BookStore over db, usually the process pool.
func NewBookStore(db DBTX) (*BookStore, error) {
	if db == nil {
		return nil, errors.New("store: nil database handle")
	}
	return &BookStore{db: db}, nil
}

// Create inserts book with all six columns bound positionally.
func (s *BookStore) Create(ctx context.Context, book core.Book) (int64, error) {
	query, args, err := buildInsertBook(book)
	if err != nil {
		return 0, persistenceErr(opCreate, err)
	}
	return s.exec(ctx, opCreate, query, args)
}

// FindAll returns every book ordered by added_at, then id.
func (s *BookStore) FindAll(ctx context.Context) ([]core.Book, error) {
	start := time.Now()

	query, args, err := buildSelectBooks()
	if err != nil {
		return nil, persistenceErr(opFindAll, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, persistenceErr(opFindAll, err)
	}

	books, err := pgx.CollectRows(rows, scanBook)
	if err != nil {
		return nil, persistenceErr(opFindAll, err)
	}

	logOperation(ctx, opFindAll, start, "rows", len(books))
	return books, nil
}

// FindOne returns the book with the given id, or a *core.NotFoundError.
func (s *BookStore) FindOne(ctx context.Context, id string) (core.Book, error) {
	start := time.Now()

	query, args, err := buildSelectBook(id)
	if err != nil {
		return core.Book{}, persistenceErr(opFindOne, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return core.Book{}, persistenceErr(opFindOne, err)
	}

	book, err := pgx.CollectExactlyOneRow(rows, scanBook)
	if errors.Is(err, pgx.ErrNoRows) {
		logOperation(ctx, opFindOne, start, "book_id", id, "rows", 0)
		return core.Book{}, &core.NotFoundError{ID: id}
	}
	if err != nil {
		return core.Book{}, persistenceErr(opFindOne, err)
	}

	logOperation(ctx, opFindOne, start, "book_id", id, "rows", 1)
	return book, nil
}

// Update overwrites name, author, language and pages of the book with the
// given id. It returns 0 when no such id exists.
func (s *BookStore) Update(ctx context.Context, id string, patch core.BookRequest) (int64, error) {
	query, args, err := buildUpdateBook(id, patch)
	if err != nil {
		return 0, persistenceErr(opUpdate, err)
	}
	return s.exec(ctx, opUpdate, query, args)
}

// Delete removes the book with the given id. It returns 0 when no such id
// exists.
func (s *BookStore) Delete(ctx context.Context, id string) (int64, error) {
	query, args, err := buildDeleteBook(id)
	if err != nil {
		return 0, persistenceErr(opDelete, err)
	}
	return s.exec(ctx, opDelete, query, args)
}

// Ping performs a round trip that binds and echoes a parameter.
func (s *BookStore) Ping(ctx context.Context) error {
	start := time.Now()

	query, args, err := buildPing()
	if err != nil {
		return persistenceErr(opPing, err)
	}

	var echoed string
	if err := s.db.QueryRow(ctx, query, args...).Scan(&echoed); err != nil {
		return persistenceErr(opPing, err)
	}
	if echoed != pingProbe {
		return persistenceErr(opPing, fmt.Errorf("unexpected ping reply %q", echoed))
	}

	logOperation(ctx, opPing, start)
	return nil
}

func (s *BookStore) exec(ctx context.Context, op string, query sqlQueryString, args sqlArgs) (int64, error) {
	start := time.Now()

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, persistenceErr(op, err)
	}

	n := tag.RowsAffected()
	logOperation(ctx, op, start, "rows_affected", n)
	return n, nil
}

func scanBook(row pgx.CollectableRow) (core.Book, error) {
	var b core.Book
	if err := row.Scan(&b.ID, &b.Name, &b.Author, &b.Language, &b.Pages, &b.AddedAt); err != nil {
		return core.Book{}, err
	}
	b.AddedAt = b.AddedAt.UTC()
	return b, nil
}

func persistenceErr(op string, err error) error {
	return &core.PersistenceError{Op: op, Err: err}
}

func logOperation(ctx context.Context, op string, start time.Time, args ...any) {
	attrs := append([]any{"op", op, "duration_ms", time.Since(start).Milliseconds()}, args...)
	logging.FromContext(ctx).Debug("store operation", attrs...)
}
