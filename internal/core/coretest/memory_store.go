package coretest

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/JonMunkholm/bookshelf/internal/core"
)

// Store operation names used for error injection and call recording.
const (
	OpCreate  = "create"
	OpFindAll = "find_all"
	OpFindOne = "find_one"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpPing    = "ping"
)

// Call is one recorded store invocation.
type Call struct {
	Op      string
	ID      string
	Context context.Context
}

// MemoryStore is a core.Store backed by a map. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	books  map[string]core.Book
	order  []string
	fail   map[string]error
	calls  []Call
	onCall func(Call)
}

// NewMemoryStore creates an empty store, optionally seeded with books.
func NewMemoryStore(seed ...core.Book) *MemoryStore {
	s := &MemoryStore{
		books: make(map[string]core.Book),
		fail:  make(map[string]error),
	}
	for _, b := range seed {
		s.books[b.ID] = b
		s.order = append(s.order, b.ID)
	}
	return s
}

// FailOn makes every later call to op return a *core.PersistenceError
// wrapping err. A nil err clears the injection.
func (s *MemoryStore) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fail, op)
		return
	}
	s.fail[op] = err
}

// OnCall registers a hook run (outside the lock) at the start of every call.
func (s *MemoryStore) OnCall(fn func(Call)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCall = fn
}

// Calls returns a copy of the recorded calls.
func (s *MemoryStore) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

// CallCount returns how many times op was invoked.
func (s *MemoryStore) CallCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Len returns the number of stored books.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.books)
}

// Get returns a stored book without recording a call.
func (s *MemoryStore) Get(id string) (core.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	return b, ok
}

func (s *MemoryStore) begin(ctx context.Context, op, id string) error {
	s.mu.Lock()
	call := Call{Op: op, ID: id, Context: ctx}
	s.calls = append(s.calls, call)
	hook := s.onCall
	err := s.fail[op]
	s.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if err != nil {
		return &core.PersistenceError{Op: op, Err: err}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &core.PersistenceError{Op: op, Err: ctxErr}
	}
	return nil
}

func (s *MemoryStore) Create(ctx context.Context, book core.Book) (int64, error) {
	if err := s.begin(ctx, OpCreate, book.ID); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.books[book.ID]; exists {
		return 0, &core.PersistenceError{Op: OpCreate, Err: errDuplicateKey}
	}
	s.books[book.ID] = book
	s.order = append(s.order, book.ID)
	return 1, nil
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]core.Book, error) {
	if err := s.begin(ctx, OpFindAll, ""); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	books := make([]core.Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, s.books[id])
	}
	return books, nil
}

func (s *MemoryStore) FindOne(ctx context.Context, id string) (core.Book, error) {
	if err := s.begin(ctx, OpFindOne, id); err != nil {
		return core.Book{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return core.Book{}, &core.NotFoundError{ID: id}
	}
	return b, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, patch core.BookRequest) (int64, error) {
	if err := s.begin(ctx, OpUpdate, id); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return 0, nil
	}
	s.books[id] = b.Apply(patch)
	return 1, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) (int64, error) {
	if err := s.begin(ctx, OpDelete, id); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return 0, nil
	}
	delete(s.books, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return 1, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return s.begin(ctx, OpPing, "")
}

var errDuplicateKey = errors.New(`duplicate key value violates unique constraint "book_pkey"`)

var _ core.Store = (*MemoryStore)(nil)
