// Package store implements core.Store on PostgreSQL.
//
// It owns the pgx connection pool built at startup by [NewPool] and the five
// operations against the book table. SQL text is built with goqu in prepared
// mode so every value travels as a positional parameter; pgx executes it.
//
// Every failure is returned as a *core.PersistenceError, and a lookup that
// matches nothing as a *core.NotFoundError. Writes report the number of rows
// they affected; zero is a valid outcome, not an error.
package store
