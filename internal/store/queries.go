package store

import (
	"github.com/JonMunkholm/bookshelf/internal/core"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
)

const (
	dialectPostgres = "postgres"
	tableBook       = "book"
	colID           = "id"
	colName         = "name"
	colAuthor       = "author"
	colLanguage     = "language"
	colPages        = "pages"
	colAddedAt      = "added_at"
	castText        = "?::text"
	pingProbe       = "success"
)

type (
	sqlQueryString = string
	sqlArgs        = []any
)

var dialect = goqu.Dialect(dialectPostgres)

// bookColumns is the scan order used by scanBook.
var bookColumns = []any{colID, colName, colAuthor, colLanguage, colPages, colAddedAt}

func buildInsertBook(b core.Book) (sqlQueryString, sqlArgs, error) {
	return dialect.Insert(tableBook).
		Prepared(true).
		Cols(bookColumns...).
		Vals(goqu.Vals{b.ID, b.Name, b.Author, b.Language, b.Pages, b.AddedAt}).
		ToSQL()
}

// buildSelectBooks orders by creation time then id; the table has no
// natural order and rows would otherwise come back in whatever order the
// planner picks.
func buildSelectBooks() (sqlQueryString, sqlArgs, error) {
	return dialect.From(tableBook).
		Prepared(true).
		Select(bookColumns...).
		Order(goqu.I(colAddedAt).Asc(), goqu.I(colID).Asc()).
		ToSQL()
}

func buildSelectBook(id string) (sqlQueryString, sqlArgs, error) {
	return dialect.From(tableBook).
		Prepared(true).
		Select(bookColumns...).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
}

// buildUpdateBook never touches id or added_at.
func buildUpdateBook(id string, patch core.BookRequest) (sqlQueryString, sqlArgs, error) {
	return dialect.Update(tableBook).
		Prepared(true).
		Set(goqu.Record{
			colName:     patch.Name,
			colAuthor:   patch.Author,
			colLanguage: patch.Language,
			colPages:    patch.Pages,
		}).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
}

func buildDeleteBook(id string) (sqlQueryString, sqlArgs, error) {
	return dialect.Delete(tableBook).
		Prepared(true).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
}

func buildPing() (sqlQueryString, sqlArgs, error) {
	return dialect.Select(goqu.L(castText, pingProbe)).
		Prepared(true).
		ToSQL()
}
