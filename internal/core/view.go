package core

// ViewName identifies what the presentation layer should render.
type ViewName string

const (
	ViewHome        ViewName = "home"
	ViewBookList    ViewName = "book_list"
	ViewNewBook     ViewName = "new_book"
	ViewEditBook    ViewName = "edit_book"
	ViewBookCreated ViewName = "book_created"
	ViewBookUpdated ViewName = "book_updated"
	ViewBookDeleted ViewName = "book_deleted"
)

// View is the result of a request handler.
//
// Form views (ViewNewBook, ViewEditBook) carry the submitted values in Form and,
// when the submission was rejected, the reason in Err. Outcome views carry the
// affected row count; an Affected of 0 means the id did not exist.
type View struct {
	Name     ViewName
	Books    []Book      // ViewBookList
	Book     Book        // ViewEditBook (as loaded), ViewBookCreated
	BookID   string      // Path id for edit, update and delete
	Form     BookRequest // Values to show in a form
	Affected int64       // Rows changed by a write
	Err      error       // Recovered error to present with the view
}

// Failed reports whether the view carries a recovered error.
func (v View) Failed() bool {
	return v.Err != nil
}
