package model

// Event references its venue by id. Date is a normalized opaque key, not a
// parsed calendar date: two events match a date query when their normalized
// date strings are equal. Immutable once created.
type Event struct {
	ID      int    `validate:"omitempty,min=1"`
	Name    string `validate:"required"`
	Date    string `validate:"required"`
	VenueID int    `validate:"required,min=1"`
}
