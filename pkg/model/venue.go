package model

// Venue is a physical location events run at. City and Name are stored in
// normalized form (whitespace collapsed, case folded). Immutable once
// created.
type Venue struct {
	ID       int    `validate:"omitempty,min=1"`
	City     string `validate:"required"`
	Name     string `validate:"required"`
	Capacity int    `validate:"min=0"`
}
