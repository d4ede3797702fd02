package model

// Attendee is keyed by normalized, diacritic-stripped email. Email never
// changes after creation; Name may be overwritten by a later upsert with a
// non-empty name.
type Attendee struct {
	ID    int
	Email string
	Name  string
}
