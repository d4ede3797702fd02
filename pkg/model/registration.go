package model

// Registration enrolls an attendee in an event. The pair has no identity of
// its own and appears at most once in the store.
type Registration struct {
	EventID    int
	AttendeeID int
}
