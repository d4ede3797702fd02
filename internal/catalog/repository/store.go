// Package repository implements the in-memory entity store behind the
// catalog. The store owns every collection and index; callers never reach
// the maps directly.
package repository

import (
	"sync"

	catalogerrors "convoca/internal/catalog/errors"
	"convoca/pkg/model"
)

// Store holds venues, events, attendees and registrations together with the
// two secondary indices (events by date, attendee by email). Ids are
// monotonically increasing integers starting at 1, assigned only on
// successful create and never reused, so each collection is dense over
// [1, next).
//
// All access is serialized behind a single RWMutex. Mutations take the
// write lock for their whole check-then-act sequence, so two registrations
// racing for the last open slot cannot both commit.
type Store struct {
	mu sync.RWMutex

	venues    map[int]model.Venue
	events    map[int]model.Event
	attendees map[int]model.Attendee
	regs      []model.Registration

	eventsByDate    map[string][]int
	attendeeByEmail map[string]int

	nextVenueID    int
	nextEventID    int
	nextAttendeeID int
}

func NewStore() *Store {
	return &Store{
		venues:          make(map[int]model.Venue),
		events:          make(map[int]model.Event),
		attendees:       make(map[int]model.Attendee),
		eventsByDate:    make(map[string][]int),
		attendeeByEmail: make(map[string]int),
		nextVenueID:     1,
		nextEventID:     1,
		nextAttendeeID:  1,
	}
}

// InsertVenue stores a venue and returns its assigned id. City and Name are
// expected normalized by the caller.
func (s *Store) InsertVenue(v model.Venue) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = s.nextVenueID
	s.venues[v.ID] = v
	s.nextVenueID++
	return v.ID
}

// InsertEvent stores an event and appends it to the by-date index bucket.
// The referenced venue must exist.
func (s *Store) InsertEvent(e model.Event) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[e.VenueID]; !ok {
		return 0, catalogerrors.ErrVenueNotFound
	}

	e.ID = s.nextEventID
	s.events[e.ID] = e
	s.eventsByDate[e.Date] = append(s.eventsByDate[e.Date], e.ID)
	s.nextEventID++
	return e.ID, nil
}

// UpsertAttendee creates or updates the attendee keyed by email. Email and
// name are expected identity-normalized by the caller. When the email is
// already known the existing attendee keeps its id, its name is overwritten
// only when the supplied name is non-empty, and no new id is consumed.
// The second return value reports whether a new attendee was created.
func (s *Store) UpsertAttendee(email, name string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.attendeeByEmail[email]; ok {
		if name != "" {
			a := s.attendees[id]
			a.Name = name
			s.attendees[id] = a
		}
		return id, false
	}

	id := s.nextAttendeeID
	s.attendees[id] = model.Attendee{ID: id, Email: email, Name: name}
	s.attendeeByEmail[email] = id
	s.nextAttendeeID++
	return id, true
}

// InsertRegistration enrolls an attendee in an event. An already-existing
// pair is a silent no-op. Unknown ids fail with the corresponding not-found
// sentinel; a full venue fails with ErrCapacityFull. The capacity check and
// the append run under one write lock.
func (s *Store) InsertRegistration(eventID, attendeeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.regs {
		if r.EventID == eventID && r.AttendeeID == attendeeID {
			return nil
		}
	}

	e, ok := s.events[eventID]
	if !ok {
		return catalogerrors.ErrEventNotFound
	}
	if _, ok := s.attendees[attendeeID]; !ok {
		return catalogerrors.ErrAttendeeNotFound
	}
	v, ok := s.venues[e.VenueID]
	if !ok {
		return catalogerrors.ErrVenueNotFound
	}

	taken := 0
	for _, r := range s.regs {
		if r.EventID == eventID {
			taken++
		}
	}
	if taken >= v.Capacity {
		return catalogerrors.ErrCapacityFull
	}

	s.regs = append(s.regs, model.Registration{EventID: eventID, AttendeeID: attendeeID})
	return nil
}

func (s *Store) Venue(id int) (model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.venues[id]
	if !ok {
		return model.Venue{}, catalogerrors.ErrVenueNotFound
	}
	return v, nil
}

func (s *Store) Event(id int) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return model.Event{}, catalogerrors.ErrEventNotFound
	}
	return e, nil
}

func (s *Store) Attendee(id int) (model.Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.attendees[id]
	if !ok {
		return model.Attendee{}, catalogerrors.ErrAttendeeNotFound
	}
	return a, nil
}

// EventIDsByDate returns the index bucket for a normalized date key in
// creation order, empty when the key is absent.
func (s *Store) EventIDsByDate(date string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.eventsByDate[date]
	out := make([]int, len(bucket))
	copy(out, bucket)
	return out
}

func (s *Store) AttendeeIDByEmail(email string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.attendeeByEmail[email]
	return id, ok
}

// Venues returns all venues in creation order.
func (s *Store) Venues() []model.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Venue, 0, len(s.venues))
	for id := 1; id < s.nextVenueID; id++ {
		out = append(out, s.venues[id])
	}
	return out
}

// Events returns all events in creation order.
func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, 0, len(s.events))
	for id := 1; id < s.nextEventID; id++ {
		out = append(out, s.events[id])
	}
	return out
}

// Attendees returns all attendees in creation order.
func (s *Store) Attendees() []model.Attendee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Attendee, 0, len(s.attendees))
	for id := 1; id < s.nextAttendeeID; id++ {
		out = append(out, s.attendees[id])
	}
	return out
}

// Registrations returns a copy of the registration list in insertion order.
func (s *Store) Registrations() []model.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Registration, len(s.regs))
	copy(out, s.regs)
	return out
}

// RegistrationCount counts registrations for one event.
func (s *Store) RegistrationCount(eventID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.regs {
		if r.EventID == eventID {
			n++
		}
	}
	return n
}
