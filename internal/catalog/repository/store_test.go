package repository

import (
	"errors"
	"testing"

	catalogerrors "convoca/internal/catalog/errors"
	"convoca/pkg/model"
)

func seedVenueAndEvent(t *testing.T, s *Store, capacity int) (int, int) {
	t.Helper()
	vid := s.InsertVenue(model.Venue{City: "bogotá", Name: "centro", Capacity: capacity})
	eid, err := s.InsertEvent(model.Event{Name: "feria", Date: "2025-09-20", VenueID: vid})
	if err != nil {
		t.Fatalf("InsertEvent: %v", err)
	}
	return vid, eid
}

func TestInsertVenue_AssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	first := s.InsertVenue(model.Venue{City: "bogotá", Name: "centro", Capacity: 3})
	second := s.InsertVenue(model.Venue{City: "medellín", Name: "plaza", Capacity: 2})

	if first != 1 || second != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first, second)
	}
}

func TestInsertEvent_UnknownVenue(t *testing.T) {
	s := NewStore()

	_, err := s.InsertEvent(model.Event{Name: "feria", Date: "2025-09-20", VenueID: 99})
	if !errors.Is(err, catalogerrors.ErrVenueNotFound) {
		t.Errorf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestInsertEvent_IndexedByDate(t *testing.T) {
	s := NewStore()
	vid := s.InsertVenue(model.Venue{City: "bogotá", Name: "centro", Capacity: 3})

	e1, _ := s.InsertEvent(model.Event{Name: "feria", Date: "2025-09-20", VenueID: vid})
	e2, _ := s.InsertEvent(model.Event{Name: "taller", Date: "2025-09-20", VenueID: vid})
	s.InsertEvent(model.Event{Name: "otra", Date: "2025-09-25", VenueID: vid})

	got := s.EventIDsByDate("2025-09-20")
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Errorf("expected bucket [%d %d] in creation order, got %v", e1, e2, got)
	}

	if empty := s.EventIDsByDate("2030-01-01"); len(empty) != 0 {
		t.Errorf("expected empty bucket for unknown date, got %v", empty)
	}
}

func TestUpsertAttendee(t *testing.T) {
	t.Run("same email returns same id", func(t *testing.T) {
		s := NewStore()

		id1, created1 := s.UpsertAttendee("ana@mail.com", "ana")
		id2, created2 := s.UpsertAttendee("ana@mail.com", "ana maria")

		if !created1 || created2 {
			t.Errorf("expected create then update, got created1=%v created2=%v", created1, created2)
		}
		if id1 != id2 {
			t.Errorf("expected merged identity, got ids %d and %d", id1, id2)
		}

		a, err := s.Attendee(id1)
		if err != nil {
			t.Fatalf("Attendee: %v", err)
		}
		if a.Name != "ana maria" {
			t.Errorf("expected updated name, got %q", a.Name)
		}
	})

	t.Run("empty name does not overwrite", func(t *testing.T) {
		s := NewStore()

		id, _ := s.UpsertAttendee("ana@mail.com", "ana")
		s.UpsertAttendee("ana@mail.com", "")

		a, _ := s.Attendee(id)
		if a.Name != "ana" {
			t.Errorf("empty upsert overwrote name: got %q", a.Name)
		}
	})

	t.Run("upsert hit consumes no id", func(t *testing.T) {
		s := NewStore()

		s.UpsertAttendee("ana@mail.com", "ana")
		s.UpsertAttendee("ana@mail.com", "otra vez")
		next, _ := s.UpsertAttendee("luis@mail.com", "luis")

		if next != 2 {
			t.Errorf("expected second attendee to get id 2, got %d", next)
		}
	})
}

func TestInsertRegistration(t *testing.T) {
	t.Run("duplicate pair is a no-op", func(t *testing.T) {
		s := NewStore()
		_, eid := seedVenueAndEvent(t, s, 3)
		aid, _ := s.UpsertAttendee("ana@mail.com", "ana")

		if err := s.InsertRegistration(eid, aid); err != nil {
			t.Fatalf("first registration: %v", err)
		}
		if err := s.InsertRegistration(eid, aid); err != nil {
			t.Fatalf("duplicate registration: %v", err)
		}

		if n := s.RegistrationCount(eid); n != 1 {
			t.Errorf("expected 1 registration, got %d", n)
		}
	})

	t.Run("capacity enforced", func(t *testing.T) {
		s := NewStore()
		_, eid := seedVenueAndEvent(t, s, 2)

		a1, _ := s.UpsertAttendee("ana@mail.com", "ana")
		a2, _ := s.UpsertAttendee("luis@mail.com", "luis")
		a3, _ := s.UpsertAttendee("maria@mail.com", "maria")

		if err := s.InsertRegistration(eid, a1); err != nil {
			t.Fatalf("registration 1: %v", err)
		}
		if err := s.InsertRegistration(eid, a2); err != nil {
			t.Fatalf("registration 2: %v", err)
		}

		err := s.InsertRegistration(eid, a3)
		if !errors.Is(err, catalogerrors.ErrCapacityFull) {
			t.Errorf("expected ErrCapacityFull, got %v", err)
		}
		if n := s.RegistrationCount(eid); n != 2 {
			t.Errorf("capacity invariant broken: %d registrations for capacity 2", n)
		}
	})

	t.Run("unknown ids", func(t *testing.T) {
		s := NewStore()
		_, eid := seedVenueAndEvent(t, s, 2)
		aid, _ := s.UpsertAttendee("ana@mail.com", "ana")

		if err := s.InsertRegistration(99, aid); !errors.Is(err, catalogerrors.ErrEventNotFound) {
			t.Errorf("expected ErrEventNotFound, got %v", err)
		}
		if err := s.InsertRegistration(eid, 99); !errors.Is(err, catalogerrors.ErrAttendeeNotFound) {
			t.Errorf("expected ErrAttendeeNotFound, got %v", err)
		}
	})
}

func TestSnapshotOrdering(t *testing.T) {
	s := NewStore()
	vid := s.InsertVenue(model.Venue{City: "bogotá", Name: "centro", Capacity: 5})
	s.InsertEvent(model.Event{Name: "a", Date: "2025-01-01", VenueID: vid})
	s.InsertEvent(model.Event{Name: "b", Date: "2025-01-02", VenueID: vid})
	s.InsertEvent(model.Event{Name: "c", Date: "2025-01-03", VenueID: vid})

	events := s.Events()
	for i, e := range events {
		if e.ID != i+1 {
			t.Fatalf("events out of creation order: %v", events)
		}
	}
}
