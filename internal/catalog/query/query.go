// Package query computes derived views over the catalog store. Every call
// recomputes from current store state; the package holds no caches, so a
// view is never stale.
package query

import (
	"math"
	"sort"

	"convoca/internal/catalog/repository"
	"convoca/pkg/config"
	"convoca/pkg/model"
	"convoca/pkg/sanitizer"
)

// CityCount pairs a normalized city with how many events run there.
type CityCount struct {
	City  string
	Count int
}

type QueryService struct {
	repo *repository.Store
	cfg  *config.Config
}

func NewQueryService(repo *repository.Store, cfg *config.Config) *QueryService {
	return &QueryService{
		repo: repo,
		cfg:  cfg,
	}
}

// EventsByDate returns the events whose normalized date matches the input,
// in creation order. Unknown dates yield an empty slice.
func (q *QueryService) EventsByDate(date string) []model.Event {
	ids := q.repo.EventIDsByDate(sanitizer.Normalize(date))

	out := make([]model.Event, 0, len(ids))
	for _, id := range ids {
		e, err := q.repo.Event(id)
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}

// AttendeesOfEvent resolves the event's registrations to attendees in
// registration insertion order. An eventID with no registrations yields an
// empty slice whether or not the event exists; the walk is over the
// registration list, not the event table.
func (q *QueryService) AttendeesOfEvent(eventID int) []model.Attendee {
	var out []model.Attendee
	for _, r := range q.repo.Registrations() {
		if r.EventID != eventID {
			continue
		}
		a, err := q.repo.Attendee(r.AttendeeID)
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	return out
}

// EventsByCity returns every event held at a venue in the given city. The
// input goes through the same normalization as venue cities at creation, so
// "MEDELLÍN" finds venues stored as "medellín". No ordering is guaranteed.
func (q *QueryService) EventsByCity(city string) []model.Event {
	c := sanitizer.Normalize(city)

	venueIDs := make(map[int]struct{})
	for _, v := range q.repo.Venues() {
		if v.City == c {
			venueIDs[v.ID] = struct{}{}
		}
	}

	var out []model.Event
	for _, e := range q.repo.Events() {
		if _, ok := venueIDs[e.VenueID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// DuplicateEmails returns the emails held by more than one attendee. The
// upsert path enforces email uniqueness, so a non-empty result means the
// invariant was bypassed; the view exists as an integrity oracle.
func (q *QueryService) DuplicateEmails() map[string]struct{} {
	seen := make(map[string]struct{})
	dups := make(map[string]struct{})
	for _, a := range q.repo.Attendees() {
		if _, ok := seen[a.Email]; ok {
			dups[a.Email] = struct{}{}
		} else {
			seen[a.Email] = struct{}{}
		}
	}
	return dups
}

// TopCitiesByEventCount ranks cities by event count, descending. Ties keep
// the order cities were first encountered walking events in creation order.
// k <= 0 falls back to the configured default.
func (q *QueryService) TopCitiesByEventCount(k int) []CityCount {
	if k <= 0 {
		k = q.cfg.TopCitiesLimit
	}

	counts := make(map[string]int)
	var order []string
	for _, e := range q.repo.Events() {
		v, err := q.repo.Venue(e.VenueID)
		if err != nil {
			continue
		}
		if _, ok := counts[v.City]; !ok {
			order = append(order, v.City)
		}
		counts[v.City]++
	}

	ranked := make([]CityCount, 0, len(order))
	for _, city := range order {
		ranked = append(ranked, CityCount{City: city, Count: counts[city]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// OccupancyByEvent maps every event id to its occupancy percentage,
// rounded to two decimals. Capacity 0 divides by 1 instead, so a zero-cap
// venue with registrations reports over 100%.
func (q *QueryService) OccupancyByEvent() map[int]float64 {
	out := make(map[int]float64)
	for _, e := range q.repo.Events() {
		v, err := q.repo.Venue(e.VenueID)
		if err != nil {
			continue
		}
		n := q.repo.RegistrationCount(e.ID)
		pct := 100.0 * float64(n) / float64(max(1, v.Capacity))
		out[e.ID] = math.Round(pct*100) / 100
	}
	return out
}
