package service

import (
	"context"
	"errors"
	"iter"
	"strings"

	catalogerrors "convoca/internal/catalog/errors"
	"convoca/internal/catalog/repository"
	"convoca/internal/catalog/validator"
	"convoca/pkg/config"
	apperrors "convoca/pkg/errors"
	"convoca/pkg/model"
	"convoca/pkg/sanitizer"

	"github.com/google/uuid"
)

type CatalogService interface {
	AddVenue(ctx context.Context, city, name string, capacity int) (int, error)
	AddEvent(ctx context.Context, name, date string, venueID int) (int, error)
	UpsertAttendee(ctx context.Context, email, name string) (int, error)
	Register(ctx context.Context, eventID, attendeeID int) error
	IngestRows(ctx context.Context, eventID int, rows iter.Seq[sanitizer.Row]) (*IngestReport, error)
}

// IngestReport summarizes one batch run of IngestRows.
type IngestReport struct {
	BatchID    string
	Rows       int // raw rows pulled from the source
	Sanitized  int // rows that survived the sanitizer
	Dropped    int // rows the sanitizer discarded
	Created    int // new attendees
	Updated    int // upserts that hit an existing attendee
	Registered int // successful registrations
	Rejected   int // registrations refused for capacity
}

type catalogService struct {
	repo      *repository.Store
	validator *validator.CatalogValidator
	cfg       *config.Config
}

func NewCatalogService(
	repo *repository.Store,
	validator *validator.CatalogValidator,
	cfg *config.Config,
) CatalogService {
	return &catalogService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *catalogService) AddVenue(ctx context.Context, city, name string, capacity int) (int, error) {
	venue := model.Venue{
		City:     sanitizer.Normalize(city),
		Name:     sanitizer.Normalize(name),
		Capacity: capacity,
	}

	if err := s.validator.ValidateVenue(&venue); err != nil {
		s.cfg.Log.Warn("Venue validation failed",
			"city", venue.City,
			"name", venue.Name,
			"capacity", capacity,
			"error", err,
		)
		return 0, apperrors.Validation("Venue validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	id := s.repo.InsertVenue(venue)

	s.cfg.Log.Info("Venue added",
		"id", id,
		"city", venue.City,
		"name", venue.Name,
		"capacity", venue.Capacity,
	)
	return id, nil
}

func (s *catalogService) AddEvent(ctx context.Context, name, date string, venueID int) (int, error) {
	event := model.Event{
		Name:    sanitizer.Normalize(name),
		Date:    sanitizer.Normalize(date),
		VenueID: venueID,
	}

	if err := s.validator.ValidateEvent(&event); err != nil {
		s.cfg.Log.Warn("Event validation failed",
			"name", event.Name,
			"date", event.Date,
			"venue_id", venueID,
			"error", err,
		)
		return 0, apperrors.Validation("Event validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	id, err := s.repo.InsertEvent(event)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrVenueNotFound) {
			return 0, apperrors.NotFoundWithID("Venue", venueID)
		}
		s.cfg.Log.Error("Failed to add event",
			"name", event.Name,
			"error", err,
		)
		return 0, apperrors.Internal("Failed to add event", err)
	}

	s.cfg.Log.Info("Event added",
		"id", id,
		"name", event.Name,
		"date", event.Date,
		"venue_id", venueID,
	)
	return id, nil
}

func (s *catalogService) UpsertAttendee(ctx context.Context, email, name string) (int, error) {
	emailNorm := sanitizer.NormalizeIdentity(email)
	if !strings.Contains(emailNorm, "@") {
		s.cfg.Log.Warn("Rejected attendee with invalid email", "email", emailNorm)
		appErr := apperrors.InvalidIdentity("Attendee email must contain @", map[string]any{
			"email": emailNorm,
		})
		appErr.Err = catalogerrors.ErrInvalidEmail
		return 0, appErr
	}

	id, created := s.repo.UpsertAttendee(emailNorm, sanitizer.NormalizeIdentity(name))

	if created {
		s.cfg.Log.Info("Attendee created", "id", id, "email", emailNorm)
	} else {
		s.cfg.Log.Debug("Attendee upsert hit existing identity", "id", id, "email", emailNorm)
	}
	return id, nil
}

func (s *catalogService) Register(ctx context.Context, eventID, attendeeID int) error {
	err := s.repo.InsertRegistration(eventID, attendeeID)
	if err == nil {
		s.cfg.Log.Debug("Registration recorded",
			"event_id", eventID,
			"attendee_id", attendeeID,
		)
		return nil
	}

	switch {
	case errors.Is(err, catalogerrors.ErrEventNotFound):
		return apperrors.NotFoundWithID("Event", eventID)
	case errors.Is(err, catalogerrors.ErrAttendeeNotFound):
		return apperrors.NotFoundWithID("Attendee", attendeeID)
	case errors.Is(err, catalogerrors.ErrVenueNotFound):
		return apperrors.NotFound("Venue")
	case errors.Is(err, catalogerrors.ErrCapacityFull):
		capacity := s.eventCapacity(eventID)
		s.cfg.Log.Warn("Registration refused, venue full",
			"event_id", eventID,
			"attendee_id", attendeeID,
			"capacity", capacity,
		)
		return apperrors.CapacityExceeded(eventID, capacity)
	default:
		s.cfg.Log.Error("Failed to register attendee",
			"event_id", eventID,
			"attendee_id", attendeeID,
			"error", err,
		)
		return apperrors.Internal("Failed to register attendee", err)
	}
}

// IngestRows pipes a batch of raw rows through the sanitizer, upserting and
// registering each surviving record against eventID. Capacity refusals are
// counted and logged, not fatal, so one full event does not abort the rest
// of the batch.
func (s *catalogService) IngestRows(ctx context.Context, eventID int, rows iter.Seq[sanitizer.Row]) (*IngestReport, error) {
	if _, err := s.repo.Event(eventID); err != nil {
		return nil, apperrors.NotFoundWithID("Event", eventID)
	}

	report := &IngestReport{BatchID: uuid.NewString()}

	counted := func(yield func(sanitizer.Row) bool) {
		for row := range rows {
			report.Rows++
			if !yield(row) {
				return
			}
		}
	}

	for rec := range sanitizer.SanitizeRecords(counted) {
		report.Sanitized++

		id, created := s.repo.UpsertAttendee(rec.Email, rec.Name)
		if created {
			report.Created++
		} else {
			report.Updated++
		}

		err := s.Register(ctx, eventID, id)
		switch {
		case err == nil:
			report.Registered++
		case apperrors.IsCode(err, apperrors.CodeCapacityExceeded):
			report.Rejected++
		default:
			return report, err
		}
	}
	report.Dropped = report.Rows - report.Sanitized

	s.cfg.Log.Info("Ingest batch completed",
		"batch_id", report.BatchID,
		"event_id", eventID,
		"rows", report.Rows,
		"sanitized", report.Sanitized,
		"dropped", report.Dropped,
		"created", report.Created,
		"updated", report.Updated,
		"registered", report.Registered,
		"rejected", report.Rejected,
	)
	return report, nil
}

func (s *catalogService) eventCapacity(eventID int) int {
	e, err := s.repo.Event(eventID)
	if err != nil {
		return 0
	}
	v, err := s.repo.Venue(e.VenueID)
	if err != nil {
		return 0
	}
	return v.Capacity
}
