package main

import (
	"context"
	"slices"

	"convoca/internal/catalog/query"
	"convoca/internal/catalog/repository"
	"convoca/internal/catalog/service"
	"convoca/internal/catalog/validator"
	"convoca/pkg/config"
	apperrors "convoca/pkg/errors"
)

// Demo driver: seeds a small catalog, ingests a batch of dirty attendee
// rows, overflows one venue on purpose and walks every query once.
func main() {
	cfg := config.Load("convoca")
	log := cfg.Log
	log.Info("Starting convoca demo")

	store := repository.NewStore()
	catalog := service.NewCatalogService(store, validator.NewCatalogValidator(), cfg)
	queries := query.NewQueryService(store, cfg)

	ctx := context.Background()

	bogota, err := catalog.AddVenue(ctx, "Bogotá", "Centro Convenciones", 3)
	if err != nil {
		log.Fatal("Failed to add venue", "error", err)
	}
	medellin, err := catalog.AddVenue(ctx, "Medellín", "Plaza Mayor", 2)
	if err != nil {
		log.Fatal("Failed to add venue", "error", err)
	}

	feria, err := catalog.AddEvent(ctx, "Feria de Software", "2025-09-20", bogota)
	if err != nil {
		log.Fatal("Failed to add event", "error", err)
	}
	if _, err := catalog.AddEvent(ctx, "Taller de Datos", "2025-09-25", medellin); err != nil {
		log.Fatal("Failed to add event", "error", err)
	}

	rows := loadSeedRows(cfg, log)
	report, err := catalog.IngestRows(ctx, feria, slices.Values(rows))
	if err != nil {
		log.Fatal("Ingest failed", "error", err)
	}
	log.Info("Seed batch ingested",
		"batch_id", report.BatchID,
		"registered", report.Registered,
		"dropped", report.Dropped,
	)

	// One more registration than the venue holds.
	extra, err := catalog.UpsertAttendee(ctx, "extra@mail.com", "Extra")
	if err != nil {
		log.Fatal("Failed to upsert attendee", "error", err)
	}
	if err := catalog.Register(ctx, feria, extra); err != nil {
		if apperrors.IsCode(err, apperrors.CodeCapacityExceeded) {
			log.Warn("Venue full, registration skipped", "error", err)
		} else {
			log.Fatal("Failed to register attendee", "error", err)
		}
	}

	log.Info("Events by date",
		"date", "2025-09-20",
		"events", queries.EventsByDate("2025-09-20"),
	)
	log.Info("Event roster",
		"event_id", feria,
		"attendees", queries.AttendeesOfEvent(feria),
	)
	log.Info("Events by city",
		"city", "MEDELLÍN",
		"events", queries.EventsByCity("MEDELLÍN"),
	)
	log.Info("Duplicate emails",
		"emails", queries.DuplicateEmails(),
	)
	log.Info("Top cities by event count",
		"ranking", queries.TopCitiesByEventCount(0),
	)
	log.Info("Occupancy by event",
		"occupancy", queries.OccupancyByEvent(),
	)
}
