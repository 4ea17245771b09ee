package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"elevator_tracker/internal/config"
	"elevator_tracker/internal/models"
	"elevator_tracker/internal/repository"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 200
)

type TripLogService struct {
	trips repository.TripRepo
	cfg   *config.Config
	now   func() time.Time // swapped in tests
}

func NewTripLogService(trips repository.TripRepo, cfg *config.Config) *TripLogService {
	return &TripLogService{trips: trips, cfg: cfg, now: time.Now}
}

// Log validates the trip against the configured label set and floor range,
// resolves the day (today unless backdated) and persists the record.
func (s *TripLogService) Log(ctx context.Context, p LogParams) (models.TripRecord, error) {
	elevator := strings.ToUpper(strings.TrimSpace(p.Elevator))
	if !s.validLabel(elevator) {
		return models.TripRecord{}, models.NewValidationError(fmt.Sprintf("unknown elevator %q", p.Elevator))
	}
	if !s.validFloor(p.FromFloor) || !s.validFloor(p.ToFloor) {
		return models.TripRecord{}, models.NewValidationError(
			fmt.Sprintf("floor out of range (%d–%d)", s.cfg.MinFloor, s.cfg.MaxFloor))
	}
	if p.FromFloor == p.ToFloor {
		return models.TripRecord{}, models.NewValidationError("from/to floors cannot be the same")
	}

	// Day defaults to the UTC date of the occurred_at stamp itself, so the
	// two never disagree across a midnight boundary. ResolveDay only
	// validates an explicitly supplied backdate.
	occurred := s.now().UTC()
	day := occurred.Format(models.DayLayout)
	if p.Day != "" {
		var err error
		if day, err = ResolveDay(p.Day); err != nil {
			return models.TripRecord{}, err
		}
	}

	return s.trips.Insert(ctx, models.TripRecord{
		OccurredAt: occurred,
		Day:        day,
		Elevator:   elevator,
		FromFloor:  p.FromFloor,
		ToFloor:    p.ToFloor,
	})
}

// Undo removes one record by id. Absence is reported via the bool, never as
// an error, so undoing twice is harmless.
func (s *TripLogService) Undo(ctx context.Context, id int64) (bool, error) {
	return s.trips.DeleteByID(ctx, id)
}

// Recent returns the newest records first. A non-positive limit falls back to
// the default; oversized limits are capped.
func (s *TripLogService) Recent(ctx context.Context, limit int) ([]models.TripRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.trips.ListRecent(ctx, limit)
}

func (s *TripLogService) validLabel(elevator string) bool {
	for _, e := range s.cfg.Elevators {
		if e == elevator {
			return true
		}
	}
	return false
}

func (s *TripLogService) validFloor(f int) bool {
	return f >= s.cfg.MinFloor && f <= s.cfg.MaxFloor
}
