package service

import (
	"context"
	"io"

	"elevator_tracker/internal/config"
	"elevator_tracker/internal/models"
	"elevator_tracker/internal/repository"
)

// TripLog exposes the write path: logging a trip, undoing one by id, and the
// most-recent view used by the UI.
type TripLog interface {
	Log(ctx context.Context, p LogParams) (models.TripRecord, error)
	Undo(ctx context.Context, id int64) (bool, error)
	Recent(ctx context.Context, limit int) ([]models.TripRecord, error)
}

// Stats derives totals, most-used ranking and top routes over a day scope.
type Stats interface {
	Usage(ctx context.Context, opts StatsOptions) (models.UsageStats, error)
}

// Export writes a scoped record set as CSV.
type Export interface {
	WriteCSV(ctx context.Context, scope DayScope, w io.Writer) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	TripLog
	Stats
	Export
}

// NewService wires the repository layer and the process configuration into
// concrete services.
func NewService(repos *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		TripLog: NewTripLogService(repos.Trips, cfg),
		Stats:   NewStatsService(repos.Trips, cfg),
		Export:  NewExportService(repos.Trips),
	}
}

// listScoped fetches the records a read operation runs over: one day's worth
// or the whole history.
func listScoped(ctx context.Context, trips repository.TripRepo, scope DayScope) ([]models.TripRecord, error) {
	if scope.All {
		return trips.ListAll(ctx)
	}
	return trips.ListByDay(ctx, scope.Day)
}
