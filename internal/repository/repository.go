package repository

import (
	"context"
	"database/sql"

	"elevator_tracker/internal/models"
)

// TripRepo is the persistence boundary for trip records. The store owns the
// record collection; callers get value copies and request deletions by id.
type TripRepo interface {
	Insert(ctx context.Context, t models.TripRecord) (models.TripRecord, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]models.TripRecord, error)
	ListByDay(ctx context.Context, day string) ([]models.TripRecord, error)
	ListAll(ctx context.Context) ([]models.TripRecord, error)
}

type Repository struct {
	Trips TripRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Trips: NewTripSQLite(db),
	}
}
