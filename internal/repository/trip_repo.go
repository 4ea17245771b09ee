package repository

import (
	"context"
	"database/sql"

	"elevator_tracker/internal/models"
)

type TripSQLite struct {
	db *sql.DB
}

func NewTripSQLite(db *sql.DB) *TripSQLite { return &TripSQLite{db: db} }

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const timestampLayout = "2006-01-02 15:04:05"

const (
	insertTripSQL = `
		INSERT INTO trips (occurred_at, day, elevator, from_floor, to_floor)
		VALUES (?, ?, ?, ?, ?)
	`
	deleteTripSQL = `DELETE FROM trips WHERE id = ?`

	selectTripCols = `SELECT id, occurred_at, day, elevator, from_floor, to_floor FROM trips`
)

// Insert persists a new trip in a single statement and returns the record with
// the id SQLite assigned. AUTOINCREMENT keeps ids unique and monotonically
// increasing even across deletions.
func (r *TripSQLite) Insert(ctx context.Context, t models.TripRecord) (models.TripRecord, error) {
	t.OccurredAt = t.OccurredAt.UTC()

	res, err := r.db.ExecContext(ctx, insertTripSQL,
		t.OccurredAt.Format(timestampLayout),
		t.Day,
		t.Elevator,
		t.FromFloor,
		t.ToFloor,
	)
	if err != nil {
		return models.TripRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.TripRecord{}, err
	}
	t.ID = id
	return t, nil
}

// DeleteByID removes one record. Absence is not an error: the bool reports
// whether anything was actually deleted.
func (r *TripSQLite) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteTripSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListRecent returns the newest records first, truncated to limit.
func (r *TripSQLite) ListRecent(ctx context.Context, limit int) ([]models.TripRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectTripCols+` ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return scanTrips(rows)
}

// ListByDay returns all records attributed to the given day, ascending id order.
func (r *TripSQLite) ListByDay(ctx context.Context, day string) ([]models.TripRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectTripCols+` WHERE day = ? ORDER BY id ASC`, day)
	if err != nil {
		return nil, err
	}
	return scanTrips(rows)
}

// ListAll returns every record, ascending id order.
func (r *TripSQLite) ListAll(ctx context.Context) ([]models.TripRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectTripCols+` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return scanTrips(rows)
}

func scanTrips(rows *sql.Rows) ([]models.TripRecord, error) {
	defer rows.Close()

	out := make([]models.TripRecord, 0, 64)
	for rows.Next() {
		var t models.TripRecord
		if err := rows.Scan(&t.ID, &t.OccurredAt, &t.Day, &t.Elevator, &t.FromFloor, &t.ToFloor); err != nil {
			return nil, err
		}
		t.OccurredAt = t.OccurredAt.UTC()
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
