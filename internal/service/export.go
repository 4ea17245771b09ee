package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"elevator_tracker/internal/repository"
)

// csvHeader mirrors the persisted column set. occurred_at is rendered as an
// RFC3339 UTC timestamp, day as an ISO date.
var csvHeader = []string{"id", "occurred_at", "day", "elevator", "from_floor", "to_floor"}

type ExportService struct {
	trips repository.TripRepo
}

func NewExportService(trips repository.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// WriteCSV streams the scoped records, ascending id order, as CSV. Output is
// deterministic: the same record set always yields byte-identical bytes.
// encoding/csv applies standard quoting for fields containing the delimiter
// or quote character.
func (s *ExportService) WriteCSV(ctx context.Context, scope DayScope, w io.Writer) error {
	records, err := listScoped(ctx, s.trips, scope)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.OccurredAt.UTC().Format(time.RFC3339),
			r.Day,
			r.Elevator,
			strconv.Itoa(r.FromFloor),
			strconv.Itoa(r.ToFloor),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
