package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"elevator_tracker/internal/models"
)

func TestExport_WriteCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	occurred := time.Date(2026, 8, 30, 9, 15, 30, 0, time.UTC)
	records := []models.TripRecord{
		{ID: 1, OccurredAt: occurred, Day: "2026-08-30", Elevator: "A", FromFloor: 0, ToFloor: 7},
		{ID: 2, OccurredAt: occurred.Add(time.Minute), Day: "2026-08-30", Elevator: "C", FromFloor: 7, ToFloor: 0},
	}
	repo := &fakeTripRepo{byDay: records}
	svc := NewExportService(repo)

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), ForDay("2026-08-30"), &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"id", "occurred_at", "day", "elevator", "from_floor", "to_floor"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Fatalf("header[%d]: got %q want %q", i, rows[0][i], col)
		}
	}

	if rows[1][0] != "1" || rows[1][3] != "A" || rows[1][4] != "0" || rows[1][5] != "7" || rows[1][2] != "2026-08-30" {
		t.Fatalf("row mismatch: %v", rows[1])
	}
	if rows[1][1] != "2026-08-30T09:15:30Z" {
		t.Fatalf("occurred_at not RFC3339 UTC: %q", rows[1][1])
	}
	if rows[2][0] != "2" || rows[2][3] != "C" || rows[2][4] != "7" || rows[2][5] != "0" {
		t.Fatalf("row mismatch: %v", rows[2])
	}
}

func TestExport_WriteCSV_QuotesDelimiters(t *testing.T) {
	t.Parallel()

	// a label containing the delimiter must survive a round trip intact
	records := []models.TripRecord{
		{ID: 1, OccurredAt: time.Now().UTC(), Day: "2026-08-30", Elevator: `NORTH,"A"`, FromFloor: 1, ToFloor: 2},
	}
	repo := &fakeTripRepo{all: records}
	svc := NewExportService(repo)

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), AllTime(), &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if rows[1][3] != `NORTH,"A"` {
		t.Fatalf("quoting broke the field: %q", rows[1][3])
	}
}

func TestExport_WriteCSV_Deterministic(t *testing.T) {
	t.Parallel()

	records := []models.TripRecord{
		{ID: 5, OccurredAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), Day: "2026-08-30", Elevator: "B", FromFloor: 2, ToFloor: 9},
	}
	repo := &fakeTripRepo{byDay: records}
	svc := NewExportService(repo)

	var first, second bytes.Buffer
	if err := svc.WriteCSV(context.Background(), ForDay("2026-08-30"), &first); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if err := svc.WriteCSV(context.Background(), ForDay("2026-08-30"), &second); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("same input must yield byte-identical output")
	}
}

func TestExport_WriteCSV_EmptyScope(t *testing.T) {
	t.Parallel()

	repo := &fakeTripRepo{}
	svc := NewExportService(repo)

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), ForDay("2026-08-30"), &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty scope should export only the header, got %v", rows)
	}
}

func TestExport_WriteCSV_RepoError(t *testing.T) {
	t.Parallel()

	repo := &fakeTripRepo{listErr: errors.New("db down")}
	svc := NewExportService(repo)

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), AllTime(), &buf)
	if !errors.Is(err, repo.listErr) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("no partial output on failure, got %q", buf.String())
	}
}
