package models

import "time"

// DayLayout is the calendar-date format used for the day a trip is attributed to.
const DayLayout = "2006-01-02"

// TripRecord is one logged elevator trip. Records are immutable once created;
// the only mutation the store supports is deletion by id.
type TripRecord struct {
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"` // UTC, set at creation
	Day        string    `json:"day"`         // "YYYY-MM-DD"; defaults to the UTC date of OccurredAt
	Elevator   string    `json:"elevator"`    // normalized label, e.g. "A"
	FromFloor  int       `json:"from_floor"`
	ToFloor    int       `json:"to_floor"`
}
