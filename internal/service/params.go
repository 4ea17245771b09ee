package service

// LogParams carries the caller-supplied fields of one trip.
type LogParams struct {
	Elevator  string // label, normalized to trimmed upper case before validation
	FromFloor int
	ToFloor   int
	Day       string // optional "YYYY-MM-DD"; empty means today (UTC)
}

// DayScope selects the records a read operation runs over: one calendar day,
// or the whole history when All is set.
type DayScope struct {
	Day string // "YYYY-MM-DD"; ignored when All is set
	All bool
}

// ForDay scopes to a single resolved day.
func ForDay(day string) DayScope { return DayScope{Day: day} }

// AllTime scopes to every record ever logged.
func AllTime() DayScope { return DayScope{All: true} }

// StatsOptions controls a stats computation.
type StatsOptions struct {
	Scope      DayScope
	FullLabels bool // zero-fill totals over the full configured label set
	RouteLimit int  // top-routes cutoff; <= 0 means the default
}
