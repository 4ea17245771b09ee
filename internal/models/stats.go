package models

// ElevatorTotal is one entry of the totals-per-elevator ranking.
type ElevatorTotal struct {
	Elevator string `json:"elevator"`
	Count    int    `json:"count"`
}

// RouteShare is one elevator's share of a single route's trips.
// Percent is rounded half-up to a whole percent; shares within a route are
// rounded independently and may not sum to exactly 100.
type RouteShare struct {
	Elevator string `json:"elevator"`
	Count    int    `json:"count"`
	Percent  int    `json:"percent"`
}

// RouteStat is the usage breakdown of one directed route (from -> to).
type RouteStat struct {
	FromFloor int          `json:"from_floor"`
	ToFloor   int          `json:"to_floor"`
	Count     int          `json:"count"`
	Elevators []RouteShare `json:"elevators"`
}

// UsageStats is the full derived view over a scoped set of trip records.
type UsageStats struct {
	Totals       []ElevatorTotal `json:"totals"`
	TopElevators []ElevatorTotal `json:"top_elevators"` // all elevators tied for the highest count
	TopRoutes    []RouteStat     `json:"top_routes"`
}
