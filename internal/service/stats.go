package service

import (
	"context"
	"math"
	"sort"

	"elevator_tracker/internal/config"
	"elevator_tracker/internal/models"
	"elevator_tracker/internal/repository"
)

// defaultRouteLimit matches the historical UI, which showed the top 8 routes.
const defaultRouteLimit = 8

type StatsService struct {
	trips repository.TripRepo
	cfg   *config.Config
}

func NewStatsService(trips repository.TripRepo, cfg *config.Config) *StatsService {
	return &StatsService{trips: trips, cfg: cfg}
}

// Usage fetches the scoped records and runs the aggregation over them.
func (s *StatsService) Usage(ctx context.Context, opts StatsOptions) (models.UsageStats, error) {
	records, err := listScoped(ctx, s.trips, opts.Scope)
	if err != nil {
		return models.UsageStats{}, err
	}

	limit := opts.RouteLimit
	if limit <= 0 {
		limit = defaultRouteLimit
	}
	var labels []string
	if opts.FullLabels {
		labels = s.cfg.Elevators
	}
	return ComputeStats(records, labels, limit), nil
}

// ComputeStats is the pure aggregation over an already-scoped record set.
// When labels is non-empty, totals are zero-filled over that set; otherwise
// elevators with no matching records are omitted. routeLimit truncates the
// top-routes view. Empty input yields empty views.
func ComputeStats(records []models.TripRecord, labels []string, routeLimit int) models.UsageStats {
	totals := totalsPerElevator(records, labels)
	return models.UsageStats{
		Totals:       totals,
		TopElevators: mostUsed(totals),
		TopRoutes:    topRoutes(records, routeLimit),
	}
}

// totalsPerElevator counts records per label, sorted by count descending with
// ties broken by ascending label.
func totalsPerElevator(records []models.TripRecord, labels []string) []models.ElevatorTotal {
	counts := make(map[string]int, len(labels))
	for _, l := range labels {
		counts[l] = 0
	}
	for _, r := range records {
		counts[r.Elevator]++
	}

	out := make([]models.ElevatorTotal, 0, len(counts))
	for e, c := range counts {
		out = append(out, models.ElevatorTotal{Elevator: e, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Elevator < out[j].Elevator
	})
	return out
}

// mostUsed returns every elevator tied for the highest count, i.e. the maximal
// prefix of the sorted totals. Zero-filled entries never rank.
func mostUsed(totals []models.ElevatorTotal) []models.ElevatorTotal {
	if len(totals) == 0 || totals[0].Count == 0 {
		return nil
	}
	top := totals[0].Count
	out := make([]models.ElevatorTotal, 0, 1)
	for _, t := range totals {
		if t.Count != top {
			break
		}
		out = append(out, t)
	}
	return out
}

type routeKey struct {
	from, to int
}

// topRoutes groups records by directed (from, to) pair, attaches the per-route
// elevator distribution, sorts by count descending (ties by ascending from,
// then to) and truncates to limit.
func topRoutes(records []models.TripRecord, limit int) []models.RouteStat {
	counts := make(map[routeKey]int)
	byElevator := make(map[routeKey]map[string]int)
	for _, r := range records {
		k := routeKey{from: r.FromFloor, to: r.ToFloor}
		counts[k]++
		if byElevator[k] == nil {
			byElevator[k] = make(map[string]int)
		}
		byElevator[k][r.Elevator]++
	}

	routes := make([]models.RouteStat, 0, len(counts))
	for k, c := range counts {
		routes = append(routes, models.RouteStat{
			FromFloor: k.from,
			ToFloor:   k.to,
			Count:     c,
			Elevators: routeShares(byElevator[k], c),
		})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Count != routes[j].Count {
			return routes[i].Count > routes[j].Count
		}
		if routes[i].FromFloor != routes[j].FromFloor {
			return routes[i].FromFloor < routes[j].FromFloor
		}
		return routes[i].ToFloor < routes[j].ToFloor
	})
	if len(routes) > limit {
		routes = routes[:limit]
	}
	return routes
}

// routeShares builds one route's distribution, count descending with ties by
// ascending label. Percentages are rounded per entry and not re-normalized.
func routeShares(counts map[string]int, total int) []models.RouteShare {
	out := make([]models.RouteShare, 0, len(counts))
	for e, c := range counts {
		out = append(out, models.RouteShare{
			Elevator: e,
			Count:    c,
			Percent:  roundPercent(c, total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Elevator < out[j].Elevator
	})
	return out
}

// roundPercent rounds 100*count/total half-up to the nearest whole percent.
func roundPercent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(count)*100/float64(total) + 0.5))
}
