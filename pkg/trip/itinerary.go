// Package trip implements the day-planner itinerary: ordering of timed
// stops, derivation of the timeline view and the plan text export.
package trip

import (
	"sort"
	"strings"

	"maproute/pkg/model"
)

// flexibleTime is shown for stops without a concrete clock time.
const flexibleTime = "Flexible"

// Itinerary holds the planner-mode working set: every location with a
// non-empty time. It is a derived view over the scene's locations and never
// owns them.
type Itinerary struct {
	stops []*model.Location
}

// New returns an empty itinerary.
func New() *Itinerary {
	return &Itinerary{}
}

// Register adds a timed location to the working set. The caller is
// responsible for only registering planner-mode locations with a time.
func (it *Itinerary) Register(loc *model.Location) {
	it.stops = append(it.stops, loc)
}

// Len returns the number of registered stops.
func (it *Itinerary) Len() int { return len(it.stops) }

// Reset clears the working set.
func (it *Itinerary) Reset() { it.stops = nil }

// Sorted returns the stops in canonical itinerary order: sequence ascending
// with missing sequences last, ties broken by lexicographic time.
func (it *Itinerary) Sorted() []*model.Location {
	sorted := make([]*model.Location, len(it.stops))
	copy(sorted, it.stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := seqOrInf(sorted[i]), seqOrInf(sorted[j])
		if si != sj {
			return si < sj
		}
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// seqOrInf maps a missing sequence to a value sorting after every real one.
func seqOrInf(loc *model.Location) int {
	if loc.Sequence == nil {
		return int(^uint(0) >> 1) // max int
	}
	return *loc.Sequence
}

// Build derives the timeline rows: one stop row per itinerary entry, with a
// transport row inserted between adjacent stops when a route can be
// associated and carries travel info. The association is best-effort (see
// FindConnecting); without a match no transport row is shown.
//
// locations is the scene's creation-order list, used to resolve each stop's
// carousel index. The derivation never alters the canonical ordering.
func (it *Itinerary) Build(locations []*model.Location, routes []*model.Route) []model.TimelineRow {
	sorted := it.Sorted()
	if len(sorted) == 0 {
		return nil
	}

	var rows []model.TimelineRow
	for i, stop := range sorted {
		timeDisplay := stop.Time
		if timeDisplay == "" {
			timeDisplay = flexibleTime
		}
		rows = append(rows, model.TimelineRow{
			Kind:          model.RowStop,
			LocationIndex: indexOf(locations, stop),
			Title:         stop.Name,
			Description:   stop.Description,
			Time:          timeDisplay,
			Duration:      stop.Duration,
		})

		if i == len(sorted)-1 {
			continue
		}
		route := FindConnecting(routes, stop, sorted[i+1])
		if route == nil || !route.HasTravelInfo() {
			continue
		}
		title := route.Transport
		if title == "" {
			title = "Travel"
		}
		rows = append(rows, model.TimelineRow{
			Kind:        model.RowTransport,
			Title:       title,
			Description: route.Name,
			Transport:   route.Transport,
			TravelTime:  route.TravelTime,
			Icon:        model.ClassifyTransport(route.Transport),
		})
	}
	return rows
}

// FindConnecting returns the first route whose name contains either stop's
// name as a substring. This is a heuristic association; routes are not
// explicitly linked to stop pairs, so a miss simply means no transport
// information is shown for the leg.
func FindConnecting(routes []*model.Route, a, b *model.Location) *model.Route {
	for _, r := range routes {
		if strings.Contains(r.Name, a.Name) || strings.Contains(r.Name, b.Name) {
			return r
		}
	}
	return nil
}

func indexOf(locations []*model.Location, loc *model.Location) int {
	for i, l := range locations {
		if l == loc {
			return i
		}
	}
	return -1
}
