// Package scene owns the map entities of one session: locations, routes and
// the bounds tracker. It materializes interpreted function-call arguments
// into entities and drives the renderer.
package scene

import (
	"github.com/google/uuid"

	"maproute/pkg/geo"
	"maproute/pkg/model"
)

// Mode selects between the two operation modes.
type Mode int

const (
	// ModeExplorer surfaces many loosely related points of interest.
	ModeExplorer Mode = iota
	// ModePlanner produces a single ordered day itinerary.
	ModePlanner
)

// Planner reports whether the mode is the day-planner mode.
func (m Mode) Planner() bool { return m == ModePlanner }

// LocationArgs are the validated arguments of one "location" call.
type LocationArgs struct {
	Name        string
	Description string
	Lat         float64
	Lng         float64
	Time        string
	Duration    string
	Sequence    *int
}

// RouteArgs are the validated arguments of one "line" call.
type RouteArgs struct {
	Name       string
	Start      model.Point
	End        model.Point
	Transport  string
	TravelTime string
}

// Scene holds the map entities of one session. Entities are only ever
// appended between resets; no deduplication is performed even when the model
// emits near-identical results.
type Scene struct {
	mode      Mode
	renderer  Renderer
	bounds    *geo.Bounds
	locations []*model.Location
	routes    []*model.Route
}

// New creates an empty scene for the given mode.
func New(mode Mode, r Renderer) *Scene {
	return &Scene{
		mode:     mode,
		renderer: r,
		bounds:   geo.NewBounds(),
	}
}

// Mode returns the scene's operation mode.
func (s *Scene) Mode() Mode { return s.mode }

// AddLocation materializes one location: appends the entity, extends the
// bounds, places the marker, pans to the point and refits the viewport.
// Popups start visible in explorer mode and hidden in planner mode.
func (s *Scene) AddLocation(args LocationArgs) *model.Location {
	loc := &model.Location{
		ID:          uuid.NewString(),
		Name:        args.Name,
		Description: args.Description,
		Position:    model.Point{Lat: args.Lat, Lng: args.Lng},
		Time:        args.Time,
		Duration:    args.Duration,
		Sequence:    args.Sequence,
	}
	s.locations = append(s.locations, loc)

	s.bounds.Extend(loc.Position)
	s.renderer.AddMarker(loc)
	s.renderer.PanTo(loc.Position)
	s.RefitViewport()
	s.renderer.CreatePopup(loc, s.mode == ModeExplorer)

	return loc
}

// AddRoute materializes one route: appends the entity, extends the bounds
// with both endpoints and refits the viewport. Styling depends on the mode.
func (s *Scene) AddRoute(args RouteArgs) *model.Route {
	route := &model.Route{
		ID:         uuid.NewString(),
		Name:       args.Name,
		Start:      args.Start,
		End:        args.End,
		Transport:  args.Transport,
		TravelTime: args.TravelTime,
	}
	s.routes = append(s.routes, route)

	s.bounds.Extend(route.Start)
	s.bounds.Extend(route.End)
	s.RefitViewport()
	s.renderer.AddRoute(route, routeStyle(s.mode))

	return route
}

// RefitViewport fits the viewport to the current bounds, if any.
func (s *Scene) RefitViewport() {
	if s.bounds.IsEmpty() {
		return
	}
	s.renderer.FitBounds(s.bounds.SouthWest(), s.bounds.NorthEast())
}

// Locations returns the locations in creation order (the carousel order).
func (s *Scene) Locations() []*model.Location { return s.locations }

// Routes returns the routes in creation order.
func (s *Scene) Routes() []*model.Route { return s.routes }

// LocationCount returns the number of locations.
func (s *Scene) LocationCount() int { return len(s.locations) }

// Bounds returns the bounds tracker.
func (s *Scene) Bounds() *geo.Bounds { return s.bounds }

// Reset releases all entities and their rendering handles. The scene's mode
// is preserved; the session decides the mode for the next query.
func (s *Scene) Reset(mode Mode) {
	s.mode = mode
	s.locations = nil
	s.routes = nil
	s.bounds.Reset()
	s.renderer.ClearAll()
}

// routeStyle returns the mode-dependent styling: planner routes are thicker,
// dashed and blue; explorer routes are thinner, solid and purple.
func routeStyle(mode Mode) RouteStyle {
	if mode == ModePlanner {
		return RouteStyle{Color: "#2196F3", Weight: 4, Dashed: true}
	}
	return RouteStyle{Color: "#CC0099", Weight: 3, Dashed: false}
}
