package scene

import (
	"testing"

	"maproute/pkg/model"
)

// fakeRenderer records render commands for assertions.
type fakeRenderer struct {
	markers    []string
	routes     []string
	popups     map[string]bool // id -> visible at creation
	fitCalls   int
	panCalls   int
	clearCalls int
	lastStyle  RouteStyle
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{popups: make(map[string]bool)}
}

func (f *fakeRenderer) AddMarker(loc *model.Location)          { f.markers = append(f.markers, loc.Name) }
func (f *fakeRenderer) AddRoute(r *model.Route, st RouteStyle) { f.routes = append(f.routes, r.Name); f.lastStyle = st }
func (f *fakeRenderer) CreatePopup(loc *model.Location, visible bool) {
	f.popups[loc.ID] = visible
}
func (f *fakeRenderer) AttachPopup(id string)                  {}
func (f *fakeRenderer) DetachPopup(id string)                  {}
func (f *fakeRenderer) SetPopupEmphasis(id string, active bool) {}
func (f *fakeRenderer) PanTo(p model.Point)                    { f.panCalls++ }
func (f *fakeRenderer) FitBounds(sw, ne model.Point)           { f.fitCalls++ }
func (f *fakeRenderer) ClearAll()                              { f.clearCalls++ }

func TestAddLocationAppendsWithoutDeduplication(t *testing.T) {
	r := newFakeRenderer()
	s := New(ModeExplorer, r)

	args := LocationArgs{Name: "Monas", Description: "National Monument", Lat: -6.1754, Lng: 106.8272}
	first := s.AddLocation(args)
	second := s.AddLocation(args)

	if s.LocationCount() != 2 {
		t.Fatalf("expected 2 locations, got %d", s.LocationCount())
	}
	if first.ID == second.ID {
		t.Error("identical calls must still create distinct entities")
	}
	if len(r.markers) != 2 || r.panCalls != 2 {
		t.Errorf("renderer not driven per call: markers=%d pans=%d", len(r.markers), r.panCalls)
	}
}

func TestPopupVisibilityByMode(t *testing.T) {
	for _, tc := range []struct {
		mode    Mode
		visible bool
	}{
		{ModeExplorer, true},
		{ModePlanner, false},
	} {
		r := newFakeRenderer()
		s := New(tc.mode, r)
		loc := s.AddLocation(LocationArgs{Name: "A", Lat: 1, Lng: 2})
		if r.popups[loc.ID] != tc.visible {
			t.Errorf("mode %v: popup visible=%v, want %v", tc.mode, r.popups[loc.ID], tc.visible)
		}
	}
}

func TestAddRouteExtendsBoundsWithBothEndpoints(t *testing.T) {
	r := newFakeRenderer()
	s := New(ModePlanner, r)

	s.AddRoute(RouteArgs{
		Name:  "Walk from A to B",
		Start: model.Point{Lat: -6.2, Lng: 106.8},
		End:   model.Point{Lat: -6.9, Lng: 107.6},
	})

	if s.Bounds().IsEmpty() {
		t.Fatal("bounds should cover both endpoints")
	}
	sw, ne := s.Bounds().SouthWest(), s.Bounds().NorthEast()
	if sw.Lat != -6.9 || ne.Lng != 107.6 {
		t.Errorf("bounds not extended with both endpoints: sw=%v ne=%v", sw, ne)
	}
	if r.fitCalls == 0 {
		t.Error("viewport should be refit after adding a route")
	}
}

func TestRouteStyleByMode(t *testing.T) {
	r := newFakeRenderer()
	s := New(ModePlanner, r)
	s.AddRoute(RouteArgs{Name: "leg"})
	if !r.lastStyle.Dashed || r.lastStyle.Weight != 4 {
		t.Errorf("planner routes should be thick and dashed: %+v", r.lastStyle)
	}

	s = New(ModeExplorer, r)
	s.AddRoute(RouteArgs{Name: "link"})
	if r.lastStyle.Dashed || r.lastStyle.Weight != 3 {
		t.Errorf("explorer routes should be thin and solid: %+v", r.lastStyle)
	}
}

func TestDegenerateRouteIsKept(t *testing.T) {
	s := New(ModeExplorer, newFakeRenderer())
	p := model.Point{Lat: 5, Lng: 5}
	route := s.AddRoute(RouteArgs{Name: "loop", Start: p, End: p})
	if route.Start != route.End {
		t.Error("degenerate route endpoints should be preserved as-is")
	}
	if len(s.Routes()) != 1 {
		t.Error("degenerate route should still be stored")
	}
}

func TestReset(t *testing.T) {
	r := newFakeRenderer()
	s := New(ModePlanner, r)
	s.AddLocation(LocationArgs{Name: "A", Lat: 1, Lng: 1})
	s.AddRoute(RouteArgs{Name: "leg"})

	s.Reset(ModeExplorer)

	if s.LocationCount() != 0 || len(s.Routes()) != 0 {
		t.Error("entities should be cleared on reset")
	}
	if !s.Bounds().IsEmpty() {
		t.Error("bounds should be empty after reset")
	}
	if r.clearCalls != 1 {
		t.Errorf("renderer handles should be released once, got %d", r.clearCalls)
	}
	if s.Mode() != ModeExplorer {
		t.Error("reset should apply the new mode")
	}
}
