// Package session ties the pipeline together for one client: it owns the
// scene, the itinerary, the selection state and the timeline panel, and
// keeps every coupled widget (map popups, carousel, timeline) consistent.
package session

import (
	"context"
	"log/slog"
	"sync"

	"maproute/pkg/model"
	"maproute/pkg/query"
	"maproute/pkg/scene"
	"maproute/pkg/trip"
)

// noSelection is the active index before any result exists.
const noSelection = -1

// Session is the explicit per-client state object. All writes are
// serialized through the session mutex; the HTTP/websocket layer may call
// in from any goroutine.
type Session struct {
	mu sync.Mutex

	renderer scene.Renderer
	view     View
	interp   *query.Interpreter

	scene     *scene.Scene
	itinerary *trip.Itinerary
	timeline  []model.TimelineRow
	active    int
	panel     PanelState

	// generation tags each submission; scene effects carrying a stale
	// generation are dropped, so a superseded stream can never populate a
	// fresh session.
	generation uint64
	cancel     context.CancelFunc

	loaderCount int
}

// New creates an idle session in explorer mode.
func New(renderer scene.Renderer, view View, interp *query.Interpreter) *Session {
	return &Session{
		renderer:  renderer,
		view:      view,
		interp:    interp,
		scene:     scene.New(scene.ModeExplorer, renderer),
		itinerary: trip.New(),
		active:    noSelection,
	}
}

// Submit runs one query through the full pipeline: reset, stream, itinerary
// build, card rendering. Pipeline failures are surfaced in the view's error
// region and returned; they never propagate further.
func (s *Session) Submit(ctx context.Context, prompt string, planner bool) (*query.Result, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancel != nil {
		// Cancel a superseded in-flight stream; its remaining effects are
		// also dropped by the generation check.
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	mode := scene.ModeExplorer
	if planner {
		mode = scene.ModePlanner
	}
	s.resetLocked(mode)
	s.showLoaderLocked()
	interp := s.interp
	s.mu.Unlock()

	res, err := interp.Run(ctx, prompt, planner, &dispatcher{session: s, generation: gen})

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.hideLoaderLocked()

	if gen != s.generation {
		// A newer submission took over while we streamed; report nothing.
		return nil, context.Canceled
	}

	if err != nil {
		slog.Error("Query failed", "error", err)
		s.view.ShowError(err.Error())
		return nil, err
	}

	if res.Skipped > 0 {
		slog.Warn("Query completed with rejected entities", "skipped", res.Skipped)
	}

	if planner && s.itinerary.Len() > 0 {
		s.timeline = s.itinerary.Build(s.scene.Locations(), s.scene.Routes())
		s.view.ShowTimeline(s.timeline)
		s.openTimelineLocked()
	}

	s.view.ShowCards(buildCards(s.scene.Locations(), planner))
	if s.scene.LocationCount() > 0 {
		s.selectLocked(0)
	}

	return res, nil
}

// dispatcher feeds interpreter calls into the session's scene, dropping
// effects from superseded generations.
type dispatcher struct {
	session    *Session
	generation uint64
}

func (d *dispatcher) AddLocation(args scene.LocationArgs) error {
	s := d.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.generation != s.generation {
		return nil
	}

	loc := s.scene.AddLocation(args)
	if s.scene.Mode().Planner() && loc.Time != "" {
		s.itinerary.Register(loc)
	}
	return nil
}

func (d *dispatcher) AddRoute(args scene.RouteArgs) error {
	s := d.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.generation != s.generation {
		return nil
	}

	s.scene.AddRoute(args)
	return nil
}

// Select makes the location at index the single active one and synchronizes
// card, popups and timeline. Out-of-range requests are ignored.
func (s *Session) Select(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectLocked(index)
}

// Step moves the selection by delta (±1). Requests that would leave the
// valid range are silently ignored; there is no wraparound.
func (s *Session) Step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == noSelection {
		return
	}
	next := s.active + delta
	if next < 0 || next >= s.scene.LocationCount() {
		return
	}
	s.selectLocked(next)
	s.renderer.PanTo(s.scene.Locations()[next].Position)
}

// FocusActive pans the map to the active location, if any.
func (s *Session) FocusActive() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == noSelection || s.active >= s.scene.LocationCount() {
		return
	}
	s.renderer.PanTo(s.scene.Locations()[s.active].Position)
}

func (s *Session) selectLocked(index int) {
	if index < 0 || index >= s.scene.LocationCount() {
		return
	}
	s.active = index

	s.view.SetActiveCard(index)

	planner := s.scene.Mode().Planner()
	for i, loc := range s.scene.Locations() {
		if planner {
			// Planner mode: only the active popup stays on the map.
			if i == index {
				s.renderer.AttachPopup(loc.ID)
			} else {
				s.renderer.DetachPopup(loc.ID)
			}
		}
		s.renderer.SetPopupEmphasis(loc.ID, i == index)
	}

	if planner {
		s.highlightTimelineLocked(index)
	}
}

// highlightTimelineLocked marks the timeline row whose title equals the
// active location's name. Exact string match, first match wins.
func (s *Session) highlightTimelineLocked(index int) {
	name := s.scene.Locations()[index].Name
	for i, row := range s.timeline {
		if row.Kind == model.RowStop && row.Title == name {
			s.view.SetActiveTimelineRow(i)
			return
		}
	}
}

// ActiveIndex returns the active location index, or -1 when no selection
// exists yet.
func (s *Session) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Timeline returns the derived timeline rows of the last planner query.
func (s *Session) Timeline() []model.TimelineRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeline
}

// Locations returns the scene's locations in carousel order.
func (s *Session) Locations() []*model.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene.Locations()
}

// Routes returns the scene's routes in creation order.
func (s *Session) Routes() []*model.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene.Routes()
}

// ItineraryLen returns the number of registered itinerary stops.
func (s *Session) ItineraryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itinerary.Len()
}

// ExportPlan serializes the current itinerary. Returns "" when there is no
// plan to export.
func (s *Session) ExportPlan() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itinerary.Export(s.scene.Routes())
}

// Reset clears all entities, releases rendering handles and collapses the
// timeline panel. Called at the start of every submission so partial state
// from a prior query never leaks into the next.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.resetLocked(s.scene.Mode())
}

func (s *Session) resetLocked(mode scene.Mode) {
	s.scene.Reset(mode)
	s.itinerary.Reset()
	s.timeline = nil
	s.active = noSelection
	s.view.ClearViews()
	s.closeTimelineLocked()
}

// OpenTimeline requests the timeline panel to open.
func (s *Session) OpenTimeline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openTimelineLocked()
}

// CloseTimeline requests the timeline panel to close.
func (s *Session) CloseTimeline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeTimelineLocked()
}

func (s *Session) openTimelineLocked() {
	if s.panel == PanelOpen || s.panel == PanelOpening {
		return
	}
	s.panel = PanelOpening
	s.view.SetTimelinePanel(true)
}

func (s *Session) closeTimelineLocked() {
	if s.panel == PanelClosed || s.panel == PanelClosing {
		return
	}
	s.panel = PanelClosing
	s.view.SetTimelinePanel(false)
}

// PanelSettled is the collaborator's signal that the panel transition
// finished. The panel changes the available viewport area, so the viewport
// is refit to the current bounds here rather than after a fixed delay.
func (s *Session) PanelSettled(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case open && s.panel == PanelOpening:
		s.panel = PanelOpen
	case !open && s.panel == PanelClosing:
		s.panel = PanelClosed
	default:
		slog.Debug("Ignoring out-of-order panel event", "open", open, "state", s.panel.String())
		return
	}
	s.scene.RefitViewport()
}

// Panel returns the current panel state.
func (s *Session) Panel() PanelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

func (s *Session) showLoaderLocked() {
	s.loaderCount++
	if s.loaderCount == 1 {
		s.view.SetLoading(true)
	}
}

func (s *Session) hideLoaderLocked() {
	s.loaderCount--
	if s.loaderCount <= 0 {
		s.loaderCount = 0
		s.view.SetLoading(false)
	}
}
