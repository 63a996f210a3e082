package api

import (
	"log/slog"
	"sync"

	"maproute/pkg/model"
	"maproute/pkg/scene"
	"maproute/pkg/session"
)

// renderOp is one display instruction pushed to the frontend.
// Op selects the instruction, the remaining fields carry its payload.
type renderOp struct {
	Op string `json:"op"`

	Location *model.Location     `json:"location,omitempty"`
	Route    *model.Route        `json:"route,omitempty"`
	Style    *scene.RouteStyle   `json:"style,omitempty"`
	ID       string              `json:"id,omitempty"`
	Visible  bool                `json:"visible,omitempty"`
	Active   bool                `json:"active,omitempty"`
	Point    *model.Point        `json:"point,omitempty"`
	SW       *model.Point        `json:"sw,omitempty"`
	NE       *model.Point        `json:"ne,omitempty"`
	Cards    []session.CardView  `json:"cards,omitempty"`
	Rows     []model.TimelineRow `json:"rows,omitempty"`
	Index    *int                `json:"index,omitempty"`
	Open     bool                `json:"open,omitempty"`
	Message  string              `json:"message,omitempty"`
}

// renderBridge carries render and view commands from a session to
// whichever websocket client is currently attached. Commands issued
// while no client is connected are dropped; the session state itself
// survives and a reconnecting client starts from a reset.
type renderBridge struct {
	mu     sync.Mutex
	client *wsClient
}

func newRenderBridge() *renderBridge {
	return &renderBridge{}
}

func (b *renderBridge) attach(c *wsClient) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.client = c
}

func (b *renderBridge) detach(c *wsClient) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.client == c {
		b.client = nil
	}
}

func (b *renderBridge) emit(op renderOp) {
	b.mu.Lock()
	c := b.client
	b.mu.Unlock()

	if c == nil {
		return
	}
	select {
	case c.send <- op:
	default:
		slog.Warn("Render channel full, dropping op", "op", op.Op)
	}
}

func intPtr(v int) *int { return &v }

// scene.Renderer

func (b *renderBridge) AddMarker(loc *model.Location) {
	b.emit(renderOp{Op: "add_marker", Location: loc})
}

func (b *renderBridge) AddRoute(route *model.Route, style scene.RouteStyle) {
	b.emit(renderOp{Op: "add_route", Route: route, Style: &style})
}

func (b *renderBridge) CreatePopup(loc *model.Location, visible bool) {
	b.emit(renderOp{Op: "create_popup", Location: loc, Visible: visible})
}

func (b *renderBridge) AttachPopup(id string) {
	b.emit(renderOp{Op: "attach_popup", ID: id})
}

func (b *renderBridge) DetachPopup(id string) {
	b.emit(renderOp{Op: "detach_popup", ID: id})
}

func (b *renderBridge) SetPopupEmphasis(id string, active bool) {
	b.emit(renderOp{Op: "popup_emphasis", ID: id, Active: active})
}

func (b *renderBridge) PanTo(p model.Point) {
	b.emit(renderOp{Op: "pan_to", Point: &p})
}

func (b *renderBridge) FitBounds(sw, ne model.Point) {
	b.emit(renderOp{Op: "fit_bounds", SW: &sw, NE: &ne})
}

func (b *renderBridge) ClearAll() {
	b.emit(renderOp{Op: "clear_map"})
}

// session.View

func (b *renderBridge) ShowCards(cards []session.CardView) {
	b.emit(renderOp{Op: "show_cards", Cards: cards})
}

func (b *renderBridge) SetActiveCard(index int) {
	b.emit(renderOp{Op: "active_card", Index: intPtr(index)})
}

func (b *renderBridge) ShowTimeline(rows []model.TimelineRow) {
	b.emit(renderOp{Op: "show_timeline", Rows: rows})
}

func (b *renderBridge) SetActiveTimelineRow(index int) {
	b.emit(renderOp{Op: "active_timeline_row", Index: intPtr(index)})
}

func (b *renderBridge) SetTimelinePanel(open bool) {
	b.emit(renderOp{Op: "timeline_panel", Open: open})
}

func (b *renderBridge) SetLoading(active bool) {
	b.emit(renderOp{Op: "loading", Active: active})
}

func (b *renderBridge) ShowError(message string) {
	b.emit(renderOp{Op: "error", Message: message})
}

func (b *renderBridge) ClearViews() {
	b.emit(renderOp{Op: "clear_views"})
}
