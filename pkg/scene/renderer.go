package scene

import "maproute/pkg/model"

// RouteStyle describes how the visible polyline of a route is drawn.
// Implementations also create an invisible, wider hit-target line so thin
// routes stay clickable.
type RouteStyle struct {
	Color  string `json:"color"`
	Weight int    `json:"weight"`
	Dashed bool   `json:"dashed"`
}

// Renderer is the capability interface to the map-rendering collaborator.
// Implementations own all widget mechanics (markers, polylines, overlay
// positioning, viewport animation); the scene only issues commands.
// Calls are made from a single goroutine per session.
type Renderer interface {
	// AddMarker places a pin for the location.
	AddMarker(loc *model.Location)

	// AddRoute draws the route with the given style.
	AddRoute(route *model.Route, style RouteStyle)

	// CreatePopup creates the popup bound to the location's content.
	// When visible is false the popup exists but is not attached to the map.
	CreatePopup(loc *model.Location, visible bool)

	// AttachPopup attaches a previously created popup to the map.
	AttachPopup(locationID string)

	// DetachPopup removes a popup from the map without destroying it.
	DetachPopup(locationID string)

	// SetPopupEmphasis toggles the active-content emphasis of a popup.
	SetPopupEmphasis(locationID string, active bool)

	// PanTo moves the viewport center to the point.
	PanTo(p model.Point)

	// FitBounds fits the viewport to the rectangle.
	FitBounds(southWest, northEast model.Point)

	// ClearAll releases every marker, route and popup.
	ClearAll()
}
