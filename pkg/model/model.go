// Package model defines the core data types shared across the application:
// geographic points, locations, routes and the derived timeline rows.
package model

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Point is a geographic coordinate. Immutable once created; entities that
// share equal-valued points each hold their own copy.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Orb converts the point to an orb.Point (lng/lat order).
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// String formats the point with 5 decimal places, the precision shown on
// location cards.
func (p Point) String() string {
	return fmt.Sprintf("%.5f, %.5f", p.Lat, p.Lng)
}

// Location represents one place of interest produced by the model.
// Time, Duration and Sequence are only populated in planner mode, and only
// when the model supplies them.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    Point  `json:"position"`

	Time     string `json:"time,omitempty"`
	Duration string `json:"duration,omitempty"`
	// Sequence is a 1-based order hint. Nil means "no hint"; it sorts after
	// every present value.
	Sequence *int `json:"sequence,omitempty"`
}

// Route represents a directed connection between two points. Degenerate
// routes (Start == End) are allowed and rendered as-is.
type Route struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start Point  `json:"start"`
	End   Point  `json:"end"`

	Transport  string `json:"transport,omitempty"`
	TravelTime string `json:"travelTime,omitempty"`
}

// HasTravelInfo reports whether the route carries transport metadata worth
// showing as a timeline leg.
func (r *Route) HasTravelInfo() bool {
	return r.Transport != "" || r.TravelTime != ""
}

// TimelineRowKind discriminates stop rows from transport legs in the derived
// timeline view.
type TimelineRowKind string

const (
	RowStop      TimelineRowKind = "stop"
	RowTransport TimelineRowKind = "transport"
)

// TimelineRow is one row of the rendered day-plan timeline. Stop rows point
// at a Location (by carousel index); transport rows describe the leg between
// the surrounding stops.
type TimelineRow struct {
	Kind TimelineRowKind `json:"kind"`

	// Stop rows.
	LocationIndex int    `json:"locationIndex,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Time          string `json:"time,omitempty"`
	Duration      string `json:"duration,omitempty"`

	// Transport rows.
	Transport  string        `json:"transport,omitempty"`
	TravelTime string        `json:"travelTime,omitempty"`
	Icon       TransportKind `json:"icon,omitempty"`
}
