// Package geo provides the viewport bounds tracker: the smallest lat/lng
// rectangle covering every point seen in the current session.
package geo

import (
	"github.com/paulmach/orb"

	"maproute/pkg/model"
)

// Bounds accumulates points into an axis-aligned bounding rectangle.
// The zero value is an empty region; Extend grows it incrementally.
// Not safe for concurrent use; callers serialize access per session.
type Bounds struct {
	bound orb.Bound
	empty bool
}

// NewBounds returns an empty bounds tracker.
func NewBounds() *Bounds {
	return &Bounds{empty: true}
}

// Extend grows the region to include p.
func (b *Bounds) Extend(p model.Point) {
	if b.empty {
		b.bound = orb.Bound{Min: p.Orb(), Max: p.Orb()}
		b.empty = false
		return
	}
	b.bound = b.bound.Extend(p.Orb())
}

// IsEmpty reports whether no points have been added since the last reset.
func (b *Bounds) IsEmpty() bool {
	return b.empty
}

// Reset clears the region back to empty.
func (b *Bounds) Reset() {
	b.bound = orb.Bound{}
	b.empty = true
}

// SouthWest returns the minimum corner of the region. Undefined when empty.
func (b *Bounds) SouthWest() model.Point {
	return model.Point{Lat: b.bound.Min[1], Lng: b.bound.Min[0]}
}

// NorthEast returns the maximum corner of the region. Undefined when empty.
func (b *Bounds) NorthEast() model.Point {
	return model.Point{Lat: b.bound.Max[1], Lng: b.bound.Max[0]}
}

// Center returns the midpoint of the region. Undefined when empty.
func (b *Bounds) Center() model.Point {
	c := b.bound.Center()
	return model.Point{Lat: c[1], Lng: c[0]}
}

// Orb exposes the underlying orb.Bound for geometry math.
func (b *Bounds) Orb() orb.Bound {
	return b.bound
}
