// Package geom draws individual shapes onto a 2D surface.
//
// Every drawer receives a [Pen] whose surface is already transformed into
// object-local space (origin at the object's anchor, rotation and scale
// applied) and the object's resolved property bag. Drawers first decode
// the bag into a typed options struct with documented defaults, then
// build a path and paint it.
//
// A drawer never panics on missing optional properties. A missing required
// property yields [ErrMissingProperty] and nothing is drawn; unparsable
// path data yields [ErrMalformedPath].
package geom
