package geom

import "errors"

var (
	ErrUnknownShape    = errors.New("geom: unknown shape type")
	ErrMissingProperty = errors.New("geom: missing required property")
	ErrMalformedPath   = errors.New("geom: malformed path data")
)
