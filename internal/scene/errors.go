package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScene indicates a scene that breaks a structural invariant.
	ErrInvalidScene = errors.New("scene: invalid scene")

	// ErrSchema indicates input that does not match the VisualizationData schema.
	ErrSchema = errors.New("scene: schema violation")

	// ErrNoFrames indicates a lookup on a scene with nothing to show.
	ErrNoFrames = errors.New("scene: no frames")

	// ErrUnknownFormat indicates an input format other than json or yaml.
	ErrUnknownFormat = errors.New("scene: unknown format")
)

// ValidationError ties an invariant violation to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidScene
}
