package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/animato/internal/logging"
)

// Validate checks the structural invariants of s. All violations are
// reported, joined.
func Validate(s *Scene) error {
	if s == nil {
		return fmt.Errorf("%w: nil scene", ErrInvalidScene)
	}
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if len(s.Frames) > 0 && len(s.Shapes) > 0 {
		add("scene", "has both frames and shapes")
	}
	if s.Duration < 0 || math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) {
		add("duration", "must be a finite non-negative number, got %v", s.Duration)
	}
	if s.FPS < 0 {
		add("fps", "must be positive, got %v", s.FPS)
	}

	prev := math.Inf(-1)
	for i, f := range s.Frames {
		if f.Timestamp < prev {
			add(fmt.Sprintf("frames[%d].timestamp", i), "%v is before previous frame at %v", f.Timestamp, prev)
		}
		prev = f.Timestamp
		seen := make(map[string]bool, len(f.Objects))
		for j, o := range f.Objects {
			if o.ID != "" && seen[o.ID] {
				add(fmt.Sprintf("frames[%d].objects[%d].id", i, j), "duplicate id %q", o.ID)
			}
			seen[o.ID] = true
		}
	}

	seen := make(map[string]bool, len(s.Shapes))
	for i, sh := range s.Shapes {
		if sh.ID == "" {
			add(fmt.Sprintf("shapes[%d].id", i), "is empty")
		} else if seen[sh.ID] {
			add(fmt.Sprintf("shapes[%d].id", i), "duplicate id %q", sh.ID)
		}
		seen[sh.ID] = true
		for j, a := range sh.Animations {
			if a.Property == "" {
				add(fmt.Sprintf("shapes[%d].animations[%d].property", i, j), "is empty")
			}
		}
	}

	if end := s.ContentEnd(); s.Duration < end {
		add("duration", "%v is shorter than content ending at %v", s.Duration, end)
	}
	return errors.Join(errs...)
}

// Normalize raises a too-short duration to cover the scene content, then
// validates the result.
func Normalize(s *Scene) error {
	if s == nil {
		return fmt.Errorf("%w: nil scene", ErrInvalidScene)
	}
	if end := s.ContentEnd(); s.Duration < end {
		if s.Duration > 0 {
			logging.Logger().Warn("scene duration shorter than content, raising",
				"scene", s.ID, "duration", s.Duration, "content_end", end)
		}
		s.Duration = end
	}
	return Validate(s)
}
