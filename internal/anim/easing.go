package anim

import (
	"sort"
	"sync"

	"github.com/san-kum/animato/internal/logging"
)

// EasingFunc reparameterizes progress in [0,1].
type EasingFunc func(t float64) float64

const (
	Linear    = "linear"
	EaseIn    = "ease-in"
	EaseOut   = "ease-out"
	EaseInOut = "ease-in-out"
)

var (
	easingsMu sync.RWMutex
	easings   = map[string]EasingFunc{
		Linear:    func(t float64) float64 { return t },
		EaseIn:    func(t float64) float64 { return t * t },
		EaseOut:   func(t float64) float64 { return t * (2 - t) },
		EaseInOut: easeInOut,
	}
	warnedEasing sync.Map
)

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// RegisterEasing adds or replaces a named easing.
func RegisterEasing(name string, fn EasingFunc) {
	easingsMu.Lock()
	defer easingsMu.Unlock()
	easings[name] = fn
}

// Easing returns the named easing. The empty name is linear; unknown
// names fall back to linear and are reported once.
func Easing(name string) EasingFunc {
	if name == "" {
		name = Linear
	}
	easingsMu.RLock()
	fn, ok := easings[name]
	easingsMu.RUnlock()
	if ok {
		return fn
	}
	if _, seen := warnedEasing.LoadOrStore(name, true); !seen {
		logging.Logger().Warn("unknown easing, using linear", "easing", name)
	}
	return easings[Linear]
}

// Ease applies the named easing to t.
func Ease(name string, t float64) float64 {
	return Easing(name)(t)
}

// EasingNames lists the registered easings.
func EasingNames() []string {
	easingsMu.RLock()
	defer easingsMu.RUnlock()
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
