package anim

import (
	"github.com/san-kum/animato/internal/scene"
)

// Lerp is linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate blends from toward to at the given progress. Numbers and
// equal-length point lists blend continuously after easing; every other
// value switches from from to to at progress 0.5.
func Interpolate(from, to scene.Value, progress float64, easing string) scene.Value {
	progress = clamp01(progress)
	e := Easing(easing)(progress)

	if a, ok := numeric(from); ok {
		if b, ok := numeric(to); ok {
			return scene.Number(Lerp(a, b, e))
		}
	}

	if from.Kind() == scene.KindPoints && to.Kind() == scene.KindPoints {
		pa, pb := from.PointList(), to.PointList()
		if len(pa) == len(pb) {
			out := make([]scene.Point, len(pa))
			for i := range pa {
				out[i] = scene.Point{X: Lerp(pa[i].X, pb[i].X, e), Y: Lerp(pa[i].Y, pb[i].Y, e)}
			}
			return scene.Points(out...)
		}
	}

	if from.Kind() == scene.KindNumbers && to.Kind() == scene.KindNumbers {
		na, nb := from.NumberList(), to.NumberList()
		if len(na) == len(nb) {
			out := make([]float64, len(na))
			for i := range na {
				out[i] = Lerp(na[i], nb[i], e)
			}
			return scene.Numbers(out...)
		}
	}

	if progress < 0.5 {
		return from
	}
	return to
}

// numeric accepts only real numbers; numeric-looking strings such as
// colours stay discrete.
func numeric(v scene.Value) (float64, bool) {
	if v.Kind() != scene.KindNumber {
		return 0, false
	}
	return v.Float()
}
