package scene

import "sort"

// Props is an open property bag. Unknown keys are carried through
// untouched; drawers pick the keys they recognise.
type Props map[string]Value

func (p Props) Has(key string) bool {
	v, ok := p[key]
	return ok && !v.IsZero()
}

// Num returns the numeric value of the first present key, or def.
func (p Props) Num(def float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			if f, ok := v.Float(); ok {
				return f
			}
		}
	}
	return def
}

// NumOK is Num without a default.
func (p Props) NumOK(keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			if f, ok := v.Float(); ok {
				return f, true
			}
		}
	}
	return 0, false
}

// Str returns the string value of the first present key, or def.
func (p Props) Str(def string, keys ...string) string {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			if s, ok := v.Text(); ok {
				return s
			}
		}
	}
	return def
}

func (p Props) Bool(def bool, keys ...string) bool {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			if b, ok := v.Truth(); ok {
				return b
			}
		}
	}
	return def
}

func (p Props) Points(key string) []Point {
	return p[key].PointList()
}

// Clone returns a shallow copy safe to overwrite key by key.
func (p Props) Clone() Props {
	c := make(Props, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

func (p Props) Equal(o Props) bool {
	if len(p) != len(o) {
		return false
	}
	for k, v := range p {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Keys returns the property names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p Props) toMap() map[string]any {
	m := make(map[string]any, len(p))
	for k, v := range p {
		m[k] = v.Any()
	}
	return m
}
