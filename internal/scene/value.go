package scene

import (
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ValueKind tags the payload held by a Value.
type ValueKind uint8

const (
	KindNone ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindPoints
	KindNumbers
	KindList
)

// Point is a 2D coordinate in object-local or scene space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Value is one entry of a property bag: a number, string, bool, point
// list, number list, or a list of nested property bags.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
	pts  []Point
	nums []float64
	list []Props
}

func Number(f float64) Value     { return Value{kind: KindNumber, num: f} }
func String(s string) Value      { return Value{kind: KindString, str: s} }
func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func Points(p ...Point) Value    { return Value{kind: KindPoints, pts: p} }
func Numbers(n ...float64) Value { return Value{kind: KindNumbers, nums: n} }
func List(items ...Props) Value  { return Value{kind: KindList, list: items} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsZero() bool    { return v.kind == KindNone }

// Float returns the numeric form of v. Numeric strings are accepted.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Text returns the string form of v.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	}
	return "", false
}

func (v Value) Truth() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindNumber:
		return v.num != 0, true
	case KindString:
		b, err := strconv.ParseBool(v.str)
		return b, err == nil
	}
	return false, false
}

func (v Value) PointList() []Point    { return v.pts }
func (v Value) NumberList() []float64 { return v.nums }
func (v Value) Items() []Props        { return v.list }

// Equal reports deep equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindPoints:
		if len(v.pts) != len(o.pts) {
			return false
		}
		for i := range v.pts {
			if v.pts[i] != o.pts[i] {
				return false
			}
		}
		return true
	case KindNumbers:
		if len(v.nums) != len(o.nums) {
			return false
		}
		for i := range v.nums {
			if v.nums[i] != o.nums[i] {
				return false
			}
		}
		return true
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return true
}

// FromAny converts a generic decoded value (encoding/json or yaml.v3
// output) into a Value.
func FromAny(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Value{}
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case map[string]any:
		return List(propsFromMap(t))
	case []any:
		return fromSlice(t)
	}
	return Value{}
}

func fromSlice(items []any) Value {
	if len(items) == 0 {
		return Numbers()
	}
	nums := make([]float64, 0, len(items))
	for _, it := range items {
		f, ok := asNumber(it)
		if !ok {
			nums = nil
			break
		}
		nums = append(nums, f)
	}
	if nums != nil {
		return Numbers(nums...)
	}
	pts := make([]Point, 0, len(items))
	for _, it := range items {
		p, ok := asPoint(it)
		if !ok {
			pts = nil
			break
		}
		pts = append(pts, p)
	}
	if pts != nil {
		return Points(pts...)
	}
	list := make([]Props, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			list = append(list, propsFromMap(m))
		}
	}
	return List(list...)
}

func asNumber(raw any) (float64, bool) {
	v := FromAny(raw)
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// asPoint accepts [x, y] pairs and {"x":..,"y":..} maps with no other keys.
func asPoint(raw any) (Point, bool) {
	switch t := raw.(type) {
	case []any:
		if len(t) != 2 {
			return Point{}, false
		}
		x, okx := asNumber(t[0])
		y, oky := asNumber(t[1])
		return Point{x, y}, okx && oky
	case map[string]any:
		if len(t) != 2 {
			return Point{}, false
		}
		x, okx := asNumber(t["x"])
		y, oky := asNumber(t["y"])
		return Point{x, y}, okx && oky
	}
	return Point{}, false
}

func propsFromMap(m map[string]any) Props {
	p := make(Props, len(m))
	for k, raw := range m {
		p[k] = FromAny(raw)
	}
	return p
}

// Any converts v back to a generic value suitable for encoding.
func (v Value) Any() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindPoints:
		out := make([][]float64, len(v.pts))
		for i, p := range v.pts {
			out[i] = []float64{p.X, p.Y}
		}
		return out
	case KindNumbers:
		if v.nums == nil {
			return []float64{}
		}
		return v.nums
	case KindList:
		out := make([]map[string]any, len(v.list))
		for i, p := range v.list {
			out[i] = p.toMap()
		}
		return out
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	return v.Any(), nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}
