package geom

import (
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/scene"
)

// elementColors follows the CPK convention.
var elementColors = map[string]string{
	"H":  "#ffffff",
	"C":  "#333333",
	"N":  "#3050f8",
	"O":  "#ff0d0d",
	"F":  "#90e050",
	"Na": "#ab5cf2",
	"Mg": "#8aff00",
	"P":  "#ff8000",
	"S":  "#ffff30",
	"Cl": "#1ff01f",
	"K":  "#8f40d4",
	"Ca": "#3dff00",
	"Fe": "#e06633",
	"Br": "#a62929",
	"I":  "#940094",
}

const unknownElementColor = "#ff1493"

// ElementColor returns the display colour for an element symbol.
func ElementColor(symbol string) string {
	if c, ok := elementColors[symbol]; ok {
		return c
	}
	if len(symbol) > 0 {
		if c, ok := elementColors[strings.ToUpper(symbol[:1])+strings.ToLower(symbol[1:])]; ok {
			return c
		}
	}
	return unknownElementColor
}

// bondWidths maps bond order to stroke width.
var bondWidths = map[int]float64{1: 2, 2: 3, 3: 5}

// Atom is one element placed in molecule space.
type Atom struct {
	ID      string
	Element string
	X, Y    float64
	Radius  float64
}

// Bond joins two atoms by index.
type Bond struct {
	From, To int
	Order    int
}

// MoleculeOptions configures a ball-and-stick molecule. Bonds reference
// atoms by index or by atom id.
type MoleculeOptions struct {
	Atoms      []Atom // atoms: [{element, x, y, radius?, id?}]
	Bonds      []Bond // bonds: [{from, to, order?}]
	AtomRadius float64 // atomRadius, default 15
	ShowLabels bool    // showLabels, default true
}

func moleculeOptions(p scene.Props) (MoleculeOptions, error) {
	o := MoleculeOptions{
		AtomRadius: math.Max(1, p.Num(15, "atomRadius")),
		ShowLabels: p.Bool(true, "showLabels", "labels"),
	}
	items := p["atoms"].Items()
	// Atoms carrying only x and y decode as a point list.
	for _, pt := range p["atoms"].PointList() {
		items = append(items, scene.Props{"x": scene.Number(pt.X), "y": scene.Number(pt.Y)})
	}
	if len(items) == 0 {
		return o, missing(scene.Molecule, "atoms")
	}
	index := make(map[string]int, len(items))
	for i, a := range items {
		atom := Atom{
			ID:      a.Str("", "id"),
			Element: a.Str("C", "element", "symbol"),
			X:       a.Num(0, "x"),
			Y:       a.Num(0, "y"),
			Radius:  a.Num(o.AtomRadius, "radius", "r"),
		}
		if atom.ID != "" {
			index[atom.ID] = i
		}
		o.Atoms = append(o.Atoms, atom)
	}

	ref := func(b scene.Props, key string) (int, bool) {
		v := b[key]
		if f, ok := v.Float(); ok && v.Kind() == scene.KindNumber {
			i := int(f)
			return i, i >= 0 && i < len(o.Atoms)
		}
		if s, ok := v.Text(); ok {
			i, found := index[s]
			return i, found
		}
		return 0, false
	}
	for _, b := range p["bonds"].Items() {
		from, okf := ref(b, "from")
		to, okt := ref(b, "to")
		if !okf || !okt {
			logging.Logger().Debug("bond references unknown atom", "from", b["from"].Any(), "to", b["to"].Any())
			continue
		}
		order := int(b.Num(1, "order", "type"))
		if _, ok := bondWidths[order]; !ok {
			order = 1
		}
		o.Bonds = append(o.Bonds, Bond{From: from, To: to, Order: order})
	}
	return o, nil
}

func drawMolecule(p *Pen, props scene.Props) error {
	o, err := moleculeOptions(props)
	if err != nil {
		return err
	}
	s := p.Surface
	bondColor := p.lineColor("#666666")

	// Bonds sit beneath atoms.
	for _, b := range o.Bonds {
		a1, a2 := o.Atoms[b.From], o.Atoms[b.To]
		s.MoveTo(a1.X, a1.Y)
		s.LineTo(a2.X, a2.Y)
		if err := p.strokeWith(bondColor, bondWidths[b.Order]); err != nil {
			return err
		}
	}

	for _, a := range o.Atoms {
		c, _ := ParseColor(ElementColor(a.Element))
		ellipsePath(s, a.X, a.Y, a.Radius, a.Radius)
		p.setColor(c)
		if err := s.FillPreserve(); err != nil {
			s.ClearPath()
			return err
		}
		if err := p.strokeWith(gg.RGBA{R: 0.2, G: 0.2, B: 0.2, A: 1}, 1); err != nil {
			return err
		}
		if !o.ShowLabels {
			continue
		}
		s.Push()
		s.Translate(a.X, a.Y)
		err := label(p, TextOptions{
			Text:     a.Element,
			Size:     math.Max(8, a.Radius*0.9),
			Weight:   "bold",
			Align:    "center",
			Baseline: "middle",
		}, labelColor(a.Element))
		s.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// labelColor picks black on light atoms and white on dark ones.
func labelColor(element string) gg.RGBA {
	c, _ := ParseColor(ElementColor(element))
	if 0.299*c.R+0.587*c.G+0.114*c.B > 0.6 {
		return gg.RGBA{A: 1}
	}
	return gg.RGBA{R: 1, G: 1, B: 1, A: 1}
}
