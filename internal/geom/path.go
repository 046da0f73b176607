package geom

import (
	"fmt"
	"strconv"

	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/scene"
)

// PathOp is one absolute path command: M, L, Q, C or Z.
type PathOp struct {
	Cmd  byte
	Args []float64
}

// Path is parsed path data, normalized to absolute M/L/Q/C/Z commands.
type Path []PathOp

// Apply replays p onto s.
func (p Path) Apply(s Surface) {
	for _, op := range p {
		a := op.Args
		switch op.Cmd {
		case 'M':
			s.MoveTo(a[0], a[1])
		case 'L':
			s.LineTo(a[0], a[1])
		case 'Q':
			s.QuadraticTo(a[0], a[1], a[2], a[3])
		case 'C':
			s.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case 'Z':
			s.ClosePath()
		}
	}
}

// argCounts is the number of numbers each command consumes per repeat.
var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

// ParsePath parses SVG path data. Elliptical arcs are approximated by a
// straight line to their endpoint.
func ParsePath(d string) (Path, error) {
	lx := pathLexer{src: d}
	var (
		out          Path
		cmd          byte
		cx, cy       float64 // current point
		sx, sy       float64 // subpath start
		ctrlX, ctrlY float64 // last control point for S and T
		lastCmd      byte
		started      bool
	)

	for {
		lx.skipSeparators()
		if lx.done() {
			break
		}
		if c := lx.peek(); isCommand(c) {
			lx.pos++
			cmd = c
			if upper(cmd) == 'Z' {
				if !started {
					return nil, lx.errorf("close before move")
				}
				out = append(out, PathOp{Cmd: 'Z'})
				cx, cy = sx, sy
				lastCmd = 'Z'
				continue
			}
		} else if cmd == 0 {
			return nil, lx.errorf("expected command, found %q", c)
		} else if upper(cmd) == 'Z' {
			return nil, lx.errorf("unexpected number after Z")
		}

		n := argCounts[upper(cmd)]
		args := make([]float64, n)
		for i := range args {
			lx.skipSeparators()
			var err error
			if upper(cmd) == 'A' && (i == 3 || i == 4) {
				args[i], err = lx.flag()
			} else {
				args[i], err = lx.number()
			}
			if err != nil {
				return nil, err
			}
		}

		rel := cmd >= 'a'
		if !started && upper(cmd) != 'M' {
			return nil, lx.errorf("path must start with a move")
		}
		if rel {
			for i := range args {
				switch upper(cmd) {
				case 'H':
					args[i] += cx
				case 'V':
					args[i] += cy
				case 'A':
					if i == 5 {
						args[i] += cx
					} else if i == 6 {
						args[i] += cy
					}
				default:
					if i%2 == 0 {
						args[i] += cx
					} else {
						args[i] += cy
					}
				}
			}
		}

		switch upper(cmd) {
		case 'M':
			out = append(out, PathOp{'M', args})
			cx, cy, sx, sy = args[0], args[1], args[0], args[1]
			started = true
			// Further pairs after a move are implicit line-tos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
			lastCmd = 'M'
			continue
		case 'L':
			out = append(out, PathOp{'L', args})
			cx, cy = args[0], args[1]
		case 'H':
			out = append(out, PathOp{'L', []float64{args[0], cy}})
			cx = args[0]
		case 'V':
			out = append(out, PathOp{'L', []float64{cx, args[0]}})
			cy = args[0]
		case 'C':
			out = append(out, PathOp{'C', args})
			ctrlX, ctrlY = args[2], args[3]
			cx, cy = args[4], args[5]
		case 'S':
			x1, y1 := cx, cy
			if lastCmd == 'C' || lastCmd == 'S' {
				x1, y1 = 2*cx-ctrlX, 2*cy-ctrlY
			}
			out = append(out, PathOp{'C', []float64{x1, y1, args[0], args[1], args[2], args[3]}})
			ctrlX, ctrlY = args[0], args[1]
			cx, cy = args[2], args[3]
		case 'Q':
			out = append(out, PathOp{'Q', args})
			ctrlX, ctrlY = args[0], args[1]
			cx, cy = args[2], args[3]
		case 'T':
			x1, y1 := cx, cy
			if lastCmd == 'Q' || lastCmd == 'T' {
				x1, y1 = 2*cx-ctrlX, 2*cy-ctrlY
			}
			out = append(out, PathOp{'Q', []float64{x1, y1, args[0], args[1]}})
			ctrlX, ctrlY = x1, y1
			cx, cy = args[0], args[1]
		case 'A':
			out = append(out, PathOp{'L', []float64{args[5], args[6]}})
			cx, cy = args[5], args[6]
		}
		lastCmd = upper(cmd)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedPath)
	}
	return out, nil
}

func isCommand(c byte) bool {
	_, ok := argCounts[upper(c)]
	return ok && (c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

type pathLexer struct {
	src string
	pos int
}

func (l *pathLexer) done() bool { return l.pos >= len(l.src) }
func (l *pathLexer) peek() byte { return l.src[l.pos] }

func (l *pathLexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: at offset %d: %s", ErrMalformedPath, l.pos, fmt.Sprintf(format, args...))
}

func (l *pathLexer) skipSeparators() {
	for !l.done() {
		switch l.peek() {
		case ' ', '\t', '\n', '\r', '\f', ',':
			l.pos++
		default:
			return
		}
	}
}

// number scans one SVG number: sign, digits, at most one dot, optional
// exponent. "1.5.5" scans as 1.5 then .5, and "10-5" as 10 then -5.
func (l *pathLexer) number() (float64, error) {
	start := l.pos
	if !l.done() && (l.peek() == '+' || l.peek() == '-') {
		l.pos++
	}
	digits, dot := 0, false
scan:
	for !l.done() {
		c := l.peek()
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			break scan
		}
		l.pos++
	}
	if digits == 0 {
		l.pos = start
		if l.done() {
			return 0, l.errorf("expected number, found end of data")
		}
		return 0, l.errorf("expected number, found %q", l.peek())
	}
	if !l.done() && (l.peek() == 'e' || l.peek() == 'E') {
		save := l.pos
		l.pos++
		if !l.done() && (l.peek() == '+' || l.peek() == '-') {
			l.pos++
		}
		exp := 0
		for !l.done() && l.peek() >= '0' && l.peek() <= '9' {
			l.pos++
			exp++
		}
		if exp == 0 {
			l.pos = save
		}
	}
	f, err := strconv.ParseFloat(l.src[start:l.pos], 64)
	if err != nil {
		return 0, l.errorf("bad number %q", l.src[start:l.pos])
	}
	return f, nil
}

// flag scans an arc flag, which may be packed without separators.
func (l *pathLexer) flag() (float64, error) {
	if l.done() {
		return 0, l.errorf("expected flag, found end of data")
	}
	switch l.peek() {
	case '0':
		l.pos++
		return 0, nil
	case '1':
		l.pos++
		return 1, nil
	}
	return 0, l.errorf("expected flag, found %q", l.peek())
}

// PathOptions configures a free-form path.
type PathOptions struct {
	D string // d|path|data, required
}

func pathOptions(p scene.Props) (PathOptions, error) {
	o := PathOptions{D: p.Str("", "d", "path", "data")}
	if o.D == "" {
		return o, missing(scene.Path, "d")
	}
	return o, nil
}

func drawPath(p *Pen, props scene.Props) error {
	o, err := pathOptions(props)
	if err != nil {
		return err
	}
	path, err := ParsePath(o.D)
	if err != nil {
		logging.Logger().Debug("skipping path", "error", err)
		return err
	}
	path.Apply(p.Surface)
	if p.Fill == nil && p.Stroke == nil {
		return p.strokeLine(defaultLine)
	}
	return p.paint()
}
