package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/animato/internal/anim"
	"github.com/san-kum/animato/internal/scene"
)

type TrailOptions struct {
	Width, Height int
	Step          float64
	Stroke        string
	Background    string
}

// TrailPoints samples the x/y position of object id across the scene.
// Times where the object is absent are skipped.
func TrailPoints(sc *scene.Scene, id string, step float64) []scene.Point {
	ts := anim.SampleTimes(sc.Duration, step)
	xs, okx := anim.Sample(sc, id, "x", ts)
	ys, oky := anim.Sample(sc, id, "y", ts)

	points := make([]scene.Point, 0, len(ts))
	for i := range ts {
		if okx[i] && oky[i] {
			points = append(points, scene.Point{X: xs[i], Y: ys[i]})
		}
	}
	return points
}

// Trail draws the motion path of object id in canvas coordinates, with
// markers at the first and last positions.
func Trail(sc *scene.Scene, id string, opts TrailOptions) (string, error) {
	points := TrailPoints(sc, id, opts.Step)
	if len(points) < 2 {
		return "", fmt.Errorf("%w: %s", ErrNoTrail, id)
	}
	return TrajectoryToSVG(points, opts), nil
}

// TrajectoryToSVG renders points as a polyline on a width x height canvas.
func TrajectoryToSVG(points []scene.Point, opts TrailOptions) string {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 800, 600
	}
	stroke := opts.Stroke
	if stroke == "" {
		stroke = "#e74c3c"
	}
	bg := opts.Background
	if bg == "" {
		bg = "#ffffff"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, bg, stroke)

	for i, p := range points {
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", p.X, p.Y)
		}
	}
	sb.WriteString("\"/>\n")

	first, last := points[0], points[len(points)-1]
	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"%s\"/>\n", first.X, first.Y, stroke)
	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"none\" stroke=\"%s\"/>\n", last.X, last.Y, stroke)
	sb.WriteString("</svg>")
	return sb.String()
}
