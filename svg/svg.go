package svg

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/graftactil/graftactil/model"
	"github.com/graftactil/graftactil/placement"
	"github.com/graftactil/graftactil/scene"
)

// tracer traces with key 'graftactil.svg'.
func tracer() tracing.Trace {
	return tracing.Select("graftactil.svg")
}

const (
	header = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"

	svgNS      = "http://www.w3.org/2000/svg"
	inkscapeNS = "http://www.inkscape.org/namespaces/inkscape"
)

// Colours of the drawing.
const (
	PlateFill      = "#ffffff"
	VerticalGrid   = "#e6e6e6"
	HorizontalGrid = "#f5f5f5"
	AxisStroke     = "#000000"
	CurveStroke    = "#222222"
	MarkerFill     = "#ffffff"
	MarkerStroke   = "#000000"
	DotFill        = "#000000"
)

// Layer IDs in drawing order.
const (
	LayerPlate   = "plate"
	LayerGrid    = "grid"
	LayerAxes    = "axes"
	LayerCurves  = "curves"
	LayerMarkers = "markers"
	LayerTicks   = "ticks"
	LayerBraille = "braille"
)

// Write renders s as an SVG document to w.
func Write(w io.Writer, s *scene.Scene) error {
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	if err := html.Render(w, Document(s)); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Document builds the SVG element tree for s.
func Document(s *scene.Scene) *html.Node {
	W, H := s.Plate.WidthMM, s.Plate.HeightMM
	root := element("svg",
		"xmlns", svgNS,
		"width", num(W)+"mm",
		"height", num(H)+"mm",
		"viewBox", fmt.Sprintf("0 0 %s %s", num(W), num(H)),
	)
	root.Attr = append(root.Attr, html.Attribute{Namespace: "xmlns", Key: "inkscape", Val: inkscapeNS})

	plate := layer(LayerPlate, "Plate")
	plate.AppendChild(element("rect",
		"x", "0", "y", "0", "width", num(W), "height", num(H), "fill", PlateFill))
	root.AppendChild(plate)

	root.AppendChild(gridLayer(s))
	root.AppendChild(lineLayer(LayerAxes, "Axes", s.Axes, AxisStroke, s.Strokes.Axis))
	root.AppendChild(curveLayer(s))
	root.AppendChild(markerLayer(s))
	root.AppendChild(lineLayer(LayerTicks, "Ticks", s.Ticks, AxisStroke, s.Strokes.Axis))
	root.AppendChild(brailleLayer(s))

	tracer().Debugf("svg: %d curves, %d markers, %d labels",
		len(s.Curves), len(s.AllMarkers()), len(s.Labels))
	return root
}

func gridLayer(s *scene.Scene) *html.Node {
	g := layer(LayerGrid, "Grid")
	for _, l := range s.Grid {
		colour := HorizontalGrid
		if l.Start.X == l.End.X {
			colour = VerticalGrid
		}
		g.AppendChild(line(l, colour, s.Strokes.Grid))
	}
	return g
}

func lineLayer(id, label string, lines []scene.Line, colour string, width float64) *html.Node {
	g := layer(id, label)
	for _, l := range lines {
		g.AppendChild(line(l, colour, width))
	}
	return g
}

func curveLayer(s *scene.Scene) *html.Node {
	g := layer(LayerCurves, "Curves")
	for _, c := range s.Curves {
		for i, run := range c.Path.Subpaths() {
			pl := element("polyline",
				"id", fmt.Sprintf("curve-%s-%d", c.ID, i),
				"points", points(run),
				"fill", "none",
				"stroke", CurveStroke,
				"stroke-width", num(s.Strokes.Curve),
			)
			if dash := c.Style.DashArray(); dash != "" {
				setAttr(pl, "stroke-dasharray", dash)
			}
			g.AppendChild(pl)
		}
	}
	return g
}

func markerLayer(s *scene.Scene) *html.Node {
	g := layer(LayerMarkers, "Markers")
	for _, set := range s.Markers {
		sub := element("g", "id", "markers-"+set.ID)
		for _, mk := range set.Markers {
			sub.AppendChild(outline(mk.Outline(), s.Strokes.MarkerEdge))
		}
		g.AppendChild(sub)
	}
	return g
}

func outline(o placement.Outline, edge float64) *html.Node {
	var n *html.Node
	switch o.Kind {
	case placement.Rect:
		n = element("rect",
			"x", num(o.Box.X), "y", num(o.Box.Y),
			"width", num(o.Box.Width), "height", num(o.Box.Height))
	case placement.Polygon:
		n = element("polygon", "points", points(o.Vertices))
	default:
		n = element("circle", "cx", num(o.Center.X), "cy", num(o.Center.Y), "r", num(o.Radius))
	}
	setAttr(n, "fill", MarkerFill)
	setAttr(n, "stroke", MarkerStroke)
	setAttr(n, "stroke-width", num(edge))
	return n
}

// brailleLayer adds one sub-layer per label. Dots are drawn relative to the
// label origin, with the Y-up dot offsets flipped into page orientation.
func brailleLayer(s *scene.Scene) *html.Node {
	g := layer(LayerBraille, "Braille")
	seen := make(map[string]int)
	for _, l := range s.Labels {
		base := labelID(l.Text)
		id := base
		if n := seen[base]; n > 0 {
			id = fmt.Sprintf("%s_%d", base, n+1)
		}
		seen[base]++
		sub := layer(id, "Braille: "+l.Text)
		inner := element("g", "transform", fmt.Sprintf("translate(%s,%s)", num(l.Origin.X), num(l.Origin.Y)))
		for _, d := range l.Dots {
			inner.AppendChild(element("circle",
				"cx", num(d.Offset.X),
				"cy", num(-d.Offset.Y),
				"r", num(d.DiameterMM/2),
				"fill", DotFill,
				"stroke", "none",
			))
		}
		sub.AppendChild(inner)
		g.AppendChild(sub)
	}
	return g
}

func line(l scene.Line, colour string, width float64) *html.Node {
	return element("line",
		"x1", num(l.Start.X), "y1", num(l.Start.Y),
		"x2", num(l.End.X), "y2", num(l.End.Y),
		"stroke", colour,
		"stroke-width", num(width),
	)
}

func layer(id, label string) *html.Node {
	g := element("g", "id", id)
	g.Attr = append(g.Attr,
		html.Attribute{Namespace: "inkscape", Key: "groupmode", Val: "layer"},
		html.Attribute{Namespace: "inkscape", Key: "label", Val: label},
	)
	return g
}

// element creates an SVG element with attributes given as key, value pairs.
func element(tag string, kv ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// num formats v with at most four decimals, enough for 0.1 µm.
func num(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func points(pts []model.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

// labelID turns label text into an element id.
func labelID(text string) string {
	var b strings.Builder
	b.WriteString("braille_")
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
