package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/wordcloud/pkg/cloud"
)

const hoverCSS = `
    .word { transition: opacity 0.2s ease; }
    svg:hover .word { opacity: 0.5; }
    svg:hover .word:hover { opacity: 1; }`

// SVGOption configures an SVG surface.
type SVGOption func(*SVG)

// WithTitle adds a <title> element.
func WithTitle(title string) SVGOption { return func(s *SVG) { s.title = title } }

// WithHoverHighlight fades all words but the one under the pointer.
func WithHoverHighlight() SVGOption { return func(s *SVG) { s.hover = true } }

// SVG is an element surface: every word becomes one <text> element
// carrying its classes and attributes. It cannot be sampled, so preserve
// mode falls back to clearing it.
type SVG struct {
	w, h       int
	background string
	title      string
	hover      bool
	words      []cloud.Glyph
	cells      []svgCell
}

type svgCell struct {
	x, y, side float64
	color      string
}

// NewSVG returns an empty w×h SVG surface.
func NewSVG(w, h int, opts ...SVGOption) *SVG {
	s := &SVG{w: w, h: h}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SVG) Size() (int, int) { return s.w, s.h }

func (s *SVG) Clear(background string) {
	s.background = background
	s.words = s.words[:0]
	s.cells = s.cells[:0]
}

func (s *SVG) DrawGlyph(g cloud.Glyph) { s.words = append(s.words, g) }

func (s *SVG) FillCell(x, y, side float64, color string) {
	s.cells = append(s.cells, svgCell{x: x, y: y, side: side, color: color})
}

// Len returns the number of words drawn.
func (s *SVG) Len() int { return len(s.words) }

// Bytes renders the surface as a standalone SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.w, s.h, s.w, s.h)
	if s.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(s.title))
	}
	if s.hover {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", hoverCSS)
	}
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(s.background))
	}
	if len(s.cells) > 0 {
		buf.WriteString(`  <g class="mask">` + "\n")
		for _, c := range s.cells {
			fmt.Fprintf(&buf, `    <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				num(c.x), num(c.y), num(c.side), num(c.side), escapeXML(c.color))
		}
		buf.WriteString("  </g>\n")
	}
	for _, g := range s.words {
		renderWord(&buf, g)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderWord(buf *bytes.Buffer, g cloud.Glyph) {
	transform := fmt.Sprintf("translate(%s %s)", num(g.X), num(g.Y))
	if g.Rotation != 0 {
		transform += fmt.Sprintf(" rotate(%s)", num(-g.Rotation*180/math.Pi))
	}
	classes := "word"
	if g.Classes != "" {
		classes += " " + g.Classes
	}

	fmt.Fprintf(buf, `  <text class="%s" transform="%s" x="%s" y="%s" font-family="%s" font-weight="%s" font-size="%s" fill="%s" dominant-baseline="middle" white-space="pre"`,
		escapeXML(classes), transform, num(g.OffsetX), num(g.OffsetY+g.FontSize*0.5),
		escapeXML(g.FontFamily), escapeXML(g.FontWeight), num(g.FontSize), escapeXML(g.Color))
	for _, k := range slices.Sorted(maps.Keys(g.Attributes)) {
		if !validAttrName(k) {
			continue
		}
		fmt.Fprintf(buf, ` %s="%s"`, k, escapeXML(g.Attributes[k]))
	}
	fmt.Fprintf(buf, ">%s</text>\n", escapeXML(g.Text))
}

// validAttrName accepts the attribute names that can be written without
// escaping and do not collide with the attributes set by renderWord.
func validAttrName(name string) bool {
	switch name {
	case "", "class", "transform", "x", "y", "fill", "font-family", "font-weight", "font-size", "dominant-baseline", "white-space":
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
