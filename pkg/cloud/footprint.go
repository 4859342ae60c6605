package cloud

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/wordcloud/pkg/fonts"
)

// FootprintStatus is the outcome of building a footprint.
type FootprintStatus int

const (
	// FootprintOK means the footprint was built.
	FootprintOK FootprintStatus = iota
	// FootprintSkip means the word's size is at or below the minimum.
	FootprintSkip
	// FootprintAbort means the per-word budget ran out while rasterizing.
	FootprintAbort
)

// Footprint rasterizes word at the size its weight maps to, rotated by
// rotation radians, and returns the grid cells it covers.
//
// The raster is (width + 2*height) x 3*height, rounded up to whole cells
// and grown to hold the rotated box, with the text centered in it. Sizes
// below the font's minimum are drawn at an even multiple mu and scaled
// back down by 1/mu. The per-word budget starts when Footprint is called.
func (s *Session) Footprint(word string, weight, rotation float64) (*Footprint, FootprintStatus) {
	s.escape = s.cfg.Clock()
	return s.footprint(word, weight, rotation)
}

func (s *Session) footprint(word string, weight, rotation float64) (*Footprint, FootprintStatus) {
	size := s.cfg.Weight.Size(weight)
	if !(size > s.cfg.MinSize) {
		return nil, FootprintSkip
	}

	mu := 1.0
	if size < s.minFont {
		mu = 2
		for mu*size < s.minFont {
			mu += 2
		}
	}

	font := s.cfg.Font
	scaled := size * mu
	fw := fonts.Measure(font, word, scaled) / mu
	fh := math.Max(scaled, math.Max(fonts.Measure(font, "m", scaled), fonts.Measure(font, "Ｗ", scaled))) / mu

	g := float64(s.g)
	boxW := math.Ceil((fw+fh*2)/g) * g
	boxH := math.Ceil(fh*3/g) * g

	// Vertical offset is 0.4 rather than 0.5 so Latin text looks centered.
	offX, offY := -fw/2, -fh*0.4

	sin, cos := math.Abs(math.Sin(rotation)), math.Abs(math.Cos(rotation))
	cgh := int(math.Ceil((boxW*sin + boxH*cos) / g))
	cgw := int(math.Ceil((boxW*cos + boxH*sin) / g))
	width, height := cgw*s.g, cgh*s.g

	dc := gg.NewContext(width, height)
	dc.Scale(1/mu, 1/mu)
	dc.Translate(float64(width)*mu/2, float64(height)*mu/2)
	dc.Rotate(-rotation)
	dc.SetFontFace(font.Face(scaled))
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(word, offX*mu, (offY+size*0.5)*mu, 0, 0.5)
	img := rgba(dc.Image())

	if s.exceeded() {
		return nil, FootprintAbort
	}

	fp := &Footprint{
		Word:       word,
		Bounds:     Bounds{Top: cgh / 2, Right: cgw / 2, Bottom: cgh / 2, Left: cgw / 2},
		GW:         cgw,
		GH:         cgh,
		Mu:         mu,
		FontSize:   size,
		OffsetX:    offX,
		OffsetY:    offY,
		TextWidth:  fw,
		TextHeight: fh,
	}
	for gx := 0; gx < cgw; gx++ {
		for gy := 0; gy < cgh; gy++ {
			if !inked(img, gx*s.g, gy*s.g, s.g) {
				continue
			}
			fp.Cells = append(fp.Cells, Cell{X: gx, Y: gy})
			fp.Left = min(fp.Left, gx)
			fp.Right = max(fp.Right, gx)
			fp.Top = min(fp.Top, gy)
			fp.Bottom = max(fp.Bottom, gy)
		}
	}
	return fp, FootprintOK
}

// inked reports whether any pixel of the g×g cell at (x0, y0) has non-zero
// alpha.
func inked(img *image.RGBA, x0, y0, g int) bool {
	for y := y0; y < y0+g; y++ {
		row := img.Pix[img.PixOffset(x0, y):]
		for x := 0; x < g; x++ {
			if row[x*4+3] != 0 {
				return true
			}
		}
	}
	return false
}

func rgba(img image.Image) *image.RGBA {
	if r, ok := img.(*image.RGBA); ok {
		return r
	}
	b := img.Bounds()
	r := image.NewRGBA(b)
	draw.Draw(r, b, img, b.Min, draw.Src)
	return r
}
