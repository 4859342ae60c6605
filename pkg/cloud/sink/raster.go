package sink

import (
	"bytes"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/cloud/paint"
)

// Raster is a pixel surface backed by a gg context. It implements
// cloud.Surface and cloud.Snapshotter, so it supports preserve mode.
type Raster struct {
	dc *gg.Context
}

// NewRaster returns a transparent w×h raster.
func NewRaster(w, h int) *Raster {
	return &Raster{dc: gg.NewContext(w, h)}
}

// NewRasterFromImage returns a raster initialized with a copy of img, for
// drawing around existing artwork.
func NewRasterFromImage(img image.Image) *Raster {
	return &Raster{dc: gg.NewContextForImage(img)}
}

func (r *Raster) Size() (int, int) { return r.dc.Width(), r.dc.Height() }

func (r *Raster) Clear(background string) {
	r.dc.SetColor(paint.MustParse(background))
	r.dc.Clear()
}

func (r *Raster) DrawGlyph(g cloud.Glyph) {
	mu := g.Mu
	if mu <= 0 {
		mu = 1
	}
	r.dc.Push()
	defer r.dc.Pop()

	r.dc.Scale(1/mu, 1/mu)
	r.dc.Translate(g.X*mu, g.Y*mu)
	if g.Rotation != 0 {
		r.dc.Rotate(-g.Rotation)
	}
	r.dc.SetFontFace(g.Font.Face(g.FontSize * mu))
	r.dc.SetColor(paint.MustParse(g.Color))
	r.dc.DrawStringAnchored(g.Text, g.OffsetX*mu, (g.OffsetY+g.FontSize*0.5)*mu, 0, 0.5)
}

func (r *Raster) FillCell(x, y, side float64, color string) {
	r.dc.SetColor(paint.MustParse(color))
	r.dc.DrawRectangle(x, y, side, side)
	r.dc.Fill()
}

// Snapshot returns the raster's pixels. The image is live: later drawing
// shows through.
func (r *Raster) Snapshot() image.Image { return r.dc.Image() }

// EncodePNG writes the raster as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// PNG returns the raster encoded as PNG.
func (r *Raster) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
