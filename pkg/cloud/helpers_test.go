package cloud

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"
)

// memSurface records everything drawn on it.
type memSurface struct {
	w, h    int
	cleared []string
	glyphs  []Glyph
	cells   int
	img     *image.RGBA
}

func newMemSurface(w, h int) *memSurface { return &memSurface{w: w, h: h} }

func (m *memSurface) Size() (int, int)                   { return m.w, m.h }
func (m *memSurface) Clear(bg string)                    { m.cleared = append(m.cleared, bg); m.glyphs = nil }
func (m *memSurface) DrawGlyph(g Glyph)                  { m.glyphs = append(m.glyphs, g) }
func (m *memSurface) FillCell(_, _, _ float64, _ string) { m.cells++ }

// snapSurface is a memSurface whose pixels can be read back.
type snapSurface struct {
	*memSurface
}

func newSnapSurface(w, h int, bg color.Color) *snapSurface {
	m := newMemSurface(w, h)
	m.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(m.img, m.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &snapSurface{m}
}

func (s *snapSurface) Snapshot() image.Image { return s.img }

// stepClock advances by step on every reading.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

// testConfig is deterministic: no rotation, no shuffling, fixed color.
func testConfig() Config {
	return Config{
		GridSize: 8,
		Ordered:  true,
		Color:    FixedColor("#000"),
	}
}

func newTestSession(t *testing.T, w, h int, cfg Config) (*Session, *memSurface) {
	t.Helper()
	surf := newMemSurface(w, h)
	s, err := NewSession(cfg, surf)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Reset()
	return s, surf
}

// block returns a w×h footprint with every cell occupied.
func block(w, h int) *Footprint {
	fp := &Footprint{
		Word:     "block",
		Bounds:   Bounds{Top: 0, Right: w - 1, Bottom: h - 1, Left: 0},
		GW:       w,
		GH:       h,
		Mu:       1,
		FontSize: 10,
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			fp.Cells = append(fp.Cells, Cell{X: x, Y: y})
		}
	}
	return fp
}
