package cloud

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
	"github.com/matzehuels/wordcloud/pkg/errors"
)

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name     string
		surfaces []Surface
		cfg      Config
		code     errors.Code
	}{
		{"no surfaces", nil, Config{}, errors.ErrCodeInvalidSurface},
		{"smaller than a cell", []Surface{newMemSurface(6, 100)}, Config{GridSize: 8}, errors.ErrCodeInvalidSurface},
		{"bad background", []Surface{newMemSurface(80, 80)}, Config{Background: "nope"}, errors.ErrCodeInvalidColor},
		{"bad mask color", []Surface{newMemSurface(80, 80)}, Config{DrawMask: true, MaskColor: "nope"}, errors.ErrCodeInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.cfg, tt.surfaces...)
			if !errors.Is(err, tt.code) {
				t.Errorf("NewSession() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSessionGeometry(t *testing.T) {
	s, _ := newTestSession(t, 85, 47, Config{GridSize: 8.7})
	if s.CellSize() != 8 {
		t.Errorf("CellSize() = %d, want 8", s.CellSize())
	}
	if s.Grid().Width() != 10 || s.Grid().Height() != 5 {
		t.Errorf("grid = %dx%d, want 10x5", s.Grid().Width(), s.Grid().Height())
	}
	if x, y := s.Center(); x != 5 || y != 2.5 {
		t.Errorf("Center() = %v,%v, want 5,2.5", x, y)
	}
	if want := int(math.Ceil(math.Hypot(10, 5))); s.MaxRadius() != want {
		t.Errorf("MaxRadius() = %d, want %d", s.MaxRadius(), want)
	}

	small, _ := newTestSession(t, 80, 80, Config{GridSize: 1})
	if small.CellSize() != 4 {
		t.Errorf("CellSize() = %d, want coerced 4", small.CellSize())
	}
}

func TestSessionOrigin(t *testing.T) {
	s, _ := newTestSession(t, 80, 80, Config{Origin: &image.Point{X: 16, Y: 24}})
	if x, y := s.Center(); x != 2 || y != 3 {
		t.Errorf("Center() = %v,%v, want 2,3", x, y)
	}
}

func TestPointsAtRadius(t *testing.T) {
	s, _ := newTestSession(t, 80, 80, testConfig())

	center := s.PointsAtRadius(0)
	if len(center) != 1 || center[0].X != 5 || center[0].Y != 5 {
		t.Fatalf("PointsAtRadius(0) = %v, want the center only", center)
	}
	for r := 1; r <= 12; r++ {
		if got := len(s.PointsAtRadius(r)); got != 8*r {
			t.Errorf("len(PointsAtRadius(%d)) = %d, want %d", r, got, 8*r)
		}
	}

	a, b := s.PointsAtRadius(3), s.PointsAtRadius(3)
	if &a[0] != &b[0] {
		t.Error("rings should be cached")
	}
}

func TestPointsAtRadiusGeometry(t *testing.T) {
	s, _ := newTestSession(t, 80, 80, testConfig())
	const r = 4
	for _, p := range s.PointsAtRadius(r) {
		dx := p.X - 5
		dy := (p.Y - 5) / DefaultEllipticity
		if d := math.Hypot(dx, dy); math.Abs(d-r) > 1e-9 {
			t.Errorf("point at theta %.3f is %.6f from center, want %d", p.Theta, d, r)
		}
		if p.Theta < 0 || p.Theta >= 2*math.Pi {
			t.Errorf("theta %v out of range", p.Theta)
		}
	}

	// Angles descend from just below 2π to 0.
	pts := s.PointsAtRadius(r)
	if pts[len(pts)-1].Theta != 0 || pts[0].Theta <= pts[1].Theta {
		t.Errorf("unexpected angle order: first %v last %v", pts[0].Theta, pts[len(pts)-1].Theta)
	}
}

func TestPointsFollowShape(t *testing.T) {
	cfg := testConfig()
	cfg.Shape = shape.Func(func(float64) float64 { return 0.5 })
	s, _ := newTestSession(t, 80, 80, cfg)
	for _, p := range s.PointsAtRadius(4) {
		dx, dy := p.X-5, (p.Y-5)/DefaultEllipticity
		if d := math.Hypot(dx, dy); math.Abs(d-2) > 1e-9 {
			t.Fatalf("point at theta %.3f is %.6f from center, want 2", p.Theta, d)
		}
	}
}

func TestPlaceSingleCellAtCenter(t *testing.T) {
	s, _ := newTestSession(t, 80, 80, testConfig())
	c, ok := s.Place(block(1, 1))
	if !ok {
		t.Fatal("Place() found no room on an empty grid")
	}
	if c.GX != 4 || c.GY != 4 || c.Radius != 0 {
		t.Errorf("Place() = (%d,%d) r=%d, want (4,4) r=0", c.GX, c.GY, c.Radius)
	}
}

func TestPlaceOnlyFreeCell(t *testing.T) {
	for _, ordered := range []bool{true, false} {
		cfg := testConfig()
		cfg.Ordered = ordered
		s, _ := newTestSession(t, 80, 80, cfg)
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				if x != 9 || y != 9 {
					s.Grid().Occupy(x, y)
				}
			}
		}

		if _, ok := s.Place(block(2, 2)); ok {
			t.Errorf("ordered=%v: 2x2 block placed with a single free cell", ordered)
		}
		c, ok := s.Place(block(1, 1))
		if !ok {
			t.Fatalf("ordered=%v: 1x1 block found no room", ordered)
		}
		if c.GX != 9 || c.GY != 9 {
			t.Errorf("ordered=%v: placed at (%d,%d), want (9,9)", ordered, c.GX, c.GY)
		}
		if c.Radius == 0 {
			t.Errorf("ordered=%v: far cell reached at radius 0", ordered)
		}
	}
}

func TestFullGridRejectsEverythingElse(t *testing.T) {
	s, _ := newTestSession(t, 80, 80, testConfig())
	full := block(10, 10)
	c, ok := s.Place(full)
	if !ok || c.GX != 0 || c.GY != 0 {
		t.Fatalf("Place(full) = %+v, %v", c, ok)
	}
	s.Commit(Item{Word: "all", Weight: 1}, full, c, 0)
	if s.Grid().Free() != 0 {
		t.Fatalf("Free() = %d after filling the grid", s.Grid().Free())
	}
	if _, ok := s.Place(block(1, 1)); ok {
		t.Error("second word placed on a full grid")
	}
}

func TestPlaceOversizedSkipsSearch(t *testing.T) {
	tests := []struct {
		name string
		fp   *Footprint
	}{
		{"too wide", block(11, 1)},
		{"too tall", block(1, 11)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, 80, 80, testConfig())
			if _, ok := s.Place(tt.fp); ok {
				t.Fatal("oversized footprint placed")
			}
			if len(s.points) != 0 {
				t.Errorf("search generated %d rings for an oversized footprint", len(s.points))
			}
		})
	}
}

func TestPlaceDoesNotMutateRingCache(t *testing.T) {
	cfg := testConfig()
	cfg.Ordered = false
	s, _ := newTestSession(t, 80, 80, cfg)
	before := append([]Point(nil), s.PointsAtRadius(1)...)
	s.Grid().Occupy(4, 4)
	for i := 0; i < 5; i++ {
		s.Place(block(1, 1))
	}
	after := s.PointsAtRadius(1)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("shuffling modified the cached ring")
		}
	}
}

func TestCommit(t *testing.T) {
	cfg := testConfig()
	cfg.Classes = FixedClasses("word")
	cfg.Click = func(*Placement) {}
	s, surf := newTestSession(t, 80, 80, cfg)

	fp := block(2, 1)
	fp.Cells = []Cell{{0, 0}, {1, 0}}
	item := Item{Word: "hi", Weight: 3, Attributes: map[string]string{"data-id": "7"}}
	c := Candidate{GX: 3, GY: 4, Point: Point{X: 4, Y: 4.5, Theta: 1.5}, Radius: 2}
	p := s.Commit(item, fp, c, 0)

	want := Rect{X: 24, Y: 32, W: 16, H: 8}
	if p.Rect != want {
		t.Errorf("Rect = %+v, want %+v", p.Rect, want)
	}
	if p.Distance != 2 || p.Theta != 1.5 || p.Color != "#000" || p.Classes != "word" {
		t.Errorf("Placement = %+v", p)
	}
	if s.Grid().IsFree(3, 4) || s.Grid().IsFree(4, 4) || !s.Grid().IsFree(5, 4) {
		t.Error("Commit marked the wrong cells")
	}

	if len(surf.glyphs) != 1 {
		t.Fatalf("drew %d glyphs, want 1", len(surf.glyphs))
	}
	g := surf.glyphs[0]
	if g.X != 32 || g.Y != 36 || g.Attributes["data-id"] != "7" || g.Classes != "word" {
		t.Errorf("Glyph = %+v", g)
	}

	if hit := s.HitTest(30, 33); hit != p {
		t.Errorf("HitTest inside the word = %v", hit)
	}
	if hit := s.HitTest(45, 33); hit != nil {
		t.Errorf("HitTest outside the word = %v", hit)
	}
	if hit := s.HitTest(-1, 33); hit != nil {
		t.Errorf("HitTest off-surface = %v", hit)
	}
}

func TestCommitWithoutInteractionSkipsInfoGrid(t *testing.T) {
	s, _ := newTestSession(t, 80, 80, testConfig())
	fp := block(1, 1)
	s.Commit(Item{Word: "x"}, fp, Candidate{GX: 1, GY: 1}, 0)
	if s.HitTest(10, 10) != nil {
		t.Error("HitTest should be disabled without hover or click")
	}
}

func TestCommitDrawsMaskOnFirstSurface(t *testing.T) {
	cfg := testConfig()
	cfg.DrawMask = true
	first, second := newMemSurface(80, 80), newMemSurface(80, 80)
	s, err := NewSession(cfg, first, second)
	if err != nil {
		t.Fatal(err)
	}
	s.Reset()

	fp := block(2, 2)
	s.Commit(Item{Word: "x"}, fp, Candidate{GX: 0, GY: 0}, 0)
	if first.cells != 4 || second.cells != 0 {
		t.Errorf("mask cells = %d/%d, want 4/0", first.cells, second.cells)
	}
	if len(first.glyphs) != 1 || len(second.glyphs) != 1 {
		t.Error("glyph should be drawn on every surface")
	}
}

func TestCommitIgnoresCellsOutsideGrid(t *testing.T) {
	s, _ := newTestSession(t, 80, 80, testConfig())
	fp := block(2, 2)
	s.Commit(Item{Word: "x"}, fp, Candidate{GX: 9, GY: 9}, 0)
	if s.Grid().Free() != 99 {
		t.Errorf("Free() = %d, want 99", s.Grid().Free())
	}
}

func TestResetClearsSurfaces(t *testing.T) {
	cfg := testConfig()
	cfg.Background = "#123456"
	a, b := newMemSurface(80, 80), newMemSurface(80, 80)
	s, err := NewSession(cfg, a, b)
	if err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if len(a.cleared) != 1 || len(b.cleared) != 1 || a.cleared[0] != "#123456" {
		t.Errorf("cleared = %v / %v", a.cleared, b.cleared)
	}
	if s.Grid().Free() != 100 {
		t.Errorf("Free() = %d, want 100", s.Grid().Free())
	}
}

func TestResetPreserveSamplesFirstSurface(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	surf := newSnapSurface(80, 80, white)
	surf.img.SetRGBA(12, 20, color.RGBA{0, 0, 0, 255}) // cell (1, 2)

	cfg := testConfig()
	cfg.Preserve = true
	cfg.Background = "#fff"
	s, err := NewSession(cfg, surf)
	if err != nil {
		t.Fatal(err)
	}
	s.Reset()

	if len(surf.cleared) != 0 {
		t.Error("preserve mode should not clear the surface")
	}
	if s.Grid().IsFree(1, 2) {
		t.Error("cell with existing artwork should be occupied")
	}
	if s.Grid().Free() != 99 {
		t.Errorf("Free() = %d, want 99", s.Grid().Free())
	}
}

func TestResetPreserveFallsBackToClear(t *testing.T) {
	cfg := testConfig()
	cfg.Preserve = true
	s, surf := newTestSession(t, 80, 80, cfg)
	if len(surf.cleared) != 1 {
		t.Error("surfaces without snapshots should be cleared")
	}
	if s.Grid().Free() != 100 {
		t.Errorf("Free() = %d, want 100", s.Grid().Free())
	}
}

func TestPutWordStartsBudget(t *testing.T) {
	cfg := testConfig()
	cfg.AbortThreshold = time.Hour
	s, surf := newTestSession(t, 400, 300, cfg)

	p, st := s.PutWord(Item{Word: "hi", Weight: 20})
	if st != WordDrawn || p == nil {
		t.Fatalf("PutWord() = %v, %v, want drawn", p, st)
	}
	if len(surf.glyphs) != 1 {
		t.Errorf("glyphs = %d, want 1", len(surf.glyphs))
	}
	if _, fst := s.Footprint("hi", 20, 0); fst != FootprintOK {
		t.Errorf("Footprint() status = %v, want ok", fst)
	}
}
