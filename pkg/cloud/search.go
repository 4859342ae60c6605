package cloud

import (
	"math"
	"slices"
)

// Candidate is an accepted footprint position.
type Candidate struct {
	// GX and GY are the footprint origin in grid space.
	GX, GY int
	Point  Point
	Radius int
}

// Place searches rings 0 through MaxRadius for the first position where
// every cell of fp is free. Unless Config.Ordered is set, each ring is
// visited in a fresh random order. Footprints whose bounding box exceeds
// the grid in either axis are rejected without searching.
func (s *Session) Place(fp *Footprint) (Candidate, bool) {
	if fp.Bounds.Width() > s.ngx || fp.Bounds.Height() > s.ngy {
		return Candidate{}, false
	}

	for r := 0; r <= s.maxRadius; r++ {
		pts := s.PointsAtRadius(r)
		if !s.cfg.Ordered {
			pts = slices.Clone(pts)
			s.rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
		}
		for _, p := range pts {
			gx := int(math.Floor(p.X - float64(fp.GW)/2))
			gy := int(math.Floor(p.Y - float64(fp.GH)/2))
			if s.canFit(gx, gy, fp.Cells) {
				return Candidate{GX: gx, GY: gy, Point: p, Radius: r}, true
			}
		}
	}
	return Candidate{}, false
}

func (s *Session) canFit(gx, gy int, cells []Cell) bool {
	for _, c := range cells {
		if !s.grid.IsFree(gx+c.X, gy+c.Y) {
			return false
		}
	}
	return true
}
