package cloud

import (
	"math"

	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
)

// PointsAtRadius returns the candidate points of ring r. Ring 0 is the
// center alone; ring r > 0 holds 8r points at descending angles, pushed out
// by the shape factor and flattened by the ellipticity. Rings are cached
// for the life of the session and must not be modified.
func (s *Session) PointsAtRadius(r int) []Point {
	if pts, ok := s.points[r]; ok {
		return pts
	}

	var pts []Point
	if r == 0 {
		pts = []Point{{X: s.cx, Y: s.cy}}
	} else {
		n := 8 * r
		circle := shape.IsCircle(s.cfg.Shape)
		pts = make([]Point, 0, n)
		for t := n - 1; t >= 0; t-- {
			theta := float64(t) / float64(n) * 2 * math.Pi
			f := 1.0
			if !circle {
				f = s.cfg.Shape.Factor(theta)
			}
			rad := float64(r) * f
			pts = append(pts, Point{
				X:     s.cx + rad*math.Cos(-theta),
				Y:     s.cy + rad*math.Sin(-theta)*s.cfg.Ellipticity,
				Theta: theta,
			})
		}
	}

	s.points[r] = pts
	return pts
}
