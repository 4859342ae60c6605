package cloud

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/wordcloud/pkg/cloud/grid"
	"github.com/matzehuels/wordcloud/pkg/cloud/paint"
	"github.com/matzehuels/wordcloud/pkg/errors"
	"github.com/matzehuels/wordcloud/pkg/fonts"
)

// Session is the placement state of one run: the occupancy grid, the
// candidate point cache and the hit-test index. A Session is not safe for
// concurrent use; Run serializes access through its Group.
type Session struct {
	cfg      Config
	surfaces []Surface

	g         int
	ngx, ngy  int
	cx, cy    float64
	maxRadius int
	minFont   float64

	grid   *grid.Grid
	points map[int][]Point
	info   map[int]*Placement
	rng    *rand.Rand

	escape time.Time
	drawn  int
}

// NewSession validates cfg against the surfaces and derives the grid
// geometry from the first surface. Reset must be called before placing.
func NewSession(cfg Config, surfaces ...Surface) (*Session, error) {
	if len(surfaces) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSurface, "no surfaces to draw on")
	}
	cfg = cfg.withDefaults()
	if _, err := paint.Parse(cfg.Background); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "background color")
	}
	if cfg.DrawMask {
		if _, err := paint.Parse(cfg.MaskColor); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "mask color")
		}
	}

	g := cfg.cellSize()
	w, h := surfaces[0].Size()
	ngx, ngy := grid.Dims(w, h, g)
	if ngx == 0 || ngy == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSurface, "surface %dx%d is smaller than one %dpx cell", w, h, g)
	}

	s := &Session{
		cfg:       cfg,
		surfaces:  surfaces,
		g:         g,
		ngx:       ngx,
		ngy:       ngy,
		cx:        float64(ngx) / 2,
		cy:        float64(ngy) / 2,
		maxRadius: int(math.Ceil(math.Hypot(float64(ngx), float64(ngy)))),
		minFont:   fonts.ProbeMinSize(cfg.Font),
		rng:       cfg.Rand,
	}
	if cfg.Origin != nil {
		s.cx = float64(cfg.Origin.X) / float64(g)
		s.cy = float64(cfg.Origin.Y) / float64(g)
	}
	return s, nil
}

// Reset discards all placement state. Without Preserve every surface is
// painted with the background color and the grid starts empty; with
// Preserve the grid is sampled from the first surface's pixels.
func (s *Session) Reset() {
	s.points = make(map[int][]Point)
	s.info = nil
	s.drawn = 0
	if s.cfg.interactive() {
		s.info = make(map[int]*Placement)
	}

	if s.cfg.Preserve {
		if snap, ok := s.surfaces[0].(Snapshotter); ok {
			bg := grid.Background(paint.MustParse(s.cfg.Background))
			s.grid = grid.FromImage(snap.Snapshot(), s.g, s.ngx, s.ngy, bg)
			return
		}
	}
	for _, sf := range s.surfaces {
		sf.Clear(s.cfg.Background)
	}
	s.grid = grid.New(s.ngx, s.ngy)
}

// Grid returns the occupancy grid.
func (s *Session) Grid() *grid.Grid { return s.grid }

// CellSize returns the grid cell side in pixels.
func (s *Session) CellSize() int { return s.g }

// Center returns the cloud center in grid space.
func (s *Session) Center() (x, y float64) { return s.cx, s.cy }

// MaxRadius returns the outermost ring searched.
func (s *Session) MaxRadius() int { return s.maxRadius }

// HitTest returns the placement covering pixel (x, y), or nil. It always
// returns nil unless Hover or Click is configured.
func (s *Session) HitTest(x, y float64) *Placement {
	if s.info == nil || x < 0 || y < 0 {
		return nil
	}
	gx, gy := int(x)/s.g, int(y)/s.g
	if !s.grid.InBounds(gx, gy) {
		return nil
	}
	return s.info[gy*s.ngx+gx]
}

// exceeded reports whether the per-word budget has run out.
func (s *Session) exceeded() bool {
	return s.cfg.AbortThreshold > 0 && s.cfg.Clock().Sub(s.escape) > s.cfg.AbortThreshold
}
