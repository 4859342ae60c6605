package cloud

// WordStatus is the outcome of processing one item.
type WordStatus int

const (
	// WordDrawn means the word was committed to the surfaces.
	WordDrawn WordStatus = iota
	// WordSkipped means the word maps to a size at or below the minimum.
	WordSkipped
	// WordRejected means no position fits, or the bounding box exceeds the grid.
	WordRejected
	// WordAborted means the per-word budget ran out.
	WordAborted
)

func (s WordStatus) String() string {
	switch s {
	case WordDrawn:
		return "drawn"
	case WordSkipped:
		return "skipped"
	case WordRejected:
		return "rejected"
	case WordAborted:
		return "aborted"
	}
	return "unknown"
}

// PutWord runs one item through footprint, search and commit. The
// placement is nil unless the status is WordDrawn. The per-word budget
// starts when PutWord is called.
func (s *Session) PutWord(item Item) (*Placement, WordStatus) {
	s.escape = s.cfg.Clock()
	rotation := s.cfg.rotation(s.rng)
	fp, st := s.footprint(item.Word, item.Weight, rotation)
	switch st {
	case FootprintSkip:
		return nil, WordSkipped
	case FootprintAbort:
		return nil, WordAborted
	}
	if s.exceeded() {
		return nil, WordAborted
	}

	c, ok := s.Place(fp)
	if !ok {
		return nil, WordRejected
	}
	return s.Commit(item, fp, c, rotation), WordDrawn
}

// Commit paints fp at candidate c on every surface and marks its cells
// occupied. With Config.DrawMask each marked cell is also painted on the
// first surface.
func (s *Session) Commit(item Item, fp *Footprint, c Candidate, rotation float64) *Placement {
	style := WordStyle{
		Word:     item.Word,
		Weight:   item.Weight,
		FontSize: fp.FontSize,
		Distance: c.Radius,
		Theta:    c.Point.Theta,
		Index:    s.drawn,
	}
	p := &Placement{
		Item: item,
		GX:   c.GX,
		GY:   c.GY,
		Rect: Rect{
			X: (c.GX + fp.Left) * s.g,
			Y: (c.GY + fp.Top) * s.g,
			W: fp.Width() * s.g,
			H: fp.Height() * s.g,
		},
		FontSize: fp.FontSize,
		Rotation: rotation,
		Color:    s.cfg.Color.Color(style, s.rng),
		Distance: c.Radius,
		Theta:    c.Point.Theta,
	}
	if s.cfg.Classes != nil {
		p.Classes = s.cfg.Classes.Classes(style)
	}

	glyph := Glyph{
		Text:       item.Word,
		Font:       s.cfg.Font,
		FontFamily: s.cfg.FontFamily,
		FontWeight: s.cfg.FontWeight,
		FontSize:   fp.FontSize,
		Mu:         fp.Mu,
		X:          (float64(c.GX) + float64(fp.GW)/2) * float64(s.g),
		Y:          (float64(c.GY) + float64(fp.GH)/2) * float64(s.g),
		OffsetX:    fp.OffsetX,
		OffsetY:    fp.OffsetY,
		TextWidth:  fp.TextWidth,
		TextHeight: fp.TextHeight,
		Rotation:   rotation,
		Color:      p.Color,
		Classes:    p.Classes,
		Attributes: item.Attributes,
	}
	for _, sf := range s.surfaces {
		sf.DrawGlyph(glyph)
	}

	s.occupy(c, fp, p)
	s.drawn++
	return p
}

func (s *Session) occupy(c Candidate, fp *Footprint, p *Placement) {
	side := float64(s.g) - s.cfg.MaskGap
	for _, cell := range fp.Cells {
		x, y := c.GX+cell.X, c.GY+cell.Y
		if !s.grid.InBounds(x, y) {
			continue
		}
		s.grid.Occupy(x, y)
		if s.cfg.DrawMask {
			s.surfaces[0].FillCell(float64(x*s.g), float64(y*s.g), side, s.cfg.MaskColor)
		}
		if s.info != nil {
			s.info[y*s.ngx+x] = p
		}
	}
}
