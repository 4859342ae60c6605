package cloud

import (
	"image"

	"github.com/matzehuels/wordcloud/pkg/fonts"
)

// Glyph is one word ready to be painted.
type Glyph struct {
	Text string

	// Font renders the text at FontSize*Mu before the 1/Mu scale is applied.
	Font       fonts.Provider
	FontFamily string
	FontWeight string
	FontSize   float64
	Mu         float64

	// X and Y are the pixel center of the footprint raster. The text is
	// drawn at (OffsetX, OffsetY+FontSize/2) from there with a middle
	// baseline, after rotating by -Rotation.
	X, Y                  float64
	OffsetX, OffsetY      float64
	TextWidth, TextHeight float64
	Rotation              float64

	Color      string
	Classes    string
	Attributes map[string]string
}

// Surface is a paintable output target. Surfaces are only touched while
// their group's lock is held, so implementations need no locking.
type Surface interface {
	// Size returns the pixel dimensions.
	Size() (width, height int)

	// Clear paints the whole surface with the background color and drops
	// previously drawn words.
	Clear(background string)

	// DrawGlyph paints one word.
	DrawGlyph(g Glyph)

	// FillCell paints a side×side square with its top-left corner at (x, y).
	FillCell(x, y, side float64, color string)
}

// Snapshotter is implemented by surfaces whose pixels can be read back.
// Preserve mode samples the first surface through it.
type Snapshotter interface {
	Snapshot() image.Image
}
