package cloud

import "fmt"

// Item is one entry of the word list.
type Item struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
	// Attributes are copied onto element-style surfaces (SVG) verbatim.
	Attributes map[string]string `json:"attributes,omitempty"`
}

func (it Item) String() string { return fmt.Sprintf("%s(%g)", it.Word, it.Weight) }

// Point is a candidate anchor in grid space. Theta is the angle the point
// was generated at and is retained through shuffling.
type Point struct {
	X, Y  float64
	Theta float64
}

// Cell is a cell offset relative to a footprint origin.
type Cell struct{ X, Y int }

// Bounds is the cell-space bounding box of a footprint's occupied cells,
// inclusive on all sides.
type Bounds struct {
	Top, Right, Bottom, Left int
}

// Width returns the number of columns spanned.
func (b Bounds) Width() int { return b.Right - b.Left + 1 }

// Height returns the number of rows spanned.
func (b Bounds) Height() int { return b.Bottom - b.Top + 1 }

// Footprint is the rasterized shape of one word at one size and rotation.
// It is immutable once built.
type Footprint struct {
	Word  string
	Cells []Cell
	Bounds

	// GW and GH are the dimensions of the offscreen raster in cells.
	GW, GH int

	// Mu is the even scale multiplier used when FontSize is below the font's
	// minimum renderable size, 1 otherwise.
	Mu       float64
	FontSize float64

	// OffsetX and OffsetY position the text relative to the raster center;
	// TextWidth and TextHeight are the measured text extents.
	OffsetX, OffsetY      float64
	TextWidth, TextHeight float64
}

// Rect is a pixel rectangle.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && y >= float64(r.Y) &&
		x < float64(r.X+r.W) && y < float64(r.Y+r.H)
}

// Placement records where and how an item was drawn.
type Placement struct {
	Item Item `json:"item"`

	// GX and GY are the footprint origin in grid space.
	GX int `json:"gx"`
	GY int `json:"gy"`

	// Rect is the pixel bounding rectangle of the occupied cells.
	Rect Rect `json:"rect"`

	FontSize float64 `json:"font_size"`
	Rotation float64 `json:"rotation"`
	Color    string  `json:"color,omitempty"`
	Classes  string  `json:"classes,omitempty"`

	// Distance is the ring radius the word was placed at; Theta is the
	// candidate point's angle.
	Distance int     `json:"distance"`
	Theta    float64 `json:"theta"`
}
