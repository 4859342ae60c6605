// Package grid implements the occupancy field used for word placement.
//
// The surface is divided into square cells of side g pixels. A cell is
// either free or occupied; coordinates outside the grid are always reported
// as occupied so that callers never need their own bounds checks.
// Occupation is monotonic: there is no way to free a cell short of building
// a new Grid.
package grid

import (
	"image"
	"image/color"
	"image/draw"
)

// MinCellSize is the smallest accepted cell side in pixels.
const MinCellSize = 4

// Grid is a dense boolean occupancy field stored row-major.
type Grid struct {
	w, h     int
	occupied []bool
	free     int
}

// New returns a w×h grid with every cell free.
// Negative dimensions are treated as zero.
func New(w, h int) *Grid {
	w, h = max(w, 0), max(h, 0)
	return &Grid{w: w, h: h, occupied: make([]bool, w*h), free: w * h}
}

// Dims returns the number of cells along x and y for a surface of the
// given pixel size: floor(width/g) × floor(height/g).
func Dims(width, height, g int) (ngx, ngy int) {
	if g <= 0 {
		return 0, 0
	}
	return width / g, height / g
}

// CellSize coerces a configured cell size to a whole number of at least
// MinCellSize pixels.
func CellSize(g float64) int {
	return max(int(g), MinCellSize)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// IsFree reports whether (x, y) is inside the grid and not occupied.
func (g *Grid) IsFree(x, y int) bool {
	return g.InBounds(x, y) && !g.occupied[y*g.w+x]
}

// Occupy marks (x, y) as occupied. Out-of-bounds cells are ignored.
// It reports whether the cell was free before the call.
func (g *Grid) Occupy(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := y*g.w + x
	if g.occupied[i] {
		return false
	}
	g.occupied[i] = true
	g.free--
	return true
}

// Free returns the number of free cells.
func (g *Grid) Free() int { return g.free }

// Background returns the RGBA value a surface holds after being filled
// with c, obtained by painting c into a throwaway 1×1 buffer.
func Background(c color.Color) color.RGBA {
	px := image.NewRGBA(image.Rect(0, 0, 1, 1))
	draw.Draw(px, px.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return px.RGBAAt(0, 0)
}

// FromImage builds an ngx×ngy grid from existing surface content. A cell is
// occupied when any pixel inside it differs from bg in any channel.
// Pixels outside img's bounds are read as transparent black.
func FromImage(img image.Image, g, ngx, ngy int, bg color.RGBA) *Grid {
	gr := New(ngx, ngy)
	rgba := toRGBA(img)
	for gy := 0; gy < ngy; gy++ {
		for gx := 0; gx < ngx; gx++ {
			if cellDiffers(rgba, gx*g, gy*g, g, bg) {
				gr.Occupy(gx, gy)
			}
		}
	}
	return gr
}

func cellDiffers(img *image.RGBA, x0, y0, g int, bg color.RGBA) bool {
	for y := y0; y < y0+g; y++ {
		for x := x0; x < x0+g; x++ {
			if img.RGBAAt(x, y) != bg {
				return true
			}
		}
	}
	return false
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
