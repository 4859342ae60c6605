package sink

import (
	"image"

	"github.com/disintegration/imaging"
)

// LoadBackground reads an image for preserve mode. When w and h are both
// positive the image is scaled and center-cropped to exactly w×h.
func LoadBackground(path string, w, h int) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if w > 0 && h > 0 {
		b := img.Bounds()
		if b.Dx() != w || b.Dy() != h {
			img = imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
		}
	}
	return img, nil
}
