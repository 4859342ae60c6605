package sink

import "github.com/matzehuels/wordcloud/pkg/render"

// RenderPDF converts a drawn SVG surface to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(s *SVG) ([]byte, error) {
	return render.ToPDF(s.Bytes())
}
