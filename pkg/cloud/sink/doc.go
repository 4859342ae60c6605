// Package sink provides the drawing surfaces and output encoders for word
// clouds.
//
// # Surfaces
//
// Two [cloud.Surface] implementations are provided:
//
//   - [Raster]: a pixel canvas backed by github.com/fogleman/gg. It can be
//     read back, so it is the surface to list first when preserve mode
//     should avoid existing artwork.
//   - [SVG]: an element surface that records one <text> element per word,
//     carrying the word's classes and attributes.
//
// A typical render places onto both at once:
//
//	raster := sink.NewRaster(800, 600)
//	svg := sink.NewSVG(800, 600, sink.WithHoverHighlight())
//	group, _ := cloud.NewGroup(raster, svg)
//
// # Output Formats
//
//   - PNG: [Raster.PNG], or [RenderPNG] for a vector-quality PNG at any scale
//   - SVG: [SVG.Bytes]
//   - PDF: [RenderPDF]
//   - JSON: [RenderJSON] exports placements and run statistics
//
// [RenderPDF] and [RenderPNG] convert the SVG through [render.ToPDF] and
// [render.ToPNG] and require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # Backgrounds
//
// [LoadBackground] reads a JPEG, PNG, GIF, TIFF or BMP image and fits it to
// the cloud's dimensions for use with [NewRasterFromImage].
//
// [render.ToPDF]: github.com/matzehuels/wordcloud/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/wordcloud/pkg/render.ToPNG
package sink
