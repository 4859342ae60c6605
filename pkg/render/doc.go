// Package render converts vector output to other formats.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The word cloud sinks use
// them for PDF export and for high-resolution PNG export of SVG clouds:
//
//	svg := surface.Bytes()
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Use [Available] to check for the tool before offering these formats.
package render
