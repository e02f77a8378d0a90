// Package layertext renders a line of text as stacked, shadowed layers.
//
// # Overview
//
// Every glyph of the string is painted three times: a Back layer, a Middle
// layer and the Front layer in the text color. Each copy is offset by a
// fraction of the point size, filled without antialiasing and given a drop
// shadow in its own color, which gives the text an extruded look with hard
// stepped edges.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/layertext"
//	    "github.com/gogpu/layertext/text"
//	    "golang.org/x/image/font/gofont/gobold"
//	)
//
//	source, _ := text.NewFontSource(gobold.TTF)
//	defer source.Close()
//
//	img, err := layertext.Render("SUPER", source.Face(80), layertext.Hex("#70E4E9"))
//
// # Architecture
//
// The library is organized into:
//   - Public API: Render, Layers, ConnectOutline, Canvas, Matrix, RGBA
//   - text: font sources, faces, shaping and glyph outlines
//   - Internal: path (flattening), raster (scanline coverage), filter (blur)
//
// # Coordinate System
//
// Glyph outlines and layer offsets use text coordinates:
//   - Origin (0,0) at the baseline start, bottom-left of the canvas
//   - X increases right
//   - Y increases up
//
// Shadow offsets are in output image space, X right and Y down, and are
// not affected by the current transform.
package layertext

// Version is the current version of the library.
const Version = "0.1.0"
