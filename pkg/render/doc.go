// Package render turns heterogeneous label content into monochrome bitmaps
// sized to a label-printer head.
//
// The package is built around the Engine capability: anything that renders a
// bitmap whose height equals the context height. Leaf engines (Empty, Text,
// Barcode, BarcodeWithText, QR, Picture, TestPattern) produce bitmaps
// directly from content. Combined concatenates child engines left to right.
// Payload wraps an engine and applies the printer's length constraints and
// the justification policy; Preview performs the identical layout for a
// display surface and can overlay margin guides.
//
// Engines are immutable after construction and render deterministically:
// identical content and context produce pixel-identical bitmaps. Validation
// happens in two phases: constructors fail fast on content that is knowably
// bad (empty QR content, missing picture path), while context-dependent
// failures (QR capacity, undecodable image data, symbology violations)
// surface at render time. Every failure is terminal for the render pass.
//
// The package performs no logging and no I/O beyond reading font and picture
// files.
package render
