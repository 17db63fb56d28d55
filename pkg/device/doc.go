// Package device drives DYMO LabelManager printers.
//
// The render pipeline only sees the Labeler interface: the fixed head height,
// the fixed non-printable margin, and a Print operation consuming the final
// payload bitmap. DymoLabeler implements the LabelManager raster protocol on
// top of a byte-stream Transport, so the same encoder serves a real USB
// printer-class device node, a file (for inspection), or an in-memory buffer
// (for tests).
package device
