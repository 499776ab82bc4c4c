// Package soft is the software rendering backend for drawview.
//
// It rasterizes into an in-memory RGBA pixmap with anti-aliasing
// (golang.org/x/image/vector) and draws text with the drawview text
// package. It needs no window system, which makes it the reference
// backend for tests and for exporting diagrams as PNG images.
package soft
