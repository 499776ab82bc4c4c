// Package drawview provides a world-coordinate 2D diagram canvas for Go.
//
// # Overview
//
// drawview maps an application-defined world coordinate space onto a
// resizable pixel surface with an aspect-preserving scale-to-fit transform,
// and exposes an immediate-mode drawing API (lines, arrows, shapes,
// alignment-aware text) on top of that mapping. Pointer events are mapped
// back into world coordinates, so diagram code never deals with pixels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/drawview"
//	    "github.com/gogpu/drawview/backend/soft"
//	)
//
//	r, _ := soft.New(800, 600)
//	v := drawview.New(r,
//	    drawview.WithWorldBounds(0, -5, 10, 10),
//	    drawview.WithDrawable(drawview.DrawFunc(func(v *drawview.View) {
//	        v.SetStrokeColor(drawview.Red)
//	        v.Line(0, 0, 10, 0)
//	        v.Circle(5, 2, 0.5)
//	        v.Text(5, -2, "hello", 14, drawview.AlignCenter, drawview.AlignMiddle)
//	    })))
//	v.Redraw()
//	r.SavePNG("out.png")
//
// # Coordinate System
//
// World coordinates follow the mathematical convention: Y increases upward.
// The transform flips the vertical axis so device coordinates follow the
// usual computer graphics convention (origin top-left, Y down). The scale
// factor is uniform on both axes: the whole world-bounds rectangle always
// fits inside the viewport without distortion, centered in both directions.
//
// # Backends
//
// Drawing is issued through the Renderer interface, which receives
// device-mapped coordinates and resolved styles. backend/soft renders into
// an in-memory pixmap; backend/devdraw renders into a devdraw window with
// live mouse input. The core has no dependency on either.
//
// # State
//
// A View carries one current Style (stroke color, fill color, stroke width,
// text color, stroke/fill enable flags) and a LIFO stack for temporary style
// changes via PushStyle/PopStyle. Views are not safe for concurrent use;
// all calls are expected on one event-dispatch goroutine.
package drawview
