// Package devdraw is the windowed backend for drawview, built on
// 9fans.net/go/draw. It renders into a devdraw window and feeds resize
// and mouse events into the view, so diagrams get live pointer
// interaction in world coordinates.
//
//	app, err := devdraw.New("beams", "800x600")
//	if err != nil { ... }
//	v := app.View(drawview.WithWorldBounds(0, -3, 10, 6))
//	v.SetDrawable(myDiagram)
//	err = app.Run()
//
// Running requires a devdraw server (plan9port) or a Plan 9 window
// system.
package devdraw
