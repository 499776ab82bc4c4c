package devdraw

import (
	"errors"
	"fmt"

	"9fans.net/go/draw"

	"github.com/gogpu/drawview"
)

// App owns a devdraw window and drives a drawview.View from its event
// stream: resize re-attaches the window and recomputes the transform,
// mouse events become pointer hooks in world coordinates, and 'q' or
// Delete quits the loop.
type App struct {
	display  *draw.Display
	renderer *Renderer
	view     *drawview.View
	mouse    *draw.Mousectl
	keyboard *draw.Keyboardctl

	// OnKey, when set, receives every key rune not consumed by the
	// built-in quit handling.
	OnKey func(r rune)
}

// New opens a devdraw window with the given label and size (a string
// like "800x600", or "" for the window system default).
func New(label, winsize string) (*App, error) {
	d, err := draw.Init(nil, "", label, winsize)
	if err != nil {
		return nil, fmt.Errorf("devdraw: init failed: %w", err)
	}
	return &App{
		display:  d,
		renderer: newRenderer(d),
		mouse:    d.InitMouse(),
		keyboard: d.InitKeyboard(),
	}, nil
}

// Renderer returns the window's renderer.
func (a *App) Renderer() *Renderer {
	return a.renderer
}

// View creates the view bound to this window.
func (a *App) View(opts ...drawview.Option) *drawview.View {
	a.view = drawview.New(a.renderer, opts...)
	return a.view
}

// Run paints once and then processes events until the window is closed
// or the user quits with 'q' or Delete.
func (a *App) Run() error {
	if a.view == nil {
		return errors.New("devdraw: Run called before View")
	}

	if err := a.view.Redraw(); err != nil {
		return err
	}

	buttons := 0
	for {
		a.display.Flush()
		select {
		case <-a.mouse.Resize:
			if err := a.display.Attach(draw.RefMesg); err != nil {
				return fmt.Errorf("devdraw: reattach failed: %w", err)
			}
			w, h := a.renderer.Size()
			if err := a.view.Resize(w, h); err != nil {
				return err
			}

		case m := <-a.mouse.C:
			a.mouse.Mouse = m
			min := a.display.Image.R.Min
			x := float64(m.X - min.X)
			y := float64(m.Y - min.Y)
			switch {
			case m.Buttons&1 != 0 && buttons&1 == 0:
				a.view.PointerPress(x, y)
			case m.Buttons&1 == 0 && buttons&1 != 0:
				a.view.PointerRelease(x, y)
			default:
				a.view.PointerMove(x, y)
			}
			buttons = m.Buttons

		case r := <-a.keyboard.C:
			if r == 'q' || r == 0x7f { // Delete
				return nil
			}
			if a.OnKey != nil {
				a.OnKey(r)
			}
		}
	}
}
