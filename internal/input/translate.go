package input

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/feltengine/klondike/internal/config"
	"github.com/feltengine/klondike/internal/resource"
)

// Translator turns raw tcell events into the shared input snapshot.
// Terminal cells are scaled up to board pixels so the simulation works
// in one coordinate space regardless of the front end.
type Translator struct {
	res *resource.Resources
	cfg *config.Config

	prevLeft bool
}

func NewTranslator(res *resource.Resources, cfg *config.Config) *Translator {
	return &Translator{res: res, cfg: cfg}
}

// HandleEvent applies one event to the input state. Returns true when
// the event requests quitting.
func (t *Translator) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventKey:
		return t.handleKey(ev)
	}
	return false
}

func (t *Translator) handleMouse(ev *tcell.EventMouse) {
	in := &t.res.Input
	cx, cy := ev.Position()
	in.SetPointer(float64(cx)*t.cfg.Board.CellWidth, float64(cy)*t.cfg.Board.CellHeight)

	left := ev.Buttons()&tcell.Button1 != 0
	if left != t.prevLeft {
		in.SetButton(0, left)
		// A release close to the press point is a click, not a drag.
		if !left {
			dx := in.Pointer.X - in.DownAt.X
			dy := in.Pointer.Y - in.DownAt.Y
			if math.Hypot(dx, dy) <= t.cfg.Board.DragThreshold {
				in.Clicked = true
			}
		}
		t.prevLeft = left
	}
}

func (t *Translator) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' {
			return true
		}
		// Keys act as one-shot pulses; the consuming system clears them.
		t.res.Input.SetKey(string(r), true)
	}
	return false
}
