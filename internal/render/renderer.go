package render

import (
	"fmt"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/config"
	"github.com/feltengine/klondike/internal/core/ecs"
	coresys "github.com/feltengine/klondike/internal/core/system"
	"github.com/feltengine/klondike/internal/resource"
	"github.com/feltengine/klondike/internal/world"
)

// Renderer paints the board onto a tcell screen. It runs in the render
// phase and never mutates the world: it reads transforms and
// renderables, sorts them by Z, and maps board pixels onto terminal
// cells using the configured cell size.
type Renderer struct {
	screen tcell.Screen
	w      *world.World
	res    *resource.Resources
	cfg    *config.Config
}

func New(screen tcell.Screen, w *world.World, res *resource.Resources, cfg *config.Config) *Renderer {
	return &Renderer{screen: screen, w: w, res: res, cfg: cfg}
}

func (r *Renderer) Phase() coresys.Phase { return coresys.PhaseRender }
func (r *Renderer) Priority() int        { return 0 }

type drawItem struct {
	id ecs.EntityID
	tr *component.Transform
	rd *component.Renderable
}

func (r *Renderer) Update(time.Duration) error {
	r.screen.Clear()

	items := make([]drawItem, 0, 64)
	ecs.Each2(r.w.Components.Transforms, r.w.Components.Renderables,
		func(id ecs.EntityID, tr *component.Transform, rd *component.Renderable) {
			if rd.Visible && rd.Opacity > 0 {
				items = append(items, drawItem{id: id, tr: tr, rd: rd})
			}
		})
	sort.Slice(items, func(i, j int) bool {
		if items[i].tr.Z != items[j].tr.Z {
			return items[i].tr.Z < items[j].tr.Z
		}
		return items[i].id < items[j].id
	})

	for _, it := range items {
		r.drawItem(it)
	}
	r.drawStatus()
	r.screen.Show()
	return nil
}

func (r *Renderer) cell(p component.Vec2) (int, int) {
	return int(p.X / r.cfg.Board.CellWidth), int(p.Y / r.cfg.Board.CellHeight)
}

func (r *Renderer) drawItem(it drawItem) {
	x, y := r.cell(it.tr.Position)
	w := int(it.rd.Width / r.cfg.Board.CellWidth)
	h := int(it.rd.Height / r.cfg.Board.CellHeight)
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}

	switch it.rd.Kind {
	case component.DrawCard:
		r.drawCard(it, x, y, w, h)
	case component.DrawRect:
		r.drawBox(x, y, w, h, tcell.StyleDefault.Foreground(tcell.ColorGray))
	case component.DrawText:
		r.drawText(x, y, it.rd.Text, tcell.StyleDefault)
	}
}

func (r *Renderer) drawCard(it drawItem, x, y, w, h int) {
	card, ok := r.w.Card(it.id)
	if !ok {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	label := "░░"
	if card.FaceUp {
		label = card.RankSymbol() + card.SuitSymbol()
		if card.IsRed() {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
	}
	if it.rd.Opacity < 1 {
		style = style.Dim(true)
	}

	fill := ' '
	if !card.FaceUp {
		fill = '░'
	}
	for dy := 1; dy < h-1; dy++ {
		for dx := 1; dx < w-1; dx++ {
			r.screen.SetContent(x+dx, y+dy, fill, nil, style)
		}
	}
	r.drawBox(x, y, w, h, style)
	if card.FaceUp {
		r.drawText(x+1, y+1, label, style)
	}
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	for dx := 1; dx < w-1; dx++ {
		r.screen.SetContent(x+dx, y, '─', nil, style)
		r.screen.SetContent(x+dx, y+h-1, '─', nil, style)
	}
	for dy := 1; dy < h-1; dy++ {
		r.screen.SetContent(x, y+dy, '│', nil, style)
		r.screen.SetContent(x+w-1, y+dy, '│', nil, style)
	}
	r.screen.SetContent(x, y, '┌', nil, style)
	r.screen.SetContent(x+w-1, y, '┐', nil, style)
	r.screen.SetContent(x, y+h-1, '└', nil, style)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

func (r *Renderer) drawStatus() {
	_, sh := r.screen.Size()
	line := fmt.Sprintf(" %s  frame %d  fps %.0f  [%s]=draw [%s]=auto-complete [q]=quit",
		r.res.Game, r.res.Time.Frames, r.res.Time.FPS(),
		r.cfg.Game.DrawKey, r.cfg.Game.AutoCompleteKey)
	r.drawText(0, sh-1, line, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}
