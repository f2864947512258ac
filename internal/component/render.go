package component

// DrawKind selects how the renderer paints an entity. The variants are
// opaque to the simulation core.
type DrawKind uint8

const (
	DrawCard DrawKind = iota
	DrawRect
	DrawText
	DrawCustom
)

// Renderable describes an entity's visual footprint. Width and height
// also feed the world's point hit test.
type Renderable struct {
	Width   float64
	Height  float64
	Visible bool
	Opacity float64 // 0..1
	Kind    DrawKind

	// Kind-specific payload, unused by the core.
	Text   string
	Fill   string
	Stroke string
}

func NewCardRenderable(w, h float64) *Renderable {
	return &Renderable{
		Width:   w,
		Height:  h,
		Visible: true,
		Opacity: 1,
		Kind:    DrawCard,
	}
}

func NewRectRenderable(w, h float64, fill, stroke string) *Renderable {
	return &Renderable{
		Width:   w,
		Height:  h,
		Visible: true,
		Opacity: 1,
		Kind:    DrawRect,
		Fill:    fill,
		Stroke:  stroke,
	}
}

func NewTextRenderable(w, h float64, text string) *Renderable {
	return &Renderable{
		Width:   w,
		Height:  h,
		Visible: true,
		Opacity: 1,
		Kind:    DrawText,
		Text:    text,
	}
}
