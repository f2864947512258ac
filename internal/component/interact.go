package component

// Draggable marks an entity as pickable by the drag system and carries
// the per-card gesture state needed to revert an aborted drag.
type Draggable struct {
	Dragging     bool
	Offset       Vec2 // pointer − entity position at pick-up, lead card only
	OriginalPos  Vec2 // saved for the all-or-nothing revert
	OriginalZ    int
	Width        float64 // grab region override, 0 means the full Renderable
	Height       float64
	DragChildren bool // lift the covering tableau run along with this card
}

func NewDraggable() *Draggable {
	return &Draggable{DragChildren: true}
}

// ClickKind selects what a click on the entity does.
type ClickKind uint8

const (
	ClickFlipCard ClickKind = iota
	ClickDrawStock
	ClickDrawWaste
	ClickDrawTableau
	ClickDrawFoundation
	ClickCustom
)

// ClickAction pairs a click kind with its target index (tableau column
// or foundation slot; unused otherwise).
type ClickAction struct {
	Kind  ClickKind
	Index int
}

// Clickable marks an entity as reactive to the one-frame click pulse.
// Clicked is set for a single tick when the entity is hit.
type Clickable struct {
	Hover   bool
	Clicked bool
	Action  ClickAction
}

func NewClickable(action ClickAction) *Clickable {
	return &Clickable{Action: action}
}
