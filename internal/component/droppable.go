package component

// Droppable marks an entity as a drop target for dragged cards. Active
// is the highlight flag: the drag system clears it on every pointer
// move and raises it only on the legal target under the pointer.
type Droppable struct {
	Width      float64
	Height     float64
	AcceptTags []int // reserved for future drag typing
	Active     bool
}

func NewDroppable(w, h float64) *Droppable {
	return &Droppable{Width: w, Height: h}
}
