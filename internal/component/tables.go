package component

import "github.com/feltengine/klondike/internal/core/ecs"

// Tables bundles one store per component kind. The kind set is closed:
// entity cleanup enumerates these stores rather than a dynamic type
// registry.
type Tables struct {
	Transforms  *ecs.Store[Transform]
	Cards       *ecs.Store[CardIdentity]
	Renderables *ecs.Store[Renderable]
	Draggables  *ecs.Store[Draggable]
	Clickables  *ecs.Store[Clickable]
	Stacks      *ecs.Store[StackContainer]
	Droppables  *ecs.Store[Droppable]
}

// NewTables creates all stores and registers them for bulk removal.
func NewTables(reg *ecs.Registry) *Tables {
	t := &Tables{
		Transforms:  ecs.NewStore[Transform](),
		Cards:       ecs.NewStore[CardIdentity](),
		Renderables: ecs.NewStore[Renderable](),
		Draggables:  ecs.NewStore[Draggable](),
		Clickables:  ecs.NewStore[Clickable](),
		Stacks:      ecs.NewStore[StackContainer](),
		Droppables:  ecs.NewStore[Droppable](),
	}
	reg.Register(t.Transforms)
	reg.Register(t.Cards)
	reg.Register(t.Renderables)
	reg.Register(t.Draggables)
	reg.Register(t.Clickables)
	reg.Register(t.Stacks)
	reg.Register(t.Droppables)
	return t
}
