package sortable

import (
	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
	"github.com/Nuclino/sortable/pkg/registry"
)

// Button identifies the pointer button of an event.
type Button int

const (
	// ButtonLeft is the primary button (or a touch contact).
	ButtonLeft Button = iota
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button. Presses with it never start a
	// drag.
	ButtonRight
)

// PointerEvent is one pointer or touch input delivered to the engine.
// Positions are in document space (page coordinates).
type PointerEvent struct {
	Position geom.Point
	Target   host.Element
	Button   Button
	Touch    bool
}

// Commit is the payload delivered exactly once per completed, non-cancelled
// gesture.
type Commit struct {
	OldIndex   int
	NewIndex   int
	Collection registry.CollectionID
	Event      PointerEvent
}

// GapPosition tags which side of the hover target a computed gap sits on.
type GapPosition int

const (
	// GapAbove is the gap between the target and its preceding sibling.
	GapAbove GapPosition = iota
	// GapBelow is the gap between the target and its following sibling.
	GapBelow
)

// String returns "above" or "below".
func (g GapPosition) String() string {
	if g == GapBelow {
		return "below"
	}
	return "above"
}

// HoverDetail describes a candidate swap for the hover-override callback.
// All coordinates are container-relative edge offsets.
type HoverDetail struct {
	// IsOrigin reports whether this container started the gesture.
	IsOrigin bool

	DraggedIndex  int
	DraggedTop    float64
	DraggedBottom float64

	TargetIndex  int
	TargetTop    float64
	TargetBottom float64

	// GapIndex is the insertion index the swap would produce.
	GapIndex    int
	GapPosition GapPosition
}

// DropCheck describes a tentative reorder for the drop-validation callback.
type DropCheck struct {
	// IsOrigin reports whether this container started the gesture.
	IsOrigin   bool
	OldIndex   int
	NewIndex   int
	Collection registry.CollectionID
}

// HoverFunc decides whether a candidate swap is applied. Returning false
// suppresses the swap, letting the consumer override default swap timing.
type HoverFunc func(HoverDetail) bool

// CanSortFunc vetoes a tentative reorder. It is re-checked on every move and
// once more at drop; returning false resets all translations and reverts the
// tentative index to the origin index.
type CanSortFunc func(DropCheck) bool

// CancelStartFunc gates gesture starts. Returning true suppresses the press.
type CancelStartFunc func(PointerEvent) bool

// interactiveTags is the denylist used by the default press-cancel
// predicate. Presses originating inside these controls never start a drag.
var interactiveTags = map[string]bool{
	"input":    true,
	"textarea": true,
	"select":   true,
	"option":   true,
	"button":   true,
}

// DefaultShouldCancelStart suppresses right-button presses and presses
// whose target is an interactive form control.
func DefaultShouldCancelStart(ev PointerEvent) bool {
	if ev.Button == ButtonRight {
		return true
	}
	return ev.Target != nil && interactiveTags[ev.Target.Tag()]
}
