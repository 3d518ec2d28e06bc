// Package host defines the capability surface the sortable engine requires
// from its embedding environment.
//
// The engine never touches a real display tree. Everything it needs —
// element geometry, scroll state, helper overlays, timers — is reached
// through the interfaces in this package, which makes the reflow and
// session machinery testable against a purely in-memory implementation
// (see the memhost subpackage).
//
// # Coordinate spaces
//
// Element bounds are reported in document space: the layout position of the
// element within the whole scrollable content, unaffected by window or
// container scrolling and unaffected by any translation applied through
// SetTranslate. Pointer positions delivered to the engine use the same
// space. Viewport-relative positions are derived by subtracting the current
// window scroll offset.
//
// # Threading
//
// The engine is single-goroutine and event-driven. Timer callbacks must be
// delivered on the same goroutine that drives the engine's event handlers;
// implementations must not invoke callbacks concurrently.
package host

import (
	"time"

	"github.com/Nuclino/sortable/pkg/geom"
)

// Element is a node in the host's display tree.
type Element interface {
	// ID returns a stable identifier for the element.
	ID() string

	// Tag returns the element's tag name in lower case (e.g. "div",
	// "input"). Used by the default press-cancel predicate to skip
	// interactive controls.
	Tag() string

	// Parent returns the parent element, or nil at the tree root.
	Parent() Element

	// Bounds returns the element's layout rectangle in document space.
	// The rectangle must not reflect translations applied via SetTranslate;
	// reflow depends on reading stable layout geometry while transforms
	// are active.
	Bounds() geom.Rect

	// Margins returns the element's margins.
	Margins() geom.Insets

	// Attached reports whether the element is still part of the live tree.
	// Operations on detached elements are skipped, not failed.
	Attached() bool

	// IsHandle reports whether the element is a designated drag handle.
	IsHandle() bool

	// SetTranslate applies a translation to the element, optionally
	// animated over the given transition duration.
	SetTranslate(offset geom.Point, transition time.Duration)

	// ClearTransform removes any translation and transition.
	ClearTransform()

	// SetVisible toggles element visibility. Used to hide the ghost of the
	// dragged element while its helper is shown.
	SetVisible(visible bool)

	// AddClass and RemoveClass manage style tags on the element. The engine
	// only uses these for the configured helper class.
	AddClass(name string)
	RemoveClass(name string)

	// SyncFieldValues copies live editable-field state (text inputs,
	// selections) from the given element into this one. Cloning an element
	// does not carry that state over, so helpers need an explicit sync.
	SyncFieldValues(from Element)
}

// Scroller is a scrollable region: either a scroll container element or the
// window itself.
type Scroller interface {
	// Bounds returns the scroller's visible region in document space.
	Bounds() geom.Rect

	// ScrollOffset returns the current scroll position.
	ScrollOffset() geom.Point

	// SetScrollOffset sets the scroll position. Values outside
	// [0, MaxScroll] are clamped by the implementation.
	SetScrollOffset(offset geom.Point)

	// MaxScroll returns the maximum scroll position on each axis.
	MaxScroll() geom.Point
}

// Timer is a scheduled callback that can be stopped.
type Timer interface {
	// Stop cancels the timer. Stopping an already-stopped timer is a no-op.
	Stop()
}

// Surface is the top-level host environment for one sortable container.
type Surface interface {
	// Viewport returns the visible window size.
	Viewport() geom.Size

	// WindowScroll returns the window scroll offset.
	WindowScroll() geom.Point

	// Window returns the window itself as a Scroller, for containers
	// configured to use the window as their scroll container.
	Window() Scroller

	// ClosestScroller returns the nearest scrollable ancestor of el,
	// falling back to the window when none exists.
	ClosestScroller(el Element) Scroller

	// NewHelper clones from into a floating overlay element positioned at
	// bounds (document space) with the given extents. The helper sits
	// outside the layout flow: it never participates in reflow and is
	// positioned purely through SetTranslate.
	NewHelper(from Element, bounds geom.Rect, size geom.Size) Element

	// RemoveHelper detaches a helper created by NewHelper. Removing an
	// already-removed helper is a no-op.
	RemoveHelper(helper Element)

	// After schedules fn to run once after d.
	After(d time.Duration, fn func()) Timer

	// Every schedules fn to run repeatedly every d until stopped.
	Every(d time.Duration, fn func()) Timer

	// Now returns the surface's current time.
	Now() time.Time
}

// Closest walks upward from el and returns the first element (including el
// itself) for which match returns true, or nil when the walk exhausts the
// tree.
func Closest(el Element, match func(Element) bool) Element {
	for e := el; e != nil; e = e.Parent() {
		if match(e) {
			return e
		}
	}
	return nil
}
