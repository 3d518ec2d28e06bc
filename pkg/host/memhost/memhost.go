// Package memhost provides an in-memory implementation of the host surface.
//
// It models a display tree with explicit layout geometry, a scrollable
// window, and a manually advanced clock. Nothing renders; the package exists
// so the engine can run against deterministic geometry in unit tests and so
// the demo TUI can back its rows with real elements.
//
// Timers only fire when the clock is advanced via [Surface.Advance], always
// on the calling goroutine, which satisfies the host package's threading
// contract by construction.
package memhost

import (
	"fmt"
	"time"

	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
)

// Surface is an in-memory host surface.
type Surface struct {
	root        *Node
	viewport    geom.Size
	contentSize geom.Size
	scroll      geom.Point
	clock       clock
	helperSeq   int
}

// NewSurface creates a surface with the given viewport and total content
// size. The content size bounds window scrolling; it is clamped up to at
// least the viewport.
func NewSurface(viewport, content geom.Size) *Surface {
	if content.Width < viewport.Width {
		content.Width = viewport.Width
	}
	if content.Height < viewport.Height {
		content.Height = viewport.Height
	}
	s := &Surface{
		viewport:    viewport,
		contentSize: content,
		clock:       newClock(),
	}
	s.root = &Node{surface: s, id: "root", tag: "body", attached: true, visible: true}
	s.root.bounds = geom.Rect{Width: content.Width, Height: content.Height}
	return s
}

// Root returns the tree root.
func (s *Surface) Root() *Node { return s.root }

// Viewport implements host.Surface.
func (s *Surface) Viewport() geom.Size { return s.viewport }

// WindowScroll implements host.Surface.
func (s *Surface) WindowScroll() geom.Point { return s.scroll }

// Window implements host.Surface.
func (s *Surface) Window() host.Scroller { return (*windowScroller)(s) }

// ClosestScroller implements host.Surface. It walks upward from el looking
// for a scrollable node and falls back to the window.
func (s *Surface) ClosestScroller(el host.Element) host.Scroller {
	found := host.Closest(el, func(e host.Element) bool {
		n, ok := e.(*Node)
		return ok && n.scrollable
	})
	if found == nil {
		return s.Window()
	}
	return found.(*Node)
}

// NewHelper implements host.Surface. The clone copies tag and style classes
// but not editable-field state; the engine syncs field values explicitly.
func (s *Surface) NewHelper(from host.Element, bounds geom.Rect, size geom.Size) host.Element {
	s.helperSeq++
	h := &Node{
		surface:  s,
		id:       fmt.Sprintf("helper-%d", s.helperSeq),
		parent:   s.root,
		attached: true,
		visible:  true,
		helper:   true,
		bounds:   geom.Rect{X: bounds.X, Y: bounds.Y, Width: size.Width, Height: size.Height},
		classes:  map[string]bool{},
	}
	if n, ok := from.(*Node); ok {
		h.tag = n.tag
		for c := range n.classes {
			h.classes[c] = true
		}
	}
	s.root.children = append(s.root.children, h)
	return h
}

// RemoveHelper implements host.Surface.
func (s *Surface) RemoveHelper(helper host.Element) {
	n, ok := helper.(*Node)
	if !ok || !n.attached {
		return
	}
	n.attached = false
	for i, c := range s.root.children {
		if c == n {
			s.root.children = append(s.root.children[:i], s.root.children[i+1:]...)
			break
		}
	}
}

// After implements host.Surface.
func (s *Surface) After(d time.Duration, fn func()) host.Timer {
	return s.clock.schedule(d, 0, fn)
}

// Every implements host.Surface.
func (s *Surface) Every(d time.Duration, fn func()) host.Timer {
	return s.clock.schedule(d, d, fn)
}

// Now implements host.Surface.
func (s *Surface) Now() time.Time { return s.clock.now }

// Advance moves the clock forward by d, firing any due timers in order on
// the calling goroutine.
func (s *Surface) Advance(d time.Duration) { s.clock.advance(d) }

// windowScroller adapts the surface's window scroll state to host.Scroller.
type windowScroller Surface

func (w *windowScroller) Bounds() geom.Rect {
	return geom.Rect{X: w.scroll.X, Y: w.scroll.Y, Width: w.viewport.Width, Height: w.viewport.Height}
}

func (w *windowScroller) ScrollOffset() geom.Point { return w.scroll }

func (w *windowScroller) SetScrollOffset(offset geom.Point) {
	max := w.MaxScroll()
	w.scroll = geom.Point{
		X: geom.Clamp(offset.X, 0, max.X),
		Y: geom.Clamp(offset.Y, 0, max.Y),
	}
}

func (w *windowScroller) MaxScroll() geom.Point {
	return geom.Point{
		X: w.contentSize.Width - w.viewport.Width,
		Y: w.contentSize.Height - w.viewport.Height,
	}
}

var (
	_ host.Surface  = (*Surface)(nil)
	_ host.Scroller = (*windowScroller)(nil)
)
