package memhost

import (
	"time"

	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
)

// Node is an in-memory display-tree element.
type Node struct {
	surface  *Surface
	id       string
	tag      string
	parent   *Node
	children []*Node

	bounds  geom.Rect
	margins geom.Insets

	handle     bool
	helper     bool
	scrollable bool
	scroll     geom.Point
	content    geom.Size // scrollable content extents, zero when not scrollable

	translate   geom.Point
	transition  time.Duration
	transformed bool
	visible     bool
	attached    bool
	classes     map[string]bool
	fields      map[string]string
}

// NewNode creates a detached element with the given id and tag. Attach it
// with AppendChild.
func (s *Surface) NewNode(id, tag string) *Node {
	return &Node{
		surface: s,
		id:      id,
		tag:     tag,
		visible: true,
		classes: map[string]bool{},
	}
}

// AppendChild attaches child to n.
func (n *Node) AppendChild(child *Node) *Node {
	child.parent = n
	child.attached = true
	n.children = append(n.children, child)
	return child
}

// Detach removes n from its parent, mimicking element removal from a live
// tree. Detaching an already-detached node is a no-op.
func (n *Node) Detach() {
	if !n.attached || n.parent == nil {
		n.attached = false
		return
	}
	for i, c := range n.parent.children {
		if c == n {
			n.parent.children = append(n.parent.children[:i], n.parent.children[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.attached = false
}

// SetBounds sets the element's document-space layout rectangle.
func (n *Node) SetBounds(r geom.Rect) *Node { n.bounds = r; return n }

// SetMargins sets the element's margins.
func (n *Node) SetMargins(m geom.Insets) *Node { n.margins = m; return n }

// SetHandle marks the element as a drag handle.
func (n *Node) SetHandle(handle bool) *Node { n.handle = handle; return n }

// SetScrollable makes the element a scroll container with the given content
// extents.
func (n *Node) SetScrollable(content geom.Size) *Node {
	n.scrollable = true
	n.content = content
	return n
}

// SetField sets an editable-field value (e.g. the text of an input).
func (n *Node) SetField(name, value string) *Node {
	if n.fields == nil {
		n.fields = map[string]string{}
	}
	n.fields[name] = value
	return n
}

// Field returns an editable-field value.
func (n *Node) Field(name string) string { return n.fields[name] }

// Translate returns the currently applied translation.
func (n *Node) Translate() geom.Point { return n.translate }

// Transition returns the transition duration of the last applied transform.
func (n *Node) Transition() time.Duration { return n.transition }

// Transformed reports whether a transform is currently applied.
func (n *Node) Transformed() bool { return n.transformed }

// Visible reports element visibility.
func (n *Node) Visible() bool { return n.visible }

// HasClass reports whether the style class is set.
func (n *Node) HasClass(name string) bool { return n.classes[name] }

// IsHelper reports whether the node was created by NewHelper.
func (n *Node) IsHelper() bool { return n.helper }

// Children returns the node's attached children in document order.
func (n *Node) Children() []*Node { return n.children }

// ID implements host.Element.
func (n *Node) ID() string { return n.id }

// Tag implements host.Element.
func (n *Node) Tag() string { return n.tag }

// Parent implements host.Element.
func (n *Node) Parent() host.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Bounds implements host.Element. Layout geometry ignores any applied
// translation, matching the host contract.
func (n *Node) Bounds() geom.Rect { return n.bounds }

// Margins implements host.Element.
func (n *Node) Margins() geom.Insets { return n.margins }

// Attached implements host.Element.
func (n *Node) Attached() bool { return n.attached }

// IsHandle implements host.Element.
func (n *Node) IsHandle() bool { return n.handle }

// SetTranslate implements host.Element.
func (n *Node) SetTranslate(offset geom.Point, transition time.Duration) {
	if !n.attached {
		return
	}
	n.translate = offset
	n.transition = transition
	n.transformed = true
}

// ClearTransform implements host.Element.
func (n *Node) ClearTransform() {
	n.translate = geom.Point{}
	n.transition = 0
	n.transformed = false
}

// SetVisible implements host.Element.
func (n *Node) SetVisible(visible bool) {
	if !n.attached {
		return
	}
	n.visible = visible
}

// AddClass implements host.Element.
func (n *Node) AddClass(name string) {
	if n.classes == nil {
		n.classes = map[string]bool{}
	}
	n.classes[name] = true
}

// RemoveClass implements host.Element.
func (n *Node) RemoveClass(name string) { delete(n.classes, name) }

// SyncFieldValues implements host.Element.
func (n *Node) SyncFieldValues(from host.Element) {
	src, ok := from.(*Node)
	if !ok || src.fields == nil {
		return
	}
	if n.fields == nil {
		n.fields = map[string]string{}
	}
	for k, v := range src.fields {
		n.fields[k] = v
	}
}

// Bounds/scroll state as a host.Scroller. Only valid for scrollable nodes.

// ScrollOffset implements host.Scroller.
func (n *Node) ScrollOffset() geom.Point { return n.scroll }

// SetScrollOffset implements host.Scroller.
func (n *Node) SetScrollOffset(offset geom.Point) {
	max := n.MaxScroll()
	n.scroll = geom.Point{
		X: geom.Clamp(offset.X, 0, max.X),
		Y: geom.Clamp(offset.Y, 0, max.Y),
	}
}

// MaxScroll implements host.Scroller.
func (n *Node) MaxScroll() geom.Point {
	m := geom.Point{
		X: n.content.Width - n.bounds.Size().Width,
		Y: n.content.Height - n.bounds.Size().Height,
	}
	if m.X < 0 {
		m.X = 0
	}
	if m.Y < 0 {
		m.Y = 0
	}
	return m
}

var (
	_ host.Element  = (*Node)(nil)
	_ host.Scroller = (*Node)(nil)
)
