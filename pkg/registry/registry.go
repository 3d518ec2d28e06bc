// Package registry tracks the draggable items of a sortable container.
//
// A Manager holds one ordered set of item refs per collection. Item wrappers
// register on mount and unregister on unmount; the engine looks items up by
// element identity when a press lands and enumerates them in document order
// during reflow. Registration order is not document order — items may mount
// out of sequence or be windowed in and out — so Ordered re-derives the
// on-screen order from live geometry on every call.
//
// The manager owns its refs. Elements never point back at a ref; the reverse
// mapping lives in a lookup table keyed by element identity, so there is no
// ownership cycle between the display tree and the registry.
package registry

import (
	"sort"
	"strconv"

	"github.com/Nuclino/sortable/pkg/errors"
	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
)

// CollectionID partitions a container's items into independently sortable
// groups. A drag gesture operates on exactly one collection.
type CollectionID string

// DefaultCollection is the collection used when the caller does not
// partition its items.
const DefaultCollection CollectionID = "0"

// CollectionIndex converts a numeric collection key to a CollectionID.
func CollectionIndex(i int) CollectionID {
	return CollectionID(strconv.Itoa(i))
}

// Ref is the handle for one registered draggable item.
type Ref struct {
	// Element is the item's backing element.
	Element host.Element

	// Index is the item's position in its collection. It is updated by the
	// item wrapper when list contents change and must stay consistent with
	// the collection order.
	Index int

	// Collection is the group the item belongs to.
	Collection CollectionID

	// Translate is the translation currently applied to the element by the
	// reflow engine. Zero when the item is at rest.
	Translate geom.Point

	edgeOffset geom.Point
	edgeCached bool
}

// EdgeOffset returns the cached document offset of the item's leading edges
// and whether the cache is valid.
func (r *Ref) EdgeOffset() (geom.Point, bool) {
	return r.edgeOffset, r.edgeCached
}

// CacheEdgeOffset memoizes the item's edge offset for the duration of a
// gesture.
func (r *Ref) CacheEdgeOffset(p geom.Point) {
	r.edgeOffset = p
	r.edgeCached = true
}

// InvalidateEdgeOffset drops the cached edge offset. Called when geometry
// may have changed: session end, windowing updates, scroll pauses.
func (r *Ref) InvalidateEdgeOffset() {
	r.edgeOffset = geom.Point{}
	r.edgeCached = false
}

// Active marks the item a drag session currently operates on.
type Active struct {
	Index      int
	Collection CollectionID
}

// Manager is the per-container registry of draggable items.
type Manager struct {
	refs      map[CollectionID][]*Ref
	byElement map[host.Element]*Ref
	active    *Active
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{
		refs:      map[CollectionID][]*Ref{},
		byElement: map[host.Element]*Ref{},
	}
}

// Add registers ref under the given collection. Adding a ref whose element
// is already registered anywhere is ignored; an item lives in at most one
// collection at a time.
func (m *Manager) Add(collection CollectionID, ref *Ref) {
	if ref == nil || ref.Element == nil {
		return
	}
	if _, exists := m.byElement[ref.Element]; exists {
		return
	}
	ref.Collection = collection
	m.refs[collection] = append(m.refs[collection], ref)
	m.byElement[ref.Element] = ref
}

// Remove unregisters ref by identity. Removing an absent ref is a no-op.
func (m *Manager) Remove(collection CollectionID, ref *Ref) {
	if ref == nil {
		return
	}
	list := m.refs[collection]
	for i, r := range list {
		if r == ref {
			m.refs[collection] = append(list[:i], list[i+1:]...)
			delete(m.byElement, ref.Element)
			return
		}
	}
}

// Refs returns the refs of a collection in registration order.
func (m *Manager) Refs(collection CollectionID) []*Ref {
	return m.refs[collection]
}

// Collection returns the refs of a collection in registration order, or an
// error when nothing has ever been registered under it. Embedders resolving
// a collection key from external input use this instead of Refs to surface
// typos rather than sort an empty list.
func (m *Manager) Collection(collection CollectionID) ([]*Ref, error) {
	list, ok := m.refs[collection]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownCollection,
			"unknown collection %q", collection)
	}
	return list, nil
}

// Ordered returns the refs of a collection sorted by live document position
// (top-to-bottom, then left-to-right), the order reflow enumerates neighbors
// in. Detached elements sort after attached ones.
func (m *Manager) Ordered(collection CollectionID) []*Ref {
	list := m.refs[collection]
	out := make([]*Ref, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Element.Attached() != b.Element.Attached() {
			return a.Element.Attached()
		}
		ra, rb := a.Element.Bounds(), b.Element.Bounds()
		if ra.Top() != rb.Top() {
			return ra.Top() < rb.Top()
		}
		if ra.Left() != rb.Left() {
			return ra.Left() < rb.Left()
		}
		return a.Index < b.Index
	})
	return out
}

// ByElement returns the ref registered for el, or nil.
func (m *Manager) ByElement(el host.Element) *Ref {
	return m.byElement[el]
}

// ClosestRef walks upward from el and returns the ref of the nearest
// registered ancestor (including el itself), or nil.
func (m *Manager) ClosestRef(el host.Element) *Ref {
	found := host.Closest(el, func(e host.Element) bool {
		_, ok := m.byElement[e]
		return ok
	})
	if found == nil {
		return nil
	}
	return m.byElement[found]
}

// SetActive installs (or clears, with nil) the active drag marker.
func (m *Manager) SetActive(a *Active) { m.active = a }

// Active returns the current active marker, or nil.
func (m *Manager) Active() *Active { return m.active }

// IsActive reports whether a drag session currently holds the registry.
func (m *Manager) IsActive() bool { return m.active != nil }

// ActiveRef resolves the active marker to its ref, or nil when idle or when
// the marked item is no longer registered.
func (m *Manager) ActiveRef() *Ref {
	if m.active == nil {
		return nil
	}
	for _, r := range m.refs[m.active.Collection] {
		if r.Index == m.active.Index {
			return r
		}
	}
	return nil
}

// InvalidateOffsets drops every cached edge offset in the collection.
func (m *Manager) InvalidateOffsets(collection CollectionID) {
	for _, r := range m.refs[collection] {
		r.InvalidateEdgeOffset()
	}
}
