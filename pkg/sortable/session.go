package sortable

import (
	"time"

	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
	"github.com/Nuclino/sortable/pkg/observability"
	"github.com/Nuclino/sortable/pkg/registry"
)

// session holds the ephemeral state of one Active drag gesture. It is
// created on activation and destroyed on release; the sorter owns at most
// one at a time.
type session struct {
	sorter *Sorter
	id     string

	ref        *registry.Ref
	node       host.Element
	collection registry.CollectionID
	index      int // origin index
	newIndex   int // tentative index, updated by reflow

	// Measurements captured at activation. Bounds are document space; the
	// translate limits are viewport space, matching the translation itself.
	width        float64
	height       float64
	margins      geom.Insets
	marginOffset geom.Point
	offsetEdge   geom.Point // edge offset of node within the container
	helperSize   geom.Size

	initialOffset       geom.Point // pointer position at activation
	initialScroll       geom.Point
	initialWindowScroll geom.Point
	minTranslate        geom.Point
	maxTranslate        geom.Point
	containerBounds     geom.Rect

	translate geom.Point

	container host.Element
	scroller  host.Scroller
	helper    host.Element
	external  bool // activation origin supplied by another container

	minLockOffset LockOffset
	maxLockOffset LockOffset

	scroll    *autoScroller
	startedAt time.Time
}

// newSession measures the dragged item and builds the Active-state session.
// origin, when non-nil, marks an externally driven activation: the initial
// pointer offset is taken from it and no helper is created here.
func newSession(s *Sorter, id string, ref *registry.Ref, ev PointerEvent, origin *geom.Point) *session {
	node := ref.Element
	bounds := node.Bounds()
	size := bounds.Size()
	margins := node.Margins()
	windowScroll := s.surface.WindowScroll()

	container := s.container
	if s.opts.GetContainer != nil {
		container = s.opts.GetContainer()
	}

	var scroller host.Scroller
	if s.opts.UseWindowAsScrollContainer {
		scroller = s.surface.Window()
	} else {
		scroller = s.surface.ClosestScroller(container)
	}

	sess := &session{
		sorter:     s,
		id:         id,
		ref:        ref,
		node:       node,
		collection: ref.Collection,
		index:      ref.Index,
		newIndex:   ref.Index,

		width:   size.Width,
		height:  size.Height,
		margins: margins,
		marginOffset: geom.Point{
			X: margins.SpanX(),
			Y: margins.SpanY(),
		},
		offsetEdge: edgeOffset(node, container),

		initialScroll:       scroller.ScrollOffset(),
		initialWindowScroll: windowScroll,
		containerBounds:     container.Bounds(),

		container: container,
		scroller:  scroller,
		external:  origin != nil,
		startedAt: s.surface.Now(),
	}
	sess.scroll = newAutoScroller(sess)

	// Lock offsets were validated at construction; resolving them here
	// cannot fail.
	sess.minLockOffset, sess.maxLockOffset, _ = parseLockOffsets(s.opts.LockOffset)

	if origin != nil {
		sess.initialOffset = *origin
	} else {
		sess.initialOffset = ev.Position
	}

	// Translation limits in viewport space: the helper may roam the
	// container (or the window) up to half its own extent past each edge.
	clientRect := bounds.Translate(geom.Point{X: -windowScroll.X, Y: -windowScroll.Y})
	containerRect := sess.containerBounds.Translate(geom.Point{X: -windowScroll.X, Y: -windowScroll.Y})
	viewport := s.surface.Viewport()
	if s.opts.Axis.X() {
		minEdge, maxEdge := containerRect.Left(), containerRect.Right()
		if s.opts.UseWindowAsScrollContainer {
			minEdge, maxEdge = 0, viewport.Width
		}
		sess.minTranslate.X = minEdge - clientRect.Left() - sess.width/2
		sess.maxTranslate.X = maxEdge - clientRect.Left() - sess.width/2
	}
	if s.opts.Axis.Y() {
		minEdge, maxEdge := containerRect.Top(), containerRect.Bottom()
		if s.opts.UseWindowAsScrollContainer {
			minEdge, maxEdge = 0, viewport.Height
		}
		sess.minTranslate.Y = minEdge - clientRect.Top() - sess.height/2
		sess.maxTranslate.Y = maxEdge - clientRect.Top() - sess.height/2
	}

	sess.helperSize = size
	if s.opts.GetHelperDimensions != nil {
		sess.helperSize = s.opts.GetHelperDimensions(ref.Index, node)
	}

	if origin == nil {
		sess.helper = s.surface.NewHelper(node, bounds, sess.helperSize)
		// Cloning does not carry live input state over.
		sess.helper.SyncFieldValues(node)
		if s.opts.HelperClass != "" {
			sess.helper.AddClass(s.opts.HelperClass)
		}
		if s.opts.HideSortableGhost {
			node.SetVisible(false)
		}
	}

	return sess
}

// move handles one pointer move while Active: reposition the helper, reflow
// the siblings, and feed the autoscroll controller.
func (ss *session) move(ev PointerEvent) {
	ss.updateTranslate(ev.Position)
	ss.reflow()
	ss.scroll.update(ss.translate)
}

// updateTranslate maps a document-space pointer position to the helper
// translation, applying container-edge clamping and axis locking.
func (ss *session) updateTranslate(pos geom.Point) {
	s := ss.sorter
	windowScrollDelta := s.surface.WindowScroll().Sub(ss.initialWindowScroll)

	tr := pos.Sub(ss.initialOffset).Sub(windowScrollDelta)

	if s.opts.LockToContainerEdges {
		// Translation limits exist only for enabled axes; the clamp follows
		// suit.
		minLock := ss.minLockOffset.Pixels(ss.helperSize)
		maxLock := ss.maxLockOffset.Pixels(ss.helperSize)
		if s.opts.Axis.X() {
			minOff := ss.width/2 - minLock.X
			maxOff := ss.width/2 - maxLock.X
			tr.X = geom.Clamp(tr.X, ss.minTranslate.X+minOff, ss.maxTranslate.X-maxOff)
		}
		if s.opts.Axis.Y() {
			minOff := ss.height/2 - minLock.Y
			maxOff := ss.height/2 - maxLock.Y
			tr.Y = geom.Clamp(tr.Y, ss.minTranslate.Y+minOff, ss.maxTranslate.Y-maxOff)
		}
	}

	switch s.opts.LockAxis {
	case "x":
		tr.Y = 0
	case "y":
		tr.X = 0
	}

	ss.translate = tr
	if ss.helper != nil {
		ss.helper.SetTranslate(tr, 0)
	}
}

// end tears the session down and emits the commit. Every cleanup step is
// unconditional so the engine never leaks timers, helpers, or transforms,
// whatever path led here.
func (ss *session) end(ev PointerEvent) {
	s := ss.sorter

	ss.scroll.stop()

	if ss.helper != nil {
		s.surface.RemoveHelper(ss.helper)
		ss.helper = nil
	}
	if s.opts.HideSortableGhost && ss.node.Attached() {
		ss.node.SetVisible(true)
	}

	// Reset every sibling: transforms off, translations and cached offsets
	// cleared.
	for _, ref := range s.manager.Refs(ss.collection) {
		ref.Translate = geom.Point{}
		ref.InvalidateEdgeOffset()
		if ref.Element.Attached() {
			ref.Element.ClearTransform()
		}
	}

	// The drop validation runs once more at commit time; a veto lands the
	// item back at its origin.
	newIndex := ss.newIndex
	if s.opts.CanSort != nil && newIndex != ss.index {
		if !s.opts.CanSort(DropCheck{
			IsOrigin:   !ss.external,
			OldIndex:   ss.index,
			NewIndex:   newIndex,
			Collection: ss.collection,
		}) {
			newIndex = ss.index
		}
	}

	s.manager.SetActive(nil)
	s.finish()

	duration := s.surface.Now().Sub(ss.startedAt)
	s.logger.Debug("session end",
		"session", ss.id, "oldIndex", ss.index, "newIndex", newIndex, "took", duration)
	observability.Session().OnSessionEnd(ss.id, ss.index, newIndex, duration)

	if s.opts.OnSortEnd != nil {
		s.opts.OnSortEnd(Commit{
			OldIndex:   ss.index,
			NewIndex:   newIndex,
			Collection: ss.collection,
			Event:      ev,
		})
	}
}

// edgeOffset returns the document offset of el's leading edges relative to
// container.
func edgeOffset(el, container host.Element) geom.Point {
	return el.Bounds().Origin().Sub(container.Bounds().Origin())
}
