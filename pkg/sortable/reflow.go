package sortable

import (
	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/observability"
	"github.com/Nuclino/sortable/pkg/registry"
)

// reflow recomputes every sibling's target translation from the dragged
// box's current position and derives the tentative new index. It runs once
// per pointer move and once per autoscroll tick.
//
// The dragged element itself is never transformed; only its helper moves.
// Siblings shift by exactly one extent-plus-margin in list mode, or to a
// neighbor's cached offset when a grid row wraps.
func (ss *session) reflow() {
	s := ss.sorter
	axis := s.opts.Axis
	nodes := s.manager.Ordered(ss.collection)

	containerScrollDelta := ss.scroller.ScrollOffset().Sub(ss.initialScroll)
	windowScrollDelta := s.surface.WindowScroll().Sub(ss.initialWindowScroll)
	if s.opts.UseWindowAsScrollContainer {
		// The scroller is the window itself; its delta is already counted
		// through the window-scroll delta.
		containerScrollDelta = geom.Point{}
	}

	// The dragged box's leading edges in container space.
	sortingOffset := ss.offsetEdge.Add(ss.translate).Add(containerScrollDelta)

	newIndex := -1
	moved := make([]geom.Point, len(nodes))

	for i, ref := range nodes {
		el := ref.Element
		if !el.Attached() {
			continue
		}
		if ref.Index == ss.index {
			// Windowing may have re-rendered the original mid-gesture;
			// keep the ghost hidden.
			if s.opts.HideSortableGhost {
				el.SetVisible(false)
			}
			continue
		}

		size := el.Bounds().Size()

		// The swap point sits at 50% overlap of the smaller extent.
		halfW := size.Width / 2
		if ss.width < size.Width {
			halfW = ss.width / 2
		}
		halfH := size.Height / 2
		if ss.height < size.Height {
			halfH = ss.height / 2
		}

		edge := ss.itemEdge(ref)

		switch {
		case axis == geom.AxisXY:
			newIndex = ss.reflowGrid(nodes, i, ref, edge, halfW, halfH,
				sortingOffset, windowScrollDelta, newIndex, &moved[i])

		case axis.X():
			lead := sortingOffset.X + windowScrollDelta.X
			if ref.Index > ss.index && lead+halfW >= edge.X {
				moved[i].X = -(ss.width + ss.marginOffset.X)
				newIndex = ref.Index
			} else if ref.Index < ss.index && lead <= edge.X+halfW {
				moved[i].X = ss.width + ss.marginOffset.X
				if newIndex == -1 {
					newIndex = ref.Index
				}
			}

		default: // vertical list
			lead := sortingOffset.Y + windowScrollDelta.Y
			if ref.Index > ss.index && lead+halfH >= edge.Y {
				if ss.hoverAllows(ref, edge, size, lead, true) {
					moved[i].Y = -(ss.height + ss.marginOffset.Y)
					newIndex = ref.Index
				}
			} else if ref.Index < ss.index && lead <= edge.Y+halfH {
				if ss.hoverAllows(ref, edge, size, lead, false) {
					moved[i].Y = ss.height + ss.marginOffset.Y
					if newIndex == -1 {
						newIndex = ref.Index
					}
				}
			}
		}
	}

	if newIndex == -1 {
		newIndex = ss.index
	}

	// Drop validation is live: a veto mid-gesture resets every translation,
	// not just the final commit.
	if newIndex != ss.index && !ss.dropAllowed(newIndex) {
		for i := range moved {
			moved[i] = geom.Point{}
		}
		newIndex = ss.index
	}

	dur := s.opts.TransitionDuration
	for i, ref := range nodes {
		if ref.Index == ss.index || !ref.Element.Attached() {
			continue
		}
		ref.Translate = moved[i]
		ref.Element.SetTranslate(moved[i], dur)
	}

	ss.newIndex = newIndex
	observability.Session().OnReflow(ss.id, newIndex)
}

// reflowGrid handles the two-axis regime: items before the dragged index
// shift right (wrapping to the next item's slot past the row end), items
// after shift left (wrapping to the previous item's slot past the row
// start). Wrap targets reuse the neighbor's own cached offset, which makes
// the landing pixel-exact whatever the item sizes.
func (ss *session) reflowGrid(nodes []*registry.Ref, i int, ref *registry.Ref,
	edge geom.Point, halfW, halfH float64,
	sortingOffset, windowScrollDelta geom.Point, newIndex int, out *geom.Point) int {

	leadX := sortingOffset.X + windowScrollDelta.X
	leadY := sortingOffset.Y + windowScrollDelta.Y
	rowWidth := ss.containerBounds.Size().Width

	mustShiftBackward := ref.Index < ss.index &&
		((leadX-halfW <= edge.X && leadY <= edge.Y+halfH) || leadY+halfH <= edge.Y)
	mustShiftForward := ref.Index > ss.index &&
		((leadX+halfW >= edge.X && leadY+halfH >= edge.Y) || leadY+halfH >= edge.Y+ss.height)

	switch {
	case mustShiftBackward:
		out.X = ss.width + ss.marginOffset.X
		if edge.X+out.X > rowWidth-halfW {
			// Past the row end: land in the next item's original slot.
			if next := ss.neighborEdge(nodes, i+1); next != nil {
				out.X = next.X - edge.X
				out.Y = next.Y - edge.Y
			}
		}
		if newIndex == -1 {
			newIndex = ref.Index
		}

	case mustShiftForward:
		out.X = -(ss.width + ss.marginOffset.X)
		if edge.X+out.X < halfW {
			// Past the row start: land in the previous item's original slot.
			if prev := ss.neighborEdge(nodes, i-1); prev != nil {
				out.X = prev.X - edge.X
				out.Y = prev.Y - edge.Y
			}
		}
		newIndex = ref.Index
	}
	return newIndex
}

// itemEdge returns the memoized container-relative edge offset of an item,
// measuring on first use. The cache lives until the session ends or a
// windowing collaborator invalidates it.
func (ss *session) itemEdge(ref *registry.Ref) geom.Point {
	if edge, ok := ref.EdgeOffset(); ok {
		return edge
	}
	edge := edgeOffset(ref.Element, ss.container)
	ref.CacheEdgeOffset(edge)
	return edge
}

// neighborEdge returns the cached edge offset of nodes[i], or nil when the
// index is out of range or the neighbor is detached.
func (ss *session) neighborEdge(nodes []*registry.Ref, i int) *geom.Point {
	if i < 0 || i >= len(nodes) {
		return nil
	}
	ref := nodes[i]
	if !ref.Element.Attached() {
		return nil
	}
	edge := ss.itemEdge(ref)
	return &edge
}

// hoverAllows consults the hover-override callback for a candidate swap in
// a vertical list. Without a registered callback every candidate is
// applied.
//
// The gap reported to the callback depends on the target's current
// translate: a target at rest is being approached, so the gap sits on the
// dragged box's side of travel; a target already shifted means the pointer
// is doubling back over it, and the gap flips to the other side.
func (ss *session) hoverAllows(ref *registry.Ref, edge geom.Point, size geom.Size, lead float64, forward bool) bool {
	onHover := ss.sorter.opts.OnHover
	if onHover == nil {
		return true
	}

	gapIndex := ref.Index
	gap := GapBelow
	if forward {
		if ref.Translate.Y != 0 {
			gap = GapAbove
			gapIndex = ref.Index - 1
		}
	} else {
		gap = GapAbove
		if ref.Translate.Y != 0 {
			gap = GapBelow
			gapIndex = ref.Index + 1
		}
	}

	return onHover(HoverDetail{
		IsOrigin:      !ss.external,
		DraggedIndex:  ss.index,
		DraggedTop:    lead,
		DraggedBottom: lead + ss.height,
		TargetIndex:   ref.Index,
		TargetTop:     edge.Y,
		TargetBottom:  edge.Y + size.Height,
		GapIndex:      gapIndex,
		GapPosition:   gap,
	})
}

// dropAllowed consults the drop-validation callback for a tentative index.
func (ss *session) dropAllowed(newIndex int) bool {
	canSort := ss.sorter.opts.CanSort
	if canSort == nil {
		return true
	}
	return canSort(DropCheck{
		IsOrigin:   !ss.external,
		OldIndex:   ss.index,
		NewIndex:   newIndex,
		Collection: ss.collection,
	})
}
