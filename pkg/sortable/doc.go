// Package sortable implements the drag-to-reorder engine: the drag session
// state machine, the reflow engine, and the autoscroll controller.
//
// A [Sorter] is constructed per container with a host surface, an item
// registry, and validated [Options]. The embedding layer routes pointer
// input to the sorter:
//
//	sorter, err := sortable.New(surface, manager, container, opts)
//	// on pointer down / move / up:
//	sorter.HandlePress(ev)
//	sorter.HandleMove(ev)
//	sorter.HandleRelease(ev)
//
// A gesture moves through three states. A press that lands on a registered
// item enters Pending; crossing the configured distance threshold or
// outlasting the press delay promotes it to Active, which clones the item
// into a floating helper and starts live reflow; releasing commits the final
// index through Options.OnSortEnd. Pending gestures that move too far
// without a distance threshold, or that release early, cancel without a
// commit.
//
// The engine runs on a single goroutine. Pointer handlers and host timer
// callbacks interleave but never run concurrently, so session state needs no
// locking; every teardown path stops the autoscroll timer and any pending
// one-shot timers.
package sortable
