// Package pkg provides the core libraries for the sortable drag-to-reorder
// engine.
//
// # Overview
//
// Sortable turns raw pointer input into reorder commits: a press on a
// registered item opens a gesture, movement drags a visual helper across the
// item's siblings while they reflow out of the way, and release reports the
// old and new index to the embedder. The pkg directory is organized into
// four main areas:
//
//  1. [sortable] - The engine (gesture state machine, reflow, autoscroll)
//  2. [registry] - Item bookkeeping (collections, indices, cached offsets)
//  3. [host] - The abstract rendering surface the engine runs against
//  4. [geom] - Coordinate primitives shared by all of the above
//
// # Architecture
//
// The typical event flow:
//
//	Pointer events (press / move / release)
//	         ↓
//	    [sortable] Sorter (state machine: Idle → Pending → Active)
//	         ↓
//	    [registry] Manager (which item, which collection, which index)
//	         ↓
//	    [sortable] reflow + autoscroll (sibling translations, edge scrolling)
//	         ↓
//	    [host] Surface (helper overlay, transforms, scrolling, timers)
//	         ↓
//	    Commit{OldIndex, NewIndex} delivered to the embedder
//
// # Quick Start
//
// Wire a sorter to a container and feed it pointer events:
//
//	import (
//	    "github.com/Nuclino/sortable/pkg/registry"
//	    "github.com/Nuclino/sortable/pkg/sortable"
//	)
//
//	manager := registry.NewManager()
//	for i, el := range items {
//	    manager.Add(registry.DefaultCollection, &registry.Ref{Element: el, Index: i})
//	}
//
//	opts := sortable.DefaultOptions()
//	opts.OnSortEnd = func(c sortable.Commit) {
//	    reorder(c.OldIndex, c.NewIndex)
//	}
//	sorter, err := sortable.New(surface, manager, container, opts)
//
//	// From the embedder's event loop:
//	sorter.HandlePress(ev)
//	sorter.HandleMove(ev)
//	sorter.HandleRelease(ev)
//
// # Main Packages
//
// [sortable] - The engine. Options and validation, the gesture state
// machine, per-session measurements, the reflow pass (list and grid), and
// the autoscroll controller.
//
// [registry] - Item registration grouped into collections, document-order
// iteration, the active-item marker, and the per-gesture edge-offset cache.
//
// [host] - Interfaces the embedder implements: Element, Scroller, Surface,
// and Timer. The engine has no opinion about what actually draws.
//
// [host/memhost] - A complete in-memory host with a manual clock, backing
// the test suites and the terminal demo.
//
// [geom] - Points, sizes, rects with normalized edge accessors, margin
// insets, and the axis type.
//
// [errors] - Structured errors with machine-readable codes; configuration
// misuse fails at construction, not mid-gesture.
//
// [observability] - Process-wide session and autoscroll hooks with no-op
// defaults.
//
// [buildinfo] - ldflags-injected version information for the demo binary.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/sortable/... # Engine only
//
// [sortable]: https://pkg.go.dev/github.com/Nuclino/sortable/pkg/sortable
// [registry]: https://pkg.go.dev/github.com/Nuclino/sortable/pkg/registry
// [host]: https://pkg.go.dev/github.com/Nuclino/sortable/pkg/host
// [host/memhost]: https://pkg.go.dev/github.com/Nuclino/sortable/pkg/host/memhost
// [geom]: https://pkg.go.dev/github.com/Nuclino/sortable/pkg/geom
// [errors]: https://pkg.go.dev/github.com/Nuclino/sortable/pkg/errors
// [observability]: https://pkg.go.dev/github.com/Nuclino/sortable/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/Nuclino/sortable/pkg/buildinfo
package pkg
