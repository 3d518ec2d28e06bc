package sortable

import (
	"testing"

	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host/memhost"
	"github.com/Nuclino/sortable/pkg/registry"
)

// fixture wires a memhost surface, a registry, and a sorter around a
// container for gesture tests. Pointer positions are document space.
type fixture struct {
	t         *testing.T
	surface   *memhost.Surface
	manager   *registry.Manager
	container *memhost.Node
	sorter    *Sorter
	items     []*memhost.Node
	refs      []*registry.Ref
	commits   []Commit
	last      geom.Point
}

func newFixture(t *testing.T, containerBounds geom.Rect, opts Options) *fixture {
	t.Helper()

	f := &fixture{
		t:       t,
		surface: memhost.NewSurface(geom.Size{Width: 800, Height: 600}, geom.Size{Width: 800, Height: 600}),
		manager: registry.NewManager(),
	}

	f.container = f.surface.NewNode("container", "ul").SetBounds(containerBounds)
	f.surface.Root().AppendChild(f.container)

	userEnd := opts.OnSortEnd
	opts.OnSortEnd = func(c Commit) {
		f.commits = append(f.commits, c)
		if userEnd != nil {
			userEnd(c)
		}
	}

	sorter, err := New(f.surface, f.manager, f.container, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.sorter = sorter
	return f
}

// addItem registers an element with the given document-space bounds.
func (f *fixture) addItem(id string, bounds geom.Rect, margins geom.Insets) *registry.Ref {
	f.t.Helper()
	el := f.surface.NewNode(id, "li").SetBounds(bounds).SetMargins(margins)
	f.container.AppendChild(el)
	ref := &registry.Ref{Element: el, Index: len(f.refs)}
	f.manager.Add(registry.DefaultCollection, ref)
	f.items = append(f.items, el)
	f.refs = append(f.refs, ref)
	return ref
}

// newListFixture builds a vertical list of n 300x50 items with no margins.
func newListFixture(t *testing.T, n int, opts Options) *fixture {
	t.Helper()
	f := newFixture(t, geom.Rect{Width: 300, Height: float64(n) * 50}, opts)
	for i := 0; i < n; i++ {
		f.addItem(itemID(i), geom.Rect{X: 0, Y: float64(i) * 50, Width: 300, Height: 50}, geom.Insets{})
	}
	return f
}

// newGridFixture builds a cols-wide grid of 50x50 items with no margins.
func newGridFixture(t *testing.T, n, cols int, opts Options) *fixture {
	t.Helper()
	rows := (n + cols - 1) / cols
	f := newFixture(t, geom.Rect{Width: float64(cols) * 50, Height: float64(rows) * 50}, opts)
	for i := 0; i < n; i++ {
		x := float64(i%cols) * 50
		y := float64(i/cols) * 50
		f.addItem(itemID(i), geom.Rect{X: x, Y: y, Width: 50, Height: 50}, geom.Insets{})
	}
	return f
}

func itemID(i int) string {
	return string(rune('a' + i))
}

// press dispatches a pointer-down at the center of item i.
func (f *fixture) press(i int) {
	f.t.Helper()
	b := f.items[i].Bounds()
	f.last = geom.Point{X: b.Left() + b.Size().Width/2, Y: b.Top() + b.Size().Height/2}
	f.sorter.HandlePress(PointerEvent{Position: f.last, Target: f.items[i]})
}

// moveTo dispatches a pointer move to the given document position.
func (f *fixture) moveTo(x, y float64) {
	f.t.Helper()
	f.last = geom.Point{X: x, Y: y}
	f.sorter.HandleMove(PointerEvent{Position: f.last})
}

// moveBy dispatches a pointer move relative to the last position.
func (f *fixture) moveBy(dx, dy float64) {
	f.t.Helper()
	f.moveTo(f.last.X+dx, f.last.Y+dy)
}

// release dispatches a pointer-up at the last position.
func (f *fixture) release() {
	f.t.Helper()
	f.sorter.HandleRelease(PointerEvent{Position: f.last})
}

// translateY returns the reflow translation currently applied to item i.
func (f *fixture) translateY(i int) float64 {
	return f.refs[i].Translate.Y
}

// wantState asserts the sorter's gesture state.
func (f *fixture) wantState(want State) {
	f.t.Helper()
	if got := f.sorter.State(); got != want {
		f.t.Fatalf("State() = %v, want %v", got, want)
	}
}

// wantCommit asserts that exactly one commit with the given indices was
// emitted.
func (f *fixture) wantCommit(oldIndex, newIndex int) {
	f.t.Helper()
	if len(f.commits) != 1 {
		f.t.Fatalf("commits = %d, want 1", len(f.commits))
	}
	c := f.commits[0]
	if c.OldIndex != oldIndex || c.NewIndex != newIndex {
		f.t.Fatalf("commit = {%d -> %d}, want {%d -> %d}", c.OldIndex, c.NewIndex, oldIndex, newIndex)
	}
}

// wantNoCommit asserts that no commit was emitted.
func (f *fixture) wantNoCommit() {
	f.t.Helper()
	if len(f.commits) != 0 {
		f.t.Fatalf("commits = %d, want 0", len(f.commits))
	}
}

// helperNode returns the live helper overlay, or nil.
func (f *fixture) helperNode() *memhost.Node {
	for _, c := range f.surface.Root().Children() {
		if c.IsHelper() && c.Attached() {
			return c
		}
	}
	return nil
}
