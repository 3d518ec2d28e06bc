package sortable

import (
	"testing"
	"time"

	"github.com/Nuclino/sortable/pkg/errors"
	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
	"github.com/Nuclino/sortable/pkg/registry"
)

func TestImmediatePressActivates(t *testing.T) {
	f := newListFixture(t, 3, DefaultOptions())

	f.press(0)
	f.wantState(StateActive)

	if f.helperNode() == nil {
		t.Fatal("helper not created on activation")
	}
	if f.items[0].Visible() {
		t.Error("ghost not hidden on activation")
	}
	if !f.manager.IsActive() {
		t.Error("registry active marker not set")
	}
}

func TestSessionSnapshotWhileIdle(t *testing.T) {
	f := newListFixture(t, 3, DefaultOptions())

	_, err := f.sorter.Session()
	if err == nil {
		t.Fatal("Session() while idle = nil error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeNoActiveSession {
		t.Errorf("GetCode(err) = %v, want %v", code, errors.ErrCodeNoActiveSession)
	}
}

func TestDistanceActivation(t *testing.T) {
	opts := DefaultOptions()
	opts.Distance = 10
	f := newListFixture(t, 3, opts)

	f.press(0)
	f.wantState(StatePending)
	if f.helperNode() != nil {
		t.Fatal("helper created before activation threshold")
	}

	f.moveBy(6, 0)
	f.wantState(StatePending)

	f.moveBy(6, 0)
	f.wantState(StateActive)

	f.release()
	f.wantState(StateIdle)
	f.wantCommit(0, 0)
}

func TestPressDelayActivation(t *testing.T) {
	opts := DefaultOptions()
	opts.PressDelay = 200 * time.Millisecond
	f := newListFixture(t, 3, opts)

	f.press(0)
	f.wantState(StatePending)

	f.surface.Advance(199 * time.Millisecond)
	f.wantState(StatePending)

	f.surface.Advance(time.Millisecond)
	f.wantState(StateActive)
}

func TestMovementDuringPressDelayCancels(t *testing.T) {
	opts := DefaultOptions()
	opts.PressDelay = 200 * time.Millisecond
	f := newListFixture(t, 3, opts)

	f.press(0)
	f.moveBy(6, 0) // past PressThreshold: a scroll, not a drag
	f.surface.Advance(time.Millisecond)
	f.wantState(StateIdle)

	// The press-delay timer must be dead too.
	f.surface.Advance(300 * time.Millisecond)
	f.wantState(StateIdle)
	f.wantNoCommit()
	if f.manager.IsActive() {
		t.Error("active marker leaked after cancel")
	}
}

func TestMovementWithinPressThresholdKeepsPending(t *testing.T) {
	opts := DefaultOptions()
	opts.PressDelay = 200 * time.Millisecond
	f := newListFixture(t, 3, opts)

	f.press(0)
	f.moveBy(2, 2) // combined 4 < threshold 5
	f.surface.Advance(time.Millisecond)
	f.wantState(StatePending)
}

func TestPendingReleaseIsTap(t *testing.T) {
	opts := DefaultOptions()
	opts.Distance = 10
	f := newListFixture(t, 3, opts)

	f.press(1)
	f.moveBy(5, 0)
	f.release()

	f.wantState(StateIdle)
	f.wantNoCommit()
	if f.helperNode() != nil {
		t.Error("helper exists after tap")
	}
	for i := range f.refs {
		if got := f.translateY(i); got != 0 {
			t.Errorf("item %d translate = %v after tap, want 0", i, got)
		}
	}
}

func TestCancelIdempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.Distance = 10
	f := newListFixture(t, 3, opts)

	f.sorter.Cancel() // idle: no-op
	f.wantState(StateIdle)

	f.press(0)
	f.sorter.Cancel()
	f.sorter.Cancel()
	f.wantState(StateIdle)

	f.release() // idle: no-op
	f.wantState(StateIdle)
	f.wantNoCommit()
}

func TestRightButtonPressIgnored(t *testing.T) {
	f := newListFixture(t, 3, DefaultOptions())

	b := f.items[0].Bounds()
	f.sorter.HandlePress(PointerEvent{
		Position: geom.Point{X: b.Left() + 5, Y: b.Top() + 5},
		Target:   f.items[0],
		Button:   ButtonRight,
	})
	f.wantState(StateIdle)
}

func TestInteractiveTargetIgnored(t *testing.T) {
	f := newListFixture(t, 3, DefaultOptions())
	input := f.surface.NewNode("field", "input").
		SetBounds(geom.Rect{X: 10, Y: 10, Width: 50, Height: 20})
	f.items[0].AppendChild(input)

	f.sorter.HandlePress(PointerEvent{Position: geom.Point{X: 20, Y: 20}, Target: input})
	f.wantState(StateIdle)
}

func TestShouldCancelStartOverride(t *testing.T) {
	opts := DefaultOptions()
	opts.ShouldCancelStart = func(PointerEvent) bool { return false }
	f := newListFixture(t, 3, opts)

	b := f.items[0].Bounds()
	f.sorter.HandlePress(PointerEvent{
		Position: geom.Point{X: b.Left() + 5, Y: b.Top() + 5},
		Target:   f.items[0],
		Button:   ButtonRight,
	})
	f.wantState(StateActive)
}

func TestPressOutsideItemsIgnored(t *testing.T) {
	f := newListFixture(t, 3, DefaultOptions())

	f.sorter.HandlePress(PointerEvent{
		Position: geom.Point{X: 150, Y: 500},
		Target:   f.container,
	})
	f.wantState(StateIdle)
}

func TestUseDragHandle(t *testing.T) {
	opts := DefaultOptions()
	opts.UseDragHandle = true
	f := newListFixture(t, 3, opts)

	handle := f.surface.NewNode("grip", "span").
		SetBounds(geom.Rect{X: 280, Y: 15, Width: 20, Height: 20}).
		SetHandle(true)
	f.items[0].AppendChild(handle)

	// A press on the item body is ignored.
	f.press(0)
	f.wantState(StateIdle)

	// A press on the handle resolves to the owning item.
	f.sorter.HandlePress(PointerEvent{Position: geom.Point{X: 290, Y: 25}, Target: handle})
	f.wantState(StateActive)

	info, err := f.sorter.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if info.OldIndex != 0 {
		t.Errorf("Session().OldIndex = %d, want 0", info.OldIndex)
	}
}

func TestSecondPressIgnoredWhileActive(t *testing.T) {
	f := newListFixture(t, 3, DefaultOptions())

	f.press(0)
	f.wantState(StateActive)
	before, _ := f.sorter.Session()

	f.press(2)
	after, _ := f.sorter.Session()
	if after.OldIndex != before.OldIndex || after.ID != before.ID {
		t.Error("second press replaced the live session")
	}
}

func TestCommitPayload(t *testing.T) {
	f := newListFixture(t, 5, DefaultOptions())

	f.press(1)
	f.moveTo(150, 175)
	f.release()

	f.wantCommit(1, 3)
	c := f.commits[0]
	if c.Collection != registry.DefaultCollection {
		t.Errorf("commit collection = %q, want %q", c.Collection, registry.DefaultCollection)
	}
	if c.Event.Position != (geom.Point{X: 150, Y: 175}) {
		t.Errorf("commit event position = %v, want {150 175}", c.Event.Position)
	}
}

func TestReleaseRestoresEverything(t *testing.T) {
	f := newListFixture(t, 5, DefaultOptions())

	f.press(1)
	f.moveTo(150, 175)
	f.release()

	f.wantState(StateIdle)
	if f.helperNode() != nil {
		t.Error("helper still attached after release")
	}
	if !f.items[1].Visible() {
		t.Error("ghost still hidden after release")
	}
	if f.manager.IsActive() {
		t.Error("active marker still set after release")
	}
	for i := range f.refs {
		if got := f.translateY(i); got != 0 {
			t.Errorf("item %d translate = %v after release, want 0", i, got)
		}
		if f.items[i].Transformed() {
			t.Errorf("item %d transform not cleared", i)
		}
		if _, ok := f.refs[i].EdgeOffset(); ok {
			t.Errorf("item %d edge offset cache not cleared", i)
		}
	}
}

func TestHelperCloneAndOverrides(t *testing.T) {
	opts := DefaultOptions()
	opts.HelperClass = "dragging"
	opts.GetHelperDimensions = func(index int, el host.Element) geom.Size {
		return geom.Size{Width: 120, Height: 40}
	}
	f := newListFixture(t, 3, opts)
	f.items[1].AddClass("row")
	f.items[1].SetField("value", "draft")

	f.press(1)

	h := f.helperNode()
	if h == nil {
		t.Fatal("no helper after activation")
	}
	if h.Tag() != "li" {
		t.Errorf("helper tag = %q, want %q", h.Tag(), "li")
	}
	if !h.HasClass("row") || !h.HasClass("dragging") {
		t.Error("helper missing cloned or configured class")
	}
	if got := h.Field("value"); got != "draft" {
		t.Errorf("helper field = %q, want %q", got, "draft")
	}
	if got := h.Bounds().Size(); got != (geom.Size{Width: 120, Height: 40}) {
		t.Errorf("helper size = %v, want {120 40}", got)
	}
	if got := h.Bounds().Origin(); got != (geom.Point{X: 0, Y: 50}) {
		t.Errorf("helper origin = %v, want {0 50}", got)
	}
}

func TestExternalActivationSkipsHelper(t *testing.T) {
	opts := DefaultOptions()
	opts.Distance = 10
	var checks []DropCheck
	opts.CanSort = func(c DropCheck) bool {
		checks = append(checks, c)
		return true
	}
	f := newListFixture(t, 3, opts)

	f.press(0)
	f.wantState(StatePending)

	origin := geom.Point{X: 150, Y: 25}
	f.sorter.Activate(PointerEvent{Position: origin}, &origin)
	f.wantState(StateActive)
	if f.helperNode() != nil {
		t.Error("external activation created a helper")
	}
	if !f.items[0].Visible() {
		t.Error("external activation hid the ghost")
	}

	f.moveTo(150, 80)
	f.release()
	f.wantCommit(0, 1)
	if len(checks) == 0 {
		t.Fatal("drop validation never consulted")
	}
	for _, c := range checks {
		if c.IsOrigin {
			t.Fatal("externally activated session reported IsOrigin = true")
		}
	}
}

func TestSeparateCollections(t *testing.T) {
	f := newListFixture(t, 3, DefaultOptions())
	other := f.surface.NewNode("x", "li").
		SetBounds(geom.Rect{X: 400, Y: 0, Width: 300, Height: 50})
	f.container.AppendChild(other)
	otherRef := &registry.Ref{Element: other, Index: 0}
	f.manager.Add(registry.CollectionIndex(1), otherRef)

	f.press(0)
	f.moveTo(150, 100)

	info, err := f.sorter.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if info.Collection != registry.DefaultCollection {
		t.Errorf("Session().Collection = %q, want %q", info.Collection, registry.DefaultCollection)
	}
	if otherRef.Translate != (geom.Point{}) {
		t.Errorf("foreign collection item moved: %v", otherRef.Translate)
	}
}
