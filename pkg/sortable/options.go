package sortable

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Nuclino/sortable/pkg/errors"
	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
	"github.com/Nuclino/sortable/pkg/registry"
)

// Default thresholds and timings.
const (
	// DefaultPressThreshold is the movement (px) past which a pending press
	// with no distance threshold is treated as a scroll or tap, not a drag.
	DefaultPressThreshold = 5

	// DefaultTransitionDuration animates non-dragged items into their
	// reflowed slots.
	DefaultTransitionDuration = 300 * time.Millisecond
)

// Options configures a Sorter. Start from DefaultOptions and override;
// Validate is called by New and fails fast on misuse instead of coercing
// silently mid-gesture.
type Options struct {
	// Axis selects the reflow axes: a horizontal list, a vertical list, or
	// a grid.
	Axis geom.Axis

	// LockAxis forces one axis of the helper translation to zero: "x" keeps
	// the helper on a horizontal rail, "y" on a vertical one. Empty means
	// unlocked.
	LockAxis string

	// Distance is a movement threshold (px): the gesture only activates
	// once the pointer has travelled this far. Mutually exclusive with
	// PressDelay.
	Distance float64

	// PressDelay activates the gesture after the pointer has been held down
	// this long without moving past PressThreshold. Mutually exclusive with
	// Distance.
	PressDelay time.Duration

	// PressThreshold is the movement (px) tolerated while Pending before
	// the press is treated as a tap or scroll and cancelled.
	PressThreshold float64

	// LockToContainerEdges clamps the helper translation to the container
	// bounds, inset by LockOffset.
	LockToContainerEdges bool

	// LockOffset insets the container-edge clamp. Each entry is a pixel
	// amount ("10px", "10") or a percentage of the dragged element's size
	// ("50%"); one entry applies to both edges, a pair is [min, max].
	LockOffset []string

	// TransitionDuration animates non-dragged items into their reflowed
	// positions. Zero disables the transition.
	TransitionDuration time.Duration

	// HelperClass is a style tag added to the helper overlay.
	HelperClass string

	// HideSortableGhost hides the original element while its helper is
	// dragged.
	HideSortableGhost bool

	// UseWindowAsScrollContainer scrolls the window instead of the nearest
	// scrollable ancestor, and clips translation bounds to the viewport.
	UseWindowAsScrollContainer bool

	// UseDragHandle restricts gesture starts to designated handle
	// sub-elements.
	UseDragHandle bool

	// ShouldCancelStart gates gesture starts. Nil uses
	// DefaultShouldCancelStart.
	ShouldCancelStart CancelStartFunc

	// GetContainer resolves the measurement and scroll root. Nil uses the
	// container element passed to New.
	GetContainer func() host.Element

	// GetHelperDimensions overrides the helper extents. Nil copies the
	// dragged element's extents.
	GetHelperDimensions func(index int, el host.Element) geom.Size

	// OnSortStart fires when a gesture becomes Active.
	OnSortStart func(index int, collection registry.CollectionID, ev PointerEvent)

	// OnSortMove fires on every pointer move while Active.
	OnSortMove func(ev PointerEvent)

	// OnSortEnd fires exactly once per completed gesture.
	OnSortEnd func(c Commit)

	// OnHover, when set and the container is a vertical list, is consulted
	// before each candidate swap.
	OnHover HoverFunc

	// CanSort, when set, vetoes tentative reorders. Re-checked on every
	// move and at drop.
	CanSort CanSortFunc

	// Logger receives debug logging from the engine. Nil uses log.Default.
	Logger *log.Logger
}

// DefaultOptions returns the baseline configuration: a vertical list with
// tap detection, ghost hiding, and animated reflow.
func DefaultOptions() Options {
	return Options{
		Axis:               geom.AxisY,
		PressThreshold:     DefaultPressThreshold,
		TransitionDuration: DefaultTransitionDuration,
		HideSortableGhost:  true,
	}
}

// Validate checks the configuration for misuse. All violations are
// reported as structured errors at construction time.
func (o *Options) Validate() error {
	if o.Distance != 0 && o.PressDelay != 0 {
		return errors.New(errors.ErrCodeConflictingOptions,
			"distance and pressDelay are mutually exclusive")
	}
	if o.Distance < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "distance must be >= 0, got %v", o.Distance)
	}
	if o.PressDelay < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "pressDelay must be >= 0, got %v", o.PressDelay)
	}
	if o.PressThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "pressThreshold must be >= 0, got %v", o.PressThreshold)
	}
	if o.TransitionDuration < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "transitionDuration must be >= 0, got %v", o.TransitionDuration)
	}
	switch o.LockAxis {
	case "", "x", "y":
	default:
		return errors.New(errors.ErrCodeInvalidAxis, "lockAxis must be \"x\" or \"y\", got %q", o.LockAxis)
	}
	if _, _, err := parseLockOffsets(o.LockOffset); err != nil {
		return err
	}
	return nil
}

// shouldCancelStart resolves the gate predicate.
func (o *Options) shouldCancelStart(ev PointerEvent) bool {
	if o.ShouldCancelStart != nil {
		return o.ShouldCancelStart(ev)
	}
	return DefaultShouldCancelStart(ev)
}

// logger resolves the configured logger.
func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}
