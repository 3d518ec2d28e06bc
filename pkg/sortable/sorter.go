package sortable

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Nuclino/sortable/pkg/errors"
	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
	"github.com/Nuclino/sortable/pkg/observability"
	"github.com/Nuclino/sortable/pkg/registry"
)

// State is the lifecycle phase of a sorter's current gesture.
type State int

const (
	// StateIdle means no gesture is in flight.
	StateIdle State = iota
	// StatePending means a press landed on an item but the activation
	// threshold has not been met yet.
	StatePending
	// StateActive means a drag session is live: the helper exists and
	// reflow runs on every move.
	StateActive
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateActive:
		return "active"
	default:
		return "idle"
	}
}

// SessionInfo is a read-only snapshot of the active drag session.
type SessionInfo struct {
	ID         string
	Collection registry.CollectionID
	OldIndex   int
	NewIndex   int
	Translate  geom.Point
}

// Sorter is the container controller: it owns the gesture state machine and
// at most one live drag session.
type Sorter struct {
	surface   host.Surface
	manager   *registry.Manager
	container host.Element
	opts      Options
	logger    *log.Logger

	state State
	sess  *session

	// Pending-press bookkeeping. The timers are single-shot and cleared on
	// every transition out of Pending.
	sessionID   string
	pressOrigin geom.Point
	pressEvent  PointerEvent
	pendingRef  *registry.Ref
	pressTimer  host.Timer
	cancelTimer host.Timer
}

// New creates a sorter for one container element. Options are validated
// here; configuration misuse is an error, not a degraded mode.
func New(surface host.Surface, manager *registry.Manager, container host.Element, opts Options) (*Sorter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Sorter{
		surface:   surface,
		manager:   manager,
		container: container,
		opts:      opts,
		logger:    opts.logger(),
		state:     StateIdle,
	}, nil
}

// Manager returns the sorter's item registry.
func (s *Sorter) Manager() *registry.Manager { return s.manager }

// State returns the current gesture state.
func (s *Sorter) State() State { return s.state }

// Session returns a snapshot of the active session. Calling it while no
// session is active is a programming error and fails loudly.
func (s *Sorter) Session() (SessionInfo, error) {
	if s.sess == nil {
		return SessionInfo{}, errors.New(errors.ErrCodeNoActiveSession,
			"no active drag session")
	}
	return SessionInfo{
		ID:         s.sess.id,
		Collection: s.sess.collection,
		OldIndex:   s.sess.index,
		NewIndex:   s.sess.newIndex,
		Translate:  s.sess.translate,
	}, nil
}

// HandlePress starts gesture detection for a pointer-down event. The press
// is ignored when a gesture is already in flight, when the gate predicate
// cancels it, or when it does not land on a registered item (or, with
// UseDragHandle, on a handle inside one).
func (s *Sorter) HandlePress(ev PointerEvent) {
	if s.state != StateIdle || s.manager.IsActive() {
		return
	}
	if s.opts.shouldCancelStart(ev) {
		return
	}
	ref := s.manager.ClosestRef(ev.Target)
	if ref == nil || !ref.Element.Attached() {
		return
	}
	if s.opts.UseDragHandle && !withinHandle(ev.Target, ref.Element) {
		return
	}

	s.sessionID = uuid.NewString()
	s.pressOrigin = ev.Position
	s.pressEvent = ev
	s.pendingRef = ref
	s.manager.SetActive(&registry.Active{Index: ref.Index, Collection: ref.Collection})
	s.state = StatePending

	s.logger.Debug("press accepted",
		"session", s.sessionID, "collection", ref.Collection, "index", ref.Index)
	observability.Session().OnSessionStart(s.sessionID, string(ref.Collection), ref.Index)

	switch {
	case s.opts.Distance > 0:
		// Activation happens in HandleMove once the pointer travels far
		// enough.
	case s.opts.PressDelay > 0:
		s.pressTimer = s.surface.After(s.opts.PressDelay, func() {
			s.pressTimer = nil
			s.Activate(s.pressEvent, nil)
		})
	default:
		s.Activate(ev, nil)
	}
}

// HandleMove advances the gesture for a pointer-move event. While Pending it
// arbitrates between tap, scroll, and drag; while Active it drives the
// reflow engine and the autoscroll controller.
func (s *Sorter) HandleMove(ev PointerEvent) {
	switch s.state {
	case StatePending:
		delta := s.pressOrigin.Sub(ev.Position)
		combined := math.Abs(delta.X) + math.Abs(delta.Y)

		if s.opts.Distance == 0 {
			if s.opts.PressThreshold == 0 || combined >= s.opts.PressThreshold {
				// Movement without a distance threshold means the user is
				// scrolling or tapping, not dragging. Defer the cancel one
				// tick so an in-flight activation wins a simultaneous race.
				if s.cancelTimer != nil {
					s.cancelTimer.Stop()
				}
				s.cancelTimer = s.surface.After(0, s.Cancel)
			}
		} else if combined >= s.opts.Distance && s.manager.IsActive() {
			s.Activate(ev, nil)
		}
	case StateActive:
		s.sess.move(ev)
		if s.opts.OnSortMove != nil {
			s.opts.OnSortMove(ev)
		}
	}
}

// HandleRelease finishes the gesture for a pointer-up event. An Active
// session commits; a Pending press cancels as a tap. Releasing while Idle is
// a no-op.
func (s *Sorter) HandleRelease(ev PointerEvent) {
	switch s.state {
	case StatePending:
		s.Cancel()
	case StateActive:
		s.sess.end(ev)
	}
}

// Activate promotes the gesture to Active, measuring the session geometry
// and creating the helper overlay. It is exported for externally driven
// activations (e.g. a gesture handed over from another container): passing a
// non-nil origin supplies the initial pointer offset and skips helper
// creation, since the originating container already owns one.
//
// Self-initiated activations pass a nil origin.
func (s *Sorter) Activate(ev PointerEvent, origin *geom.Point) {
	if s.state == StateActive {
		return
	}
	if s.pendingRef == nil || !s.pendingRef.Element.Attached() {
		// The item disappeared between press and activation (windowing,
		// removal). Best effort: abandon the gesture.
		s.Cancel()
		return
	}
	s.clearPendingTimers()

	sess := newSession(s, s.sessionID, s.pendingRef, ev, origin)
	s.sess = sess
	s.state = StateActive

	s.logger.Debug("session active", "session", sess.id, "index", sess.index)
	observability.Session().OnSessionActive(sess.id)
	if s.opts.OnSortStart != nil {
		s.opts.OnSortStart(sess.index, sess.collection, ev)
	}
}

// Cancel abandons a gesture that has not become Active, clearing timers and
// the active marker without emitting a commit. Cancelling while Idle or
// Active is a no-op.
func (s *Sorter) Cancel() {
	if s.state != StatePending {
		return
	}
	s.clearPendingTimers()
	s.manager.SetActive(nil)
	s.pendingRef = nil
	s.state = StateIdle

	s.logger.Debug("press cancelled", "session", s.sessionID)
	observability.Session().OnSessionCancel(s.sessionID)
}

// InvalidateOffsets drops all cached per-item edge offsets of the active
// collection. Windowing collaborators call this when they shuffle item
// geometry mid-gesture; the next reflow re-measures. Calling it while idle
// is a no-op.
func (s *Sorter) InvalidateOffsets() {
	active := s.manager.Active()
	if active == nil {
		return
	}
	s.manager.InvalidateOffsets(active.Collection)
}

// clearPendingTimers stops the press-delay and deferred-cancel timers.
// Safe to call on any path out of Pending.
func (s *Sorter) clearPendingTimers() {
	if s.pressTimer != nil {
		s.pressTimer.Stop()
		s.pressTimer = nil
	}
	if s.cancelTimer != nil {
		s.cancelTimer.Stop()
		s.cancelTimer = nil
	}
}

// finish resets the sorter after a session ends.
func (s *Sorter) finish() {
	s.sess = nil
	s.pendingRef = nil
	s.state = StateIdle
}

// withinHandle reports whether target sits inside a designated drag handle
// that belongs to item.
func withinHandle(target, item host.Element) bool {
	for e := target; e != nil; e = e.Parent() {
		if e.IsHandle() {
			return true
		}
		if e == item {
			return false
		}
	}
	return false
}
