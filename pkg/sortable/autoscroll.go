package sortable

import (
	"math"
	"time"

	"github.com/Nuclino/sortable/pkg/geom"
	"github.com/Nuclino/sortable/pkg/host"
	"github.com/Nuclino/sortable/pkg/observability"
)

// Autoscroll tuning. The tick is deliberately short: each increment is
// small and the speed comes from the per-tick offset scaling with edge
// proximity.
const (
	autoscrollInterval     = 5 * time.Millisecond
	autoscrollAcceleration = 10
)

// autoScroller drives the scroll container while the helper hovers near an
// edge. It owns the engine's only repeating timer; every session teardown
// path must go through stop.
type autoScroller struct {
	sess  *session
	timer host.Timer
	step  geom.Point // per-tick scroll increment
}

func newAutoScroller(ss *session) *autoScroller {
	return &autoScroller{sess: ss}
}

// update recomputes the scroll direction and speed for the current helper
// translation. Any prior timer is always cleared first, so a move that
// leaves the edge region stops scrolling immediately; a move still inside
// it restarts the timer with the new speed.
//
// Direction kicks in when the translation comes within half an
// element-extent of a translation bound, and the per-tick step grows
// linearly as the translation passes the bound.
func (a *autoScroller) update(translate geom.Point) {
	ss := a.sess
	axis := ss.sorter.opts.Axis

	dirX, dirY := 0, 0
	speedX, speedY := 1.0, 1.0

	switch {
	case axis.Y() && translate.Y >= ss.maxTranslate.Y-ss.height/2:
		dirY = 1
		speedY = autoscrollAcceleration *
			math.Abs((ss.maxTranslate.Y-ss.height/2-translate.Y)/ss.height)
	case axis.X() && translate.X >= ss.maxTranslate.X-ss.width/2:
		dirX = 1
		speedX = autoscrollAcceleration *
			math.Abs((ss.maxTranslate.X-ss.width/2-translate.X)/ss.width)
	case axis.Y() && translate.Y <= ss.minTranslate.Y+ss.height/2:
		dirY = -1
		speedY = autoscrollAcceleration *
			math.Abs((ss.minTranslate.Y+ss.height/2-translate.Y)/ss.height)
	case axis.X() && translate.X <= ss.minTranslate.X+ss.width/2:
		dirX = -1
		speedX = autoscrollAcceleration *
			math.Abs((ss.minTranslate.X+ss.width/2-translate.X)/ss.width)
	}

	wasRunning := a.timer != nil
	if wasRunning {
		a.timer.Stop()
		a.timer = nil
	}

	if dirX == 0 && dirY == 0 {
		if wasRunning {
			observability.Scroll().OnAutoscrollStop(ss.id)
		}
		return
	}

	a.step = geom.Point{X: speedX * float64(dirX), Y: speedY * float64(dirY)}
	if !wasRunning {
		observability.Scroll().OnAutoscrollStart(ss.id, dirX, dirY)
	}
	a.timer = ss.sorter.surface.Every(autoscrollInterval, a.tick)
}

// tick advances the scroll container and the helper translation by one step
// and re-runs reflow, keeping reorder state consistent while the pointer
// sits still at the edge.
func (a *autoScroller) tick() {
	ss := a.sess

	ss.scroller.SetScrollOffset(ss.scroller.ScrollOffset().Add(a.step))
	ss.translate = ss.translate.Add(a.step)
	if ss.helper != nil {
		ss.helper.SetTranslate(ss.translate, 0)
	}
	ss.reflow()

	observability.Scroll().OnAutoscrollTick(ss.id, a.step.X, a.step.Y)
}

// stop clears the timer. Safe to call repeatedly and while not running.
func (a *autoScroller) stop() {
	if a.timer == nil {
		return
	}
	a.timer.Stop()
	a.timer = nil
	observability.Scroll().OnAutoscrollStop(a.sess.id)
}

// direction returns the sign of the current per-tick step, for tests and
// instrumentation. Zero means idle.
func (a *autoScroller) direction() (int, int) {
	if a.timer == nil {
		return 0, 0
	}
	return sign(a.step.X), sign(a.step.Y)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
