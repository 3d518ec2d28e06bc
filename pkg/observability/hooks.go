// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about drag sessions and autoscroll
// activity.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    observability.SetScrollHooks(&myScrollHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Session().OnSessionStart(sessionID, collection, index)
//	// ... gesture runs ...
//	observability.Session().OnSessionEnd(sessionID, oldIndex, newIndex, duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from the drag session state machine.
type SessionHooks interface {
	// OnSessionStart fires when a press passes gating and enters Pending.
	OnSessionStart(sessionID, collection string, index int)

	// OnSessionActive fires when a session is promoted to Active and its
	// helper is created.
	OnSessionActive(sessionID string)

	// OnReflow fires after each reflow pass with the tentative new index.
	OnReflow(sessionID string, newIndex int)

	// OnSessionEnd fires when a gesture completes and commits.
	OnSessionEnd(sessionID string, oldIndex, newIndex int, duration time.Duration)

	// OnSessionCancel fires when a pending gesture is abandoned without a
	// commit.
	OnSessionCancel(sessionID string)
}

// =============================================================================
// Scroll Hooks
// =============================================================================

// ScrollHooks receives events from the autoscroll controller.
type ScrollHooks interface {
	// OnAutoscrollStart records the start of edge-driven scrolling.
	OnAutoscrollStart(sessionID string, dirX, dirY int)

	// OnAutoscrollTick records one scroll increment.
	OnAutoscrollTick(sessionID string, dx, dy float64)

	// OnAutoscrollStop records the end of edge-driven scrolling.
	OnAutoscrollStop(sessionID string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSessionStart(string, string, int)           {}
func (NoopSessionHooks) OnSessionActive(string)                       {}
func (NoopSessionHooks) OnReflow(string, int)                         {}
func (NoopSessionHooks) OnSessionEnd(string, int, int, time.Duration) {}
func (NoopSessionHooks) OnSessionCancel(string)                       {}

// NoopScrollHooks is a no-op implementation of ScrollHooks.
type NoopScrollHooks struct{}

func (NoopScrollHooks) OnAutoscrollStart(string, int, int)        {}
func (NoopScrollHooks) OnAutoscrollTick(string, float64, float64) {}
func (NoopScrollHooks) OnAutoscrollStop(string)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks SessionHooks = NoopSessionHooks{}
	scrollHooks  ScrollHooks  = NoopScrollHooks{}
	hooksMu      sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any gestures run.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetScrollHooks registers custom scroll hooks.
// This should be called once at application startup before any gestures run.
func SetScrollHooks(h ScrollHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scrollHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Scroll returns the registered scroll hooks.
func Scroll() ScrollHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scrollHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	scrollHooks = NoopScrollHooks{}
}
