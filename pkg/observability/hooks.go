// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about grid construction and trace binding.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGridHooks(&myGridHooks{})
//	    // ... build figures
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Grid().OnBuildStart(rows, cols)
//	// ... build the grid ...
//	observability.Grid().OnBuildComplete(subplots, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from subplot grid construction and binding.
type GridHooks interface {
	// OnBuildStart is called before a grid of rows x cols is validated.
	OnBuildStart(rows, cols int)

	// OnBuildComplete is called once a build finished, successfully or not.
	// subplots counts grid cells and insets that received a subplot.
	OnBuildComplete(subplots int, duration time.Duration, err error)

	// OnBind is called for every attempt to bind a trace to a grid cell.
	OnBind(row, col int, subplotKind string, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnBuildStart(int, int)                     {}
func (NoopGridHooks) OnBuildComplete(int, time.Duration, error) {}
func (NoopGridHooks) OnBind(int, int, string, error)            {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gridHooks GridHooks = NoopGridHooks{}
	hooksMu   sync.RWMutex
)

// SetGridHooks registers custom grid hooks.
// This should be called once at application startup before any grid is built.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gridHooks = NoopGridHooks{}
}
