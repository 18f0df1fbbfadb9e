// services/hal/types.go
package hal

import (
	"context"
	"time"

	"tinygo.org/x/drivers"
)

// Reading is one datum for one capability kind.
type Reading struct {
	Kind    string // e.g. "battery", "charger", "power", "events"
	Payload any    // JSON-serialisable payload (fixed-point, struct, etc.)
	TsMs    int64  // producer timestamp
}

// Sample is a batch of readings collected together.
type Sample []Reading

// CapInfo describes one capability’s retained info document.
type CapInfo struct {
	Kind string // capability kind
	Info any    // small JSONable document
}

// Adaptor owns a concrete device/driver and exposes generic hooks.
// Adaptors must NOT spawn goroutines; the caller serialises every call.
type Adaptor interface {
	ID() string
	// Static capability descriptions (published as retained).
	Capabilities() []CapInfo
	// Trigger a measurement and return suggested wait until Collect.
	Trigger(ctx context.Context) (collectAfter time.Duration, err error)
	// Collect attempts to fetch a measurement batch; may return ErrNotReady.
	Collect(ctx context.Context) (Sample, error)
	// Optional pass-through control for driver-specific methods.
	// Return (nil, ErrUnsupported) if not implemented for a method/kind.
	Control(kind, method string, payload any) (result any, err error)
}

// ErrNotReady signals the caller to retry Collect after backoff.
var ErrNotReady = errNotReady{}

type errNotReady struct{}

func (errNotReady) Error() string { return "not ready" }

// ErrUnsupported for adaptor Control pass-through.
var ErrUnsupported = errUnsupported{}

type errUnsupported struct{}

func (errUnsupported) Error() string { return "unsupported" }

// I2CBusFactory injects configured I²C instances by id.
type I2CBusFactory interface {
	ByID(id string) (drivers.I2C, bool)
}
