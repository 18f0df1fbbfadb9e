package errcode

import (
	"errors"

	"axp20x-go/drivers/axp20x"
)

// Code is a stable, bus-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK                Code = "ok"
	Busy              Code = "busy"
	Unsupported       Code = "unsupported"
	InvalidParams     Code = "invalid_params"
	InvalidPayload    Code = "invalid_payload"
	UnknownCapability Code = "unknown_capability"
	HALNotReady       Code = "hal_not_ready"

	UnknownBus     Code = "unknown_bus"
	BusError       Code = "bus_error"
	Timeout        Code = "timeout"
	NotInitialised Code = "not_initialised"
	VerifyFailed   Code = "verify_failed"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap keeps err as the cause of a coded error for operation op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: MapDriverErr(err), Op: op, Msg: err.Error(), Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	return MapDriverErr(err)
}

// MapDriverErr maps low-level driver errors to a Code.
func MapDriverErr(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, axp20x.ErrNotInitialised):
		return NotInitialised
	case errors.Is(err, axp20x.ErrUnsupported):
		return Unsupported
	case errors.Is(err, axp20x.ErrInvalidState):
		return InvalidParams
	case errors.Is(err, axp20x.ErrTimeout):
		return Timeout
	case errors.Is(err, axp20x.ErrVerify):
		return VerifyFailed
	case errors.Is(err, axp20x.ErrBus):
		return BusError
	}
	return Error
}
