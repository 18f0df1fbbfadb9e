package axp20x

import (
	"errors"

	"axp20x-go/x/conv"
)

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrNotInitialised = errors.New("axp20x: not initialised")
	ErrUnsupported    = errors.New("axp20x: unsupported for detected chip")
	ErrTimeout        = errors.New("axp20x: timeout waiting for power output register")
	ErrVerify         = errors.New("axp20x: write verification failed")
	ErrBus            = errors.New("axp20x: bus error")
	ErrInvalidState   = errors.New("axp20x: invalid output state")
)

// BusError reports a failed I2C transaction. The transport error is kept
// verbatim and returned by Unwrap.
type BusError struct {
	Op  string // "read" | "write"
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	b := make([]byte, 0, 64)
	b = append(b, "axp20x: "...)
	b = append(b, e.Op...)
	b = append(b, " reg "...)
	b = conv.AppendReg(b, e.Reg)
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

func (e *BusError) Unwrap() error        { return e.Err }
func (e *BusError) Is(target error) bool { return target == ErrBus }

// VerifyError reports a read-back mismatch after a register write.
type VerifyError struct {
	Reg       byte
	Want, Got byte
}

func (e *VerifyError) Error() string {
	var h [2]byte
	b := make([]byte, 0, 64)
	b = append(b, "axp20x: write verification failed on reg "...)
	b = conv.AppendReg(b, e.Reg)
	b = append(b, ": wrote 0x"...)
	b = append(b, conv.U8Hex(h[:], e.Want)...)
	b = append(b, ", read 0x"...)
	b = append(b, conv.U8Hex(h[:], e.Got)...)
	return string(b)
}

func (e *VerifyError) Is(target error) bool { return target == ErrVerify }
