package axp20x

import (
	"errors"
	"testing"
	"time"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

type txKind uint8

const (
	txRead txKind = iota
	txWrite
)

type tx struct {
	kind txKind
	addr uint16
	reg  byte
	val  byte
}

// Scripted register-file fake. Reads pop from script[reg] while it has
// entries, then fall back to regs[reg]. Writes update regs[reg].
type fakeI2C struct {
	regs    map[byte]byte
	script  map[byte][]byte
	failOn  map[byte]error // any access to reg fails
	ignored map[byte]bool  // writes to reg are dropped
	log     []tx
}

var errNack = errors.New("nack")

func newFake() *fakeI2C {
	return &fakeI2C{
		regs:    map[byte]byte{},
		script:  map[byte][]byte{},
		failOn:  map[byte]error{},
		ignored: map[byte]bool{},
	}
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if len(w) == 0 {
		return errNack
	}
	reg := w[0]
	if err := f.failOn[reg]; err != nil {
		return err
	}
	switch {
	case len(w) == 1 && len(r) == 1:
		v := f.regs[reg]
		if q := f.script[reg]; len(q) > 0 {
			v, f.script[reg] = q[0], q[1:]
		}
		r[0] = v
		f.log = append(f.log, tx{kind: txRead, addr: addr, reg: reg, val: v})
		return nil
	case len(w) == 2 && len(r) == 0:
		if !f.ignored[reg] {
			f.regs[reg] = w[1]
		}
		f.log = append(f.log, tx{kind: txWrite, addr: addr, reg: reg, val: w[1]})
		return nil
	}
	return errNack
}

func (f *fakeI2C) writes(reg byte) []byte {
	var out []byte
	for _, t := range f.log {
		if t.kind == txWrite && t.reg == reg {
			out = append(out, t.val)
		}
	}
	return out
}

func (f *fakeI2C) reads(reg byte) int {
	n := 0
	for _, t := range f.log {
		if t.kind == txRead && t.reg == reg {
			n++
		}
	}
	return n
}

func (f *fakeI2C) reset() { f.log = nil }

// sleepRecorder replaces time.Sleep.
type sleepRecorder struct {
	calls []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) { s.calls = append(s.calls, d) }

func newTestDevice(f *fakeI2C, cfg Config) (*Device, *sleepRecorder) {
	sr := &sleepRecorder{}
	cfg.Sleep = sr.sleep
	return New(f, cfg), sr
}

func initAs(t testing.TB, f *fakeI2C, id byte, cfg Config) (*Device, *sleepRecorder) {
	t.Helper()
	f.regs[regChipID] = id
	d, sr := newTestDevice(f, cfg)
	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	f.reset()
	return d, sr
}
