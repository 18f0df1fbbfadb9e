package axp20x

import (
	"time"

	"axp20x-go/x/mathx"
)

// Rail is a bitmask over the POWER_OUTPUT control register (0x12).
type Rail uint8

const (
	RailEXTEN Rail = 1 << 0
	RailDCDC3 Rail = 1 << 1
	RailLDO2  Rail = 1 << 2
	RailLDO4  Rail = 1 << 3
	RailDCDC2 Rail = 1 << 4
	RailLDO3  Rail = 1 << 6

	RailAll = RailEXTEN | RailDCDC3 | RailLDO2 | RailLDO4 | RailDCDC2 | RailLDO3
)

// railQuirkAXP202 must stay enabled on every write when the chip is an AXP202.
const railQuirkAXP202 = RailDCDC3

func (r Rail) Has(flag Rail) bool { return r&flag != 0 }

// State is the requested output state.
type State uint8

const (
	Off State = iota
	On
)

// SetPowerOutput switches the rails in mask to st, leaving other outputs
// unchanged. The register is polled until it reads non-zero; budget bounds
// that wait (<= 0 uses Config.ReadyTimeout) and ErrTimeout is returned when
// it runs out. A State other than On or Off fails with ErrInvalidState before
// any bus traffic.
func (d *Device) SetPowerOutput(mask Rail, st State, budget time.Duration) error {
	if err := d.ensureInitialised(); err != nil {
		return err
	}
	switch st {
	case On, Off:
	default:
		return ErrInvalidState
	}
	return d.setPowerOutput(d.chip, mask, st, budget)
}

// PowerOutputs returns the current POWER_OUTPUT register.
func (d *Device) PowerOutputs() (Rail, error) {
	v, err := d.readReg(regPowerOutput)
	return Rail(v), err
}

// IsPowerOutputEnabled reports whether every rail in mask is on.
func (d *Device) IsPowerOutputEnabled(mask Rail) (bool, error) {
	cur, err := d.PowerOutputs()
	if err != nil {
		return false, err
	}
	return cur&mask == mask, nil
}

func (d *Device) setPowerOutput(chip Chip, mask Rail, st State, budget time.Duration) error {
	cur, err := d.waitPowerOutputNonZero(budget)
	if err != nil {
		return err
	}

	next := cur
	switch st {
	case On:
		next |= mask
	case Off:
		next &^= mask
	default:
		return ErrInvalidState
	}

	switch chip {
	case ChipAXP202:
		next |= railQuirkAXP202
	}

	if err := d.writeReg(regPowerOutput, byte(next)); err != nil {
		return err
	}
	d.cfg.Sleep(d.cfg.SettleDelay)

	if !d.cfg.VerifyWrites {
		return nil
	}
	got, err := d.readReg(regPowerOutput)
	if err != nil {
		return err
	}
	if got != byte(next) {
		return &VerifyError{Reg: regPowerOutput, Want: byte(next), Got: got}
	}
	return nil
}

// waitPowerOutputNonZero reads POWER_OUTPUT until it is non-zero, sleeping
// PollInterval between attempts. Elapsed time is counted in poll intervals so
// the bound does not depend on the wall clock.
func (d *Device) waitPowerOutputNonZero(budget time.Duration) (Rail, error) {
	if budget <= 0 {
		budget = d.cfg.ReadyTimeout
	}
	attempts := mathx.Max(mathx.CeilDiv(uint64(budget), uint64(d.cfg.PollInterval)), 1)
	for i := uint64(0); ; i++ {
		v, err := d.readReg(regPowerOutput)
		if err != nil {
			return 0, err
		}
		if v != 0 {
			return Rail(v), nil
		}
		if i+1 >= attempts {
			return 0, ErrTimeout
		}
		d.cfg.Sleep(d.cfg.PollInterval)
	}
}
