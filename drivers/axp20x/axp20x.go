// Package axp20x provides a minimal TinyGo driver for the X-Powers AXP202
// power management IC and its AXP192/AXP173 siblings.
//
// Design notes (datasheet references):
// • I2C, 8-bit registers, default 7-bit address = 0x35.
// • Chip identity read once from 0x03 during Init; unknown codes are kept
//   as ChipUnknown and only exclude chip-specific quirks.
// • Power outputs (0x12) are toggled by read-modify-write. The register is
//   never observed as all-off before a write; the driver waits (bounded) for
//   a non-zero value.
// • IRQ enable/status are five 8-bit banks presented as one 64-bit Event.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
package axp20x

import (
	"time"

	"tinygo.org/x/drivers"
)

// Chip is the decoded identity of the attached PMIC.
type Chip uint8

const (
	ChipUnknown Chip = iota
	ChipAXP202       // 0x41; forces DCDC3 on every power output write
	ChipAXP192       // 0x03
	ChipAXP173       // 0xAD
)

func (c Chip) String() string {
	switch c {
	case ChipAXP202:
		return "axp202"
	case ChipAXP192:
		return "axp192"
	case ChipAXP173:
		return "axp173"
	default:
		return "unknown"
	}
}

func decodeChip(raw byte) Chip {
	switch raw {
	case chipIDAXP202:
		return ChipAXP202
	case chipIDAXP192:
		return ChipAXP192
	case chipIDAXP173:
		return ChipAXP173
	default:
		return ChipUnknown
	}
}

// PercentPolicy selects how BatteryPercentage interprets the fuel gauge.
type PercentPolicy uint8

const (
	// PercentGuarded returns 0 without reading the gauge when no battery is
	// present, 0 while the not-ready bit is set, and is AXP202-only. Gauge
	// values above 100 are clamped to 100.
	PercentGuarded PercentPolicy = iota
	// PercentDirect returns the gauge register as read.
	PercentDirect
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x35 if zero.
	Address uint16
	// VerifyWrites re-reads the power output register after each write and
	// reports a mismatch as ErrVerify.
	VerifyWrites bool
	// Percent selects the battery percentage policy. Default PercentGuarded.
	Percent PercentPolicy
	// InitRails are switched on at the end of Init. Zero leaves outputs alone.
	InitRails Rail
	// PollInterval is the sleep between power output register reads while
	// waiting for a non-zero value. Default 1 ms.
	PollInterval time.Duration
	// ReadyTimeout bounds that wait when the caller passes no budget.
	// Default 100 ms.
	ReadyTimeout time.Duration
	// SettleDelay follows every power output write. Default 1 ms.
	SettleDelay time.Duration
	// Sleep is the blocking delay primitive. Default time.Sleep.
	Sleep func(time.Duration)
}

// Device represents an AXP20x instance on an I²C bus.
// It is not safe for concurrent use.
type Device struct {
	i2c  drivers.I2C
	addr uint16
	cfg  Config

	// Lifecycle: identity is meaningful only once initialised.
	initialised bool
	chip        Chip
	rawID       byte

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [1]byte
}

// New constructs a Device with supplied config. It does not touch the bus.
func New(i2c drivers.I2C, cfg Config) *Device {
	if cfg.Address == 0 {
		cfg.Address = AddressDefault
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Millisecond
	}
	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = 100 * time.Millisecond
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = time.Millisecond
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &Device{
		i2c:  i2c,
		addr: cfg.Address,
		cfg:  cfg,
	}
}

// Init reads the chip identity and marks the device initialised. Unknown
// identities are accepted. Configured InitRails are then switched on; if that
// fails the device stays uninitialised.
func (d *Device) Init() error {
	raw, err := d.readReg(regChipID)
	if err != nil {
		return err
	}
	chip := decodeChip(raw)
	if d.cfg.InitRails != 0 {
		if err := d.setPowerOutput(chip, d.cfg.InitRails, On, 0); err != nil {
			return err
		}
	}
	d.rawID = raw
	d.chip = chip
	d.initialised = true
	return nil
}

// Introspection.
func (d *Device) Initialised() bool { return d.initialised }
func (d *Device) Chip() Chip        { return d.chip }
func (d *Device) RawChipID() byte   { return d.rawID }
func (d *Device) Address() uint16   { return d.addr }

func (d *Device) ensureInitialised() error {
	if !d.initialised {
		return ErrNotInitialised
	}
	return nil
}
