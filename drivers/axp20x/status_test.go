package axp20x

import (
	"errors"
	"math"
	"testing"
)

func TestBatteryVoltage(t *testing.T) {
	f := newFake()
	d, _ := newTestDevice(f, Config{})
	f.regs[regBatVoltH] = 0x80
	f.regs[regBatVoltL] = 0xF5 // high nibble ignored

	raw, err := d.BatteryRaw()
	if err != nil || raw != 2053 {
		t.Fatalf("raw = %d, %v", raw, err)
	}
	v, err := d.BatteryVoltage()
	if err != nil {
		t.Fatalf("voltage: %v", err)
	}
	if math.Abs(float64(v)-2258.3) > 0.01 {
		t.Fatalf("voltage = %v, want 2258.3", v)
	}
	mv, err := d.BatteryMilliV()
	if err != nil || mv != 2258 {
		t.Fatalf("mV = %d, %v", mv, err)
	}
}

func TestInputStatusFlags(t *testing.T) {
	f := newFake()
	d, _ := newTestDevice(f, Config{})
	f.regs[regInputStatus] = 0xA4 // ACIN present, VBUS present, charging direction

	s, err := d.InputStatus()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !s.Has(InputACINPresent) || s.Has(InputACINUsable) || !s.Has(InputVBUSPresent) || !s.Has(InputBattCharging) {
		t.Fatalf("flags = %#x", s)
	}
	checks := []struct {
		name string
		fn   func() (bool, error)
		want bool
	}{
		{"acin_present", d.IsACINPresent, true},
		{"acin_usable", d.IsACINUsable, false},
		{"vbus_present", d.IsVBUSPresent, true},
		{"vbus_usable", d.IsVBUSUsable, false},
		{"vbus_vhold", d.IsVBUSAboveVHold, false},
	}
	for _, c := range checks {
		got, err := c.fn()
		if err != nil || got != c.want {
			t.Fatalf("%s = %v, %v; want %v", c.name, got, err, c.want)
		}
	}
}

func TestChargingRequiresInit(t *testing.T) {
	f := newFake()
	d, _ := newTestDevice(f, Config{})
	if _, err := d.IsCharging(); !errors.Is(err, ErrNotInitialised) {
		t.Fatalf("IsCharging: %v", err)
	}
	if _, err := d.IsBatteryConnected(); !errors.Is(err, ErrNotInitialised) {
		t.Fatalf("IsBatteryConnected: %v", err)
	}
	if _, err := d.BatteryPercentage(); !errors.Is(err, ErrNotInitialised) {
		t.Fatalf("BatteryPercentage: %v", err)
	}
	if len(f.log) != 0 {
		t.Fatalf("traffic before init: %+v", f.log)
	}
}

func TestChargingFlags(t *testing.T) {
	f := newFake()
	d, _ := initAs(t, f, chipIDAXP192, Config{})
	f.regs[regModeChg] = modeChgCharging
	f.regs[regChargeCtl1] = 0xC0

	if c, err := d.IsCharging(); err != nil || !c {
		t.Fatalf("charging = %v, %v", c, err)
	}
	if b, err := d.IsBatteryConnected(); err != nil || b {
		t.Fatalf("battery = %v, %v", b, err)
	}
	if e, err := d.ChargeEnabled(); err != nil || !e {
		t.Fatalf("charge enabled = %v, %v", e, err)
	}
}

func TestBatteryPercentageGuarded(t *testing.T) {
	cases := []struct {
		name    string
		modeChg byte
		pct     byte
		want    uint8
		pctRead bool
	}{
		{"no battery", 0x00, 0x42, 0, false},
		{"ready", modeChgBatPresent, 0x42, 0x42, true},
		{"not ready", modeChgBatPresent, 0x80 | 0x42, 0, true},
		{"full", modeChgBatPresent, 100, 100, true},
		{"clamped 101", modeChgBatPresent, 101, 100, true},
		{"clamped", modeChgBatPresent, 0x7F, 100, true},
	}
	for _, c := range cases {
		f := newFake()
		d, _ := initAs(t, f, chipIDAXP202, Config{})
		f.regs[regModeChg] = c.modeChg
		f.regs[regBatPercent] = c.pct
		got, err := d.BatteryPercentage()
		if err != nil || got != c.want {
			t.Fatalf("%s: got %d, %v; want %d", c.name, got, err, c.want)
		}
		if (f.reads(regBatPercent) == 1) != c.pctRead {
			t.Fatalf("%s: percent register reads = %d", c.name, f.reads(regBatPercent))
		}
	}
}

func TestBatteryPercentageGuardedUnsupportedChip(t *testing.T) {
	for _, id := range []byte{chipIDAXP192, chipIDAXP173, 0x00} {
		f := newFake()
		d, _ := initAs(t, f, id, Config{})
		if _, err := d.BatteryPercentage(); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("id %#x: want ErrUnsupported, got %v", id, err)
		}
		if len(f.log) != 0 {
			t.Fatalf("id %#x: unexpected traffic", id)
		}
	}
}

func TestBatteryPercentageDirect(t *testing.T) {
	f := newFake()
	d, _ := initAs(t, f, chipIDAXP192, Config{Percent: PercentDirect})
	f.regs[regModeChg] = 0x00
	f.regs[regBatPercent] = 0x37
	got, err := d.BatteryPercentage()
	if err != nil || got != 0x37 {
		t.Fatalf("got %d, %v", got, err)
	}
	if f.reads(regModeChg) != 0 {
		t.Fatal("direct policy must not consult battery presence")
	}
	// No clamping on the direct path.
	f.regs[regBatPercent] = 0x7F
	if got, err := d.BatteryPercentage(); err != nil || got != 0x7F {
		t.Fatalf("raw 0x7F: got %d, %v", got, err)
	}
}

func TestSnapshot(t *testing.T) {
	f := newFake()
	d, _ := initAs(t, f, chipIDAXP202, Config{})
	f.regs[regInputStatus] = byte(InputVBUSPresent | InputVBUSUsable)
	f.regs[regPowerOutput] = byte(RailDCDC3 | RailLDO2)
	f.regs[regModeChg] = modeChgCharging | modeChgBatPresent
	f.regs[regBatVoltH] = 0xE0
	f.regs[regBatPercent] = 55
	f.failOn[regChargeCtl1] = errNack

	s := d.Snapshot()
	if s.Input != InputVBUSPresent|InputVBUSUsable || s.Outputs != RailDCDC3|RailLDO2 {
		t.Fatalf("snapshot status: %+v", s)
	}
	if !s.Charging || !s.BatPresent || s.ChargeEn {
		t.Fatalf("snapshot charge flags: %+v", s)
	}
	if s.Bat_mV != 3942 || s.BatPercent != 55 {
		t.Fatalf("snapshot battery: %+v", s)
	}
}
