package axp20x

import "axp20x-go/x/mathx"

// InputStatus is the POWER_INPUT_STATUS register (0x00).
type InputStatus uint8

const (
	InputBootFromACVBUS InputStatus = 1 << 0 // boot source is ACIN or VBUS
	InputACVBUSShort    InputStatus = 1 << 1 // ACIN and VBUS shorted on PCB
	InputBattCharging   InputStatus = 1 << 2 // battery current direction: 1 = charging
	InputVBUSAboveVHold InputStatus = 1 << 3
	InputVBUSUsable     InputStatus = 1 << 4
	InputVBUSPresent    InputStatus = 1 << 5
	InputACINUsable     InputStatus = 1 << 6
	InputACINPresent    InputStatus = 1 << 7
)

func (s InputStatus) Has(flag InputStatus) bool { return s&flag != 0 }

// Typed status readers.

func (d *Device) InputStatus() (InputStatus, error) {
	v, err := d.readReg(regInputStatus)
	return InputStatus(v), err
}

func (d *Device) IsACINPresent() (bool, error)    { return d.inputFlag(InputACINPresent) }
func (d *Device) IsACINUsable() (bool, error)     { return d.inputFlag(InputACINUsable) }
func (d *Device) IsVBUSPresent() (bool, error)    { return d.inputFlag(InputVBUSPresent) }
func (d *Device) IsVBUSUsable() (bool, error)     { return d.inputFlag(InputVBUSUsable) }
func (d *Device) IsVBUSAboveVHold() (bool, error) { return d.inputFlag(InputVBUSAboveVHold) }

func (d *Device) inputFlag(flag InputStatus) (bool, error) {
	s, err := d.InputStatus()
	if err != nil {
		return false, err
	}
	return s.Has(flag), nil
}

// IsCharging reports the charge indication bit of MODE_CHGSTATUS (0x01).
func (d *Device) IsCharging() (bool, error) {
	if err := d.ensureInitialised(); err != nil {
		return false, err
	}
	v, err := d.readReg(regModeChg)
	if err != nil {
		return false, err
	}
	return v&modeChgCharging != 0, nil
}

// IsBatteryConnected reports the battery presence bit of MODE_CHGSTATUS.
func (d *Device) IsBatteryConnected() (bool, error) {
	if err := d.ensureInitialised(); err != nil {
		return false, err
	}
	v, err := d.readReg(regModeChg)
	if err != nil {
		return false, err
	}
	return v&modeChgBatPresent != 0, nil
}

// ChargeEnabled reports the charger enable bit of CHARGE_CTL1 (0x33).
func (d *Device) ChargeEnabled() (bool, error) {
	v, err := d.readReg(regChargeCtl1)
	if err != nil {
		return false, err
	}
	return v&chargeCtlEnable != 0, nil
}

// BatteryPercentage returns the fuel gauge reading according to
// Config.Percent. Under PercentGuarded the result is clamped to 0..100, so
// raw readings of 101..127 report 100; PercentDirect returns the register
// unmodified.
func (d *Device) BatteryPercentage() (uint8, error) {
	if err := d.ensureInitialised(); err != nil {
		return 0, err
	}
	switch d.cfg.Percent {
	case PercentDirect:
		v, err := d.readReg(regBatPercent)
		if err != nil {
			return 0, err
		}
		return v, nil
	}

	switch d.chip {
	case ChipAXP202:
	default:
		return 0, ErrUnsupported
	}
	present, err := d.IsBatteryConnected()
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}
	v, err := d.readReg(regBatPercent)
	if err != nil {
		return 0, err
	}
	if v&batPercentBusy != 0 {
		return 0, nil
	}
	return mathx.Clamp(v, 0, 100), nil
}

// BatteryRaw returns the 12-bit battery voltage ADC code.
func (d *Device) BatteryRaw() (uint16, error) {
	hi, err := d.readReg(regBatVoltH)
	if err != nil {
		return 0, err
	}
	lo, err := d.readReg(regBatVoltL)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<4 | uint16(lo&0x0F), nil
}

// BatteryVoltage returns the battery voltage in millivolts.
func (d *Device) BatteryVoltage() (float32, error) {
	raw, err := d.BatteryRaw()
	if err != nil {
		return 0, err
	}
	return float32(raw) * batVoltLSB_mV, nil
}

// BatteryMilliV returns the battery voltage in integer millivolts.
func (d *Device) BatteryMilliV() (int32, error) {
	raw, err := d.BatteryRaw()
	if err != nil {
		return 0, err
	}
	return int32(raw) * 11 / 10, nil
}
