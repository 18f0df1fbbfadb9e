package axp20x

// Snapshot collects commonly used telemetry and status.
// Zero values remain where individual reads fail.
type Snapshot struct {
	Input      InputStatus
	Outputs    Rail
	Charging   bool
	BatPresent bool
	ChargeEn   bool
	Bat_mV     int32
	BatPercent uint8
}

func (d *Device) Snapshot() Snapshot {
	var s Snapshot
	d.SnapshotInto(&s)
	return s
}

func (d *Device) SnapshotInto(out *Snapshot) {
	var s Snapshot
	if v, e := d.InputStatus(); e == nil {
		s.Input = v
	}
	if v, e := d.PowerOutputs(); e == nil {
		s.Outputs = v
	}
	if v, e := d.IsCharging(); e == nil {
		s.Charging = v
	}
	if v, e := d.IsBatteryConnected(); e == nil {
		s.BatPresent = v
	}
	if v, e := d.ChargeEnabled(); e == nil {
		s.ChargeEn = v
	}
	if v, e := d.BatteryMilliV(); e == nil {
		s.Bat_mV = v
	}
	if v, e := d.BatteryPercentage(); e == nil {
		s.BatPercent = v
	}
	*out = s
}
