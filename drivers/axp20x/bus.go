package axp20x

// I2C 8-bit register operations.

func (d *Device) readReg(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return d.r[0], nil
}

func (d *Device) writeReg(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	if err := d.i2c.Tx(d.addr, d.w[:2], nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}
