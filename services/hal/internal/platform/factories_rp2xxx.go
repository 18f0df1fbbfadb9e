// services/hal/internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"tinygo.org/x/drivers"
)

// AXP20x parts are specified to 400 kHz.
const pmicBusHz = 400 * machine.KHz

// DefaultI2CFactory configures i2c0 and i2c1 on board-default pins.
// A bus that fails to configure is left out and logged.
func DefaultI2CFactory() I2CBusFactory {
	f := &mapFactory{buses: make(map[string]drivers.I2C)}
	for _, b := range []struct {
		id       string
		bus      *machine.I2C
		sda, scl machine.Pin
	}{
		{"i2c0", machine.I2C0, machine.I2C0_SDA_PIN, machine.I2C0_SCL_PIN},
		{"i2c1", machine.I2C1, machine.I2C1_SDA_PIN, machine.I2C1_SCL_PIN},
	} {
		err := b.bus.Configure(machine.I2CConfig{Frequency: pmicBusHz, SDA: b.sda, SCL: b.scl})
		if err != nil {
			println("[platform] i2c configure failed:", b.id, err.Error())
			continue
		}
		f.buses[b.id] = b.bus
	}
	return f
}
