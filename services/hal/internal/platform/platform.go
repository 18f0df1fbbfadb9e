// Package platform supplies the I²C buses HAL devices are built on.
package platform

import "tinygo.org/x/drivers"

// I2CBusFactory injects configured I²C instances by id.
type I2CBusFactory interface {
	ByID(id string) (drivers.I2C, bool)
}

type mapFactory struct {
	buses map[string]drivers.I2C
}

func (f *mapFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}
