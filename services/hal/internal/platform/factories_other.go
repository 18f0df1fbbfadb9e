//go:build (!linux || baremetal) && !(rp2040 || rp2350)

package platform

import "tinygo.org/x/drivers"

// On other hosts, default to "not configured". Tests should inject fakes.
func DefaultI2CFactory() I2CBusFactory {
	return &mapFactory{buses: map[string]drivers.I2C{}}
}
