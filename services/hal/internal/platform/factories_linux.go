// services/hal/internal/platform/factories_linux.go
//go:build linux && !baremetal

package platform

import (
	"errors"
	"sync"

	"github.com/platinasystems/i2c"
	"github.com/platinasystems/log"

	"tinygo.org/x/drivers"
)

// ErrTxShape is returned for transactions other than a one-byte register
// read or a register/value write.
var ErrTxShape = errors.New("i2c: unsupported transaction shape")

// DefaultI2CFactory exposes /dev/i2c-0 and /dev/i2c-1 as "i2c0" and "i2c1".
func DefaultI2CFactory() I2CBusFactory {
	return &mapFactory{
		buses: map[string]drivers.I2C{
			"i2c0": NewLinuxI2C(0),
			"i2c1": NewLinuxI2C(1),
		},
	}
}

// smbusDo performs one SMBus transfer on /dev/i2c-<bus> at addr.
type smbusDo func(bus, addr int, rw i2c.RW, cmd uint8, data *i2c.SMBusData) error

// busLock serialises every SMBus transfer in the process, across all
// LinuxI2C values and bus numbers.
var busLock sync.Mutex

// LinuxI2C implements tinygo drivers.I2C over the kernel i2c-dev interface
// using SMBus byte-data transfers.
type LinuxI2C struct {
	bus int
	do  smbusDo
}

func NewLinuxI2C(bus int) *LinuxI2C {
	return &LinuxI2C{bus: bus, do: devDo}
}

func (l *LinuxI2C) Tx(addr uint16, w, r []byte) error {
	var (
		rw   i2c.RW
		data i2c.SMBusData
	)
	switch {
	case len(w) == 1 && len(r) == 1:
		rw = i2c.Read
	case len(w) == 2 && len(r) == 0:
		rw = i2c.Write
		data[0] = w[1]
	default:
		return ErrTxShape
	}

	busLock.Lock()
	err := l.do(l.bus, int(addr), rw, w[0], &data)
	busLock.Unlock()
	if err != nil {
		return err
	}
	if rw == i2c.Read {
		r[0] = data[0]
	}
	return nil
}

func devDo(n, addr int, rw i2c.RW, cmd uint8, data *i2c.SMBusData) (err error) {
	var bus i2c.Bus

	err = bus.Open(n)
	if err != nil {
		log.Print("notice: i2c", n, ": open: ", err)
		return
	}
	defer bus.Close()

	err = bus.ForceSlaveAddress(addr)
	if err != nil {
		log.Print("notice: i2c", n, ": address ", addr, ": ", err)
		return
	}

	err = bus.Do(rw, cmd, i2c.ByteData, data)
	return
}
