package axp20x

// Event is the logical IRQ mask. Bank n (IRQ_EN n+1 / IRQ_STATUS n+1)
// occupies bits [8n, 8n+8).
type Event uint64

const eventBanks = 5

// Bank 0 (0x40 / 0x48)
const (
	EventVBUSLowVHold  Event = 1 << 1
	EventVBUSRemoved   Event = 1 << 2
	EventVBUSConnected Event = 1 << 3
	EventVBUSOverVolt  Event = 1 << 4
	EventACINRemoved   Event = 1 << 5
	EventACINConnected Event = 1 << 6
	EventACINOverVolt  Event = 1 << 7
)

// Bank 1 (0x41 / 0x49)
const (
	EventBattUnderTemp  Event = 1 << (8 + 0)
	EventBattOverTemp   Event = 1 << (8 + 1)
	EventChargeDone     Event = 1 << (8 + 2)
	EventCharging       Event = 1 << (8 + 3)
	EventBattExitActive Event = 1 << (8 + 4)
	EventBattActive     Event = 1 << (8 + 5)
	EventBattRemoved    Event = 1 << (8 + 6)
	EventBattConnected  Event = 1 << (8 + 7)
)

// Bank 2 (0x42 / 0x4A)
const (
	EventPEKLongPress   Event = 1 << (16 + 0)
	EventPEKShortPress  Event = 1 << (16 + 1)
	EventLDO3UnderVolt  Event = 1 << (16 + 2)
	EventDCDC3UnderVolt Event = 1 << (16 + 3)
	EventDCDC2UnderVolt Event = 1 << (16 + 4)
	EventChargeCurLow   Event = 1 << (16 + 6)
	EventChipOverTemp   Event = 1 << (16 + 7)
)

// Bank 3 (0x43 / 0x4B)
const (
	EventAPSLowVolt  Event = 1 << (24 + 0)
	EventVBUSSessEnd Event = 1 << (24 + 2)
	EventVBUSSessAB  Event = 1 << (24 + 3)
	EventVBUSInvalid Event = 1 << (24 + 4)
	EventVBUSValid   Event = 1 << (24 + 5)
	EventNOEPowerOff Event = 1 << (24 + 6)
	EventNOEPowerOn  Event = 1 << (24 + 7)
)

// Bank 4 (0x45 / 0x4C)
const (
	EventGPIO0Edge   Event = 1 << (32 + 0)
	EventGPIO1Edge   Event = 1 << (32 + 1)
	EventGPIO2Edge   Event = 1 << (32 + 2)
	EventGPIO3Edge   Event = 1 << (32 + 3)
	EventPEKFalling  Event = 1 << (32 + 5)
	EventPEKRising   Event = 1 << (32 + 6)
	EventTimerExpiry Event = 1 << (32 + 7)
)

// EventAll covers every bit of all five banks.
const EventAll Event = 1<<(8*eventBanks) - 1

func (e Event) Has(flag Event) bool { return e&flag != 0 }

// toggle combines e into cur: OR when enabling, AND-NOT when disabling.
func (e Event) toggle(cur Event, enable bool) Event {
	if enable {
		return cur | e
	}
	return cur &^ e
}

// bankMask is the logical bit range owned by bank n.
func bankMask(n int) Event { return Event(0xFF) << (8 * uint(n)) }

// bankEncode places a raw bank register value into logical space.
func bankEncode(raw byte, n int) Event { return Event(raw) << (8 * uint(n)) }

// bankDecode extracts bank n's raw register value from a logical mask.
func bankDecode(e Event, n int) byte { return byte(e >> (8 * uint(n))) }

// EnableEvents sets (enable) or clears the IRQ enable bits in mask. Only the
// banks that mask intersects are read and written.
func (d *Device) EnableEvents(mask Event, enable bool) error {
	for n := 0; n < eventBanks; n++ {
		if mask&bankMask(n) == 0 {
			continue
		}
		raw, err := d.readReg(irqEnableRegs[n])
		if err != nil {
			return err
		}
		next := mask.toggle(bankEncode(raw, n), enable)
		if err := d.writeReg(irqEnableRegs[n], bankDecode(next, n)); err != nil {
			return err
		}
	}
	return nil
}

// EnabledEvents reads all five IRQ enable registers.
func (d *Device) EnabledEvents() (Event, error) {
	var ev Event
	for n := 0; n < eventBanks; n++ {
		raw, err := d.readReg(irqEnableRegs[n])
		if err != nil {
			return 0, err
		}
		ev |= bankEncode(raw, n)
	}
	return ev, nil
}

// ReadAndClearEvents reads the five IRQ status registers, then writes 0xFF to
// all of them to acknowledge. Clearing always covers every bank, whatever was
// latched.
func (d *Device) ReadAndClearEvents() (Event, error) {
	var ev Event
	for n := 0; n < eventBanks; n++ {
		raw, err := d.readReg(irqStatusRegs[n])
		if err != nil {
			return 0, err
		}
		ev |= bankEncode(raw, n)
	}
	for n := 0; n < eventBanks; n++ {
		if err := d.writeReg(irqStatusRegs[n], 0xFF); err != nil {
			return ev, err
		}
	}
	return ev, nil
}
