// Package axp20x provides constants for register addresses and bitfields used
// in the operation of the X-Powers AXP20x family of power management ICs.
package axp20x

const (
	// 7-bit I2C address.
	AddressDefault = 0x35

	// Chip identity codes read from regChipID.
	chipIDAXP202 = 0x41
	chipIDAXP192 = 0x03
	chipIDAXP173 = 0xAD

	// --- Register sub-addresses (8-bit registers) ---

	// Status
	regInputStatus = 0x00 // R: ACIN/VBUS/boot source
	regModeChg     = 0x01 // R: charge status / battery presence
	regChipID      = 0x03 // R

	// Power output control
	regPowerOutput = 0x12 // R/W: EXTEN/DCDC2/DCDC3/LDO2/LDO3/LDO4

	// Charger
	regChargeCtl1 = 0x33 // R/W: bit7 charge enable

	// IRQ enables (bank order)
	regIRQEn1 = 0x40
	regIRQEn2 = 0x41
	regIRQEn3 = 0x42
	regIRQEn4 = 0x43
	regIRQEn5 = 0x45

	// IRQ status (bank order, write 1 to clear)
	regIRQSt1 = 0x48
	regIRQSt2 = 0x49
	regIRQSt3 = 0x4A
	regIRQSt4 = 0x4B
	regIRQSt5 = 0x4C

	// ADC / fuel gauge
	regBatVoltH    = 0x78 // R: bits 11:4
	regBatVoltL    = 0x79 // R: bits 3:0
	regBatPercent  = 0xB9 // R: bit7 not-ready, bits 6:0 percent
	batPercentBusy = 1 << 7

	// --- MODE/CHG status (0x01) ---
	modeChgCharging   = 1 << 6
	modeChgBatPresent = 1 << 5

	// --- CHARGE_CTL1 (0x33) ---
	chargeCtlEnable = 1 << 7

	// Battery voltage ADC: 1.1 mV/LSB.
	batVoltLSB_mV = 1.1
)

// Bank-ordered IRQ registers.
var (
	irqEnableRegs = [eventBanks]byte{regIRQEn1, regIRQEn2, regIRQEn3, regIRQEn4, regIRQEn5}
	irqStatusRegs = [eventBanks]byte{regIRQSt1, regIRQSt2, regIRQSt3, regIRQSt4, regIRQSt5}
)
