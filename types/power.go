package types

// ------------------------
// PMIC (axp20x)
// ------------------------

type PMICInfo struct {
	Chip   string `json:"chip"` // "axp202" | "axp192" | "axp173" | "unknown"
	ChipID uint8  `json:"chip_id"`
	Bus    string `json:"bus"`
	Addr   uint16 `json:"addr"`
}

// Retained value: hal/cap/power/battery/<name>/value
type BatteryValue struct {
	MilliV   int32 `json:"mV"`
	Percent  uint8 `json:"percent"`
	Present  bool  `json:"present"`
	Charging bool  `json:"charging"`
}

// Retained value: hal/cap/power/charger/<name>/value
type ChargerValue struct {
	ACINPresent bool  `json:"acin_present"`
	ACINUsable  bool  `json:"acin_usable"`
	VBUSPresent bool  `json:"vbus_present"`
	VBUSUsable  bool  `json:"vbus_usable"`
	Enabled     bool  `json:"enabled"`
	Input       uint8 `json:"input"` // raw POWER_INPUT_STATUS bits
}

// Retained value: hal/cap/power/power/<name>/value
type PowerOutputsValue struct {
	Rails uint8 `json:"rails"` // raw POWER_OUTPUT bits
}

// Event value: hal/cap/power/events/<name>/event
type PMICEventsValue struct {
	Mask uint64 `json:"mask"`
}

// Controls

// PowerOutputSet switches the rails in Rails (axp20x.Rail bits).
// verb: "set_output"
type PowerOutputSet struct {
	Rails     uint8 `json:"rails"`
	On        bool  `json:"on"`
	TimeoutMS int   `json:"timeout_ms,omitempty"` // 0 => driver default
}

// EventsEnable sets or clears IRQ enables (axp20x.Event bits).
// verb: "enable"
type EventsEnable struct {
	Mask   uint64 `json:"mask"`
	Enable bool   `json:"enable"`
}
