// services/hal/adaptor_axp20x.go
package hal

import (
	"context"
	"time"

	"axp20x-go/drivers/axp20x"
	"axp20x-go/errcode"
	"axp20x-go/types"
	"axp20x-go/x/timex"

	"tinygo.org/x/drivers"
)

type axp20xAdaptor struct {
	id     string
	busID  string
	dev    *axp20x.Device
	events axp20x.Event // enables applied after init

	eventsApplied bool
}

func NewAXP20XAdaptor(id, busID string, bus drivers.I2C, cfg axp20x.Config, events axp20x.Event) Adaptor {
	return &axp20xAdaptor{id: id, busID: busID, dev: axp20x.New(bus, cfg), events: events}
}

func (a *axp20xAdaptor) ID() string { return a.id }

func (a *axp20xAdaptor) Capabilities() []CapInfo {
	info := types.Info{
		SchemaVersion: 1,
		Driver:        "axp20x",
		Detail: types.PMICInfo{
			Chip:   a.dev.Chip().String(),
			ChipID: a.dev.RawChipID(),
			Bus:    a.busID,
			Addr:   a.dev.Address(),
		},
	}
	return []CapInfo{
		{Kind: string(types.KindBattery), Info: info},
		{Kind: string(types.KindCharger), Info: info},
		{Kind: string(types.KindPower), Info: info},
		{Kind: string(types.KindEvents), Info: info},
	}
}

// Trigger initialises the device on first use. Register reads are
// synchronous so Collect may follow immediately.
func (a *axp20xAdaptor) Trigger(ctx context.Context) (time.Duration, error) {
	if err := a.ensureInit(); err != nil {
		return 0, err
	}
	return 0, nil
}

// ensureInit runs Init once, then retries the configured IRQ enables on
// every call until they have been written.
func (a *axp20xAdaptor) ensureInit() error {
	if !a.dev.Initialised() {
		if err := a.dev.Init(); err != nil {
			println("[hal] axp20x init failed:", a.id, err.Error())
			return errcode.Wrap("init", err)
		}
	}
	if a.events == 0 || a.eventsApplied {
		return nil
	}
	if err := a.dev.EnableEvents(a.events, true); err != nil {
		println("[hal] axp20x irq enable failed:", a.id, err.Error())
		return errcode.Wrap("init", err)
	}
	a.eventsApplied = true
	return nil
}

func (a *axp20xAdaptor) Collect(ctx context.Context) (Sample, error) {
	if !a.dev.Initialised() {
		return nil, ErrNotReady
	}
	// One checked read; Snapshot itself tolerates per-field failures.
	if _, err := a.dev.InputStatus(); err != nil {
		return nil, errcode.Wrap("collect", err)
	}
	var s axp20x.Snapshot
	a.dev.SnapshotInto(&s)
	ts := timex.NowMs()

	out := Sample{
		{Kind: string(types.KindBattery), TsMs: ts, Payload: types.BatteryValue{
			MilliV:   s.Bat_mV,
			Percent:  s.BatPercent,
			Present:  s.BatPresent,
			Charging: s.Charging,
		}},
		{Kind: string(types.KindCharger), TsMs: ts, Payload: types.ChargerValue{
			ACINPresent: s.Input.Has(axp20x.InputACINPresent),
			ACINUsable:  s.Input.Has(axp20x.InputACINUsable),
			VBUSPresent: s.Input.Has(axp20x.InputVBUSPresent),
			VBUSUsable:  s.Input.Has(axp20x.InputVBUSUsable),
			Enabled:     s.ChargeEn,
			Input:       uint8(s.Input),
		}},
		{Kind: string(types.KindPower), TsMs: ts, Payload: types.PowerOutputsValue{Rails: uint8(s.Outputs)}},
	}

	// A failed clear still returns what was latched; the banks cleared
	// before the failure cannot be read again.
	ev, err := a.dev.ReadAndClearEvents()
	if ev != 0 {
		out = append(out, Reading{Kind: string(types.KindEvents), TsMs: ts, Payload: types.PMICEventsValue{Mask: uint64(ev)}})
	}
	if err != nil {
		return out, errcode.Wrap("collect", err)
	}
	return out, nil
}

func (a *axp20xAdaptor) Control(kind, method string, payload any) (any, error) {
	switch types.Kind(kind) {
	case types.KindPower:
		switch method {
		case "set_output":
			var p types.PowerOutputSet
			switch v := payload.(type) {
			case types.PowerOutputSet:
				p = v
			case *types.PowerOutputSet:
				if v == nil {
					return nil, errcode.InvalidPayload
				}
				p = *v
			default:
				return nil, errcode.InvalidPayload
			}
			if p.Rails == 0 || p.TimeoutMS < 0 {
				return nil, errcode.InvalidPayload
			}
			st := axp20x.Off
			if p.On {
				st = axp20x.On
			}
			budget := timex.Ms(p.TimeoutMS)
			if err := a.dev.SetPowerOutput(axp20x.Rail(p.Rails), st, budget); err != nil {
				return nil, errcode.Wrap("set_output", err)
			}
			return a.readOutputs("set_output")
		case "read":
			return a.readOutputs("read")
		}

	case types.KindEvents:
		switch method {
		case "enable":
			var p types.EventsEnable
			switch v := payload.(type) {
			case types.EventsEnable:
				p = v
			case *types.EventsEnable:
				if v == nil {
					return nil, errcode.InvalidPayload
				}
				p = *v
			default:
				return nil, errcode.InvalidPayload
			}
			if p.Mask&^uint64(axp20x.EventAll) != 0 {
				return nil, errcode.InvalidPayload
			}
			if err := a.dev.EnableEvents(axp20x.Event(p.Mask), p.Enable); err != nil {
				return nil, errcode.Wrap("enable", err)
			}
			en, err := a.dev.EnabledEvents()
			if err != nil {
				return nil, errcode.Wrap("enable", err)
			}
			return types.PMICEventsValue{Mask: uint64(en)}, nil
		case "read_clear":
			ev, err := a.dev.ReadAndClearEvents()
			if err != nil {
				if ev != 0 {
					return types.PMICEventsValue{Mask: uint64(ev)}, errcode.Wrap("read_clear", err)
				}
				return nil, errcode.Wrap("read_clear", err)
			}
			return types.PMICEventsValue{Mask: uint64(ev)}, nil
		}
	}
	return nil, ErrUnsupported
}

func (a *axp20xAdaptor) readOutputs(op string) (any, error) {
	r, err := a.dev.PowerOutputs()
	if err != nil {
		return nil, errcode.Wrap(op, err)
	}
	return types.PowerOutputsValue{Rails: uint8(r)}, nil
}
