package hal

import (
	"errors"

	"gopkg.in/yaml.v3"

	"axp20x-go/drivers/axp20x"
	"axp20x-go/errcode"
	"axp20x-go/services/hal/internal/platform"
	"axp20x-go/x/timex"
)

// Minimal YAML config structures. JSON documents parse too.

type HALConfig struct {
	Version int      `yaml:"version"`
	Buses   []BusCfg `yaml:"buses"`
	Devices []DevCfg `yaml:"devices"`
}

type BusCfg struct {
	ID   string `yaml:"id"`   // "i2c0"
	Type string `yaml:"type"` // "i2c"
	Impl string `yaml:"impl"` // e.g. "tinygo", "linux" (informational)
}

type DevCfg struct {
	ID     string    `yaml:"id"`   // "pmic0"
	Type   string    `yaml:"type"` // "axp20x"
	BusRef DevBusRef `yaml:"bus_ref"`
	Params yaml.Node `yaml:"params"` // device-specific shape, decoded per type
}

type DevBusRef struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`
}

// AXP20XParams defines wiring and behaviour for one AXP20x instance.
type AXP20XParams struct {
	Addr           uint16   `yaml:"addr"`             // optional; default axp20x.AddressDefault
	VerifyWrites   bool     `yaml:"verify_writes"`    // re-read power outputs after writes
	Percent        string   `yaml:"percent"`          // "guarded" | "direct" | ""(=> "guarded")
	InitRails      []string `yaml:"init_rails"`       // e.g. ["ldo2"]
	EventMask      uint64   `yaml:"event_mask"`       // IRQ enables applied after init
	PollMS         int      `yaml:"poll_ms"`          // power output wait poll; default 1
	ReadyTimeoutMS int      `yaml:"ready_timeout_ms"` // power output wait bound; default 100
}

// LoadConfig parses a YAML (or JSON) HAL config document.
func LoadConfig(data []byte) (HALConfig, error) {
	var cfg HALConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HALConfig{}, &errcode.E{C: errcode.InvalidParams, Op: "load_config", Msg: err.Error(), Err: err}
	}
	return cfg, nil
}

// DefaultI2CFactory returns the platform's buses.
func DefaultI2CFactory() I2CBusFactory { return platform.DefaultI2CFactory() }

// BuildAdaptors constructs one Adaptor per configured device.
func BuildAdaptors(cfg HALConfig, buses I2CBusFactory) ([]Adaptor, error) {
	out := make([]Adaptor, 0, len(cfg.Devices))
	for _, dc := range cfg.Devices {
		if dc.ID == "" {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "build", Msg: "device id required"}
		}
		switch dc.Type {
		case "axp20x":
		default:
			return nil, &errcode.E{C: errcode.Unsupported, Op: "build", Msg: dc.ID + ": device type " + dc.Type}
		}
		bus, ok := buses.ByID(dc.BusRef.ID)
		if !ok {
			return nil, &errcode.E{C: errcode.UnknownBus, Op: "build", Msg: dc.ID + ": bus " + dc.BusRef.ID}
		}
		var p AXP20XParams
		if dc.Params.Kind != 0 {
			if err := dc.Params.Decode(&p); err != nil {
				return nil, &errcode.E{C: errcode.InvalidParams, Op: "build", Msg: dc.ID + ": " + err.Error(), Err: err}
			}
		}
		dcfg, err := p.driverConfig()
		if err != nil {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "build", Msg: dc.ID + ": " + err.Error(), Err: err}
		}
		out = append(out, NewAXP20XAdaptor(dc.ID, dc.BusRef.ID, bus, dcfg, axp20x.Event(p.EventMask)))
	}
	return out, nil
}

var railNames = map[string]axp20x.Rail{
	"exten": axp20x.RailEXTEN,
	"dcdc2": axp20x.RailDCDC2,
	"dcdc3": axp20x.RailDCDC3,
	"ldo2":  axp20x.RailLDO2,
	"ldo3":  axp20x.RailLDO3,
	"ldo4":  axp20x.RailLDO4,
}

func (p AXP20XParams) driverConfig() (axp20x.Config, error) {
	cfg := axp20x.Config{
		Address:      p.Addr,
		VerifyWrites: p.VerifyWrites,
		PollInterval: timex.Ms(p.PollMS),
		ReadyTimeout: timex.Ms(p.ReadyTimeoutMS),
	}
	switch p.Percent {
	case "", "guarded":
		cfg.Percent = axp20x.PercentGuarded
	case "direct":
		cfg.Percent = axp20x.PercentDirect
	default:
		return axp20x.Config{}, errors.New("unknown percent policy " + p.Percent)
	}
	for _, name := range p.InitRails {
		r, ok := railNames[name]
		if !ok {
			return axp20x.Config{}, errors.New("unknown rail " + name)
		}
		cfg.InitRails |= r
	}
	if p.EventMask&^uint64(axp20x.EventAll) != 0 {
		return axp20x.Config{}, errors.New("event_mask outside 40-bit range")
	}
	return cfg, nil
}
