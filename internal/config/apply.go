package config

import (
	"fmt"

	"github.com/san-kum/hysym/internal/hybrid"
)

// Apply overlays the per-mode overrides onto a benchmark system in
// place. Overrides beyond the system's mode count are an error.
func (c *Config) Apply(sys *hybrid.System) error {
	if len(c.Modes) > len(sys.Modes) {
		return fmt.Errorf("config: %d mode overrides for %d modes", len(c.Modes), len(sys.Modes))
	}
	for i, mc := range c.Modes {
		m := &sys.Modes[i]
		if len(mc.DX) > 0 {
			m.Disc.DX = mc.DX
		}
		if len(mc.DU) > 0 {
			m.Disc.DU = mc.DU
		}
		if mc.Dt != 0 {
			m.Disc.Dt = mc.Dt
		}
		if mc.Horizon != 0 {
			m.Horizon = mc.Horizon
		}
	}
	return nil
}
