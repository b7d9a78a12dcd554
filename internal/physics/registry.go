package physics

import (
	"fmt"
	"sort"

	"github.com/san-kum/hysym/internal/hybrid"
)

var registry = map[string]func() *hybrid.System{
	"thermostat": NewThermostat,
	"dcdc":       NewDCDC,
}

// Lookup builds the named benchmark system.
func Lookup(name string) (*hybrid.System, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("physics: unknown system %q (have %v)", name, Names())
	}
	return f(), nil
}

// Names lists the registered systems in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
