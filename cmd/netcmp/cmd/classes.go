package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"netcompare/netlist"
	"netcompare/netlist/memnet"
	"netcompare/netlistfmt"
)

// terminalConfig names one terminal of a device class, for resolving the
// text format's "terminal=net" assignments against a numeric TerminalID.
type terminalConfig struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

// classConfig is one device class entry in a --classes file.
type classConfig struct {
	Name         string            `yaml:"name"`
	Terminals    []terminalConfig  `yaml:"terminals"`
	CompareParam *int              `yaml:"compare_param"`
	Swappable    [][]int           `yaml:"swappable"`
}

type classesConfig struct {
	Classes []classConfig `yaml:"classes"`
}

// loadClasses reads a YAML device class registry and builds the
// netlistfmt.ClassSpec table compare needs to resolve device lines.
// compare_param defaults to -1 (no comparable parameter, e.g. a MOS-like
// class with no single ordering value) when omitted; set it to the
// class's chosen parameter id (e.g. 0 for netlist.ParamR) to make
// Equal/Less compare by that value instead.
func loadClasses(path string) (map[string]netlistfmt.ClassSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netcmp: failed to read class registry %s: %w", path, err)
	}
	var cf classesConfig
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("netcmp: failed to parse class registry %s: %w", path, err)
	}

	specs := make(map[string]netlistfmt.ClassSpec, len(cf.Classes))
	for _, c := range cf.Classes {
		if _, dup := specs[c.Name]; dup {
			return nil, fmt.Errorf("netcmp: class registry %s defines %q twice", path, c.Name)
		}
		ids := make([]netlist.TerminalID, len(c.Terminals))
		names := make(map[string]netlist.TerminalID, len(c.Terminals))
		for i, t := range c.Terminals {
			ids[i] = netlist.TerminalID(t.ID)
			names[t.Name] = netlist.TerminalID(t.ID)
		}
		compareParam := -1
		if c.CompareParam != nil {
			compareParam = *c.CompareParam
		}
		dc := memnet.NewDeviceClass(c.Name, ids, compareParam)
		for _, group := range c.Swappable {
			tids := make([]netlist.TerminalID, len(group))
			for i, id := range group {
				tids[i] = netlist.TerminalID(id)
			}
			dc.GroupSwappable(tids...)
		}
		specs[c.Name] = netlistfmt.ClassSpec{Class: dc, Terminals: names}
	}
	return specs, nil
}
