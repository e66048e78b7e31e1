// Package targets provides string-named targets declared in a YAML manifest,
// for tools that do not compile their own target enums.
//
// Manifest format:
//
//	fire: [LMBFire, Jump]
//	switch: [Crouch]
//	value:
//	  LookX: 1.0
//	  LookY: -1.0
package targets

import (
	"errors"
	"fmt"
	"os"
	"sort"

	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/ctrlbind/controls"
)

// Fire is a named Fire target.
type Fire string

func (f Fire) String() string { return string(f) }

// Switch is a named Switch target.
type Switch string

func (s Switch) String() string { return string(s) }

// Value is a named Value target carrying its base factor.
type Value struct {
	Name string
	Base float64
}

func (v Value) String() string { return v.Name }

// BaseFactor implements controls.ValueTarget.
func (v Value) BaseFactor() float64 { return v.Base }

type (
	Controls = controls.Controls[Fire, Switch, Value]
	Event    = controls.Event[Fire, Switch, Value]
)

// Manifest declares the targets an application understands.
type Manifest struct {
	Fire   []string           `yaml:"fire" json:"fire"`
	Switch []string           `yaml:"switch" json:"switch"`
	Value  map[string]float64 `yaml:"value" json:"value"`
}

// Load reads a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a manifest. YAML is a superset of JSON, so both
// encodings are accepted.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse target manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate rejects empty and duplicate names. A name may only belong to one
// family.
func (m *Manifest) Validate() error {
	seen := map[string]string{}
	check := func(family, name string) error {
		if name == "" {
			return fmt.Errorf("empty %s target name", family)
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("target %q declared as %s and %s", name, prev, family)
		}
		seen[name] = family
		return nil
	}
	for _, n := range m.Fire {
		if err := check("fire", n); err != nil {
			return err
		}
	}
	for _, n := range m.Switch {
		if err := check("switch", n); err != nil {
			return err
		}
	}
	for n := range m.Value {
		if err := check("value", n); err != nil {
			return err
		}
	}
	if len(seen) == 0 {
		return errors.New("target manifest declares no targets")
	}
	return nil
}

// Names returns the parsers for the declared targets.
func (m *Manifest) Names() controls.Names[Fire, Switch, Value] {
	fire := make(map[string]bool, len(m.Fire))
	for _, n := range m.Fire {
		fire[n] = true
	}
	sw := make(map[string]bool, len(m.Switch))
	for _, n := range m.Switch {
		sw[n] = true
	}
	return controls.Names[Fire, Switch, Value]{
		Fire: func(s string) (Fire, bool) {
			return Fire(s), fire[s]
		},
		Switch: func(s string) (Switch, bool) {
			return Switch(s), sw[s]
		},
		Value: func(s string) (Value, bool) {
			base, ok := m.Value[s]
			return Value{Name: s, Base: base}, ok
		},
	}
}

// ValueTarget returns the declared Value target called name.
func (m *Manifest) ValueTarget(name string) (Value, bool) {
	base, ok := m.Value[name]
	return Value{Name: name, Base: base}, ok
}

// All lists every declared name, sorted.
func (m *Manifest) All() []string {
	out := append([]string(nil), m.Fire...)
	out = append(out, m.Switch...)
	for n := range m.Value {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
