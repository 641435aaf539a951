// Package config parses the taint overlay's source/sink/transfer
// configuration into the schema the taint manager consumes, plus a
// pattern-matching helper (FunctionMatcher, adapted from the
// teacher's call-graph path search) for flexible method-name matching
// across sources, sinks, and transfers.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TransferKind classifies how taint moves across a method call that
// is neither a source nor a sink.
type TransferKind string

const (
	// TransferArgToResult propagates taint from an argument to the
	// call's result, e.g. strings.ToUpper(tainted) -> tainted.
	TransferArgToResult TransferKind = "arg-to-result"
	// TransferArgToBase propagates taint from an argument onto the
	// receiver, e.g. sb.WriteString(tainted) taints sb.
	TransferArgToBase TransferKind = "arg-to-base"
	// TransferBaseToResult propagates taint from the receiver to the
	// result, e.g. tainted.String() -> tainted.
	TransferBaseToResult TransferKind = "base-to-result"
)

// Rule names a method (by FunctionMatcher pattern) and, for sinks and
// transfers, which argument position participates.
type Rule struct {
	Pattern string `yaml:"pattern"`
	ArgPos  int    `yaml:"arg,omitempty"`
}

// TransferRule is a Rule tagged with the kind of propagation it
// describes.
type TransferRule struct {
	Rule `yaml:",inline"`
	Kind TransferKind `yaml:"kind"`
}

// TaintConfig is the parsed form of a taint-config YAML document: the
// method patterns that inject taint (Sources), observe it (Sinks),
// and move it across an otherwise-opaque call (Transfers).
type TaintConfig struct {
	Sources   []Rule         `yaml:"sources"`
	Sinks     []Rule         `yaml:"sinks"`
	Transfers []TransferRule `yaml:"transfers"`
}

// compiled holds one FunctionMatcher per configured rule, built once
// at Load time so IsSource/Sink/Transfer don't
// recompile patterns on every call-site check.
type compiled struct {
	sources []*FunctionMatcher
	sinks   []struct {
		m   *FunctionMatcher
		arg int
	}
	transfers []struct {
		m    *FunctionMatcher
		kind TransferKind
		arg  int
	}
}

// Matchers is a TaintConfig paired with its compiled matchers, the
// form taint.Manager actually consumes.
type Matchers struct {
	Config TaintConfig
	c      compiled
}

// Load reads and parses the YAML taint configuration at path. A path
// of "" returns a zero-value Matchers — an empty config, making the
// taint overlay a no-op. A malformed pattern or an unreadable file
// yields an error.
func Load(path string) (*Matchers, error) {
	if path == "" {
		return &Matchers{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles a taint configuration from YAML already in memory,
// for callers that obtained it some way other than a local path (a
// cloned repository, an embedded demo fixture).
func Parse(data []byte) (*Matchers, error) {
	var cfg TaintConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return compile(cfg)
}

func compile(cfg TaintConfig) (*Matchers, error) {
	m := &Matchers{Config: cfg}
	for _, r := range cfg.Sources {
		fm, err := NewFunctionMatcherFromString(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("config: source pattern %q: %w", r.Pattern, err)
		}
		m.c.sources = append(m.c.sources, fm)
	}
	for _, r := range cfg.Sinks {
		fm, err := NewFunctionMatcherFromString(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("config: sink pattern %q: %w", r.Pattern, err)
		}
		m.c.sinks = append(m.c.sinks, struct {
			m   *FunctionMatcher
			arg int
		}{fm, r.ArgPos})
	}
	for _, t := range cfg.Transfers {
		fm, err := NewFunctionMatcherFromString(t.Pattern)
		if err != nil {
			return nil, fmt.Errorf("config: transfer pattern %q: %w", t.Pattern, err)
		}
		m.c.transfers = append(m.c.transfers, struct {
			m    *FunctionMatcher
			kind TransferKind
			arg  int
		}{fm, t.Kind, t.ArgPos})
	}
	return m, nil
}

// IsSource reports whether methodRef matches a configured source.
func (m *Matchers) IsSource(methodRef string) bool {
	for _, fm := range m.c.sources {
		if fm.Match(methodRef) {
			return true
		}
	}
	return false
}

// Sink reports the configured argument position for methodRef as a
// sink, and whether one was found. A method matched by more than one
// sink rule reports the first match's position.
func (m *Matchers) Sink(methodRef string) (argPos int, ok bool) {
	for _, s := range m.c.sinks {
		if s.m.Match(methodRef) {
			return s.arg, true
		}
	}
	return 0, false
}

// Transfer reports the configured transfer kind and argument position
// for methodRef, and whether one was found.
func (m *Matchers) Transfer(methodRef string) (kind TransferKind, argPos int, ok bool) {
	for _, t := range m.c.transfers {
		if t.m.Match(methodRef) {
			return t.kind, t.arg, true
		}
	}
	return "", 0, false
}
