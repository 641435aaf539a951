package config

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// MatchStrategy selects how a FunctionMatcher compares a candidate
// name against its pattern.
type MatchStrategy int

const (
	// MatchExact requires an exact string match (default).
	MatchExact MatchStrategy = iota
	// MatchFuzzy uses substring matching.
	MatchFuzzy
	// MatchGlob uses shell-style pattern matching with *, ?, [].
	MatchGlob
	// MatchRegex uses regular expression matching.
	MatchRegex
)

func (m MatchStrategy) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	case MatchGlob:
		return "glob"
	case MatchRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// FunctionMatcher matches a symbolic method reference (ir.Call.MethodRef)
// against a configured source/sink/transfer pattern.
type FunctionMatcher struct {
	pattern  string
	strategy MatchStrategy
	regex    *regexp.Regexp
}

// NewFunctionMatcher builds a matcher with an explicit strategy.
func NewFunctionMatcher(pattern string, strategy MatchStrategy) (*FunctionMatcher, error) {
	m := &FunctionMatcher{pattern: pattern, strategy: strategy}
	if strategy == MatchRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		m.regex = re
	}
	return m, nil
}

// NewFunctionMatcherFromString parses a pattern with an optional
// strategy prefix: "exact:", "fuzzy:", "glob:", "regex:". A pattern
// with no recognized prefix defaults to exact matching.
func NewFunctionMatcherFromString(input string) (*FunctionMatcher, error) {
	strategy := MatchExact
	pattern := input
	if idx := strings.IndexByte(input, ':'); idx >= 0 {
		switch strings.ToLower(input[:idx]) {
		case "exact":
			pattern = input[idx+1:]
		case "fuzzy", "fuzz", "substring":
			strategy = MatchFuzzy
			pattern = input[idx+1:]
		case "glob", "pattern":
			strategy = MatchGlob
			pattern = input[idx+1:]
		case "regex", "regexp", "re":
			strategy = MatchRegex
			pattern = input[idx+1:]
		}
	}
	return NewFunctionMatcher(pattern, strategy)
}

// Match reports whether name matches the pattern under the matcher's
// strategy.
func (m *FunctionMatcher) Match(name string) bool {
	switch m.strategy {
	case MatchExact:
		return name == m.pattern
	case MatchFuzzy:
		return strings.Contains(name, m.pattern)
	case MatchGlob:
		matched, err := path.Match(m.pattern, name)
		if err != nil {
			return name == m.pattern
		}
		return matched
	case MatchRegex:
		return m.regex != nil && m.regex.MatchString(name)
	default:
		return false
	}
}

func (m *FunctionMatcher) String() string {
	return fmt.Sprintf("%s:%s", m.strategy, m.pattern)
}
