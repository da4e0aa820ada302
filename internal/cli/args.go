// args.go - Argument parsing shared by all premia CLI commands.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser provides unified argument parsing for CLI commands.
// It handles multiple flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
type ArgParser struct {
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
	raw        []string
}

// NewArgParser creates a new argument parser from raw arguments.
//
// Example:
//
//	args := NewArgParser([]string{"--age", "35", "--smoker=yes", "--recommend"})
//	args.Flag("age")          // "35"
//	args.Flag("smoker")       // "yes"
//	args.BoolFlag("recommend") // true
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
		raw:        raw,
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if !strings.HasPrefix(arg, "-") {
			parser.positional = append(parser.positional, arg)
			i++
			continue
		}

		// --flag=value format
		if strings.Contains(arg, "=") {
			parts := strings.SplitN(arg, "=", 2)
			name := strings.TrimLeft(parts[0], "-")
			value := parts[1]

			// Boolean flags can be explicit: --recommend=true
			if value == "true" || value == "false" {
				parser.boolFlags[name] = value == "true"
			} else {
				parser.flags[name] = value
			}
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")

		// A following non-flag token is this flag's value.
		if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
			parser.flags[name] = raw[i+1]
			i += 2
		} else {
			parser.boolFlags[name] = true
			i++
		}
	}

	return parser
}

// Flag returns the value of a string flag, empty when absent.
func (p *ArgParser) Flag(name string) string {
	return p.flags[strings.TrimLeft(name, "-")]
}

// FlagOrDefault returns the flag value or a default when absent.
func (p *ArgParser) FlagOrDefault(name, defaultValue string) string {
	if val := p.Flag(name); val != "" {
		return val
	}
	return defaultValue
}

// FlagInt returns the flag value as an integer.
func (p *ArgParser) FlagInt(name string) (int, error) {
	val := p.Flag(name)
	if val == "" {
		return 0, fmt.Errorf("flag %s not found", name)
	}
	return strconv.Atoi(val)
}

// FlagFloat returns the flag value as a float.
func (p *ArgParser) FlagFloat(name string) (float64, error) {
	val := p.Flag(name)
	if val == "" {
		return 0, fmt.Errorf("flag %s not found", name)
	}
	return strconv.ParseFloat(val, 64)
}

// BoolFlag reports whether a boolean flag was set.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[strings.TrimLeft(name, "-")]
}

// HasFlag reports whether a flag appeared in any form.
func (p *ArgParser) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	if _, ok := p.flags[name]; ok {
		return true
	}
	_, ok := p.boolFlags[name]
	return ok
}

// Positional returns all positional arguments.
func (p *ArgParser) Positional() []string {
	return p.positional
}

// PositionalJoined returns the positional arguments joined by spaces,
// used by commands that take free text (ask "what is a deductible").
func (p *ArgParser) PositionalJoined() string {
	return strings.Join(p.positional, " ")
}
