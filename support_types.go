package main

import (
	"fmt"
)

// OutputFormat describes varieties of result rendering.
type OutputFormat int

const (
	OutputFormatInvalid OutputFormat = iota

	// OutputFormatYAML renders the rewritten sequence in the wire format
	// the downstream compiler consumes.
	OutputFormatYAML

	// OutputFormatPretty renders a human-readable dump.
	OutputFormatPretty
)

var outputFormatValueMap = map[OutputFormat]string{
	OutputFormatYAML:   "yaml",
	OutputFormatPretty: "pretty",
}

func (f OutputFormat) String() string {
	v, ok := outputFormatValueMap[f]
	if !ok {
		return fmt.Sprintf("invalid(%d)", f)
	}

	return v
}

// MarshalText renders the value for flag defaults.
func (f OutputFormat) MarshalText() ([]byte, error) {
	v, ok := outputFormatValueMap[f]
	if !ok {
		return nil, fmt.Errorf("invalid output format (%d)", f)
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (f *OutputFormat) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range outputFormatValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown output format %q", text)
}
