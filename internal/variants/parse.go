package variants

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Descriptor file extensions, in lookup preference order.
const (
	ExtXML = ".xml"
	ExtHCL = ".hcl"
)

// Extensions lists every descriptor extension Discovery looks for.
var Extensions = []string{ExtXML, ExtHCL}

// ErrMalformedDescriptor is returned when descriptor text cannot be parsed.
var ErrMalformedDescriptor = errors.New("malformed descriptor")

// ParseFile reads and parses a descriptor, choosing the format by extension.
func ParseFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses descriptor data. Files ending in .hcl are HCL; everything else
// is treated as XML.
func Parse(filename string, data []byte) (*Descriptor, error) {
	if strings.EqualFold(filepath.Ext(filename), ExtHCL) {
		return ParseHCL(filename, data)
	}
	return ParseXML(filename, data)
}

// parseLevel splits a "A;B=2;_" option list. Blank text is an empty level.
func parseLevel(text string) Level {
	if strings.TrimSpace(text) == "" {
		return Level{}
	}
	parts := strings.Split(text, ";")
	level := make(Level, 0, len(parts))
	for _, part := range parts {
		level = append(level, parseOption(part))
	}
	return level
}

// parseOption parses NAME or NAME=VALUE. Only the first "=" separates.
func parseOption(text string) DefineOption {
	name, value, ok := strings.Cut(strings.TrimSpace(text), "=")
	if !ok {
		return DefineOption{Name: strings.TrimSpace(name), Value: DefaultValue}
	}
	return DefineOption{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}
}

func malformed(filename string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedDescriptor, filename, err)
}
