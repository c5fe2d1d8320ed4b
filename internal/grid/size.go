package grid

import (
	"fmt"
	"strings"
)

// Size is a creature size class.
type Size int

const (
	SizeTiny Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeHuge
	SizeGargantuan
)

var sizeNames = map[string]Size{
	"tiny":       SizeTiny,
	"small":      SizeSmall,
	"medium":     SizeMedium,
	"large":      SizeLarge,
	"huge":       SizeHuge,
	"gargantuan": SizeGargantuan,
}

// ParseSize converts a size name (case-insensitive) into a Size.
func ParseSize(s string) (Size, error) {
	if size, ok := sizeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return size, nil
	}
	return SizeTiny, fmt.Errorf("unknown size class %q", s)
}

// UnmarshalText lets size classes be written by name in data files.
func (s *Size) UnmarshalText(text []byte) error {
	size, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = size
	return nil
}

// String returns the lower-case size name.
func (s Size) String() string {
	switch s {
	case SizeTiny:
		return "tiny"
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	case SizeGargantuan:
		return "gargantuan"
	default:
		return "unknown"
	}
}

// Tiles returns the side length, in cells, of the square a creature of
// this size occupies.
func (s Size) Tiles() int {
	switch s {
	case SizeTiny:
		return 1
	case SizeSmall, SizeMedium:
		return 2
	case SizeLarge:
		return 4
	case SizeHuge:
		return 6
	case SizeGargantuan:
		return 8
	default:
		return 1
	}
}
