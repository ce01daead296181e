// Package texcoord holds the current texture coordinate of every
// fixed-function texture unit, as set by the multitexture entry points.
package texcoord

import (
	"errors"
	"fmt"
)

// ErrInvalidEnum is returned when a unit selector does not name a
// configured texture unit.
var ErrInvalidEnum = errors.New("texcoord: invalid enum")

// Texture0 is the selector of the first texture unit (GL_TEXTURE0).
// Unit i is selected by Texture0 + i.
const Texture0 uint32 = 0x84C0

// MaxUnits is the largest supported unit count (GL_TEXTURE0..GL_TEXTURE31).
const MaxUnits = 32

// BitsPerUnit is the number of is-set bits each unit owns in the mask.
// Bit 2u tracks s and bit 2u+1 tracks t; r and q always take defaults
// when omitted and are not tracked.
const BitsPerUnit = 2

// Component indices into a coordinate vector.
const (
	S = iota
	T
	R
	Q
)

// Coord is an (s, t, r, q) texture coordinate.
type Coord [4]float32

// DefaultCoord is the coordinate of a unit that was never set.
var DefaultCoord = Coord{0, 0, 0, 1}

// State is the per-unit coordinate array plus the is-set mask.
// It is not safe for concurrent use.
type State struct {
	coords []Coord
	mask   uint64
}

// New creates state for units texture units, clamped to [1, MaxUnits].
func New(units int) *State {
	units = max(1, min(units, MaxUnits))
	coords := make([]Coord, units)
	for i := range coords {
		coords[i] = DefaultCoord
	}
	return &State{coords: coords}
}

// Units returns the configured number of texture units.
func (s *State) Units() int {
	return len(s.coords)
}

// Unit decodes a selector into a unit index.
func (s *State) Unit(selector uint32) (int, error) {
	if selector < Texture0 || selector-Texture0 >= uint32(len(s.coords)) {
		return 0, fmt.Errorf("%w: texture unit selector 0x%04X (units=%d)",
			ErrInvalidEnum, selector, len(s.coords))
	}
	return int(selector - Texture0), nil
}

// Set assigns the coordinate of the unit chosen by selector. Only the first
// n components of v are taken (1 <= n <= 4); t and r default to 0 and q to 1.
// All four components are written on every call, whatever the unit held
// before. The is-set bits of the supplied components are OR-ed into the mask.
//
// An invalid selector returns ErrInvalidEnum and changes nothing.
func (s *State) Set(selector uint32, n int, v Coord) error {
	unit, err := s.Unit(selector)
	if err != nil {
		return err
	}
	n = max(1, min(n, 4))

	c := DefaultCoord
	copy(c[:n], v[:n])
	s.coords[unit] = c

	for comp := 0; comp < min(n, BitsPerUnit); comp++ {
		s.mask |= bit(unit, comp)
	}
	return nil
}

// Coord returns the current coordinate of unit, or DefaultCoord and false
// when unit is out of range.
func (s *State) Coord(unit int) (Coord, bool) {
	if unit < 0 || unit >= len(s.coords) {
		return DefaultCoord, false
	}
	return s.coords[unit], true
}

// Mask returns the is-set bitmask.
func (s *State) Mask() uint64 {
	return s.mask
}

// IsSet reports whether component comp of unit has been assigned.
func (s *State) IsSet(unit, comp int) bool {
	if unit < 0 || unit >= len(s.coords) || comp < 0 || comp >= BitsPerUnit {
		return false
	}
	return s.mask&bit(unit, comp) != 0
}

// Reset restores every unit to DefaultCoord and clears the mask.
func (s *State) Reset() {
	for i := range s.coords {
		s.coords[i] = DefaultCoord
	}
	s.mask = 0
}

func bit(unit, comp int) uint64 {
	return 1 << (uint(unit)*BitsPerUnit + uint(comp))
}
