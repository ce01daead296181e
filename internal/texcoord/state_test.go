package texcoord

import (
	"errors"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	s := New(4)
	if s.Units() != 4 {
		t.Fatalf("Units() = %d, want 4", s.Units())
	}
	for u := 0; u < s.Units(); u++ {
		c, ok := s.Coord(u)
		if !ok || c != DefaultCoord {
			t.Errorf("Coord(%d) = %v, %v; want %v, true", u, c, ok, DefaultCoord)
		}
	}
	if s.Mask() != 0 {
		t.Errorf("Mask() = %#x, want 0", s.Mask())
	}
}

func TestNewClampsUnits(t *testing.T) {
	tests := []struct {
		units, want int
	}{
		{0, 1},
		{-3, 1},
		{8, 8},
		{MaxUnits, MaxUnits},
		{MaxUnits + 1, MaxUnits},
	}
	for _, tt := range tests {
		if got := New(tt.units).Units(); got != tt.want {
			t.Errorf("New(%d).Units() = %d, want %d", tt.units, got, tt.want)
		}
	}
}

func TestSetInvalidSelector(t *testing.T) {
	const textureTwoD = 0x0DE1

	s := New(2)
	if err := s.Set(Texture0, 4, Coord{0.25, 0.5, 0.75, 2}); err != nil {
		t.Fatal(err)
	}
	before0, _ := s.Coord(0)
	before1, _ := s.Coord(1)
	mask := s.Mask()

	for _, sel := range []uint32{textureTwoD, Texture0 + 2, Texture0 + 31, Texture0 - 1, 0} {
		err := s.Set(sel, 4, Coord{9, 9, 9, 9})
		if !errors.Is(err, ErrInvalidEnum) {
			t.Errorf("Set(0x%04X) = %v, want ErrInvalidEnum", sel, err)
		}
	}

	if c, _ := s.Coord(0); c != before0 {
		t.Errorf("unit 0 = %v, want %v", c, before0)
	}
	if c, _ := s.Coord(1); c != before1 {
		t.Errorf("unit 1 = %v, want %v", c, before1)
	}
	if s.Mask() != mask {
		t.Errorf("Mask() = %#x, want %#x", s.Mask(), mask)
	}
}

func TestSetFourComponents(t *testing.T) {
	s := New(2)
	if err := s.Set(Texture0+1, 4, Coord{1, -2, 3, -4}); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if c, _ := s.Coord(1); c != (Coord{1, -2, 3, -4}) {
		t.Errorf("unit 1 = %v, want (1, -2, 3, -4)", c)
	}
	if s.Mask()&(0x3<<2) != 0x3<<2 {
		t.Errorf("Mask() = %#x, want bits 2 and 3 set", s.Mask())
	}
	if !s.IsSet(1, S) || !s.IsSet(1, T) {
		t.Error("unit 1 s/t not marked set")
	}
	if s.IsSet(0, S) || s.IsSet(0, T) {
		t.Error("unit 0 marked set")
	}
}

func TestSetOverwritesNotMerges(t *testing.T) {
	s := New(2)
	if err := s.Set(Texture0, 4, Coord{7, 8, 9, 10}); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(Texture0, 1, Coord{2.5}); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if c, _ := s.Coord(0); c != (Coord{2.5, 0, 0, 1}) {
		t.Errorf("unit 0 = %v, want (2.5, 0, 0, 1)", c)
	}
}

func TestSetArity(t *testing.T) {
	in := Coord{5, 6, 7, 8}
	tests := []struct {
		n    int
		want Coord
		mask uint64
	}{
		{1, Coord{5, 0, 0, 1}, 0x1},
		{2, Coord{5, 6, 0, 1}, 0x3},
		{3, Coord{5, 6, 7, 1}, 0x3},
		{4, Coord{5, 6, 7, 8}, 0x3},
	}
	for _, tt := range tests {
		s := New(1)
		// Garbage from an earlier call must not survive.
		_ = s.Set(Texture0, 4, Coord{-1, -1, -1, -1})
		s.mask = 0

		if err := s.Set(Texture0, tt.n, in); err != nil {
			t.Fatalf("Set(n=%d) = %v", tt.n, err)
		}
		if c, _ := s.Coord(0); c != tt.want {
			t.Errorf("Set(n=%d) coord = %v, want %v", tt.n, c, tt.want)
		}
		if s.Mask() != tt.mask {
			t.Errorf("Set(n=%d) mask = %#x, want %#x", tt.n, s.Mask(), tt.mask)
		}
	}
}

func TestSetUnitIsolation(t *testing.T) {
	s := New(4)
	for u := 0; u < 4; u++ {
		_ = s.Set(Texture0+uint32(u), 4, Coord{float32(u), float32(u), float32(u), float32(u)})
	}
	if err := s.Set(Texture0+2, 2, Coord{42, 43}); err != nil {
		t.Fatal(err)
	}
	for u := 0; u < 4; u++ {
		c, _ := s.Coord(u)
		if u == 2 {
			if c != (Coord{42, 43, 0, 1}) {
				t.Errorf("unit 2 = %v", c)
			}
			continue
		}
		f := float32(u)
		if c != (Coord{f, f, f, f}) {
			t.Errorf("unit %d changed to %v", u, c)
		}
	}
}

func TestMaskAccumulates(t *testing.T) {
	s := New(MaxUnits)
	_ = s.Set(Texture0, 1, Coord{1})
	_ = s.Set(Texture0+MaxUnits-1, 2, Coord{1, 1})
	_ = s.Set(Texture0, 1, Coord{2})

	want := uint64(0x1) | uint64(0x3)<<((MaxUnits-1)*BitsPerUnit)
	if s.Mask() != want {
		t.Errorf("Mask() = %#x, want %#x", s.Mask(), want)
	}
}

func TestCoordOutOfRange(t *testing.T) {
	s := New(2)
	if c, ok := s.Coord(2); ok || c != DefaultCoord {
		t.Errorf("Coord(2) = %v, %v", c, ok)
	}
	if s.IsSet(5, S) || s.IsSet(0, Q) {
		t.Error("IsSet reported an untracked bit")
	}
}

func TestReset(t *testing.T) {
	s := New(2)
	_ = s.Set(Texture0+1, 4, Coord{1, 2, 3, 4})
	s.Reset()
	if c, _ := s.Coord(1); c != DefaultCoord {
		t.Errorf("Coord(1) after Reset = %v", c)
	}
	if s.Mask() != 0 {
		t.Errorf("Mask() after Reset = %#x", s.Mask())
	}
}
