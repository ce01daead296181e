package glcompat

import (
	"fmt"

	"github.com/gogpu/glcompat/internal/texcoord"
)

// coordValue is any component type accepted by the MultiTexCoord entry points.
type coordValue interface {
	~float32 | ~float64 | ~int16 | ~int32
}

// multiTexCoord sets the current coordinate of the unit chosen by target
// from the given components. Unspecified t and r become 0, q becomes 1.
func multiTexCoord[T coordValue](c *Context, op string, target Enum, v ...T) {
	var coord texcoord.Coord
	for i, x := range v {
		coord[i] = float32(x)
	}
	if err := c.texCoords.Set(uint32(target), len(v), coord); err != nil {
		c.reject(op, err, "target", target)
		return
	}
	c.ok()
}

// multiTexCoordv is multiTexCoord for the vector entry points, which read
// the first n elements of v.
func multiTexCoordv[T coordValue](c *Context, op string, target Enum, n int, v []T) {
	if _, err := c.texCoords.Unit(uint32(target)); err != nil {
		c.reject(op, err, "target", target)
		return
	}
	if len(v) < n {
		c.reject(op, fmt.Errorf("%w: %d components, need %d", errInvalidValue, len(v), n), "target", target)
		return
	}
	multiTexCoord(c, op, target, v[:n]...)
}

// CurrentTexCoord returns the current (s, t, r, q) of texture unit index
// unit. Units outside [0, TextureUnits()) report (0, 0, 0, 1).
func (c *Context) CurrentTexCoord(unit int) [4]float32 {
	coord, _ := c.texCoords.Coord(unit)
	return coord
}

// TexCoordSetMask returns the is-set bitmask of the texture coordinates.
// Unit u owns bit 2u (s assigned) and bit 2u+1 (t assigned). Bits are only
// ever added.
func (c *Context) TexCoordSetMask() uint64 {
	return c.texCoords.Mask()
}

// MultiTexCoord1f sets the current texture coordinate of unit target.
func (c *Context) MultiTexCoord1f(target Enum, s float32) {
	multiTexCoord(c, "glMultiTexCoord1f", target, s)
}

// MultiTexCoord1d is the float64 form of MultiTexCoord1f.
func (c *Context) MultiTexCoord1d(target Enum, s float64) {
	multiTexCoord(c, "glMultiTexCoord1d", target, s)
}

// MultiTexCoord1s is the int16 form of MultiTexCoord1f.
func (c *Context) MultiTexCoord1s(target Enum, s int16) {
	multiTexCoord(c, "glMultiTexCoord1s", target, s)
}

// MultiTexCoord1i is the int32 form of MultiTexCoord1f.
func (c *Context) MultiTexCoord1i(target Enum, s int32) {
	multiTexCoord(c, "glMultiTexCoord1i", target, s)
}

// MultiTexCoord2f sets the current texture coordinate of unit target.
func (c *Context) MultiTexCoord2f(target Enum, s, t float32) {
	multiTexCoord(c, "glMultiTexCoord2f", target, s, t)
}

// MultiTexCoord2d is the float64 form of MultiTexCoord2f.
func (c *Context) MultiTexCoord2d(target Enum, s, t float64) {
	multiTexCoord(c, "glMultiTexCoord2d", target, s, t)
}

// MultiTexCoord2s is the int16 form of MultiTexCoord2f.
func (c *Context) MultiTexCoord2s(target Enum, s, t int16) {
	multiTexCoord(c, "glMultiTexCoord2s", target, s, t)
}

// MultiTexCoord2i is the int32 form of MultiTexCoord2f.
func (c *Context) MultiTexCoord2i(target Enum, s, t int32) {
	multiTexCoord(c, "glMultiTexCoord2i", target, s, t)
}

// MultiTexCoord3f sets the current texture coordinate of unit target.
func (c *Context) MultiTexCoord3f(target Enum, s, t, r float32) {
	multiTexCoord(c, "glMultiTexCoord3f", target, s, t, r)
}

// MultiTexCoord3d is the float64 form of MultiTexCoord3f.
func (c *Context) MultiTexCoord3d(target Enum, s, t, r float64) {
	multiTexCoord(c, "glMultiTexCoord3d", target, s, t, r)
}

// MultiTexCoord3s is the int16 form of MultiTexCoord3f.
func (c *Context) MultiTexCoord3s(target Enum, s, t, r int16) {
	multiTexCoord(c, "glMultiTexCoord3s", target, s, t, r)
}

// MultiTexCoord3i is the int32 form of MultiTexCoord3f.
func (c *Context) MultiTexCoord3i(target Enum, s, t, r int32) {
	multiTexCoord(c, "glMultiTexCoord3i", target, s, t, r)
}

// MultiTexCoord4f sets the current texture coordinate of unit target.
func (c *Context) MultiTexCoord4f(target Enum, s, t, r, q float32) {
	multiTexCoord(c, "glMultiTexCoord4f", target, s, t, r, q)
}

// MultiTexCoord4d is the float64 form of MultiTexCoord4f.
func (c *Context) MultiTexCoord4d(target Enum, s, t, r, q float64) {
	multiTexCoord(c, "glMultiTexCoord4d", target, s, t, r, q)
}

// MultiTexCoord4s is the int16 form of MultiTexCoord4f.
func (c *Context) MultiTexCoord4s(target Enum, s, t, r, q int16) {
	multiTexCoord(c, "glMultiTexCoord4s", target, s, t, r, q)
}

// MultiTexCoord4i is the int32 form of MultiTexCoord4f.
func (c *Context) MultiTexCoord4i(target Enum, s, t, r, q int32) {
	multiTexCoord(c, "glMultiTexCoord4i", target, s, t, r, q)
}

// MultiTexCoord1fv sets the current texture coordinate of unit target from v[:1].
func (c *Context) MultiTexCoord1fv(target Enum, v []float32) {
	multiTexCoordv(c, "glMultiTexCoord1fv", target, 1, v)
}

// MultiTexCoord1dv is the float64 form of MultiTexCoord1fv.
func (c *Context) MultiTexCoord1dv(target Enum, v []float64) {
	multiTexCoordv(c, "glMultiTexCoord1dv", target, 1, v)
}

// MultiTexCoord1sv is the int16 form of MultiTexCoord1fv.
func (c *Context) MultiTexCoord1sv(target Enum, v []int16) {
	multiTexCoordv(c, "glMultiTexCoord1sv", target, 1, v)
}

// MultiTexCoord1iv is the int32 form of MultiTexCoord1fv.
func (c *Context) MultiTexCoord1iv(target Enum, v []int32) {
	multiTexCoordv(c, "glMultiTexCoord1iv", target, 1, v)
}

// MultiTexCoord2fv sets the current texture coordinate of unit target from v[:2].
func (c *Context) MultiTexCoord2fv(target Enum, v []float32) {
	multiTexCoordv(c, "glMultiTexCoord2fv", target, 2, v)
}

// MultiTexCoord2dv is the float64 form of MultiTexCoord2fv.
func (c *Context) MultiTexCoord2dv(target Enum, v []float64) {
	multiTexCoordv(c, "glMultiTexCoord2dv", target, 2, v)
}

// MultiTexCoord2sv is the int16 form of MultiTexCoord2fv.
func (c *Context) MultiTexCoord2sv(target Enum, v []int16) {
	multiTexCoordv(c, "glMultiTexCoord2sv", target, 2, v)
}

// MultiTexCoord2iv is the int32 form of MultiTexCoord2fv.
func (c *Context) MultiTexCoord2iv(target Enum, v []int32) {
	multiTexCoordv(c, "glMultiTexCoord2iv", target, 2, v)
}

// MultiTexCoord3fv sets the current texture coordinate of unit target from v[:3].
func (c *Context) MultiTexCoord3fv(target Enum, v []float32) {
	multiTexCoordv(c, "glMultiTexCoord3fv", target, 3, v)
}

// MultiTexCoord3dv is the float64 form of MultiTexCoord3fv.
func (c *Context) MultiTexCoord3dv(target Enum, v []float64) {
	multiTexCoordv(c, "glMultiTexCoord3dv", target, 3, v)
}

// MultiTexCoord3sv is the int16 form of MultiTexCoord3fv.
func (c *Context) MultiTexCoord3sv(target Enum, v []int16) {
	multiTexCoordv(c, "glMultiTexCoord3sv", target, 3, v)
}

// MultiTexCoord3iv is the int32 form of MultiTexCoord3fv.
func (c *Context) MultiTexCoord3iv(target Enum, v []int32) {
	multiTexCoordv(c, "glMultiTexCoord3iv", target, 3, v)
}

// MultiTexCoord4fv sets the current texture coordinate of unit target from v[:4].
func (c *Context) MultiTexCoord4fv(target Enum, v []float32) {
	multiTexCoordv(c, "glMultiTexCoord4fv", target, 4, v)
}

// MultiTexCoord4dv is the float64 form of MultiTexCoord4fv.
func (c *Context) MultiTexCoord4dv(target Enum, v []float64) {
	multiTexCoordv(c, "glMultiTexCoord4dv", target, 4, v)
}

// MultiTexCoord4sv is the int16 form of MultiTexCoord4fv.
func (c *Context) MultiTexCoord4sv(target Enum, v []int16) {
	multiTexCoordv(c, "glMultiTexCoord4sv", target, 4, v)
}

// MultiTexCoord4iv is the int32 form of MultiTexCoord4fv.
func (c *Context) MultiTexCoord4iv(target Enum, v []int32) {
	multiTexCoordv(c, "glMultiTexCoord4iv", target, 4, v)
}
