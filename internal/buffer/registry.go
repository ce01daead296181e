// Package buffer tracks client-visible buffer objects and the array /
// element-array binding points of an emulated GL context.
//
// A Registry is owned by a single rendering thread and performs no locking.
package buffer

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// generateBatch bounds the up-front allocation of Generate.
const generateBatch = 1024

// Registry errors. Callers map them onto GL error codes with errors.Is.
var (
	// ErrInvalidEnum is returned when a binding target is not recognized.
	ErrInvalidEnum = errors.New("buffer: invalid enum")

	// ErrInvalidValue is returned for negative sizes, offsets or counts.
	ErrInvalidValue = errors.New("buffer: invalid value")

	// ErrInvalidOperation is returned when the call is illegal in the current state.
	ErrInvalidOperation = errors.New("buffer: invalid operation")

	// ErrOutOfMemory is returned when a new object could not be created.
	ErrOutOfMemory = errors.New("buffer: out of memory")
)

// Target selects one of the two binding points.
type Target uint32

// Binding points, valued as their GL enums.
const (
	TargetArray        Target = 0x8892 // GL_ARRAY_BUFFER
	TargetElementArray Target = 0x8893 // GL_ELEMENT_ARRAY_BUFFER
)

// Valid reports whether t is a recognized binding point.
func (t Target) Valid() bool {
	return t == TargetArray || t == TargetElementArray
}

// String returns the string representation of Target.
func (t Target) String() string {
	switch t {
	case TargetArray:
		return "ARRAY_BUFFER"
	case TargetElementArray:
		return "ELEMENT_ARRAY_BUFFER"
	default:
		return fmt.Sprintf("Target(0x%04X)", uint32(t))
	}
}

// Registry maps buffer names to objects and holds the binding slots.
type Registry struct {
	objects map[uint32]*Object

	array        uint32
	elementArray uint32

	// nextName is the next candidate handed out by Generate.
	nextName uint32

	// limit caps the number of live objects. Zero means unlimited.
	limit int
}

// NewRegistry creates an empty registry. A positive limit caps the number
// of live objects; creating more fails with ErrOutOfMemory.
func NewRegistry(limit int) *Registry {
	if limit < 0 {
		limit = 0
	}
	return &Registry{
		objects:  make(map[uint32]*Object),
		nextName: 1,
		limit:    limit,
	}
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// Names returns the names of all live objects in ascending order.
func (r *Registry) Names() []uint32 {
	names := make([]uint32, 0, len(r.objects))
	for name := range r.objects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Limit returns the live object cap, or 0 when unlimited.
func (r *Registry) Limit() int {
	return r.limit
}

// slot returns the binding slot for target.
func (r *Registry) slot(target Target) (*uint32, error) {
	switch target {
	case TargetArray:
		return &r.array, nil
	case TargetElementArray:
		return &r.elementArray, nil
	default:
		return nil, fmt.Errorf("%w: target %s", ErrInvalidEnum, target)
	}
}

// Bind records name in the slot for target. Name 0 unbinds. A non-zero name
// that is not yet known is created with empty storage and static-draw usage.
//
// If that creation fails the slot keeps its previous value and
// ErrOutOfMemory is returned.
func (r *Registry) Bind(target Target, name uint32) error {
	slot, err := r.slot(target)
	if err != nil {
		return err
	}

	if name != 0 {
		obj := r.Object(name, true)
		if obj == nil {
			return fmt.Errorf("%w: cannot create buffer %d", ErrOutOfMemory, name)
		}
		obj.Target = target
	}

	*slot = name
	return nil
}

// Binding returns the name bound to target, 0 if nothing is bound.
func (r *Registry) Binding(target Target) (uint32, error) {
	slot, err := r.slot(target)
	if err != nil {
		return 0, err
	}
	return *slot, nil
}

// Object looks up name. When the object does not exist and create is true,
// a default-initialized object is inserted and returned. Name 0 never
// resolves. Returns nil when nothing was found or created.
//
// The returned object remains owned by the registry.
func (r *Registry) Object(name uint32, create bool) *Object {
	if name == 0 {
		return nil
	}
	if obj, ok := r.objects[name]; ok {
		return obj
	}
	if !create {
		return nil
	}
	return r.insert(name)
}

// insert adds a fresh object under name. It never replaces an existing entry.
func (r *Registry) insert(name uint32) *Object {
	if _, ok := r.objects[name]; ok {
		return nil
	}
	if r.limit > 0 && len(r.objects) >= r.limit {
		return nil
	}
	obj := newObject(name)
	r.objects[name] = obj
	return obj
}

// Exists reports whether name is a live buffer object. It does not depend on
// the current bindings.
func (r *Registry) Exists(name uint32) bool {
	return r.Object(name, false) != nil
}

// Delete removes name from the registry and returns the removed object, or
// nil if name was not live. Binding slots still holding name are left as
// they are; clearing them is up to the caller.
func (r *Registry) Delete(name uint32) *Object {
	obj := r.Object(name, false)
	if obj == nil {
		return nil
	}
	delete(r.objects, name)
	return obj
}

// Generate returns n names that are neither live nor previously generated.
// Generated names become buffer objects only once bound.
//
// Returns ErrOutOfMemory when fewer than n names are free.
func (r *Registry) Generate(n int) ([]uint32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidValue, n)
	}
	if free := uint64(math.MaxUint32) - uint64(len(r.objects)); uint64(n) > free {
		return nil, fmt.Errorf("%w: %d names requested, %d free", ErrOutOfMemory, n, free)
	}
	names := make([]uint32, 0, min(n, generateBatch))
	for len(names) < n {
		name := r.nextName
		r.nextName++
		if r.nextName == 0 {
			r.nextName = 1
		}
		if name == 0 || r.objects[name] != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Bound returns the object bound to target.
//
// Returns ErrInvalidEnum for an unknown target and ErrInvalidOperation when
// nothing is bound.
func (r *Registry) Bound(target Target) (*Object, error) {
	name, err := r.Binding(target)
	if err != nil {
		return nil, err
	}
	if name == 0 {
		return nil, fmt.Errorf("%w: no buffer bound to %s", ErrInvalidOperation, target)
	}
	obj := r.Object(name, false)
	if obj == nil {
		// Bound name was deleted behind the binding.
		return nil, fmt.Errorf("%w: buffer %d bound to %s no longer exists", ErrInvalidOperation, name, target)
	}
	return obj, nil
}

// Upload replaces the storage of the buffer bound to target with a copy of
// data and records usage. The previous storage is discarded whole.
func (r *Registry) Upload(target Target, data []byte, usage Usage) error {
	obj, err := r.Bound(target)
	if err != nil {
		return err
	}
	obj.replace(data, usage)
	return nil
}

// WriteRange copies src into the bound buffer starting at offset. The range
// must lie within the current storage.
func (r *Registry) WriteRange(target Target, offset int, src []byte) error {
	obj, err := r.Bound(target)
	if err != nil {
		return err
	}
	if offset < 0 {
		return fmt.Errorf("%w: offset %d", ErrInvalidValue, offset)
	}
	if !obj.contains(offset, len(src)) {
		return fmt.Errorf("%w: range [%d, %d) exceeds buffer size %d",
			ErrInvalidValue, offset, offset+len(src), obj.Size)
	}
	copy(obj.data[offset:], src)
	return nil
}

// ReadRange copies length bytes starting at offset from the buffer bound to
// target into dst.
//
// Checks run in order: target, binding, length, destination, range. A zero
// length succeeds without touching dst, which may then be nil. The read is
// all or nothing: a range past the end of storage copies nothing.
func (r *Registry) ReadRange(target Target, offset, length int, dst []byte) error {
	obj, err := r.Bound(target)
	if err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	if offset < 0 || length < 0 {
		return fmt.Errorf("%w: offset %d length %d", ErrInvalidValue, offset, length)
	}
	if dst == nil {
		return fmt.Errorf("%w: nil destination for %d bytes", ErrInvalidOperation, length)
	}
	if len(dst) < length {
		return fmt.Errorf("%w: destination holds %d of %d bytes", ErrInvalidOperation, len(dst), length)
	}
	if !obj.contains(offset, length) {
		return fmt.Errorf("%w: range [%d, %d) exceeds buffer size %d",
			ErrInvalidOperation, offset, offset+length, obj.Size)
	}
	copy(dst[:length], obj.data[offset:offset+length])
	return nil
}
