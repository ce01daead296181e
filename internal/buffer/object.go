package buffer

import "fmt"

// Usage is the data store usage hint passed with an upload. The registry
// stores it and never acts on it.
type Usage uint32

// Usage hints, valued as their GL enums.
const (
	UsageStreamDraw  Usage = 0x88E0
	UsageStreamRead  Usage = 0x88E1
	UsageStreamCopy  Usage = 0x88E2
	UsageStaticDraw  Usage = 0x88E4
	UsageStaticRead  Usage = 0x88E5
	UsageStaticCopy  Usage = 0x88E6
	UsageDynamicDraw Usage = 0x88E8
	UsageDynamicRead Usage = 0x88E9
	UsageDynamicCopy Usage = 0x88EA
)

// Valid reports whether u is a recognized usage hint.
func (u Usage) Valid() bool {
	switch u {
	case UsageStreamDraw, UsageStreamRead, UsageStreamCopy,
		UsageStaticDraw, UsageStaticRead, UsageStaticCopy,
		UsageDynamicDraw, UsageDynamicRead, UsageDynamicCopy:
		return true
	}
	return false
}

// String returns the string representation of Usage.
func (u Usage) String() string {
	switch u {
	case UsageStreamDraw:
		return "STREAM_DRAW"
	case UsageStreamRead:
		return "STREAM_READ"
	case UsageStreamCopy:
		return "STREAM_COPY"
	case UsageStaticDraw:
		return "STATIC_DRAW"
	case UsageStaticRead:
		return "STATIC_READ"
	case UsageStaticCopy:
		return "STATIC_COPY"
	case UsageDynamicDraw:
		return "DYNAMIC_DRAW"
	case UsageDynamicRead:
		return "DYNAMIC_READ"
	case UsageDynamicCopy:
		return "DYNAMIC_COPY"
	default:
		return fmt.Sprintf("Usage(0x%04X)", uint32(u))
	}
}

// NativeID identifies the mirror of an object in the native rendering
// library. Zero means no native buffer exists.
type NativeID uint64

// Object is a buffer object. Its storage is owned by the registry and is
// only reachable through the registry's range operations and Bytes.
type Object struct {
	// Name is the client handle, never 0.
	Name uint32

	// Target is the binding point the object was last bound to.
	Target Target

	// Size is the length of the storage in bytes, 0 before the first upload.
	Size int

	// Usage is the hint given with the last upload.
	Usage Usage

	// Native is the native buffer holding a mirror of the storage.
	Native NativeID

	data []byte
}

func newObject(name uint32) *Object {
	return &Object{
		Name:  name,
		Usage: UsageStaticDraw,
	}
}

// Bytes returns a copy of the whole storage.
func (o *Object) Bytes() []byte {
	if o.data == nil {
		return nil
	}
	out := make([]byte, len(o.data))
	copy(out, o.data)
	return out
}

// replace swaps in a fresh copy of data.
func (o *Object) replace(data []byte, usage Usage) {
	var storage []byte
	if len(data) > 0 {
		storage = make([]byte, len(data))
		copy(storage, data)
	}
	o.data = storage
	o.Size = len(storage)
	o.Usage = usage
}

// contains reports whether [offset, offset+length) lies within the storage.
func (o *Object) contains(offset, length int) bool {
	if offset < 0 || length < 0 {
		return false
	}
	return offset <= o.Size && length <= o.Size-offset
}
