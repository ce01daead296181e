package glcompat

import "fmt"

// Enum is a GL enumerant.
type Enum uint32

// Error codes returned by GetError.
//
//nolint:revive // GL names
const (
	NO_ERROR          Enum = 0
	INVALID_ENUM      Enum = 0x0500
	INVALID_VALUE     Enum = 0x0501
	INVALID_OPERATION Enum = 0x0502
	OUT_OF_MEMORY     Enum = 0x0505
)

// Buffer targets, usage hints and queries.
//
//nolint:revive // GL names
const (
	ARRAY_BUFFER                 Enum = 0x8892
	ELEMENT_ARRAY_BUFFER         Enum = 0x8893
	ARRAY_BUFFER_BINDING         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895

	BUFFER_SIZE  Enum = 0x8764
	BUFFER_USAGE Enum = 0x8765

	STREAM_DRAW  Enum = 0x88E0
	STREAM_READ  Enum = 0x88E1
	STREAM_COPY  Enum = 0x88E2
	STATIC_DRAW  Enum = 0x88E4
	STATIC_READ  Enum = 0x88E5
	STATIC_COPY  Enum = 0x88E6
	DYNAMIC_DRAW Enum = 0x88E8
	DYNAMIC_READ Enum = 0x88E9
	DYNAMIC_COPY Enum = 0x88EA
)

// Texture units and multitexture queries.
//
//nolint:revive // GL names
const (
	TEXTURE0 Enum = 0x84C0
	TEXTURE1 Enum = 0x84C1
	TEXTURE2 Enum = 0x84C2
	TEXTURE3 Enum = 0x84C3
	TEXTURE4 Enum = 0x84C4
	TEXTURE5 Enum = 0x84C5
	TEXTURE6 Enum = 0x84C6
	TEXTURE7 Enum = 0x84C7

	MAX_TEXTURE_UNITS Enum = 0x84E2

	TEXTURE_2D Enum = 0x0DE1
)

// String returns the GL name of error codes and targets, or the hex value.
func (e Enum) String() string {
	switch e {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case ARRAY_BUFFER:
		return "GL_ARRAY_BUFFER"
	case ELEMENT_ARRAY_BUFFER:
		return "GL_ELEMENT_ARRAY_BUFFER"
	default:
		return fmt.Sprintf("0x%04X", uint32(e))
	}
}
