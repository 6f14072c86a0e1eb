package cargo

import (
	"encoding/binary"
	"math"
)

// Leaf encoders and decoders shared by component codecs. All integers and
// floats are fixed-width little-endian; multi-field payloads are packed in
// declaration order with no padding, so the packer rather than the
// hardware defines the layout.

func AppendUint8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

func AppendUint32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

func AppendUint64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

func AppendInt32(dst []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

func AppendInt64(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

func AppendFloat32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

func AppendFloat64(dst []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v))
}

func Uint8At(src []byte, offset int) uint8 {
	return src[offset]
}

func Uint32At(src []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(src[offset:])
}

func Uint64At(src []byte, offset int) uint64 {
	return binary.LittleEndian.Uint64(src[offset:])
}

func Int32At(src []byte, offset int) int32 {
	return int32(binary.LittleEndian.Uint32(src[offset:]))
}

func Int64At(src []byte, offset int) int64 {
	return int64(binary.LittleEndian.Uint64(src[offset:]))
}

func Float32At(src []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(src[offset:]))
}

func Float64At(src []byte, offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(src[offset:]))
}

// decode runs the codec over a payload slice, insisting on the exact
// fixed length first so codecs never see short or oversized input.
func (c Codec[T]) decode(comp Component, payload []byte) (T, error) {
	var zero T
	if uint64(len(payload)) != c.Size {
		return zero, PayloadSizeError{Component: comp, Got: len(payload)}
	}
	value, err := c.Decode(payload)
	if err != nil {
		return zero, DecodeError{Component: comp, Cause: err}
	}
	return value, nil
}
