package cargo

import (
	"encoding/binary"
	"math"
	"slices"
)

// Single-entity packets carry a 24-byte header (type id, payload size,
// alignment as consecutive u64 little-endian fields) followed by one
// payload. Multi-entity packets add a fourth count field and concatenate
// count payloads at stride payload size.
const (
	PacketHeaderSize      = 24
	MultiPacketHeaderSize = 32
)

// PacketView is a decoded packet header plus a window over its payload
// bytes. For single-entity packets Count is 1. Payloads is always exactly
// PayloadSize * Count bytes.
type PacketView struct {
	TypeID      TypeID
	PayloadSize uint64
	Alignment   uint64
	Count       uint64
	Payloads    []byte
}

// PayloadAt returns the payload window for entity i.
func (v PacketView) PayloadAt(i uint64) []byte {
	start := i * v.PayloadSize
	return v.Payloads[start : start+v.PayloadSize]
}

// FramePacket appends a single-value packet to dst: the 24-byte header,
// then exactly size payload bytes produced by writePayload. The
// destination is grown to the full packet length up front.
func FramePacket(dst []byte, id TypeID, size, alignment uint64, writePayload func([]byte) []byte) []byte {
	dst = slices.Grow(dst, PacketHeaderSize+int(size))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(id))
	dst = binary.LittleEndian.AppendUint64(dst, size)
	dst = binary.LittleEndian.AppendUint64(dst, alignment)
	return writePayload(dst)
}

// FrameMultiPacket appends a multi-value packet to dst: the 32-byte
// header including count, then size*count payload bytes produced by
// writePayloads.
func FrameMultiPacket(dst []byte, id TypeID, size, alignment, count uint64, writePayloads func([]byte) []byte) []byte {
	dst = slices.Grow(dst, MultiPacketHeaderSize+int(size*count))
	dst = binary.LittleEndian.AppendUint64(dst, uint64(id))
	dst = binary.LittleEndian.AppendUint64(dst, size)
	dst = binary.LittleEndian.AppendUint64(dst, alignment)
	dst = binary.LittleEndian.AppendUint64(dst, count)
	return writePayloads(dst)
}

// readPacket decodes the packet starting at offset in buf, in single or
// multi form. It returns the view and the offset of the next packet.
func readPacket(buf []byte, offset int, multi bool) (PacketView, int, error) {
	headerSize := PacketHeaderSize
	if multi {
		headerSize = MultiPacketHeaderSize
	}
	if len(buf)-offset < headerSize {
		return PacketView{}, 0, TruncatedPacketError{
			Offset:    offset,
			Needed:    uint64(headerSize),
			Remaining: len(buf) - offset,
		}
	}
	header := buf[offset:]
	view := PacketView{
		TypeID:      TypeID(binary.LittleEndian.Uint64(header)),
		PayloadSize: binary.LittleEndian.Uint64(header[8:]),
		Alignment:   binary.LittleEndian.Uint64(header[16:]),
		Count:       1,
	}
	if multi {
		view.Count = binary.LittleEndian.Uint64(header[24:])
	}
	// The size and count fields come off the wire, so the product is
	// compared in uint64 space before any conversion: a huge or wrapping
	// declared length must surface as truncation, never as a panic.
	payloadStart := offset + headerSize
	remaining := len(buf) - payloadStart
	if view.PayloadSize != 0 && view.Count > uint64(remaining)/view.PayloadSize {
		needed := view.PayloadSize * view.Count
		if needed/view.PayloadSize != view.Count {
			needed = math.MaxUint64
		}
		return PacketView{}, 0, TruncatedPacketError{
			Offset:    payloadStart,
			Needed:    needed,
			Remaining: remaining,
		}
	}
	payloadLen := int(view.PayloadSize * view.Count)
	view.Payloads = buf[payloadStart : payloadStart+payloadLen]
	return view, payloadStart + payloadLen, nil
}
