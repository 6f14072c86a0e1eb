package cargo

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestFramePacketHeader(t *testing.T) {
	tests := []struct {
		name      string
		id        TypeID
		size      uint64
		alignment uint64
		payload   []byte
	}{
		{"Four byte payload", 0xdeadbeefcafe0001, 4, 4, []byte{1, 2, 3, 4}},
		{"Zero size payload", 0x42, 0, 1, nil},
		{"Wide payload", 0xffffffffffffffff, 16, 8, make([]byte, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet := FramePacket(nil, tt.id, tt.size, tt.alignment, func(dst []byte) []byte {
				return append(dst, tt.payload...)
			})

			if len(packet) != PacketHeaderSize+int(tt.size) {
				t.Fatalf("packet length = %d, want %d", len(packet), PacketHeaderSize+int(tt.size))
			}
			if got := binary.LittleEndian.Uint64(packet[0:]); got != uint64(tt.id) {
				t.Errorf("type id field = %#x, want %#x", got, uint64(tt.id))
			}
			if got := binary.LittleEndian.Uint64(packet[8:]); got != tt.size {
				t.Errorf("payload size field = %d, want %d", got, tt.size)
			}
			if got := binary.LittleEndian.Uint64(packet[16:]); got != tt.alignment {
				t.Errorf("alignment field = %d, want %d", got, tt.alignment)
			}

			view, next, err := readPacket(packet, 0, false)
			if err != nil {
				t.Fatalf("readPacket() error: %v", err)
			}
			if next != len(packet) {
				t.Errorf("next offset = %d, want %d", next, len(packet))
			}
			if view.TypeID != tt.id || view.PayloadSize != tt.size || view.Alignment != tt.alignment {
				t.Errorf("view header = %+v", view)
			}
			if view.Count != 1 {
				t.Errorf("single packet count = %d, want 1", view.Count)
			}
		})
	}
}

func TestFrameMultiPacketShape(t *testing.T) {
	values := [][]byte{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	packet := FrameMultiPacket(nil, 0xa1, 2, 2, 4, func(dst []byte) []byte {
		for _, v := range values {
			dst = append(dst, v...)
		}
		return dst
	})

	if len(packet) != MultiPacketHeaderSize+8 {
		t.Fatalf("packet length = %d, want %d", len(packet), MultiPacketHeaderSize+8)
	}
	if got := binary.LittleEndian.Uint64(packet[24:]); got != 4 {
		t.Errorf("count field = %d, want 4", got)
	}

	view, _, err := readPacket(packet, 0, true)
	if err != nil {
		t.Fatalf("readPacket() error: %v", err)
	}
	for i, want := range values {
		got := view.PayloadAt(uint64(i))
		if got[0] != want[0] || got[1] != want[1] {
			t.Errorf("payload %d = %v, want %v", i, got, want)
		}
	}
}

func TestPacketCursorWalksStream(t *testing.T) {
	// Two packets, the first for a type id no consumer recognizes
	buf := FramePacket(nil, 0x1111, 8, 8, func(dst []byte) []byte {
		return append(dst, make([]byte, 8)...)
	})
	buf = FramePacket(buf, 0x2222, 2, 2, func(dst []byte) []byte {
		return append(dst, 0xaa, 0xbb)
	})

	cursor := Factory.NewPacketCursor(buf, false)
	var ids []TypeID
	for cursor.Next() {
		ids = append(ids, cursor.Packet().TypeID)
	}
	if err := cursor.Err(); err != nil {
		t.Fatalf("cursor error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 0x1111 || ids[1] != 0x2222 {
		t.Errorf("cursor ids = %v, want [0x1111 0x2222]", ids)
	}
}

func TestPacketCursorTruncation(t *testing.T) {
	whole := FramePacket(nil, 0x33, 8, 8, func(dst []byte) []byte {
		return append(dst, make([]byte, 8)...)
	})

	tests := []struct {
		name string
		buf  []byte
	}{
		{"Cut inside header", whole[:10]},
		{"Cut inside payload", whole[:PacketHeaderSize+3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := Factory.NewPacketCursor(tt.buf, false)
			if cursor.Next() {
				t.Fatal("Next() = true for truncated stream")
			}
			var truncated TruncatedPacketError
			if !errors.As(cursor.Err(), &truncated) {
				t.Errorf("cursor error = %v, want TruncatedPacketError", cursor.Err())
			}
		})
	}
}

func TestPacketCursorRejectsOversizedHeaders(t *testing.T) {
	// Headers are untrusted wire input; a declared length the stream
	// cannot hold must come back as a truncation error, not a panic.
	header := func(fields ...uint64) []byte {
		var buf []byte
		for _, f := range fields {
			buf = binary.LittleEndian.AppendUint64(buf, f)
		}
		return buf
	}

	tests := []struct {
		name  string
		buf   []byte
		multi bool
	}{
		{
			"Payload size exceeds int range",
			header(0x33, 1<<63, 8),
			false,
		},
		{
			"Size times count wraps to zero",
			header(0x33, 1<<32, 8, 1<<32),
			true,
		},
		{
			"Count far beyond stream length",
			append(header(0x33, 4, 4, 1<<40), 1, 2, 3, 4),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := Factory.NewPacketCursor(tt.buf, tt.multi)
			if cursor.Next() {
				t.Fatalf("Next() = true, accepted view %+v", cursor.Packet())
			}
			var truncated TruncatedPacketError
			if !errors.As(cursor.Err(), &truncated) {
				t.Fatalf("cursor error = %v, want TruncatedPacketError", cursor.Err())
			}
			if truncated.Remaining > len(tt.buf) {
				t.Errorf("reported %d bytes remaining in a %d byte stream", truncated.Remaining, len(tt.buf))
			}
		})
	}
}

func TestPacketsIterator(t *testing.T) {
	data := Factory.NewEntityData()
	data = chargeComp.Add(data, Charge{Joules: 7})
	data = spotComp.Add(data, Spot{X: 1, Y: 2})

	count := 0
	for i, view := range data.Packets() {
		if i == 0 && view.TypeID != chargeComp.TypeID() {
			t.Errorf("packet 0 id = %#x, want charge", uint64(view.TypeID))
		}
		if i == 1 && view.TypeID != spotComp.TypeID() {
			t.Errorf("packet 1 id = %#x, want spot", uint64(view.TypeID))
		}
		count++
	}
	if count != 2 {
		t.Errorf("iterated %d packets, want 2", count)
	}
}
