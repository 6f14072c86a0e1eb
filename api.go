package cargo

import (
	"github.com/TheBitDrifter/table"
)

// TypeID is the stable 64-bit identifier of a component type. It is
// derived deterministically from the component's qualified type name, so
// independently compiled producers and consumers agree on the same id
// without a shared runtime registry. Zero is reserved and never issued.
type TypeID uint64

// Component describes one component type: its identity on the wire and
// the fixed layout of its encoded payload.
type Component interface {
	table.ElementType
	TypeID() TypeID
	TypeName() string
	PayloadSize() uint64
	PayloadAlignment() uint64
}

// Entity is a live entity handle inside the reference engine boundary.
type Entity interface {
	table.Entry
	Update(EntityData) error
}

// Codec is the fixed-layout value codec for a component type. Encode
// appends exactly Size bytes to dst in declaration order with no padding;
// Decode accepts exactly Size bytes and reconstructs the value or fails
// when a nested field decode fails. Both are pure.
type Codec[T any] struct {
	Size      uint64
	Alignment uint64
	Encode    func(dst []byte, value T) []byte
	Decode    func(src []byte) (T, error)
}

type iPacketCursor interface {
	Next() bool
	Packet() PacketView
	Err() error
}
