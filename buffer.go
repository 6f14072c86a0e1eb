package cargo

import "iter"

// EntityData is the append-only packet buffer for the not-yet-committed
// component set of a single entity. It is built by value: each append
// returns the grown buffer, and the returned value is the sole usable
// handle afterward.
type EntityData struct {
	bytes []byte
	types []TypeID
}

// MultiEntityData is the packet buffer for a batch of entities sharing
// one archetype. Every appended packet carries exactly one value per
// entity in the batch.
type MultiEntityData struct {
	bytes []byte
	types []TypeID
	count uint64
}

func newEntityData() EntityData {
	return EntityData{}
}

func newMultiEntityData(count uint64) MultiEntityData {
	return MultiEntityData{count: count}
}

// Bytes returns the raw packet stream.
func (d EntityData) Bytes() []byte {
	return d.bytes
}

// Len returns the byte length of the packet stream.
func (d EntityData) Len() int {
	return len(d.bytes)
}

// TypeIDs returns the ids of the component types appended so far, in
// append order.
func (d EntityData) TypeIDs() []TypeID {
	return d.types
}

// Cursor returns a cursor over the buffer's single-entity packets.
func (d EntityData) Cursor() *PacketCursor {
	return newPacketCursor(d.bytes, false)
}

// Packets iterates the buffer's packets in append order.
func (d EntityData) Packets() iter.Seq2[int, PacketView] {
	return d.Cursor().Packets()
}

// Bytes returns the raw packet stream.
func (d MultiEntityData) Bytes() []byte {
	return d.bytes
}

// Len returns the byte length of the packet stream.
func (d MultiEntityData) Len() int {
	return len(d.bytes)
}

// Count returns the number of entities the buffer represents.
func (d MultiEntityData) Count() uint64 {
	return d.count
}

// TypeIDs returns the ids of the component types appended so far, in
// append order.
func (d MultiEntityData) TypeIDs() []TypeID {
	return d.types
}

// Cursor returns a cursor over the buffer's multi-entity packets.
func (d MultiEntityData) Cursor() *PacketCursor {
	return newPacketCursor(d.bytes, true)
}

// Packets iterates the buffer's packets in append order.
func (d MultiEntityData) Packets() iter.Seq2[int, PacketView] {
	return d.Cursor().Packets()
}

// noteAppend records a component type on the buffer. Appending the same
// component type twice to one buffer is a usage error owned by the call
// site; when strict appends are configured we surface it in the log
// rather than changing behavior.
func noteAppend(types []TypeID, c Component) []TypeID {
	if Config.strictAppends {
		for _, id := range types {
			if id == c.TypeID() {
				Logger().Warn(
					"duplicate component append",
					componentField(c),
				)
				break
			}
		}
	}
	return append(types, c.TypeID())
}
