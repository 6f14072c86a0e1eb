package cargo

import (
	"github.com/TheBitDrifter/table"
)

// Add frames one value of the component and appends the packet to a
// single-entity buffer. An entity should never receive more than one
// value of the same component type; that invariant is owned by the call
// site.
func (c PackedComponent[T]) Add(data EntityData, value T) EntityData {
	data.bytes = FramePacket(
		data.bytes, c.TypeID(), c.PayloadSize(), c.PayloadAlignment(),
		func(dst []byte) []byte { return c.codec.Encode(dst, value) },
	)
	data.types = noteAppend(data.types, c.Component)
	return data
}

// AddMany resolves a broadcast argument against the buffer's entity count
// and appends one multi-entity packet holding the resolved values. On a
// count mismatch the buffer is returned unchanged alongside the error. A
// shared value is encoded once and its bytes replicated.
func (c PackedComponent[T]) AddMany(data MultiEntityData, values Broadcast[T]) (MultiEntityData, error) {
	if err := values.check(data.count); err != nil {
		mismatch := err.(CountMismatchError)
		mismatch.Component = c.Component
		return data, mismatch
	}
	data.bytes = FrameMultiPacket(
		data.bytes, c.TypeID(), c.PayloadSize(), c.PayloadAlignment(), data.count,
		func(dst []byte) []byte {
			if values.IsShared() && data.count > 1 && c.PayloadSize() > 0 {
				start := len(dst)
				dst = c.codec.Encode(dst, values.shared)
				encoded := dst[start:]
				for i := uint64(1); i < data.count; i++ {
					dst = append(dst, encoded...)
				}
				return dst
			}
			for i := uint64(0); i < data.count; i++ {
				dst = c.codec.Encode(dst, values.at(i))
			}
			return dst
		},
	)
	data.types = noteAppend(data.types, c.Component)
	return data, nil
}

// Read scans a single-entity buffer for this component's packet and
// decodes its payload. It returns a ComponentMissingError when no packet
// of the type is present and a DecodeError when the payload fails to
// reconstruct a value.
func (c PackedComponent[T]) Read(data EntityData) (T, error) {
	cursor := data.Cursor()
	for cursor.Next() {
		view := cursor.Packet()
		if view.TypeID != c.TypeID() {
			continue
		}
		return c.codec.decode(c.Component, view.Payloads)
	}
	var zero T
	if err := cursor.Err(); err != nil {
		return zero, err
	}
	return zero, ComponentMissingError{Component: c.Component}
}

// ReadAt scans a multi-entity buffer for this component's packet and
// decodes the payload belonging to entity i.
func (c PackedComponent[T]) ReadAt(data MultiEntityData, i uint64) (T, error) {
	var zero T
	cursor := data.Cursor()
	for cursor.Next() {
		view := cursor.Packet()
		if view.TypeID != c.TypeID() {
			continue
		}
		if i >= view.Count {
			return zero, ComponentMissingError{Component: c.Component}
		}
		return c.codec.decode(c.Component, view.PayloadAt(i))
	}
	if err := cursor.Err(); err != nil {
		return zero, err
	}
	return zero, ComponentMissingError{Component: c.Component}
}

// GetFromEntity retrieves the live component value for an ingested
// entity.
func (c PackedComponent[T]) GetFromEntity(entity Entity) *T {
	return c.Get(entity.Index(), entity.Table())
}

// GetFromEntitySafe checks that the entity's archetype holds the
// component before retrieving it.
func (c PackedComponent[T]) GetFromEntitySafe(entity Entity) (bool, *T) {
	if !entity.Table().Contains(c.Component) {
		return false, nil
	}
	return true, c.GetFromEntity(entity)
}

// store decodes a payload and writes it into the entity's storage row.
// It is the untyped ingestion hook the engine dispatches to by TypeID.
func (c PackedComponent[T]) store(tbl table.Table, index int, payload []byte) error {
	value, err := c.codec.decode(c.Component, payload)
	if err != nil {
		return err
	}
	*c.Get(index, tbl) = value
	return nil
}
