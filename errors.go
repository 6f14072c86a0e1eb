package cargo

import "fmt"

// CountMismatchError reports a per-entity broadcast argument whose length
// disagreed with the batch's entity count. The buffer involved is always
// left unchanged.
type CountMismatchError struct {
	Component Component
	Supplied  uint64
	Expected  uint64
}

func (e CountMismatchError) Error() string {
	if e.Component != nil {
		return fmt.Sprintf(
			"component %s: %d values supplied for %d entities",
			e.Component.TypeName(), e.Supplied, e.Expected,
		)
	}
	return fmt.Sprintf("%d values supplied for %d entities", e.Supplied, e.Expected)
}

// ComponentMissingError reports a lookup that found no packet (or no
// storage column) of the requested component type.
type ComponentMissingError struct {
	Component Component
}

func (e ComponentMissingError) Error() string {
	return fmt.Sprintf("no data for component %s", e.Component.TypeName())
}

// DecodeError reports payload bytes that failed to reconstruct a valid
// value, preserving the inner cause.
type DecodeError struct {
	Component Component
	Cause     error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decoding component %s: %v", e.Component.TypeName(), e.Cause)
}

func (e DecodeError) Unwrap() error {
	return e.Cause
}

// TypeCollisionError reports two distinct component type names hashing to
// the same TypeID, or the same name registered twice. Either is a
// programmer error caught at registration time.
type TypeCollisionError struct {
	ID       TypeID
	Name     string
	Existing string
}

func (e TypeCollisionError) Error() string {
	if e.Name == e.Existing {
		return fmt.Sprintf("component type %s registered twice", e.Name)
	}
	return fmt.Sprintf(
		"component type id collision: %s and %s both hash to %#x",
		e.Name, e.Existing, uint64(e.ID),
	)
}

// TruncatedPacketError reports a packet stream that ended before a full
// header or payload could be read, or a header whose declared payload
// length exceeds the bytes left in the stream.
type TruncatedPacketError struct {
	Offset    int
	Needed    uint64
	Remaining int
}

func (e TruncatedPacketError) Error() string {
	return fmt.Sprintf(
		"truncated packet at offset %d: need %d bytes, %d remaining",
		e.Offset, e.Needed, e.Remaining,
	)
}

// PayloadSizeError reports a payload whose length disagrees with the
// component's fixed layout.
type PayloadSizeError struct {
	Component Component
	Got       int
}

func (e PayloadSizeError) Error() string {
	return fmt.Sprintf(
		"component %s: payload is %d bytes, layout requires %d",
		e.Component.TypeName(), e.Got, e.Component.PayloadSize(),
	)
}

// CountConflictError reports a multi-entity packet whose count field
// disagrees with the entity count of the buffer it arrived in.
type CountConflictError struct {
	Component Component
	Packet    uint64
	Buffer    uint64
}

func (e CountConflictError) Error() string {
	return fmt.Sprintf(
		"component %s: packet carries %d values, buffer holds %d entities",
		e.Component.TypeName(), e.Packet, e.Buffer,
	)
}
