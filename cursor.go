package cargo

import "iter"

var _ iPacketCursor = &PacketCursor{}

// PacketCursor walks the packets of a finished buffer without decoding
// payloads, which is how a consumer skips component types it does not
// recognize: read the header, advance by the payload length.
type PacketCursor struct {
	buf    []byte
	multi  bool
	offset int
	view   PacketView
	err    error
}

func newPacketCursor(buf []byte, multi bool) *PacketCursor {
	return &PacketCursor{buf: buf, multi: multi}
}

// Next advances to the next packet. It returns false at the end of the
// stream or on a malformed packet; check Err afterward to tell the two
// apart.
func (c *PacketCursor) Next() bool {
	if c.err != nil || c.offset >= len(c.buf) {
		return false
	}
	view, next, err := readPacket(c.buf, c.offset, c.multi)
	if err != nil {
		c.err = err
		return false
	}
	c.view = view
	c.offset = next
	return true
}

// Packet returns the packet at the cursor position. Valid after a true
// Next.
func (c *PacketCursor) Packet() PacketView {
	return c.view
}

// Err returns the first malformed-packet error encountered, if any.
func (c *PacketCursor) Err() error {
	return c.err
}

// Packets iterates the stream as an index/view sequence. Malformed
// packets end the iteration; use the cursor form when the error matters.
func (c *PacketCursor) Packets() iter.Seq2[int, PacketView] {
	return func(yield func(int, PacketView) bool) {
		i := 0
		for c.Next() {
			if !yield(i, c.Packet()) {
				return
			}
			i++
		}
	}
}
