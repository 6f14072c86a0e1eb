package cargo

type factory struct{}

var Factory factory

// NewEntityData creates an empty buffer for one entity's components.
func (f factory) NewEntityData() EntityData {
	return newEntityData()
}

// NewMultiEntityData creates an empty buffer for a batch of count
// entities sharing one archetype.
func (f factory) NewMultiEntityData(count uint64) MultiEntityData {
	return newMultiEntityData(count)
}

// NewEngine creates a reference engine boundary that ingests finished
// buffers.
func (f factory) NewEngine() *Engine {
	return newEngine()
}

// NewPacketCursor creates a cursor over a raw packet stream. Multi
// selects the 32-byte multi-entity header form.
func (f factory) NewPacketCursor(buf []byte, multi bool) *PacketCursor {
	return newPacketCursor(buf, multi)
}
