package cargo

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

var mainIndex = table.Factory.NewEntryIndex()

// Engine is the reference consumer on the receiving side of the packet
// boundary. It parses finished buffers into archetype-grouped columnar
// storage so the protocol can be exercised end to end. Packets whose
// type id is not registered are skipped by advancing over their declared
// payload length, which is the point of the self-describing header.
type Engine struct {
	schema     table.Schema
	archetypes *archetypes
	entities   []entity
}

type archetypes struct {
	nextID           archetypeID
	asSlice          []archetype
	idsGroupedByMask map[mask.Mask]archetypeID
}

func newEngine() *Engine {
	return &Engine{
		schema: table.Factory.NewSchema(),
		archetypes: &archetypes{
			nextID:           1,
			idsGroupedByMask: make(map[mask.Mask]archetypeID),
		},
	}
}

// ingestedPacket pairs a recognized packet with its binding.
type ingestedPacket struct {
	binding binding
	view    PacketView
}

// IngestEntity creates one entity from a single-entity buffer and fills
// its components from the buffer's payloads.
func (e *Engine) IngestEntity(data EntityData) (Entity, error) {
	entities, err := e.ingest(data.Cursor(), 1)
	if err != nil {
		return nil, err
	}
	return entities[0], nil
}

// IngestEntities creates the buffer's declared number of entities, all in
// one archetype, and fills component i of entity i from payload i of each
// multi-entity packet.
func (e *Engine) IngestEntities(data MultiEntityData) ([]Entity, error) {
	return e.ingest(data.Cursor(), data.count)
}

func (e *Engine) ingest(cursor *PacketCursor, count uint64) ([]Entity, error) {
	packets, archeMask, err := e.collectPackets(cursor, count)
	if err != nil {
		return nil, err
	}

	components := make([]Component, len(packets))
	for i, p := range packets {
		components[i] = p.binding
	}
	arche, err := e.getOrCreateArchetype(archeMask, components...)
	if err != nil {
		return nil, err
	}

	entries, err := arche.tbl.NewEntries(int(count))
	if err != nil {
		return nil, fmt.Errorf("failed to create entries: %w", err)
	}

	for _, p := range packets {
		for i, entry := range entries {
			if err := p.binding.store(arche.tbl, entry.Index(), p.view.PayloadAt(uint64(i))); err != nil {
				return nil, err
			}
		}
	}

	entities := make([]Entity, len(entries))
	for i, entry := range entries {
		en := entity{Entry: entry, eng: e}
		e.entities = append(e.entities, en)
		entities[i] = &e.entities[len(e.entities)-1]
	}
	return entities, nil
}

// collectPackets walks a buffer, resolves each recognized packet's
// binding, and accumulates the archetype mask. Unknown types are skipped
// with a log entry; malformed packets and count conflicts fail the whole
// buffer.
func (e *Engine) collectPackets(cursor *PacketCursor, count uint64) ([]ingestedPacket, mask.Mask, error) {
	var archeMask mask.Mask
	var packets []ingestedPacket
	for cursor.Next() {
		view := cursor.Packet()
		b, known := mainRegistry.lookup(view.TypeID)
		if !known {
			Logger().Warn(
				"skipping unknown component type",
				zap.Uint64("id", uint64(view.TypeID)),
				zap.Uint64("size", view.PayloadSize),
			)
			continue
		}
		if view.Count != count {
			return nil, archeMask, CountConflictError{
				Component: b,
				Packet:    view.Count,
				Buffer:    count,
			}
		}
		e.schema.Register(b)
		archeMask.Mark(e.schema.RowIndexFor(b))
		packets = append(packets, ingestedPacket{binding: b, view: view})
	}
	if err := cursor.Err(); err != nil {
		return nil, archeMask, err
	}
	return packets, archeMask, nil
}

func (e *Engine) getOrCreateArchetype(archeMask mask.Mask, components ...Component) (archetype, error) {
	if id, found := e.archetypes.idsGroupedByMask[archeMask]; found {
		return e.archetypes.asSlice[id-1], nil
	}
	created, err := newArchetype(e.schema, mainIndex, e.archetypes.nextID, archeMask, components...)
	if err != nil {
		return archetype{}, err
	}
	e.archetypes.asSlice = append(e.archetypes.asSlice, created)
	e.archetypes.idsGroupedByMask[archeMask] = e.archetypes.nextID
	e.archetypes.nextID++
	return created, nil
}

// Entity returns the ingested entity with the given entry id.
func (e *Engine) Entity(id int) (Entity, error) {
	for i := range e.entities {
		if int(e.entities[i].ID()) == id {
			return &e.entities[i], nil
		}
	}
	return nil, fmt.Errorf("no entity with id %d", id)
}
