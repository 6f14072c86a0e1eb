/*
Package cargo implements the binary component-packet protocol used to hand
entity data across a process or language boundary into an archetype-based
Entity-Component-System engine.

Cargo sits on the producing side of the boundary: a front end builds up the
component set for one entity (or for a batch of entities sharing an
archetype) as a stream of self-describing packets, then hands the finished
buffer to the engine for ingestion. Because every packet carries its own
type id, payload size, and alignment, the two sides never need to share a
compiled type definition - a consumer can dispatch on packets it knows and
skip the ones it doesn't.

Core Concepts:

  - Component: a fixed-layout data value attached to an entity, identified
    by a stable 64-bit type id hashed from its qualified type name.
  - Packet: a framed binary record (type id + size + alignment + payload)
    carrying one component value, or a homogeneous run of values for a
    batch of entities.
  - EntityData / MultiEntityData: append-only packet buffers for a single
    entity or for N entities of one archetype.
  - Broadcast: a batch argument that is either one value shared by every
    entity or a list with exactly one value per entity.

Basic Usage:

	// Define a component with its fixed-layout codec
	spatial := cargo.FactoryNewComponent[Spatial](cargo.Codec[Spatial]{
		Size:      16,
		Alignment: 8,
		Encode:    encodeSpatial,
		Decode:    decodeSpatial,
	})

	// Build a buffer for a batch of 3 entities
	data := cargo.Factory.NewMultiEntityData(3)
	data, err := spatial.AddMany(data, cargo.PerEntity(positions))

	// Hand it to the engine boundary
	engine := cargo.Factory.NewEngine()
	entities, err := engine.IngestEntities(data)

Cargo is the boundary protocol for the Bappa Framework but also works as a
standalone library.
*/
package cargo
