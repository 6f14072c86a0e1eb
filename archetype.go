package cargo

import (
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

type archetypeID uint32

// archetype groups ingested entities sharing one component set. Identity
// is the mask of schema row indices for the set, so buffers carrying the
// same component types land in the same table regardless of append order.
type archetype struct {
	id   archetypeID
	mask mask.Mask
	tbl  table.Table
}

func newArchetype(
	schema table.Schema,
	entryIndex table.EntryIndex,
	id archetypeID,
	archeMask mask.Mask,
	components ...Component,
) (archetype, error) {
	elementTypes := make([]table.ElementType, len(components))
	for i, comp := range components {
		elementTypes[i] = comp
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(entryIndex).
		WithElementTypes(elementTypes...).
		WithEvents(Config.tableEvents).
		Build()
	if err != nil {
		return archetype{}, err
	}
	return archetype{
		id:   id,
		mask: archeMask,
		tbl:  tbl,
	}, nil
}
