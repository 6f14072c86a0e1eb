package cargo

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
	"go.uber.org/zap"
)

var _ Entity = &entity{}

type entity struct {
	table.Entry
	eng *Engine
}

// Update applies a single-entity buffer to an already-live entity. Known
// component types already present in the entity's archetype are
// overwritten in place; types the archetype lacks move the entity to the
// widened archetype first. Unknown type ids are skipped with a log entry.
func (e *entity) Update(data EntityData) error {
	cursor := data.Cursor()
	for cursor.Next() {
		view := cursor.Packet()
		b, known := mainRegistry.lookup(view.TypeID)
		if !known {
			Logger().Warn(
				"skipping unknown component type in update",
				zap.Uint64("id", uint64(view.TypeID)),
			)
			continue
		}
		if !e.Table().Contains(b) {
			if err := e.addComponent(b); err != nil {
				return err
			}
		}
		if err := b.store(e.Table(), e.Index(), view.Payloads); err != nil {
			return err
		}
	}
	return cursor.Err()
}

// addComponent moves the entity to the archetype widened by c,
// transferring its existing component values.
func (e *entity) addComponent(c Component) error {
	originTable := e.Table()
	originMask := originTable.(mask.Maskable).Mask()
	destMask := originMask
	e.eng.schema.Register(c)
	destMask.Mark(e.eng.schema.RowIndexFor(c))

	destArchetype, err := e.getOrCreateArchetypeWith(destMask, c)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}
	if err := originTable.TransferEntries(destArchetype.tbl, e.Index()); err != nil {
		return fmt.Errorf("failed to transfer entity: %w", err)
	}
	return nil
}

func (e *entity) getOrCreateArchetypeWith(destMask mask.Mask, newComp Component) (archetype, error) {
	if id, found := e.eng.archetypes.idsGroupedByMask[destMask]; found {
		return e.eng.archetypes.asSlice[id-1], nil
	}

	originalElems := iter_util.Collect(e.Table().ElementTypes())
	newComps := make([]Component, 0, len(originalElems)+1)
	for _, elem := range originalElems {
		comp, ok := elem.(Component)
		if !ok {
			return archetype{}, fmt.Errorf("element type %T is not a cargo component", elem)
		}
		newComps = append(newComps, comp)
	}
	newComps = append(newComps, newComp)

	created, err := newArchetype(e.eng.schema, mainIndex, e.eng.archetypes.nextID, destMask, newComps...)
	if err != nil {
		return archetype{}, err
	}
	e.eng.archetypes.asSlice = append(e.eng.archetypes.asSlice, created)
	e.eng.archetypes.idsGroupedByMask[destMask] = e.eng.archetypes.nextID
	e.eng.archetypes.nextID++
	return created, nil
}
