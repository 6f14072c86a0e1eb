package cargo

import (
	"sync"

	"github.com/TheBitDrifter/table"
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// HashTypeName derives the stable 64-bit id for a qualified component
// type name. The hash is deterministic across processes and builds; zero
// is reserved as an invalid id and remapped.
func HashTypeName(name string) TypeID {
	hash := xxhash.Sum64String(name)
	if hash == 0 {
		hash = 1
	}
	return TypeID(hash)
}

// binding is the untyped face of a PackedComponent the engine boundary
// dispatches through.
type binding interface {
	Component
	store(tbl table.Table, index int, payload []byte) error
}

var mainRegistry = newRegistry()

// registry holds every registered component binding, keyed by id and by
// name. Registrations normally happen from package-level initializers,
// so a collision surfaces at process startup rather than on the wire.
type registry struct {
	mu       sync.RWMutex
	bindings []binding
	byID     map[TypeID]int
	byName   map[string]int
}

func newRegistry() *registry {
	return &registry{
		byID:   make(map[TypeID]int),
		byName: make(map[string]int),
	}
}

func (r *registry) register(b binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, taken := r.byID[b.TypeID()]; taken {
		return TypeCollisionError{
			ID:       b.TypeID(),
			Name:     b.TypeName(),
			Existing: r.bindings[idx].TypeName(),
		}
	}
	if _, taken := r.byName[b.TypeName()]; taken {
		return TypeCollisionError{ID: b.TypeID(), Name: b.TypeName(), Existing: b.TypeName()}
	}
	idx := len(r.bindings)
	r.bindings = append(r.bindings, b)
	r.byID[b.TypeID()] = idx
	r.byName[b.TypeName()] = idx
	Logger().Debug(
		"registered component type",
		zap.String("name", b.TypeName()),
		zap.Uint64("id", uint64(b.TypeID())),
		zap.Uint64("size", b.PayloadSize()),
		zap.Uint64("alignment", b.PayloadAlignment()),
	)
	return nil
}

func (r *registry) lookup(id TypeID) (binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return r.bindings[idx], true
}

// LookupComponent resolves a registered component type by its wire id.
func LookupComponent(id TypeID) (Component, bool) {
	b, ok := mainRegistry.lookup(id)
	if !ok {
		return nil, false
	}
	return b, true
}

// RegisteredComponents returns every registered component type, in
// registration order.
func RegisteredComponents() []Component {
	mainRegistry.mu.RLock()
	defer mainRegistry.mu.RUnlock()
	components := make([]Component, len(mainRegistry.bindings))
	for i, b := range mainRegistry.bindings {
		components[i] = b
	}
	return components
}
