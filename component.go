package cargo

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/table"
)

var _ Component = componentType{}

type componentType struct {
	table.ElementType
	id        TypeID
	name      string
	size      uint64
	alignment uint64
}

func (c componentType) TypeID() TypeID {
	return c.id
}

func (c componentType) TypeName() string {
	return c.name
}

func (c componentType) PayloadSize() uint64 {
	return c.size
}

func (c componentType) PayloadAlignment() uint64 {
	return c.alignment
}

// PackedComponent binds a component type's wire identity, its fixed-layout
// codec, and typed storage access on the engine side.
type PackedComponent[T any] struct {
	Component
	table.Accessor[T]
	codec Codec[T]
}

// Codec returns the component's wire codec.
func (c PackedComponent[T]) Codec() Codec[T] {
	return c.codec
}

// FactoryNewComponent registers a component type for T and returns its
// packed binding. The type id is hashed from T's qualified type name, so
// T must be a named type. Registration happens once per type, normally
// from a package-level var initializer; an id collision or double
// registration is a programmer error and panics.
func FactoryNewComponent[T any](codec Codec[T]) PackedComponent[T] {
	rt := reflect.TypeFor[T]()
	if rt.Name() == "" {
		panic(fmt.Sprintf("cargo: component type must be named, got %v", rt))
	}
	name := rt.String()
	if pkg := rt.PkgPath(); pkg != "" {
		name = pkg + "." + rt.Name()
	}
	iden := table.FactoryNewElementType[T]()
	packed := PackedComponent[T]{
		Component: componentType{
			ElementType: iden,
			id:          HashTypeName(name),
			name:        name,
			size:        codec.Size,
			alignment:   codec.Alignment,
		},
		Accessor: table.FactoryNewAccessor[T](iden),
		codec:    codec,
	}
	if err := mainRegistry.register(packed); err != nil {
		panic(fmt.Sprintf("cargo: %v", err))
	}
	return packed
}
