package components

import (
	"fmt"

	"github.com/TheBitDrifter/cargo"
)

// UniformRigidBody gives an entity rigid-body dynamics with a uniform
// mass density in kilograms per cubic meter.
type UniformRigidBody struct {
	MassDensity float64
}

var UniformRigidBodyComponent = cargo.FactoryNewComponent[UniformRigidBody](cargo.Codec[UniformRigidBody]{
	Size:      8,
	Alignment: 8,
	Encode: func(dst []byte, b UniformRigidBody) []byte {
		return cargo.AppendFloat64(dst, b.MassDensity)
	},
	Decode: func(src []byte) (UniformRigidBody, error) {
		return UniformRigidBody{MassDensity: cargo.Float64At(src, 0)}, nil
	},
})

// AddUniformRigidBody adds the component to an entity's data.
func AddUniformRigidBody(data cargo.EntityData, value UniformRigidBody) cargo.EntityData {
	return UniformRigidBodyComponent.Add(data, value)
}

// AddUniformRigidBodies adds values of the component to the data of a
// batch of entities.
func AddUniformRigidBodies(data cargo.MultiEntityData, values cargo.Broadcast[UniformRigidBody]) (cargo.MultiEntityData, error) {
	return UniformRigidBodyComponent.AddMany(data, values)
}

// CollidableKind selects how an entity's collidable participates in
// collision response.
type CollidableKind uint8

const (
	CollidableDynamic CollidableKind = iota
	CollidableStatic
	CollidablePhantom
)

// Collidable registers an entity with the collision world.
type Collidable struct {
	Kind CollidableKind
}

var CollidableComponent = cargo.FactoryNewComponent[Collidable](cargo.Codec[Collidable]{
	Size:      1,
	Alignment: 1,
	Encode: func(dst []byte, c Collidable) []byte {
		return cargo.AppendUint8(dst, uint8(c.Kind))
	},
	Decode: func(src []byte) (Collidable, error) {
		kind := CollidableKind(cargo.Uint8At(src, 0))
		if kind > CollidablePhantom {
			return Collidable{}, fmt.Errorf("invalid collidable kind discriminant %d", kind)
		}
		return Collidable{Kind: kind}, nil
	},
})

// AddCollidable adds the component to an entity's data.
func AddCollidable(data cargo.EntityData, value Collidable) cargo.EntityData {
	return CollidableComponent.Add(data, value)
}

// AddCollidables adds values of the component to the data of a batch of
// entities.
func AddCollidables(data cargo.MultiEntityData, values cargo.Broadcast[Collidable]) (cargo.MultiEntityData, error) {
	return CollidableComponent.AddMany(data, values)
}
