package components

import (
	"github.com/TheBitDrifter/cargo"
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialColor is the uniform base color of an entity's surface.
type MaterialColor struct {
	Color mgl32.Vec3
}

var MaterialColorComponent = cargo.FactoryNewComponent[MaterialColor](cargo.Codec[MaterialColor]{
	Size:      12,
	Alignment: 4,
	Encode: func(dst []byte, m MaterialColor) []byte {
		return appendVec3f32(dst, m.Color)
	},
	Decode: func(src []byte) (MaterialColor, error) {
		return MaterialColor{Color: vec3f32At(src, 0)}, nil
	},
})

// AddMaterialColor adds the component to an entity's data.
func AddMaterialColor(data cargo.EntityData, value MaterialColor) cargo.EntityData {
	return MaterialColorComponent.Add(data, value)
}

// AddMaterialColors adds values of the component to the data of a batch
// of entities.
func AddMaterialColors(data cargo.MultiEntityData, values cargo.Broadcast[MaterialColor]) (cargo.MultiEntityData, error) {
	return MaterialColorComponent.AddMany(data, values)
}

// MaterialProperties are the scalar shading properties of an entity's
// surface.
type MaterialProperties struct {
	SpecularReflectance float32
	Roughness           float32
	Metalness           float32
	EmissiveLuminance   float32
}

var MaterialPropertiesComponent = cargo.FactoryNewComponent[MaterialProperties](cargo.Codec[MaterialProperties]{
	Size:      16,
	Alignment: 4,
	Encode: func(dst []byte, m MaterialProperties) []byte {
		dst = cargo.AppendFloat32(dst, m.SpecularReflectance)
		dst = cargo.AppendFloat32(dst, m.Roughness)
		dst = cargo.AppendFloat32(dst, m.Metalness)
		return cargo.AppendFloat32(dst, m.EmissiveLuminance)
	},
	Decode: func(src []byte) (MaterialProperties, error) {
		return MaterialProperties{
			SpecularReflectance: cargo.Float32At(src, 0),
			Roughness:           cargo.Float32At(src, 4),
			Metalness:           cargo.Float32At(src, 8),
			EmissiveLuminance:   cargo.Float32At(src, 12),
		}, nil
	},
})

// AddMaterialProperties adds the component to an entity's data.
func AddMaterialProperties(data cargo.EntityData, value MaterialProperties) cargo.EntityData {
	return MaterialPropertiesComponent.Add(data, value)
}

// AddMaterialPropertiesMulti adds values of the component to the data of
// a batch of entities.
func AddMaterialPropertiesMulti(data cargo.MultiEntityData, values cargo.Broadcast[MaterialProperties]) (cargo.MultiEntityData, error) {
	return MaterialPropertiesComponent.AddMany(data, values)
}
