package components

import (
	"github.com/TheBitDrifter/cargo"
	"github.com/go-gl/mathgl/mgl32"
)

// OmnidirectionalEmission is light emitted uniformly in all directions
// from a point-like source. Luminous intensity is in candela, source
// extent in meters.
type OmnidirectionalEmission struct {
	LuminousIntensity mgl32.Vec3
	SourceExtent      float32
}

var OmnidirectionalEmissionComponent = cargo.FactoryNewComponent[OmnidirectionalEmission](cargo.Codec[OmnidirectionalEmission]{
	Size:      16,
	Alignment: 4,
	Encode: func(dst []byte, e OmnidirectionalEmission) []byte {
		dst = appendVec3f32(dst, e.LuminousIntensity)
		return cargo.AppendFloat32(dst, e.SourceExtent)
	},
	Decode: func(src []byte) (OmnidirectionalEmission, error) {
		return OmnidirectionalEmission{
			LuminousIntensity: vec3f32At(src, 0),
			SourceExtent:      cargo.Float32At(src, 12),
		}, nil
	},
})

// AddOmnidirectionalEmission adds the component to an entity's data.
func AddOmnidirectionalEmission(data cargo.EntityData, value OmnidirectionalEmission) cargo.EntityData {
	return OmnidirectionalEmissionComponent.Add(data, value)
}

// AddOmnidirectionalEmissions adds values of the component to the data
// of a batch of entities.
func AddOmnidirectionalEmissions(data cargo.MultiEntityData, values cargo.Broadcast[OmnidirectionalEmission]) (cargo.MultiEntityData, error) {
	return OmnidirectionalEmissionComponent.AddMany(data, values)
}

// ShadowableOmnidirectionalEmission is an omnidirectional emission whose
// source casts shadows.
type ShadowableOmnidirectionalEmission struct {
	LuminousIntensity mgl32.Vec3
	SourceExtent      float32
}

var ShadowableOmnidirectionalEmissionComponent = cargo.FactoryNewComponent[ShadowableOmnidirectionalEmission](cargo.Codec[ShadowableOmnidirectionalEmission]{
	Size:      16,
	Alignment: 4,
	Encode: func(dst []byte, e ShadowableOmnidirectionalEmission) []byte {
		dst = appendVec3f32(dst, e.LuminousIntensity)
		return cargo.AppendFloat32(dst, e.SourceExtent)
	},
	Decode: func(src []byte) (ShadowableOmnidirectionalEmission, error) {
		return ShadowableOmnidirectionalEmission{
			LuminousIntensity: vec3f32At(src, 0),
			SourceExtent:      cargo.Float32At(src, 12),
		}, nil
	},
})

// AddShadowableOmnidirectionalEmission adds the component to an entity's
// data.
func AddShadowableOmnidirectionalEmission(data cargo.EntityData, value ShadowableOmnidirectionalEmission) cargo.EntityData {
	return ShadowableOmnidirectionalEmissionComponent.Add(data, value)
}

// AddShadowableOmnidirectionalEmissions adds values of the component to
// the data of a batch of entities.
func AddShadowableOmnidirectionalEmissions(data cargo.MultiEntityData, values cargo.Broadcast[ShadowableOmnidirectionalEmission]) (cargo.MultiEntityData, error) {
	return ShadowableOmnidirectionalEmissionComponent.AddMany(data, values)
}

// UnidirectionalEmission is parallel light arriving from a fixed
// direction. Perpendicular illuminance is in lux, the angular source
// extent in degrees.
type UnidirectionalEmission struct {
	PerpendicularIlluminance mgl32.Vec3
	Direction                mgl32.Vec3
	AngularSourceExtent      float32
}

var UnidirectionalEmissionComponent = cargo.FactoryNewComponent[UnidirectionalEmission](cargo.Codec[UnidirectionalEmission]{
	Size:      28,
	Alignment: 4,
	Encode: func(dst []byte, e UnidirectionalEmission) []byte {
		dst = appendVec3f32(dst, e.PerpendicularIlluminance)
		dst = appendVec3f32(dst, e.Direction)
		return cargo.AppendFloat32(dst, e.AngularSourceExtent)
	},
	Decode: func(src []byte) (UnidirectionalEmission, error) {
		return UnidirectionalEmission{
			PerpendicularIlluminance: vec3f32At(src, 0),
			Direction:                vec3f32At(src, 12),
			AngularSourceExtent:      cargo.Float32At(src, 24),
		}, nil
	},
})

// AddUnidirectionalEmission adds the component to an entity's data.
func AddUnidirectionalEmission(data cargo.EntityData, value UnidirectionalEmission) cargo.EntityData {
	return UnidirectionalEmissionComponent.Add(data, value)
}

// AddUnidirectionalEmissions adds values of the component to the data of
// a batch of entities.
func AddUnidirectionalEmissions(data cargo.MultiEntityData, values cargo.Broadcast[UnidirectionalEmission]) (cargo.MultiEntityData, error) {
	return UnidirectionalEmissionComponent.AddMany(data, values)
}
