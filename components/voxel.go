package components

import (
	"github.com/TheBitDrifter/cargo"
)

// VoxelSphere is an object made of voxels in a spherical configuration.
// VoxelExtent is the edge length of a single voxel; Radius is measured in
// voxels.
type VoxelSphere struct {
	VoxelExtent float64
	Radius      float64
}

// NewVoxelSphere creates a voxel sphere configuration.
func NewVoxelSphere(voxelExtent, radius float64) VoxelSphere {
	return VoxelSphere{VoxelExtent: voxelExtent, Radius: radius}
}

var VoxelSphereComponent = cargo.FactoryNewComponent[VoxelSphere](cargo.Codec[VoxelSphere]{
	Size:      16,
	Alignment: 8,
	Encode: func(dst []byte, s VoxelSphere) []byte {
		dst = cargo.AppendFloat64(dst, s.VoxelExtent)
		return cargo.AppendFloat64(dst, s.Radius)
	},
	Decode: func(src []byte) (VoxelSphere, error) {
		return VoxelSphere{
			VoxelExtent: cargo.Float64At(src, 0),
			Radius:      cargo.Float64At(src, 8),
		}, nil
	},
})

// AddVoxelSphere adds the component to an entity's data.
func AddVoxelSphere(data cargo.EntityData, value VoxelSphere) cargo.EntityData {
	return VoxelSphereComponent.Add(data, value)
}

// AddVoxelSpheres adds values of the component to the data of a batch of
// entities.
func AddVoxelSpheres(data cargo.MultiEntityData, values cargo.Broadcast[VoxelSphere]) (cargo.MultiEntityData, error) {
	return VoxelSphereComponent.AddMany(data, values)
}

// VoxelBox is an object made of voxels in a box configuration, with the
// extent along each axis measured in voxels.
type VoxelBox struct {
	VoxelExtent float64
	ExtentX     float64
	ExtentY     float64
	ExtentZ     float64
}

// NewVoxelBox creates a voxel box configuration.
func NewVoxelBox(voxelExtent, extentX, extentY, extentZ float64) VoxelBox {
	return VoxelBox{VoxelExtent: voxelExtent, ExtentX: extentX, ExtentY: extentY, ExtentZ: extentZ}
}

var VoxelBoxComponent = cargo.FactoryNewComponent[VoxelBox](cargo.Codec[VoxelBox]{
	Size:      32,
	Alignment: 8,
	Encode: func(dst []byte, b VoxelBox) []byte {
		dst = cargo.AppendFloat64(dst, b.VoxelExtent)
		dst = cargo.AppendFloat64(dst, b.ExtentX)
		dst = cargo.AppendFloat64(dst, b.ExtentY)
		return cargo.AppendFloat64(dst, b.ExtentZ)
	},
	Decode: func(src []byte) (VoxelBox, error) {
		return VoxelBox{
			VoxelExtent: cargo.Float64At(src, 0),
			ExtentX:     cargo.Float64At(src, 8),
			ExtentY:     cargo.Float64At(src, 16),
			ExtentZ:     cargo.Float64At(src, 24),
		}, nil
	},
})

// AddVoxelBox adds the component to an entity's data.
func AddVoxelBox(data cargo.EntityData, value VoxelBox) cargo.EntityData {
	return VoxelBoxComponent.Add(data, value)
}

// AddVoxelBoxes adds values of the component to the data of a batch of
// entities.
func AddVoxelBoxes(data cargo.MultiEntityData, values cargo.Broadcast[VoxelBox]) (cargo.MultiEntityData, error) {
	return VoxelBoxComponent.AddMany(data, values)
}

// VoxelGradientNoisePattern is an object whose voxels are distributed
// according to a gradient noise pattern.
type VoxelGradientNoisePattern struct {
	VoxelExtent    float64
	ExtentX        float64
	ExtentY        float64
	ExtentZ        float64
	NoiseFrequency float64
	Seed           uint64
}

var VoxelGradientNoisePatternComponent = cargo.FactoryNewComponent[VoxelGradientNoisePattern](cargo.Codec[VoxelGradientNoisePattern]{
	Size:      48,
	Alignment: 8,
	Encode: func(dst []byte, p VoxelGradientNoisePattern) []byte {
		dst = cargo.AppendFloat64(dst, p.VoxelExtent)
		dst = cargo.AppendFloat64(dst, p.ExtentX)
		dst = cargo.AppendFloat64(dst, p.ExtentY)
		dst = cargo.AppendFloat64(dst, p.ExtentZ)
		dst = cargo.AppendFloat64(dst, p.NoiseFrequency)
		return cargo.AppendUint64(dst, p.Seed)
	},
	Decode: func(src []byte) (VoxelGradientNoisePattern, error) {
		return VoxelGradientNoisePattern{
			VoxelExtent:    cargo.Float64At(src, 0),
			ExtentX:        cargo.Float64At(src, 8),
			ExtentY:        cargo.Float64At(src, 16),
			ExtentZ:        cargo.Float64At(src, 24),
			NoiseFrequency: cargo.Float64At(src, 32),
			Seed:           cargo.Uint64At(src, 40),
		}, nil
	},
})

// AddVoxelGradientNoisePattern adds the component to an entity's data.
func AddVoxelGradientNoisePattern(data cargo.EntityData, value VoxelGradientNoisePattern) cargo.EntityData {
	return VoxelGradientNoisePatternComponent.Add(data, value)
}

// AddVoxelGradientNoisePatterns adds values of the component to the data
// of a batch of entities.
func AddVoxelGradientNoisePatterns(data cargo.MultiEntityData, values cargo.Broadcast[VoxelGradientNoisePattern]) (cargo.MultiEntityData, error) {
	return VoxelGradientNoisePatternComponent.AddMany(data, values)
}

// DynamicVoxels marks a voxel object as dynamic, letting it respond to
// forces and disconnection. It carries no data.
type DynamicVoxels struct{}

var DynamicVoxelsComponent = cargo.FactoryNewComponent[DynamicVoxels](cargo.Codec[DynamicVoxels]{
	Size:      0,
	Alignment: 1,
	Encode: func(dst []byte, _ DynamicVoxels) []byte {
		return dst
	},
	Decode: func(_ []byte) (DynamicVoxels, error) {
		return DynamicVoxels{}, nil
	},
})

// AddDynamicVoxels adds the marker component to an entity's data.
func AddDynamicVoxels(data cargo.EntityData) cargo.EntityData {
	return DynamicVoxelsComponent.Add(data, DynamicVoxels{})
}

// AddDynamicVoxelsMulti adds the marker component to every entity in a
// batch.
func AddDynamicVoxelsMulti(data cargo.MultiEntityData) (cargo.MultiEntityData, error) {
	return DynamicVoxelsComponent.AddMany(data, cargo.Shared(DynamicVoxels{}))
}
