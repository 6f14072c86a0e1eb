package components

import (
	"github.com/TheBitDrifter/cargo"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// ReferenceFrame is an entity's position and orientation in world space.
type ReferenceFrame struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// NewReferenceFrame creates a reference frame at a position with the
// identity orientation.
func NewReferenceFrame(position mgl64.Vec3) ReferenceFrame {
	return ReferenceFrame{Position: position, Orientation: mgl64.QuatIdent()}
}

var ReferenceFrameComponent = cargo.FactoryNewComponent[ReferenceFrame](cargo.Codec[ReferenceFrame]{
	Size:      56,
	Alignment: 8,
	Encode: func(dst []byte, f ReferenceFrame) []byte {
		dst = appendVec3f64(dst, f.Position)
		return appendQuatf64(dst, f.Orientation)
	},
	Decode: func(src []byte) (ReferenceFrame, error) {
		return ReferenceFrame{
			Position:    vec3f64At(src, 0),
			Orientation: quatf64At(src, 24),
		}, nil
	},
})

// AddReferenceFrame adds the component to an entity's data. An entity
// should never hold more than one value of the same component type.
func AddReferenceFrame(data cargo.EntityData, value ReferenceFrame) cargo.EntityData {
	return ReferenceFrameComponent.Add(data, value)
}

// AddReferenceFrames adds values of the component to the data of a batch
// of entities sharing one archetype.
func AddReferenceFrames(data cargo.MultiEntityData, values cargo.Broadcast[ReferenceFrame]) (cargo.MultiEntityData, error) {
	return ReferenceFrameComponent.AddMany(data, values)
}

// ReferenceFramesFromParts combines independently broadcast positions and
// orientations into reference frames for a batch. Arguments are resolved
// against the batch count in parameter order; the first mismatch is
// reported.
func ReferenceFramesFromParts(
	count uint64,
	positions cargo.Broadcast[mgl64.Vec3],
	orientations cargo.Broadcast[mgl64.Quat],
) (cargo.Broadcast[ReferenceFrame], error) {
	return cargo.Zip2(count, positions, orientations,
		func(p mgl64.Vec3, o mgl64.Quat) ReferenceFrame {
			return ReferenceFrame{Position: p, Orientation: o}
		},
	)
}

// AngularVelocity is a rotation axis and an angular speed in radians per
// second.
type AngularVelocity struct {
	AxisOfRotation mgl32.Vec3
	AngularSpeed   float32
}

// Motion is a linear and angular velocity.
type Motion struct {
	LinearVelocity  mgl32.Vec3
	AngularVelocity AngularVelocity
}

var MotionComponent = cargo.FactoryNewComponent[Motion](cargo.Codec[Motion]{
	Size:      28,
	Alignment: 4,
	Encode: func(dst []byte, m Motion) []byte {
		dst = appendVec3f32(dst, m.LinearVelocity)
		dst = appendVec3f32(dst, m.AngularVelocity.AxisOfRotation)
		return cargo.AppendFloat32(dst, m.AngularVelocity.AngularSpeed)
	},
	Decode: func(src []byte) (Motion, error) {
		return Motion{
			LinearVelocity: vec3f32At(src, 0),
			AngularVelocity: AngularVelocity{
				AxisOfRotation: vec3f32At(src, 12),
				AngularSpeed:   cargo.Float32At(src, 24),
			},
		}, nil
	},
})

// AddMotion adds the component to an entity's data.
func AddMotion(data cargo.EntityData, value Motion) cargo.EntityData {
	return MotionComponent.Add(data, value)
}

// AddMotions adds values of the component to the data of a batch of
// entities.
func AddMotions(data cargo.MultiEntityData, values cargo.Broadcast[Motion]) (cargo.MultiEntityData, error) {
	return MotionComponent.AddMany(data, values)
}

// MotionsFromParts combines independently broadcast linear and angular
// velocities into motion values for a batch.
func MotionsFromParts(
	count uint64,
	linear cargo.Broadcast[mgl32.Vec3],
	angular cargo.Broadcast[AngularVelocity],
) (cargo.Broadcast[Motion], error) {
	return cargo.Zip2(count, linear, angular,
		func(l mgl32.Vec3, a AngularVelocity) Motion {
			return Motion{LinearVelocity: l, AngularVelocity: a}
		},
	)
}
