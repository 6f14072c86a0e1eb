package components

import (
	"github.com/TheBitDrifter/cargo"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Fixed-size codecs for the math primitives component payloads are built
// from. Vectors pack their elements in order; quaternions pack as
// (x, y, z, w).

func appendVec3f32(dst []byte, v mgl32.Vec3) []byte {
	dst = cargo.AppendFloat32(dst, v[0])
	dst = cargo.AppendFloat32(dst, v[1])
	return cargo.AppendFloat32(dst, v[2])
}

func vec3f32At(src []byte, offset int) mgl32.Vec3 {
	return mgl32.Vec3{
		cargo.Float32At(src, offset),
		cargo.Float32At(src, offset+4),
		cargo.Float32At(src, offset+8),
	}
}

func appendVec3f64(dst []byte, v mgl64.Vec3) []byte {
	dst = cargo.AppendFloat64(dst, v[0])
	dst = cargo.AppendFloat64(dst, v[1])
	return cargo.AppendFloat64(dst, v[2])
}

func vec3f64At(src []byte, offset int) mgl64.Vec3 {
	return mgl64.Vec3{
		cargo.Float64At(src, offset),
		cargo.Float64At(src, offset+8),
		cargo.Float64At(src, offset+16),
	}
}

func appendQuatf64(dst []byte, q mgl64.Quat) []byte {
	dst = cargo.AppendFloat64(dst, q.V[0])
	dst = cargo.AppendFloat64(dst, q.V[1])
	dst = cargo.AppendFloat64(dst, q.V[2])
	return cargo.AppendFloat64(dst, q.W)
}

func quatf64At(src []byte, offset int) mgl64.Quat {
	return mgl64.Quat{
		V: vec3f64At(src, offset),
		W: cargo.Float64At(src, offset+24),
	}
}
