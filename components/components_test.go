package components

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/TheBitDrifter/cargo"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func randVec3f32(rng *rand.Rand) mgl32.Vec3 {
	return mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
}

func randVec3f64(rng *rand.Rand) mgl64.Vec3 {
	return mgl64.Vec3{rng.Float64(), rng.Float64(), rng.Float64()}
}

// roundtrip checks decode(encode(x)) == x through the component's packet
// framing.
func roundtrip[T comparable](t *testing.T, comp cargo.PackedComponent[T], value T) {
	t.Helper()
	data := cargo.Factory.NewEntityData()
	data = comp.Add(data, value)
	got, err := comp.Read(data)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != value {
		t.Errorf("roundtrip = %+v, want %+v", got, value)
	}
}

func TestComponentRoundtrips(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("ReferenceFrame", func(t *testing.T) {
		roundtrip(t, ReferenceFrameComponent, ReferenceFrame{
			Position:    randVec3f64(rng),
			Orientation: mgl64.Quat{W: rng.Float64(), V: randVec3f64(rng)},
		})
	})
	t.Run("Motion", func(t *testing.T) {
		roundtrip(t, MotionComponent, Motion{
			LinearVelocity: randVec3f32(rng),
			AngularVelocity: AngularVelocity{
				AxisOfRotation: randVec3f32(rng),
				AngularSpeed:   rng.Float32(),
			},
		})
	})
	t.Run("OmnidirectionalEmission", func(t *testing.T) {
		roundtrip(t, OmnidirectionalEmissionComponent, OmnidirectionalEmission{
			LuminousIntensity: randVec3f32(rng),
			SourceExtent:      rng.Float32(),
		})
	})
	t.Run("ShadowableOmnidirectionalEmission", func(t *testing.T) {
		roundtrip(t, ShadowableOmnidirectionalEmissionComponent, ShadowableOmnidirectionalEmission{
			LuminousIntensity: randVec3f32(rng),
			SourceExtent:      rng.Float32(),
		})
	})
	t.Run("UnidirectionalEmission", func(t *testing.T) {
		roundtrip(t, UnidirectionalEmissionComponent, UnidirectionalEmission{
			PerpendicularIlluminance: randVec3f32(rng),
			Direction:                randVec3f32(rng),
			AngularSourceExtent:      rng.Float32(),
		})
	})
	t.Run("MaterialColor", func(t *testing.T) {
		roundtrip(t, MaterialColorComponent, MaterialColor{Color: randVec3f32(rng)})
	})
	t.Run("MaterialProperties", func(t *testing.T) {
		roundtrip(t, MaterialPropertiesComponent, MaterialProperties{
			SpecularReflectance: rng.Float32(),
			Roughness:           rng.Float32(),
			Metalness:           rng.Float32(),
			EmissiveLuminance:   rng.Float32(),
		})
	})
	t.Run("UniformRigidBody", func(t *testing.T) {
		roundtrip(t, UniformRigidBodyComponent, UniformRigidBody{MassDensity: rng.Float64()})
	})
	t.Run("Collidable", func(t *testing.T) {
		roundtrip(t, CollidableComponent, Collidable{Kind: CollidableStatic})
	})
	t.Run("VoxelSphere", func(t *testing.T) {
		roundtrip(t, VoxelSphereComponent, NewVoxelSphere(0.25, rng.Float64()*100))
	})
	t.Run("VoxelBox", func(t *testing.T) {
		roundtrip(t, VoxelBoxComponent, NewVoxelBox(0.25, 4, 8, 12))
	})
	t.Run("VoxelGradientNoisePattern", func(t *testing.T) {
		roundtrip(t, VoxelGradientNoisePatternComponent, VoxelGradientNoisePattern{
			VoxelExtent:    0.25,
			ExtentX:        16,
			ExtentY:        16,
			ExtentZ:        16,
			NoiseFrequency: rng.Float64(),
			Seed:           rng.Uint64(),
		})
	})
	t.Run("DynamicVoxels", func(t *testing.T) {
		roundtrip(t, DynamicVoxelsComponent, DynamicVoxels{})
	})
	t.Run("SceneEntityFlags", func(t *testing.T) {
		roundtrip(t, SceneEntityFlagsComponent, SceneEntityFlags{
			Flags: SceneEntityIsDisabled | SceneEntityCastsNoShadows,
		})
	})
}

// reencode checks the payload-level inverse property: any byte string of
// the right length that decodes successfully must re-encode to the
// identical bytes.
func reencode[T any](t *testing.T, comp cargo.PackedComponent[T], codec cargo.Codec[T], rng *rand.Rand) {
	t.Helper()
	for trial := 0; trial < 64; trial++ {
		payload := make([]byte, codec.Size)
		rng.Read(payload)
		value, err := codec.Decode(payload)
		if err != nil {
			continue
		}
		encoded := codec.Encode(nil, value)
		if !bytes.Equal(encoded, payload) {
			t.Fatalf(
				"%s: arbitrary payload %x decoded to %+v but re-encoded to %x",
				comp.TypeName(), payload, value, encoded,
			)
		}
	}
}

func TestArbitraryPayloadReencoding(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	reencode(t, MotionComponent, MotionComponent.Codec(), rng)
	reencode(t, MaterialPropertiesComponent, MaterialPropertiesComponent.Codec(), rng)
	reencode(t, VoxelBoxComponent, VoxelBoxComponent.Codec(), rng)
	reencode(t, CollidableComponent, CollidableComponent.Codec(), rng)
	reencode(t, SceneEntityFlagsComponent, SceneEntityFlagsComponent.Codec(), rng)
}

func TestCollidableInvalidDiscriminant(t *testing.T) {
	_, err := CollidableComponent.Codec().Decode([]byte{9})
	if err == nil {
		t.Fatal("Decode(9) succeeded, want invalid discriminant error")
	}
}

func TestBatchSpawnRoundtrip(t *testing.T) {
	engine := cargo.Factory.NewEngine()

	frames, err := ReferenceFramesFromParts(3,
		cargo.PerEntity([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}),
		cargo.Shared(mgl64.QuatIdent()),
	)
	if err != nil {
		t.Fatalf("ReferenceFramesFromParts() error: %v", err)
	}

	data := cargo.Factory.NewMultiEntityData(3)
	data, err = AddReferenceFrames(data, frames)
	if err != nil {
		t.Fatalf("AddReferenceFrames() error: %v", err)
	}
	data, err = AddMaterialColors(data, cargo.Shared(MaterialColor{Color: mgl32.Vec3{1, 0, 0}}))
	if err != nil {
		t.Fatalf("AddMaterialColors() error: %v", err)
	}
	data, err = AddDynamicVoxelsMulti(data)
	if err != nil {
		t.Fatalf("AddDynamicVoxelsMulti() error: %v", err)
	}

	entities, err := engine.IngestEntities(data)
	if err != nil {
		t.Fatalf("IngestEntities() error: %v", err)
	}
	for i, entity := range entities {
		frame := ReferenceFrameComponent.GetFromEntity(entity)
		if frame.Position[0] != float64(i) {
			t.Errorf("entity %d position x = %v, want %d", i, frame.Position[0], i)
		}
		color := MaterialColorComponent.GetFromEntity(entity)
		if color.Color != (mgl32.Vec3{1, 0, 0}) {
			t.Errorf("entity %d color = %v", i, color.Color)
		}
		if ok, _ := DynamicVoxelsComponent.GetFromEntitySafe(entity); !ok {
			t.Errorf("entity %d missing dynamic voxels marker", i)
		}
	}
}

func TestFromPartsMismatch(t *testing.T) {
	_, err := MotionsFromParts(2,
		cargo.PerEntity([]mgl32.Vec3{{1, 0, 0}}),
		cargo.Shared(AngularVelocity{}),
	)
	var mismatch cargo.CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("MotionsFromParts() error = %v, want CountMismatchError", err)
	}
	if mismatch.Supplied != 1 || mismatch.Expected != 2 {
		t.Errorf("mismatch = (%d, %d), want (1, 2)", mismatch.Supplied, mismatch.Expected)
	}
}
