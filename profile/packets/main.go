// Profiling:
// go build ./profile/packets
// go tool pprof -http=":8000" -nodefraction=0.001 ./packets mem.pprof

package main

import (
	"github.com/TheBitDrifter/cargo"
	"github.com/TheBitDrifter/cargo/components"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	iters := 200
	batchSize := uint64(1000)
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, batchSize)
	p.Stop()
}

func run(rounds, iters int, batchSize uint64) {
	for range rounds {
		engine := cargo.Factory.NewEngine()

		positions := make([]mgl64.Vec3, batchSize)
		for i := range positions {
			positions[i] = mgl64.Vec3{float64(i), 0, 0}
		}

		for range iters {
			frames, err := components.ReferenceFramesFromParts(batchSize,
				cargo.PerEntity(positions),
				cargo.Shared(mgl64.QuatIdent()),
			)
			if err != nil {
				panic(err)
			}

			data := cargo.Factory.NewMultiEntityData(batchSize)
			if data, err = components.AddReferenceFrames(data, frames); err != nil {
				panic(err)
			}
			if data, err = components.AddMotions(data, cargo.Shared(components.Motion{
				LinearVelocity: mgl32.Vec3{0, 0, 1},
			})); err != nil {
				panic(err)
			}
			if data, err = components.AddMaterialColors(data, cargo.Shared(components.MaterialColor{
				Color: mgl32.Vec3{1, 1, 1},
			})); err != nil {
				panic(err)
			}

			entities, err := engine.IngestEntities(data)
			if err != nil {
				panic(err)
			}
			for _, e := range entities {
				frame := components.ReferenceFrameComponent.GetFromEntity(e)
				motion := components.MotionComponent.GetFromEntity(e)
				frame.Position[2] += float64(motion.LinearVelocity[2])
			}
		}
	}
}
