package components

import (
	"github.com/TheBitDrifter/cargo"
)

// SceneEntityFlags are per-entity toggles the scene layer honors.
type SceneEntityFlags struct {
	Flags uint8
}

// Flag bits for SceneEntityFlags.
const (
	SceneEntityIsDisabled     uint8 = 1 << 0
	SceneEntityCastsNoShadows uint8 = 1 << 1
)

var SceneEntityFlagsComponent = cargo.FactoryNewComponent[SceneEntityFlags](cargo.Codec[SceneEntityFlags]{
	Size:      1,
	Alignment: 1,
	Encode: func(dst []byte, f SceneEntityFlags) []byte {
		return cargo.AppendUint8(dst, f.Flags)
	},
	Decode: func(src []byte) (SceneEntityFlags, error) {
		return SceneEntityFlags{Flags: cargo.Uint8At(src, 0)}, nil
	},
})

// AddSceneEntityFlags adds the component to an entity's data.
func AddSceneEntityFlags(data cargo.EntityData, value SceneEntityFlags) cargo.EntityData {
	return SceneEntityFlagsComponent.Add(data, value)
}

// AddSceneEntityFlagsMulti adds values of the component to the data of a
// batch of entities.
func AddSceneEntityFlagsMulti(data cargo.MultiEntityData, values cargo.Broadcast[SceneEntityFlags]) (cargo.MultiEntityData, error) {
	return SceneEntityFlagsComponent.AddMany(data, values)
}
