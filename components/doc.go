/*
Package components provides the component bindings shipped with cargo: for
each component type, its Go value type, its fixed-layout codec, and add
helpers for single entities and batches.

Every binding follows one mechanical pattern. The value type mirrors the
engine-side component field for field; the codec packs those fields in
declaration order as little-endian fixed-width values with no padding; the
packed component is registered once at package load, which is also when id
collisions across the full set would surface.
*/
package components
