// Package bake drives a full bake of world transforms over a frame range.
//
// The host side — which objects exist, how their world matrices are
// evaluated, how keyed values are written back — stays behind the [Source]
// interface. Bake samples every frame in the configured range, decomposes
// the matrices into translate/rotate/scale (in parallel, since frames are
// independent), and optionally runs the Euler continuity filter once over
// the assembled rotation sequence before returning the per-frame curves.
package bake
