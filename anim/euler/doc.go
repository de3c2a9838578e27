// Package euler provides Euler-angle rotation orders and a continuity
// filter ("Euler filter") for time-ordered rotation sequences.
//
// Euler triples are multi-valued: the same 3D orientation has several
// numerically different representations (2*pi wraps per axis plus the flip
// identity of the chosen axis order). Sampling an animated transform per
// frame therefore often yields sequences with large spurious jumps even
// though the underlying orientation moves smoothly. [Filter] replaces each
// triple with an equivalent one chosen for minimal frame-to-frame change.
//
// Angles cross the package boundary in degrees; the filtering primitives
// [Flip], [Unwind1D], [Unwind3D] and [Resolve] operate in radians.
package euler
