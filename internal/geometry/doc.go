// Package geometry maps wave strain onto base shapes.
//
// Base shapes ([UnitRing], [Arms]) are immutable: every mapping returns
// freshly allocated coordinates and leaves its inputs untouched. All
// transforms are first-order in the strain, valid in the long-wavelength
// limit where the same strain acts on every point.
package geometry
