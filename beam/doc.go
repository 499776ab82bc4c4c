// Package beam renders segmented beam structure diagrams on a drawview
// canvas: the beam axis with its supports, distributed loads, dimension
// chains, and result curves (bending moment, shear force, displacement).
//
// The package holds only geometry and plotting. Internal forces and
// displacements are computed elsewhere; they arrive as sampled curves in
// a Results value, expressed in the same world coordinates the beam is
// drawn in.
package beam
