// Package geom provides small generic geometry primitives shared by the
// grid and pathfinding packages: integer points, sizes, and the standard
// 4- and 8-directional neighbor offsets.
//
// What:
//
//   - Point[T]: a 2D coordinate with Manhattan distance, single-step
//     movement toward a target, and compass-direction helpers.
//   - Size[T]: a width×height pair with an Area helper.
//   - Offsets4 / Offsets8: canonical neighbor offset tables for
//     orthogonal and diagonal adjacency.
//
// Why:
//
//   - Puzzle inputs are almost always 2D character grids; every solver
//     needs the same coordinate arithmetic.
//   - A shared comparable Point type lets callers use coordinates
//     directly as search nodes and map keys.
//
// All types are plain values: copy freely, compare with ==.
package geom
