/*
Package bond infers covalent bonds between atoms from their positions
alone, for the formats (GRO, XYZ, and PDB models lacking CONECT coverage)
that don't declare bonds explicitly.

Both inference modes are a thin predicate layered over a spatial.CellList:
covalent mode uses covalent radii and excludes pairs a caller has already
declared as bonds; VdW mode uses Van-der-Waals radii and excludes nothing.
*/
package bond

import (
	"github.com/hodakamori/megane"
	"github.com/hodakamori/megane/element"
	"github.com/hodakamori/megane/spatial"
)

// bondTolerance and minBondDist must be reproduced exactly: downstream
// bond counts depend on them bit-for-bit matching the reference tool.
const (
	bondTolerance = 1.3
	minBondDist   = 0.4
	vdwBondFactor = 0.6

	covalentCellSize = 2.5
	vdwCellSize      = 2.0
)

// Pair is an ordered atom pair (a,b) with a < b. It is an alias of
// megane.Bond so inferred bonds need no conversion at the call site.
type Pair = megane.Bond

// InferCovalent finds bonds using covalent-radius thresholds: a pair (i,j)
// bonds when MIN_BOND_DIST^2 < d^2 <= (BOND_TOLERANCE*(r_i+r_j))^2. A pair
// already present in existing is never re-added.
func InferCovalent(positions []float32, elements []uint8, nAtoms int, existing map[Pair]bool) []Pair {
	if nAtoms == 0 {
		return nil
	}
	cl := spatial.New(positions, nAtoms, covalentCellSize)

	var out []Pair
	cl.ForEachPair(func(i, j int) {
		pair := Pair{uint32(i), uint32(j)}
		if existing[pair] {
			return
		}
		ri := element.CovalentRadius(elements[i])
		rj := element.CovalentRadius(elements[j])
		threshold := bondTolerance * (ri + rj)
		if accepted(positions, i, j, threshold) {
			out = append(out, pair)
		}
	})
	return out
}

// InferVdW finds bonds using Van-der-Waals-radius thresholds: a pair (i,j)
// bonds when MIN_BOND_DIST^2 < d^2 <= (VDW_BOND_FACTOR*(vdw_i+vdw_j))^2.
// Unlike InferCovalent, no existing-bond set is consulted.
func InferVdW(positions []float32, elements []uint8, nAtoms int) []Pair {
	if nAtoms == 0 {
		return nil
	}
	cl := spatial.New(positions, nAtoms, vdwCellSize)

	var out []Pair
	cl.ForEachPair(func(i, j int) {
		ri := element.VdwRadius(elements[i])
		rj := element.VdwRadius(elements[j])
		threshold := vdwBondFactor * (ri + rj)
		if accepted(positions, i, j, threshold) {
			out = append(out, Pair{uint32(i), uint32(j)})
		}
	})
	return out
}

func accepted(positions []float32, i, j int, threshold float32) bool {
	dx := positions[j*3] - positions[i*3]
	dy := positions[j*3+1] - positions[i*3+1]
	dz := positions[j*3+2] - positions[i*3+2]
	distSq := dx*dx + dy*dy + dz*dz
	return distSq > minBondDist*minBondDist && distSq <= threshold*threshold
}
