/*
Package spatial implements a uniform grid (cell list) over a set of 3D
points, so that every pair of points closer than a cutoff can be enumerated
in roughly O(n) time instead of the O(n^2) a naive all-pairs scan would
need.

This is the only spatial index in megane; both bond-inference modes
(package bond) build a CellList over the same positions with a different
cell size and a different acceptance predicate.
*/
package spatial

import "math"

// halfShellOffsets are the 13 neighbor-cell offsets that, together with the
// intra-cell pairs, visit every unordered pair of cells exactly once. The
// offsets must be reproduced verbatim: any other half-shell convention
// (e.g. walking -x instead of +x) is equally correct but changes the order
// in which pairs are emitted.
var halfShellOffsets = [13][3]int{
	{0, 0, 1},
	{0, 1, -1}, {0, 1, 0}, {0, 1, 1},
	{1, -1, -1}, {1, -1, 0}, {1, -1, 1},
	{1, 0, -1}, {1, 0, 0}, {1, 0, 1},
	{1, 1, -1}, {1, 1, 0}, {1, 1, 1},
}

// CellList buckets atom indices into a uniform grid over their bounding box.
type CellList struct {
	positions []float32
	nAtoms    int
	cellSize  float32
	minX, minY, minZ float32
	nx, ny, nz       int
	cells            [][]int
}

// New builds a CellList over positions (flat [x0,y0,z0,x1,...], length
// 3*nAtoms) using the given cell size. nAtoms == 0 yields an empty,
// usable CellList whose ForEachPair never calls its callback.
func New(positions []float32, nAtoms int, cellSize float32) *CellList {
	cl := &CellList{positions: positions, nAtoms: nAtoms, cellSize: cellSize}
	if nAtoms == 0 {
		return cl
	}

	minX, minY, minZ := positions[0], positions[1], positions[2]
	maxX, maxY, maxZ := minX, minY, minZ
	for i := 0; i < nAtoms; i++ {
		x, y, z := positions[i*3], positions[i*3+1], positions[i*3+2]
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if z < minZ {
			minZ = z
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
		if z > maxZ {
			maxZ = z
		}
	}

	nx := gridDim(maxX-minX, cellSize)
	ny := gridDim(maxY-minY, cellSize)
	nz := gridDim(maxZ-minZ, cellSize)

	cl.minX, cl.minY, cl.minZ = minX, minY, minZ
	cl.nx, cl.ny, cl.nz = nx, ny, nz
	cl.cells = make([][]int, nx*ny*nz)

	for i := 0; i < nAtoms; i++ {
		cx := clampCell(int((positions[i*3]-minX)/cellSize), nx)
		cy := clampCell(int((positions[i*3+1]-minY)/cellSize), ny)
		cz := clampCell(int((positions[i*3+2]-minZ)/cellSize), nz)
		idx := cx*ny*nz + cy*nz + cz
		cl.cells[idx] = append(cl.cells[idx], i)
	}

	return cl
}

func gridDim(extent, cellSize float32) int {
	n := int(math.Ceil(float64(extent / cellSize)))
	if n < 1 {
		n = 1
	}
	return n
}

func clampCell(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

// ForEachPair visits every candidate pair that shares a cell or falls
// within the half-shell of neighboring cells exactly once, in deterministic
// grid-traversal order, calling accept(a, b) with a < b. accept decides
// whether a given pair should be kept; ForEachPair itself applies no
// distance test.
func (cl *CellList) ForEachPair(accept func(a, b int)) {
	if cl.nAtoms == 0 {
		return
	}
	nx, ny, nz := cl.nx, cl.ny, cl.nz
	ordered := func(i, j int) {
		if i < j {
			accept(i, j)
		} else {
			accept(j, i)
		}
	}
	for cx := 0; cx < nx; cx++ {
		for cy := 0; cy < ny; cy++ {
			for cz := 0; cz < nz; cz++ {
				cell := cl.cells[cx*ny*nz+cy*nz+cz]
				for ii := 0; ii < len(cell); ii++ {
					i := cell[ii]
					for jj := ii + 1; jj < len(cell); jj++ {
						ordered(i, cell[jj])
					}
					for _, off := range halfShellOffsets {
						ncx, ncy, ncz := cx+off[0], cy+off[1], cz+off[2]
						if ncx < 0 || ncy < 0 || ncz < 0 || ncx >= nx || ncy >= ny || ncz >= nz {
							continue
						}
						neighbor := cl.cells[ncx*ny*nz+ncy*nz+ncz]
						for _, j := range neighbor {
							ordered(i, j)
						}
					}
				}
			}
		}
	}
}
