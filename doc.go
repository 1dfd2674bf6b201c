/*
Package megane provides a uniform in-memory representation for molecular
structure and trajectory files produced by chemistry and molecular-dynamics
tools.

There are many different file formats for atomic coordinates, each tied to a
particular tool's history: PDB (Protein Data Bank), GRO (a single GROMACS
frame), XYZ (a simple multi-frame format), MOL (MDL Molfile V2000), TOP
(GROMACS topology, bonds only), and XTC (a compressed GROMACS trajectory).
The megane package gives each of these a parser that returns the same shape,
ParsedStructure or XtcData, so that a downstream viewer or analysis script
does not need to know which format it started from.

Every parser in this module is a pure function: text or bytes in, a
structure out. There is no file I/O, no shared state, and no base "parser"
interface across formats — each format package (format/pdb, format/gro,
format/xyz, format/mol, format/top, xtc) stands on its own, because the
formats have nothing in common beyond the shape of their output.
*/
package megane

// Bond is an ordered, deduplicated atom pair (a,b) with a < b < n_atoms.
type Bond struct {
	A uint32 `json:"a"`
	B uint32 `json:"b"`
}

// ParsedStructure is the common return shape for the coordinate formats:
// PDB, GRO, XYZ, and MOL. A .top file carries no coordinates, so
// format/top.ParseBonds returns a plain []Bond instead.
type ParsedStructure struct {
	NAtoms int `json:"n_atoms"`

	// Positions is a flat row-major sequence [x0,y0,z0, x1,y1,z1, ...] in
	// Angstroms, length 3*NAtoms.
	Positions []float32 `json:"positions"`

	// Elements holds one atomic number per atom (0 means unresolved).
	Elements []uint8 `json:"elements"`

	// Bonds concatenates file-declared bonds (the first NFileBonds of
	// them) followed by bonds inferred from geometry.
	Bonds []Bond `json:"bonds"`

	// NFileBonds is the prefix length of Bonds that came from the file
	// itself, as opposed to distance-based inference.
	NFileBonds int `json:"n_file_bonds"`

	// BondOrders, when non-nil, has the same length as Bonds. A nil
	// BondOrders means every bond should be treated as order 1.
	BondOrders []uint8 `json:"bond_orders,omitempty"`

	// BoxMatrix, when non-nil, holds 9 floats: a row-major 3x3 unit-cell
	// basis in Angstroms.
	BoxMatrix []float32 `json:"box_matrix,omitempty"`

	// FramePositions holds zero or more additional frames beyond the
	// first, each the same length as Positions.
	FramePositions [][]float32 `json:"frame_positions,omitempty"`
}

// XtcData is the trajectory-only return shape produced by xtc.Parse.
type XtcData struct {
	NAtoms  int `json:"n_atoms"`
	NFrames int `json:"n_frames"`

	// TimestepPs is SecondFrameTime - FirstFrameTime, or 1.0 when the
	// trajectory has only one frame.
	TimestepPs float32 `json:"timestep_ps"`

	// BoxMatrix, when non-nil, is the last frame's unit-cell basis.
	BoxMatrix []float32 `json:"box_matrix,omitempty"`

	// FramePositions has length NFrames; each entry has length 3*NAtoms.
	FramePositions [][]float32 `json:"frame_positions"`
}
