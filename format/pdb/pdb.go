/*
Package pdb parses Protein Data Bank coordinate files: MODEL/ENDMDL,
CRYST1, ATOM/HETATM, and CONECT records. It is a fixed-width-column
parser first, falling back to element derivation from the atom name
where the file omits the dedicated element columns.
*/
package pdb

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hodakamori/megane"
	"github.com/hodakamori/megane/bond"
	"github.com/hodakamori/megane/element"
)

type atom struct {
	x, y, z float32
	z8      uint8
}

// parseElement resolves the element for an ATOM/HETATM line: columns 77-78
// (the dedicated element field) first, then the atom name in columns 13-16.
func parseElement(line string) uint8 {
	if len(line) >= 78 {
		elemStr := strings.TrimSpace(line[76:78])
		if elemStr != "" {
			if z := element.SymbolToAtomicNum(element.Capitalize(elemStr)); z > 0 {
				return z
			}
		}
	}

	if len(line) >= 16 {
		name := line[12:16]
		var alpha strings.Builder
		for _, c := range name {
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				alpha.WriteRune(c)
			}
		}
		s := alpha.String()
		if s != "" {
			if len(s) >= 2 {
				if z := element.SymbolToAtomicNum(element.Capitalize(s[:2])); z > 0 {
					return z
				}
			}
			if z := element.SymbolToAtomicNum(strings.ToUpper(s[:1])); z > 0 {
				return z
			}
		}
	}
	return 0
}

func parseAtomLine(line string) (serial int, a atom, ok bool) {
	if len(line) < 54 {
		return 0, atom{}, false
	}
	serialVal, err := strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return 0, atom{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 32)
	if err != nil {
		return 0, atom{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 32)
	if err != nil {
		return 0, atom{}, false
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 32)
	if err != nil {
		return 0, atom{}, false
	}
	return serialVal, atom{x: float32(x), y: float32(y), z: float32(z), z8: parseElement(line)}, true
}

// parseCryst1 converts a CRYST1 record's unit-cell parameters into a
// row-major 3x3 box matrix, or nil if the line is malformed.
func parseCryst1(line string) []float32 {
	if len(line) < 54 {
		return nil
	}
	a, errA := strconv.ParseFloat(strings.TrimSpace(line[6:15]), 32)
	b, errB := strconv.ParseFloat(strings.TrimSpace(line[15:24]), 32)
	c, errC := strconv.ParseFloat(strings.TrimSpace(line[24:33]), 32)
	alpha, errAl := strconv.ParseFloat(strings.TrimSpace(line[33:40]), 32)
	beta, errBe := strconv.ParseFloat(strings.TrimSpace(line[40:47]), 32)
	gamma, errGa := strconv.ParseFloat(strings.TrimSpace(line[47:54]), 32)
	if errA != nil || errB != nil || errC != nil || errAl != nil || errBe != nil || errGa != nil {
		return nil
	}
	if a <= 0 || b <= 0 || c <= 0 {
		return nil
	}
	return cellParamsToMatrix(float32(a), float32(b), float32(c), float32(alpha), float32(beta), float32(gamma))
}

func cellParamsToMatrix(a, b, c, alpha, beta, gamma float32) []float32 {
	toRad := float32(math.Pi / 180.0)
	alphaR := alpha * toRad
	betaR := beta * toRad
	gammaR := gamma * toRad

	cosA := float32(math.Cos(float64(alphaR)))
	cosB := float32(math.Cos(float64(betaR)))
	cosG := float32(math.Cos(float64(gammaR)))
	sinG := float32(math.Sin(float64(gammaR)))

	cx := c * cosB
	cy := c * (cosA - cosB*cosG) / sinG
	czSq := c*c - cx*cx - cy*cy
	if czSq < 0 {
		czSq = 0
	}
	cz := float32(math.Sqrt(float64(czSq)))

	return []float32{
		a, 0, 0,
		b * cosG, b * sinG, 0,
		cx, cy, cz,
	}
}

// parseConectLine extracts up to four bonds from a CONECT record, mapping
// PDB serial numbers to 0-based atom indices via serialToIndex. Targets
// with unknown serials, or columns past the end of the line, are skipped.
func parseConectLine(line string, serialToIndex map[int]int) []megane.Bond {
	var bonds []megane.Bond

	if len(line) < 11 {
		return bonds
	}
	sourceStr := strings.TrimSpace(line[6:11])
	sourceSerial, err := strconv.Atoi(sourceStr)
	if err != nil {
		return bonds
	}
	sourceIdx, ok := serialToIndex[sourceSerial]
	if !ok {
		return bonds
	}

	for col := 11; col < 31; col += 5 {
		if col+5 > len(line) {
			break
		}
		targetStr := strings.TrimSpace(line[col : col+5])
		if targetStr == "" {
			continue
		}
		targetSerial, err := strconv.Atoi(targetStr)
		if err != nil {
			continue
		}
		targetIdx, ok := serialToIndex[targetSerial]
		if !ok {
			continue
		}
		a, b := uint32(sourceIdx), uint32(targetIdx)
		if a > b {
			a, b = b, a
		}
		bonds = append(bonds, megane.Bond{A: a, B: b})
	}
	return bonds
}

func recordName(line string) string {
	if len(line) >= 6 {
		return strings.TrimRight(line[:6], " ")
	}
	return strings.TrimRight(line, " ")
}

// Parse reads a full PDB text into a ParsedStructure. The first MODEL (or,
// absent any MODEL records, the whole file) supplies positions, elements,
// and bonds; any subsequent models of matching atom count become
// additional trajectory frames.
func Parse(text string) (*megane.ParsedStructure, error) {
	var boxMatrix []float32
	serialToIndex := make(map[int]int)
	var conectBonds []megane.Bond

	var allModels [][]atom
	var currentModel []atom
	hasModelRecord := false
	modelCount := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch recordName(line) {
		case "MODEL":
			hasModelRecord = true
			currentModel = nil
		case "ENDMDL":
			allModels = append(allModels, currentModel)
			currentModel = nil
			modelCount++
		case "CRYST1":
			if boxMatrix == nil {
				boxMatrix = parseCryst1(line)
			}
		case "ATOM", "HETATM":
			if serial, a, ok := parseAtomLine(line); ok {
				if !hasModelRecord || modelCount == 0 {
					serialToIndex[serial] = len(currentModel)
				}
				currentModel = append(currentModel, a)
			}
		case "CONECT":
			conectBonds = append(conectBonds, parseConectLine(line, serialToIndex)...)
		}
	}

	if !hasModelRecord && len(currentModel) > 0 {
		allModels = append(allModels, currentModel)
	}

	if len(allModels) == 0 || len(allModels[0]) == 0 {
		return nil, fmt.Errorf("pdb: file contains no ATOM or HETATM records")
	}

	firstModel := allModels[0]
	nAtoms := len(firstModel)

	positions := make([]float32, 0, nAtoms*3)
	elements := make([]uint8, 0, nAtoms)
	for _, a := range firstModel {
		positions = append(positions, a.x, a.y, a.z)
		elements = append(elements, a.z8)
	}

	seen := make(map[megane.Bond]bool, len(conectBonds))
	var uniqueBonds []megane.Bond
	for _, b := range conectBonds {
		if !seen[b] {
			seen[b] = true
			uniqueBonds = append(uniqueBonds, b)
		}
	}
	nFileBonds := len(uniqueBonds)

	existing := make(map[bond.Pair]bool, len(uniqueBonds))
	for _, b := range uniqueBonds {
		existing[bond.Pair{A: b.A, B: b.B}] = true
	}
	for _, p := range bond.InferCovalent(positions, elements, nAtoms, existing) {
		uniqueBonds = append(uniqueBonds, megane.Bond{A: p.A, B: p.B})
	}

	var framePositions [][]float32
	for _, model := range allModels[1:] {
		if len(model) != nAtoms {
			continue
		}
		framePos := make([]float32, 0, nAtoms*3)
		for _, a := range model {
			framePos = append(framePos, a.x, a.y, a.z)
		}
		framePositions = append(framePositions, framePos)
	}

	return &megane.ParsedStructure{
		NAtoms:         nAtoms,
		Positions:      positions,
		Elements:       elements,
		Bonds:          uniqueBonds,
		NFileBonds:     nFileBonds,
		BoxMatrix:      boxMatrix,
		FramePositions: framePositions,
	}, nil
}

// ParseBonds extracts only the CONECT-declared bonds from a PDB text,
// validating that no referenced serial resolves past nAtoms. Used when a
// caller already has positions (e.g. from a paired XTC trajectory) and
// wants the file's authored connectivity without re-parsing coordinates.
func ParseBonds(text string, nAtoms int) ([]megane.Bond, error) {
	serialToIndex := make(map[int]int)
	var conectBonds []megane.Bond

	var currentModel int
	hasModelRecord := false
	modelCount := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch recordName(line) {
		case "MODEL":
			hasModelRecord = true
			currentModel = 0
		case "ENDMDL":
			modelCount++
		case "ATOM", "HETATM":
			if serial, _, ok := parseAtomLine(line); ok {
				if !hasModelRecord || modelCount == 0 {
					serialToIndex[serial] = currentModel
				}
				currentModel++
			}
		case "CONECT":
			conectBonds = append(conectBonds, parseConectLine(line, serialToIndex)...)
		}
	}

	seen := make(map[megane.Bond]bool, len(conectBonds))
	var uniqueBonds []megane.Bond
	for _, b := range conectBonds {
		if int(b.A) >= nAtoms || int(b.B) >= nAtoms {
			return nil, fmt.Errorf("pdb: CONECT bond (%d,%d) out of range for %d atoms", b.A, b.B, nAtoms)
		}
		if !seen[b] {
			seen[b] = true
			uniqueBonds = append(uniqueBonds, b)
		}
	}
	return uniqueBonds, nil
}
