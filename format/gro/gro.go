/*
Package gro parses GROMACS GRO coordinate files: a title line, an atom
count, one fixed-width record per atom, and a trailing box-vector line.
GRO carries no explicit bonds, so every bond is inferred from geometry.
*/
package gro

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hodakamori/megane"
	"github.com/hodakamori/megane/bond"
	"github.com/hodakamori/megane/element"
)

// elementFromAtomName guesses an atomic number from a GRO atom name such
// as "CA", "OW", or "HW1": strip every non-letter, then try a two-letter symbol
// before falling back to one letter.
func elementFromAtomName(name string) uint8 {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}
	var alpha strings.Builder
	for _, c := range name {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			alpha.WriteRune(c)
		}
	}
	clean := alpha.String()
	if clean == "" {
		return 0
	}
	if len(clean) >= 2 {
		if z := element.SymbolToAtomicNum(element.Capitalize(clean[:2])); z > 0 {
			return z
		}
	}
	return element.SymbolToAtomicNum(strings.ToUpper(clean[:1]))
}

// Parse reads a full GRO text into a ParsedStructure.
func Parse(text string) (*megane.ParsedStructure, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("gro: file too short")
	}

	nAtoms, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, fmt.Errorf("gro: cannot parse atom count: %w", err)
	}
	if len(lines) < nAtoms+3 {
		return nil, fmt.Errorf("gro: file has %d lines but expected at least %d", len(lines), nAtoms+3)
	}

	positions := make([]float32, 0, nAtoms*3)
	elements := make([]uint8, 0, nAtoms)

	for i := 0; i < nAtoms; i++ {
		line := lines[i+2]
		if len(line) < 44 {
			return nil, fmt.Errorf("gro: atom line %d too short", i+1)
		}

		atomName := ""
		if len(line) >= 15 {
			atomName = line[10:15]
		}
		elements = append(elements, elementFromAtomName(atomName))

		x, err := strconv.ParseFloat(strings.TrimSpace(line[20:28]), 32)
		if err != nil {
			return nil, fmt.Errorf("gro: bad x coord at atom %d: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(line[28:36]), 32)
		if err != nil {
			return nil, fmt.Errorf("gro: bad y coord at atom %d: %w", i+1, err)
		}
		z, err := strconv.ParseFloat(strings.TrimSpace(line[36:44]), 32)
		if err != nil {
			return nil, fmt.Errorf("gro: bad z coord at atom %d: %w", i+1, err)
		}
		positions = append(positions, float32(x)*10, float32(y)*10, float32(z)*10)
	}

	boxMatrix := parseBoxLine(strings.TrimSpace(lines[nAtoms+2]))

	inferred := bond.InferCovalent(positions, elements, nAtoms, nil)
	bonds := make([]megane.Bond, 0, len(inferred))
	for _, p := range inferred {
		bonds = append(bonds, megane.Bond{A: p.A, B: p.B})
	}

	return &megane.ParsedStructure{
		NAtoms:     nAtoms,
		Positions:  positions,
		Elements:   elements,
		Bonds:      bonds,
		NFileBonds: 0,
		BoxMatrix:  boxMatrix,
	}, nil
}

func parseBoxLine(line string) []float32 {
	var vals []float32
	for _, f := range strings.Fields(line) {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			continue
		}
		vals = append(vals, float32(v))
	}
	if len(vals) < 3 {
		return nil
	}
	m := make([]float32, 9)
	m[0] = vals[0] * 10
	m[4] = vals[1] * 10
	m[8] = vals[2] * 10
	if len(vals) >= 9 {
		m[1] = vals[3] * 10
		m[2] = vals[4] * 10
		m[3] = vals[5] * 10
		m[5] = vals[6] * 10
		m[6] = vals[7] * 10
		m[7] = vals[8] * 10
	}
	return m
}
