/*
Package xyz parses the plain XYZ structure format: one or more repeating
blocks of (atom count, comment, "element x y z" lines), coordinates
already in Angstrom. Only the first block contributes elements and bonds;
later blocks of matching atom count become additional trajectory frames.
*/
package xyz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hodakamori/megane"
	"github.com/hodakamori/megane/bond"
	"github.com/hodakamori/megane/element"
)

// Parse reads a full (possibly multi-frame) XYZ text into a
// ParsedStructure.
func Parse(text string) (*megane.ParsedStructure, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("xyz: file too short")
	}

	offset := 0
	var firstPositions []float32
	var firstElements []uint8
	firstNAtoms := 0
	haveFirst := false
	var framePositions [][]float32

	for offset < len(lines) {
		countLine := strings.TrimSpace(lines[offset])
		if countLine == "" {
			offset++
			continue
		}
		nAtoms, err := strconv.Atoi(countLine)
		if err != nil {
			return nil, fmt.Errorf("xyz: cannot parse atom count at line %d: %w", offset+1, err)
		}
		if offset+2+nAtoms > len(lines) {
			break // incomplete trailing frame
		}
		offset += 2 // skip count + comment

		positions := make([]float32, 0, nAtoms*3)
		elements := make([]uint8, 0, nAtoms)

		for i := 0; i < nAtoms; i++ {
			line := lines[offset+i]
			parts := strings.Fields(line)
			if len(parts) < 4 {
				return nil, fmt.Errorf("xyz: atom line %d too short", offset+i+1)
			}
			sym := element.Capitalize(parts[0])
			elements = append(elements, element.SymbolToAtomicNum(sym))

			x, err := strconv.ParseFloat(parts[1], 32)
			if err != nil {
				return nil, fmt.Errorf("xyz: bad x coord at line %d: %w", offset+i+1, err)
			}
			y, err := strconv.ParseFloat(parts[2], 32)
			if err != nil {
				return nil, fmt.Errorf("xyz: bad y coord at line %d: %w", offset+i+1, err)
			}
			z, err := strconv.ParseFloat(parts[3], 32)
			if err != nil {
				return nil, fmt.Errorf("xyz: bad z coord at line %d: %w", offset+i+1, err)
			}
			positions = append(positions, float32(x), float32(y), float32(z))
		}
		offset += nAtoms

		if !haveFirst {
			firstNAtoms = nAtoms
			firstPositions = positions
			firstElements = elements
			haveFirst = true
		} else if nAtoms == firstNAtoms {
			framePositions = append(framePositions, positions)
		}
	}

	if !haveFirst {
		return nil, fmt.Errorf("xyz: file contains no atoms")
	}

	inferred := bond.InferCovalent(firstPositions, firstElements, firstNAtoms, nil)
	bonds := make([]megane.Bond, 0, len(inferred))
	for _, p := range inferred {
		bonds = append(bonds, megane.Bond{A: p.A, B: p.B})
	}

	return &megane.ParsedStructure{
		NAtoms:         firstNAtoms,
		Positions:      firstPositions,
		Elements:       firstElements,
		Bonds:          bonds,
		FramePositions: framePositions,
	}, nil
}
