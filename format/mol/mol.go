/*
Package mol parses MDL Molfile V2000 structures: a three-line header, a
counts line, a fixed-width atom block, and a fixed-width bond block
(falling back to whitespace splitting for non-conforming lines). Unlike
the other formats, MOL bonds and their orders come from the file itself
and are never inferred.
*/
package mol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hodakamori/megane"
	"github.com/hodakamori/megane/element"
)

// parseMolInt reads an integer from the fixed-width field line[start:end],
// clamping end to the line length.
func parseMolInt(line string, start, end int) (int, error) {
	if end > len(line) {
		end = len(line)
	}
	if start >= end {
		return 0, fmt.Errorf("field %d..%d out of range", start, end)
	}
	v, err := strconv.Atoi(strings.TrimSpace(line[start:end]))
	if err != nil {
		return 0, fmt.Errorf("cannot parse integer from %q", line[start:end])
	}
	return v, nil
}

// Parse reads a full MOL (V2000) text into a ParsedStructure, including
// file-declared bond orders.
func Parse(text string) (*megane.ParsedStructure, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 5 {
		return nil, fmt.Errorf("mol: file too short")
	}

	countsLine := lines[3]
	nAtoms, err := parseMolInt(countsLine, 0, 3)
	if err != nil {
		return nil, fmt.Errorf("mol: %w", err)
	}
	nBonds, err := parseMolInt(countsLine, 3, 6)
	if err != nil {
		return nil, fmt.Errorf("mol: %w", err)
	}
	if nAtoms == 0 {
		return nil, fmt.Errorf("mol: file has zero atoms")
	}

	atomStart := 4
	bondStart := atomStart + nAtoms
	if len(lines) < bondStart+nBonds {
		return nil, fmt.Errorf("mol: file too short: expected %d atom + %d bond lines", nAtoms, nBonds)
	}

	positions := make([]float32, 0, nAtoms*3)
	elements := make([]uint8, 0, nAtoms)

	for i := 0; i < nAtoms; i++ {
		line := lines[atomStart+i]
		if len(line) < 34 {
			parts := strings.Fields(line)
			if len(parts) < 4 {
				return nil, fmt.Errorf("mol: atom line %d too short", i+1)
			}
			x, err := strconv.ParseFloat(parts[0], 32)
			if err != nil {
				return nil, fmt.Errorf("mol: bad x at atom %d: %w", i+1, err)
			}
			y, err := strconv.ParseFloat(parts[1], 32)
			if err != nil {
				return nil, fmt.Errorf("mol: bad y at atom %d: %w", i+1, err)
			}
			z, err := strconv.ParseFloat(parts[2], 32)
			if err != nil {
				return nil, fmt.Errorf("mol: bad z at atom %d: %w", i+1, err)
			}
			sym := element.Capitalize(parts[3])
			positions = append(positions, float32(x), float32(y), float32(z))
			elements = append(elements, element.SymbolToAtomicNum(sym))
			continue
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(line[0:10]), 32)
		if err != nil {
			return nil, fmt.Errorf("mol: bad x at atom %d: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(line[10:20]), 32)
		if err != nil {
			return nil, fmt.Errorf("mol: bad y at atom %d: %w", i+1, err)
		}
		z, err := strconv.ParseFloat(strings.TrimSpace(line[20:30]), 32)
		if err != nil {
			return nil, fmt.Errorf("mol: bad z at atom %d: %w", i+1, err)
		}
		sym := element.Capitalize(strings.TrimSpace(line[31:34]))
		positions = append(positions, float32(x), float32(y), float32(z))
		elements = append(elements, element.SymbolToAtomicNum(sym))
	}

	bonds := make([]megane.Bond, 0, nBonds)
	bondOrders := make([]uint8, 0, nBonds)

	for i := 0; i < nBonds; i++ {
		line := lines[bondStart+i]
		if len(line) < 9 {
			parts := strings.Fields(line)
			if len(parts) < 3 {
				return nil, fmt.Errorf("mol: bond line %d too short", i+1)
			}
			a, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("mol: bad bond atom1 at bond %d: %w", i+1, err)
			}
			b, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("mol: bad bond atom2 at bond %d: %w", i+1, err)
			}
			a--
			b--
			order := 1
			if o, err := strconv.Atoi(parts[2]); err == nil {
				order = o
			}
			bonds = append(bonds, orderedBond(a, b))
			bondOrders = append(bondOrders, uint8(order))
			continue
		}

		a, err := parseMolInt(line, 0, 3)
		if err != nil {
			return nil, fmt.Errorf("mol: %w", err)
		}
		b, err := parseMolInt(line, 3, 6)
		if err != nil {
			return nil, fmt.Errorf("mol: %w", err)
		}
		a--
		b--
		order, err := parseMolInt(line, 6, 9)
		if err != nil {
			order = 1
		}
		bonds = append(bonds, orderedBond(a, b))
		bondOrders = append(bondOrders, uint8(order))
	}

	return &megane.ParsedStructure{
		NAtoms:     nAtoms,
		Positions:  positions,
		Elements:   elements,
		Bonds:      bonds,
		NFileBonds: nBonds,
		BondOrders: bondOrders,
	}, nil
}

func orderedBond(a, b int) megane.Bond {
	au, bu := uint32(a), uint32(b)
	if au > bu {
		au, bu = bu, au
	}
	return megane.Bond{A: au, B: bu}
}
