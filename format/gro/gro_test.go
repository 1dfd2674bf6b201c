package gro

import (
	"fmt"
	"strings"
	"testing"
)

// atomLine builds a fixed-width GRO atom record (resnum, resname, atomname,
// atomnum, x, y, z in nm).
func atomLine(resNum int, resName, atomName string, atomNum int, x, y, z float64) string {
	return fmt.Sprintf("%5d%-5s%5s%5d%8.3f%8.3f%8.3f", resNum, resName, atomName, atomNum, x, y, z)
}

func buildGro(title string, atoms []string, box string) string {
	lines := []string{title, fmt.Sprintf("%d", len(atoms))}
	lines = append(lines, atoms...)
	lines = append(lines, box)
	return strings.Join(lines, "\n")
}

func TestParseTwoAtomBond(t *testing.T) {
	atoms := []string{
		atomLine(1, "LIG", "C1", 1, 0.000, 0.000, 0.000),
		atomLine(1, "LIG", "O1", 2, 0.120, 0.000, 0.000),
	}
	text := buildGro("test molecule", atoms, "   2.00000   2.00000   2.00000")

	out, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.NAtoms != 2 {
		t.Fatalf("NAtoms = %d, want 2", out.NAtoms)
	}
	if out.Elements[0] != 6 || out.Elements[1] != 8 {
		t.Errorf("Elements = %v, want [6 8]", out.Elements)
	}
	if len(out.Bonds) != 1 {
		t.Errorf("Bonds = %v, want 1 inferred bond", out.Bonds)
	}
	if out.BoxMatrix[0] != 20 || out.BoxMatrix[4] != 20 || out.BoxMatrix[8] != 20 {
		t.Errorf("BoxMatrix = %v, want diagonal 20 (2nm -> 20A)", out.BoxMatrix)
	}
}

func TestParseTooShortFails(t *testing.T) {
	if _, err := Parse("title\n0"); err == nil {
		t.Fatal("expected error for file missing required lines")
	}
}

func TestParseBadAtomCountFails(t *testing.T) {
	if _, err := Parse("title\nnotanumber\nbox"); err == nil {
		t.Fatal("expected error for non-numeric atom count")
	}
}

func TestParseFullTriclinicBox(t *testing.T) {
	atoms := []string{
		atomLine(1, "LIG", "NA", 1, 0.0, 0.0, 0.0),
	}
	box := "1.00000 1.00000 1.00000 0.00000 0.00000 0.10000 0.20000 0.00000 0.00000"
	text := buildGro("title", atoms, box)

	out, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.BoxMatrix[3] != 1 { // v2x column, 0.1nm -> 1A
		t.Errorf("BoxMatrix[3] = %v, want 1", out.BoxMatrix[3])
	}
}
