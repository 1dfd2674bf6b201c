package mol

import (
	"fmt"
	"strings"
	"testing"
)

func atomLine(x, y, z float64, sym string) string {
	return fmt.Sprintf("%10.4f%10.4f%10.4f %-3s0  0  0  0  0  0  0  0  0  0  0  0", x, y, z, sym)
}

func bondLine(a, b, order int) string {
	return fmt.Sprintf("%3d%3d%3d  0  0  0  0", a, b, order)
}

func buildMol(atoms, bonds []string) string {
	lines := []string{
		"molecule",
		"  -ISIS-  ",
		"",
		fmt.Sprintf("%3d%3d  0  0  0  0  0  0  0  0999 V2000", len(atoms), len(bonds)),
	}
	lines = append(lines, atoms...)
	lines = append(lines, bonds...)
	lines = append(lines, "M  END")
	return strings.Join(lines, "\n")
}

func TestParseTwoAtomOneBond(t *testing.T) {
	text := buildMol(
		[]string{
			atomLine(0.0, 0.0, 0.0, "C"),
			atomLine(1.2, 0.0, 0.0, "O"),
		},
		[]string{bondLine(1, 2, 2)},
	)

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
	if out.NFileBonds != 1 {
		t.Fatalf("NFileBonds = %d, want 1", out.NFileBonds)
	}
	if out.Bonds[0].A != 0 || out.Bonds[0].B != 1 {
		t.Errorf("Bonds[0] = %v, want (0,1)", out.Bonds[0])
	}
	if out.BondOrders[0] != 2 {
		t.Errorf("BondOrders[0] = %d, want 2 (double bond)", out.BondOrders[0])
	}
}

func TestParseZeroAtomsFails(t *testing.T) {
	text := buildMol(nil, nil)
	if _, err := Parse(text); err == nil {
		t.Fatal("expected error for zero-atom MOL file")
	}
}

func TestParseTooShortFails(t *testing.T) {
	if _, err := Parse("a\nb\nc\nd"); err == nil {
		t.Fatal("expected error for file with no atom/bond lines")
	}
}

func TestParseWhitespaceFallbackAtomLine(t *testing.T) {
	atoms := []string{"0.0 0.0 0.0 C", "1.2 0.0 0.0 O"}
	bonds := []string{bondLine(1, 2, 1)}
	lines := []string{
		"molecule", "program", "comment",
		fmt.Sprintf("%3d%3d  0  0  0  0  0  0  0  0999 V2000", len(atoms), len(bonds)),
	}
	lines = append(lines, atoms...)
	lines = append(lines, bonds...)
	text := strings.Join(lines, "\n")

	out, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out.Elements[0] != 6 || out.Elements[1] != 8 {
		t.Errorf("Elements = %v, want [6 8]", out.Elements)
	}
}
