package bond

import "testing"

func TestInferCovalentTwoCarbons(t *testing.T) {
	// Two carbons 1.5A apart: threshold is 1.3*(0.76+0.76) = 1.976A.
	positions := []float32{0, 0, 0, 1.5, 0, 0}
	elements := []uint8{6, 6}
	bonds := InferCovalent(positions, elements, 2, nil)
	if len(bonds) != 1 {
		t.Fatalf("got %d bonds, want 1", len(bonds))
	}
	if bonds[0] != (Pair{0, 1}) {
		t.Errorf("got %v, want {0,1}", bonds[0])
	}
}

func TestInferCovalentTooFar(t *testing.T) {
	positions := []float32{0, 0, 0, 5, 0, 0}
	elements := []uint8{6, 6}
	bonds := InferCovalent(positions, elements, 2, nil)
	if len(bonds) != 0 {
		t.Fatalf("got %d bonds, want 0", len(bonds))
	}
}

func TestInferCovalentExcludesExisting(t *testing.T) {
	positions := []float32{0, 0, 0, 1.5, 0, 0}
	elements := []uint8{6, 6}
	existing := map[Pair]bool{{0, 1}: true}
	bonds := InferCovalent(positions, elements, 2, existing)
	if len(bonds) != 0 {
		t.Fatalf("got %d bonds, want 0 (already declared)", len(bonds))
	}
}

func TestInferCovalentIdempotent(t *testing.T) {
	positions := []float32{
		0, 0, 0,
		1.2, 0, 0,
		2.4, 0, 0,
	}
	elements := []uint8{6, 6, 6}
	first := InferCovalent(positions, elements, 3, nil)
	if len(first) == 0 {
		t.Fatal("expected at least one bond in fixture")
	}
	seeded := make(map[Pair]bool, len(first))
	for _, p := range first {
		seeded[p] = true
	}
	second := InferCovalent(positions, elements, 3, seeded)
	if len(second) != 0 {
		t.Errorf("idempotence violated: second run found %d new bonds", len(second))
	}
}

func TestInferVdWMinDistExcludesOverlap(t *testing.T) {
	positions := []float32{0, 0, 0, 0.1, 0, 0}
	elements := []uint8{1, 1}
	bonds := InferVdW(positions, elements, 2)
	if len(bonds) != 0 {
		t.Fatalf("got %d bonds for overlapping atoms, want 0", len(bonds))
	}
}

func TestInferVdWWithinThreshold(t *testing.T) {
	// Two oxygens: VdW radius 1.52 each, threshold 0.6*(1.52+1.52)=1.824A.
	positions := []float32{0, 0, 0, 1.6, 0, 0}
	elements := []uint8{8, 8}
	bonds := InferVdW(positions, elements, 2)
	if len(bonds) != 1 {
		t.Fatalf("got %d bonds, want 1", len(bonds))
	}
}
