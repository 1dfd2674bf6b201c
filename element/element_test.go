package element

import "testing"

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"CA": "Ca",
		"cl": "Cl",
		"H":  "H",
		"":   "",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSymbolToAtomicNum(t *testing.T) {
	cases := map[string]uint8{
		"H":  1,
		"C":  6,
		"Fe": 26,
		"U":  92,
		"Xx": 0,
	}
	for sym, want := range cases {
		if got := SymbolToAtomicNum(sym); got != want {
			t.Errorf("SymbolToAtomicNum(%q) = %d, want %d", sym, got, want)
		}
	}
}

func TestCovalentRadiusFallback(t *testing.T) {
	if got := CovalentRadius(6); got != 0.76 {
		t.Errorf("CovalentRadius(6) = %v, want 0.76", got)
	}
	if got := CovalentRadius(200); got != DefaultCovalentRadius {
		t.Errorf("CovalentRadius(200) = %v, want default %v", got, DefaultCovalentRadius)
	}
}

func TestVdwRadiusFallback(t *testing.T) {
	if got := VdwRadius(8); got != 1.52 {
		t.Errorf("VdwRadius(8) = %v, want 1.52", got)
	}
	if got := VdwRadius(200); got != DefaultVdwRadius {
		t.Errorf("VdwRadius(200) = %v, want default %v", got, DefaultVdwRadius)
	}
}
