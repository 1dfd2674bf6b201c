package bitio

import "testing"

func TestDecodeBitsRoundTrips(t *testing.T) {
	// 0xA5 = 1010 0101: reading 4 then 4 bits should recover 0xA and 0x5.
	r := NewReader([]byte{0xA5})
	hi := r.DecodeBits(4)
	lo := r.DecodeBits(4)
	if hi != 0xA || lo != 0x5 {
		t.Errorf("got hi=%x lo=%x, want hi=a lo=5", hi, lo)
	}
}

func TestDecodeBitsAcrossBytes(t *testing.T) {
	r := NewReader([]byte{0xFF, 0x00})
	v := r.DecodeBits(12)
	if v != 0xFF0 {
		t.Errorf("got %x, want ff0", v)
	}
}

func TestSizeOfInt(t *testing.T) {
	cases := []struct {
		size uint32
		want uint32
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{255, 8},
		{256, 9},
	}
	for _, c := range cases {
		if got := SizeOfInt(c.size); got != c.want {
			t.Errorf("SizeOfInt(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestSizeOfInts(t *testing.T) {
	sizes := []uint32{10, 10, 10}
	got := SizeOfInts(3, sizes)
	// Packing three base-10 digits needs ceil(log2(1000)) = 10 bits.
	if got != 10 {
		t.Errorf("SizeOfInts(3, [10,10,10]) = %d, want 10", got)
	}
}
