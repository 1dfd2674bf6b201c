package xdr

import "testing"

func TestReadI32(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00, 0x07, 0xCB}) // 1995
	v, err := r.ReadI32()
	if err != nil {
		t.Fatal(err)
	}
	if v != 1995 {
		t.Errorf("got %d, want 1995", v)
	}
}

func TestReadF32(t *testing.T) {
	// 1.0f32 big-endian is 0x3F800000.
	r := NewReader([]byte{0x3F, 0x80, 0x00, 0x00})
	v, err := r.ReadF32()
	if err != nil {
		t.Fatal(err)
	}
	if v != 1.0 {
		t.Errorf("got %v, want 1.0", v)
	}
}

func TestReadOpaquePadding(t *testing.T) {
	// 3 bytes of payload, padded to 4; a trailing sentinel byte follows.
	data := []byte{'a', 'b', 'c', 0x00, 0xFF}
	r := NewReader(data)
	got, err := r.ReadOpaque(3)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
	if r.Remaining() != 1 {
		t.Errorf("remaining = %d, want 1 (padding consumed)", r.Remaining())
	}
}

func TestReadPastEndFails(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01})
	if _, err := r.ReadI32(); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}
