package bitio

import (
	"errors"
	"testing"
)

func TestFromHexExpansion(t *testing.T) {
	s, err := FromHex("1F3\n")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if s.Len() != 12 {
		t.Fatalf("length mismatch: got %d, want 12", s.Len())
	}
	v, err := s.Reader().ReadUint(12)
	if err != nil {
		t.Fatalf("ReadUint: %v", err)
	}
	if v != 0x1F3 {
		t.Fatalf("bit order mismatch: got %#x, want 0x1f3", v)
	}
}

func TestFromHexCaseInsensitive(t *testing.T) {
	lower, err := FromHex("d2fe28")
	if err != nil {
		t.Fatalf("FromHex lower: %v", err)
	}
	upper, err := FromHex("  D2FE28  ")
	if err != nil {
		t.Fatalf("FromHex upper: %v", err)
	}
	lv, _ := lower.Reader().ReadUint(24)
	uv, _ := upper.Reader().ReadUint(24)
	if lv != uv {
		t.Fatalf("case mismatch: %#x != %#x", lv, uv)
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, in := range []string{"D2FG28", "12 34", "0x12", "-1"} {
		if _, err := FromHex(in); !errors.Is(err, ErrInvalidHexDigit) {
			t.Fatalf("FromHex(%q): got %v, want ErrInvalidHexDigit", in, err)
		}
	}
}

func TestFromBinary(t *testing.T) {
	s, err := FromBinary("110100101111111000101000\n")
	if err != nil {
		t.Fatalf("FromBinary: %v", err)
	}
	if s.Len() != 24 {
		t.Fatalf("length mismatch: got %d, want 24", s.Len())
	}
	if _, err := FromBinary("0102"); !errors.Is(err, ErrInvalidBinaryDigit) {
		t.Fatalf("got %v, want ErrInvalidBinaryDigit", err)
	}
}

func TestReadUintMSBFirst(t *testing.T) {
	// 8F55 = 1000 1111 0101 0101, read as 4+3+3+6 bit fields.
	s, err := FromHex("8F55")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	r := s.Reader()
	want := []struct {
		n int
		v uint64
	}{
		{4, 0x8},
		{3, 0x7},
		{3, 0x5},
		{6, 0x15},
	}
	for _, w := range want {
		v, err := r.ReadUint(w.n)
		if err != nil {
			t.Fatalf("ReadUint(%d): %v", w.n, err)
		}
		if v != w.v {
			t.Fatalf("ReadUint(%d): got %#x, want %#x", w.n, v, w.v)
		}
	}
	if r.Consumed() != 16 || r.Remaining() != 0 {
		t.Fatalf("cursor mismatch: consumed=%d remaining=%d", r.Consumed(), r.Remaining())
	}
}

func TestReadBit(t *testing.T) {
	s, _ := FromHex("A") // 1010
	r := s.Reader()
	for i, want := range []Bit{One, Zero, One, Zero} {
		b, err := r.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit %d: %v", i, err)
		}
		if b != want {
			t.Fatalf("ReadBit %d: got %d, want %d", i, b, want)
		}
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("past end: got %v, want ErrUnexpectedEOF", err)
	}
}

func TestReadPastEnd(t *testing.T) {
	s, _ := FromHex("A")
	r := s.Reader()
	if _, err := r.ReadUint(5); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("got %v, want ErrUnexpectedEOF", err)
	}
	// Failed reads must not move the cursor.
	if r.Consumed() != 0 {
		t.Fatalf("cursor moved on failed read: %d", r.Consumed())
	}
	if v, err := r.ReadUint(4); err != nil || v != 0xA {
		t.Fatalf("recovery read: got %#x, %v", v, err)
	}
}

func TestReadUintWidth(t *testing.T) {
	s, _ := FromHex("FF")
	r := s.Reader()
	if _, err := r.ReadUint(65); !errors.Is(err, ErrWidth) {
		t.Fatalf("width 65: got %v, want ErrWidth", err)
	}
	if _, err := r.ReadUint(-1); !errors.Is(err, ErrWidth) {
		t.Fatalf("width -1: got %v, want ErrWidth", err)
	}
	if v, err := r.ReadUint(0); err != nil || v != 0 {
		t.Fatalf("width 0: got %d, %v", v, err)
	}
	if r.Consumed() != 0 {
		t.Fatalf("zero-width read moved cursor: %d", r.Consumed())
	}
}

func TestIndependentReaders(t *testing.T) {
	s, _ := FromHex("D2FE28")
	a, b := s.Reader(), s.Reader()
	if _, err := a.ReadUint(10); err != nil {
		t.Fatalf("ReadUint: %v", err)
	}
	if b.Consumed() != 0 {
		t.Fatalf("readers share a cursor: %d", b.Consumed())
	}
}
