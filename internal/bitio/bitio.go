// Package bitio expands hexadecimal or binary text into a flat,
// most-significant-bit-first bit sequence and provides a consuming reader
// over it with exact consumed-bit accounting.
package bitio

import (
	"errors"
	"fmt"
	"strings"
)

// Bit is a single binary digit, 0 or 1.
type Bit uint8

const (
	// Zero is the low bit value.
	Zero Bit = 0
	// One is the high bit value.
	One Bit = 1
)

var (
	// ErrInvalidHexDigit indicates a character outside [0-9a-fA-F].
	ErrInvalidHexDigit = errors.New("bitio: invalid hex digit")
	// ErrInvalidBinaryDigit indicates a character other than '0' or '1'.
	ErrInvalidBinaryDigit = errors.New("bitio: invalid binary digit")
	// ErrUnexpectedEOF indicates a read needed more bits than remain.
	ErrUnexpectedEOF = errors.New("bitio: unexpected end of input")
	// ErrWidth indicates a ReadUint width outside [0, 64].
	ErrWidth = errors.New("bitio: bit width out of range")
)

// Stream is an immutable, finite bit sequence. Build one with FromHex or
// FromBinary; read it through a Reader.
type Stream struct {
	bits []Bit
}

// FromHex expands hexadecimal text into a Stream. Surrounding whitespace is
// trimmed; every remaining character must be a hex digit (case-insensitive)
// and expands to exactly 4 bits, high-order bit first. Any other character
// fails the whole expansion; no partial stream is produced.
func FromHex(s string) (Stream, error) {
	s = strings.TrimSpace(s)
	bits := make([]Bit, 0, len(s)*4)
	for i := 0; i < len(s); i++ {
		nibble, err := hexDigit(s[i])
		if err != nil {
			return Stream{}, fmt.Errorf("offset %d (%q): %w", i, s[i], err)
		}
		for shift := 3; shift >= 0; shift-- {
			bits = append(bits, Bit(nibble>>uint(shift)&1))
		}
	}
	return Stream{bits: bits}, nil
}

func hexDigit(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, ErrInvalidHexDigit
}

// FromBinary builds a Stream from literal '0'/'1' text. Surrounding
// whitespace is trimmed.
func FromBinary(s string) (Stream, error) {
	s = strings.TrimSpace(s)
	bits := make([]Bit, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits = append(bits, Zero)
		case '1':
			bits = append(bits, One)
		default:
			return Stream{}, fmt.Errorf("offset %d (%q): %w", i, s[i], ErrInvalidBinaryDigit)
		}
	}
	return Stream{bits: bits}, nil
}

// Len returns the total number of bits in the stream.
func (s Stream) Len() int { return len(s.bits) }

// Reader returns a consuming reader positioned at the start of the stream.
// Each Reader owns its own cursor; the Stream itself is never mutated.
func (s Stream) Reader() *Reader {
	return &Reader{bits: s.bits}
}

// Reader consumes bits from a Stream front to back and counts how many have
// been read. Failed reads do not advance the cursor. Not safe for concurrent
// use.
type Reader struct {
	bits []Bit
	pos  int
}

// ReadBit consumes and returns the next single bit.
func (r *Reader) ReadBit() (Bit, error) {
	if r.pos >= len(r.bits) {
		return 0, fmt.Errorf("read bit at %d: %w", r.pos, ErrUnexpectedEOF)
	}
	b := r.bits[r.pos]
	r.pos++
	return b, nil
}

// ReadUint consumes the next n bits and returns them as an unsigned integer,
// most significant bit first. n must be in [0, 64].
func (r *Reader) ReadUint(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("width %d: %w", n, ErrWidth)
	}
	if r.pos+n > len(r.bits) {
		return 0, fmt.Errorf("read %d bits at %d of %d: %w", n, r.pos, len(r.bits), ErrUnexpectedEOF)
	}
	var v uint64
	for _, b := range r.bits[r.pos : r.pos+n] {
		v = v<<1 | uint64(b)
	}
	r.pos += n
	return v, nil
}

// Consumed reports how many bits have been read since the start of the
// stream.
func (r *Reader) Consumed() int { return r.pos }

// Remaining reports how many bits are left to read.
func (r *Reader) Remaining() int { return len(r.bits) - r.pos }
