package bits

import (
	"fmt"

	"github.com/joshuapare/bitskit/internal/bitio"
)

// Wire field widths and markers.
const (
	versionBits     = 3
	typeIDBits      = 3
	typeIDLiteral   = 4
	nibbleBits      = 4
	totalLengthBits = 15
	countBits       = 11
)

// maxDepth bounds packet nesting. Each level costs at least 18 bits on the
// wire, so any transmission deep enough to hit this is adversarial rather
// than real.
const maxDepth = 512

// Decode parses one BITS transmission from hexadecimal text and returns its
// top-level packet. Surrounding whitespace is ignored, as are any padding
// bits that follow the packet. A malformed transmission yields an error and
// no packet.
func Decode(hexText string) (Packet, error) {
	stream, err := bitio.FromHex(hexText)
	if err != nil {
		return Packet{}, fmt.Errorf("decode hex: %w", err)
	}
	return decodeStream(stream)
}

// DecodeBinary parses one BITS transmission from literal '0'/'1' text. It is
// the same decoder as Decode without the hex expansion step, useful when a
// transmission is captured or hand-framed at the bit level.
func DecodeBinary(bitText string) (Packet, error) {
	stream, err := bitio.FromBinary(bitText)
	if err != nil {
		return Packet{}, fmt.Errorf("decode binary: %w", err)
	}
	return decodeStream(stream)
}

func decodeStream(stream bitio.Stream) (Packet, error) {
	_, p, err := parsePacket(stream.Reader(), 0)
	if err != nil {
		return Packet{}, err
	}
	return p, nil
}

// parsePacket decodes exactly one packet and reports how many bits it
// consumed, including everything consumed by recursive sub-packet parses.
// The per-invocation count is what terminates total-bit-length framing, so
// it must be computed here and not from a global position.
func parsePacket(r *bitio.Reader, depth int) (int, Packet, error) {
	if depth > maxDepth {
		return 0, Packet{}, fmt.Errorf("depth %d: %w", depth, ErrMaxDepth)
	}
	start := r.Consumed()

	version, err := r.ReadUint(versionBits)
	if err != nil {
		return 0, Packet{}, fmt.Errorf("version: %w", err)
	}
	typeID, err := r.ReadUint(typeIDBits)
	if err != nil {
		return 0, Packet{}, fmt.Errorf("type id: %w", err)
	}

	var body Body
	if typeID == typeIDLiteral {
		body, err = parseLiteral(r)
	} else {
		body, err = parseOperator(r, typeID, depth)
	}
	if err != nil {
		return 0, Packet{}, err
	}

	p := Packet{Version: uint8(version), Body: body}
	return r.Consumed() - start, p, nil
}

// parseLiteral reads continuation-chained nibble groups: one continuation
// bit, then four value bits, until a group's continuation bit is 0.
func parseLiteral(r *bitio.Reader) (Body, error) {
	var value uint64
	for {
		cont, err := r.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("literal group: %w", err)
		}
		nibble, err := r.ReadUint(nibbleBits)
		if err != nil {
			return nil, fmt.Errorf("literal group: %w", err)
		}
		value = value<<4 | nibble
		if cont == bitio.Zero {
			return Literal{Value: value}, nil
		}
	}
}

func parseOperator(r *bitio.Reader, typeID uint64, depth int) (Body, error) {
	kind, err := opKindFromTypeID(typeID)
	if err != nil {
		return nil, err
	}
	lengthTypeID, err := r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("length type id: %w", err)
	}

	var children []Packet
	if lengthTypeID == bitio.Zero {
		children, err = parseByTotalLength(r, depth)
	} else {
		children, err = parseByCount(r, depth)
	}
	if err != nil {
		return nil, err
	}

	if kind.Binary() && len(children) != 2 {
		return nil, fmt.Errorf("%s with %d sub-packets: %w", kind, len(children), ErrBinaryOperatorArity)
	}
	if len(children) == 0 {
		// Guarantees min/max and the comparisons are total at eval time.
		return nil, fmt.Errorf("%s: %w", kind, ErrEmptyOperator)
	}
	return Operator{Op: kind, Children: children}, nil
}

// parseByTotalLength reads a 15-bit bit count, then sub-packets until their
// consumed bits exactly equal it. A sub-packet crossing the boundary is a
// framing error, never silently truncated.
func parseByTotalLength(r *bitio.Reader, depth int) ([]Packet, error) {
	totalLength, err := r.ReadUint(totalLengthBits)
	if err != nil {
		return nil, fmt.Errorf("total length: %w", err)
	}
	var children []Packet
	var used uint64
	for used < totalLength {
		n, child, err := parsePacket(r, depth+1)
		if err != nil {
			return nil, err
		}
		used += uint64(n)
		if used > totalLength {
			return nil, fmt.Errorf("declared %d bits, sub-packets consumed %d: %w",
				totalLength, used, ErrFramingOverrun)
		}
		children = append(children, child)
	}
	return children, nil
}

// parseByCount reads an 11-bit sub-packet count and parses exactly that many.
func parseByCount(r *bitio.Reader, depth int) ([]Packet, error) {
	count, err := r.ReadUint(countBits)
	if err != nil {
		return nil, fmt.Errorf("sub-packet count: %w", err)
	}
	children := make([]Packet, 0, count)
	for i := uint64(0); i < count; i++ {
		_, child, err := parsePacket(r, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
