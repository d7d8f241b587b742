package bits

import "fmt"

// OpKind identifies the combinator an operator packet applies to its
// sub-packets. The set is closed: the wire type id is a 3-bit field and
// every non-literal value maps to exactly one kind.
type OpKind uint8

const (
	OpSum OpKind = iota
	OpProduct
	OpMin
	OpMax
	OpGreaterThan
	OpLessThan
	OpEqual
)

// Binary reports whether the kind compares exactly two sub-packets.
func (k OpKind) Binary() bool {
	return k == OpGreaterThan || k == OpLessThan || k == OpEqual
}

func (k OpKind) String() string {
	switch k {
	case OpSum:
		return "sum"
	case OpProduct:
		return "product"
	case OpMin:
		return "min"
	case OpMax:
		return "max"
	case OpGreaterThan:
		return "greater-than"
	case OpLessThan:
		return "less-than"
	case OpEqual:
		return "equal"
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// opKindFromTypeID maps a wire type id to its operator kind. Type id 4 marks
// a literal and is handled before this is called.
func opKindFromTypeID(id uint64) (OpKind, error) {
	switch id {
	case 0:
		return OpSum, nil
	case 1:
		return OpProduct, nil
	case 2:
		return OpMin, nil
	case 3:
		return OpMax, nil
	case 5:
		return OpGreaterThan, nil
	case 6:
		return OpLessThan, nil
	case 7:
		return OpEqual, nil
	}
	return 0, fmt.Errorf("type id %d: %w", id, ErrUnknownTypeID)
}

// Packet is one decoded unit of a BITS transmission: a 3-bit version header
// plus either a literal value or an operator over child packets. A decoded
// tree is immutable and self-contained; it never refers back to the bit
// stream it was parsed from.
type Packet struct {
	Version uint8
	Body    Body
}

// Body is the packet payload, either a Literal or an Operator.
type Body interface {
	body()
}

// Literal is a single unsigned integer, assembled on the wire from
// continuation-chained nibble groups.
type Literal struct {
	Value uint64
}

// Operator applies a combinator to one or more child packets. Comparison
// kinds carry exactly two children; the parser enforces both bounds.
type Operator struct {
	Op       OpKind
	Children []Packet
}

func (Literal) body()  {}
func (Operator) body() {}
