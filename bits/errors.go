package bits

import (
	"errors"

	"github.com/joshuapare/bitskit/internal/bitio"
)

// Every decode error is fatal: a malformed transmission is rejected whole,
// and the caller never sees a partially built tree. Match with errors.Is.
var (
	// ErrInvalidHexChar indicates a non-hexadecimal character in the input.
	ErrInvalidHexChar = bitio.ErrInvalidHexDigit
	// ErrUnexpectedEOF indicates the transmission ended inside a field or
	// mid-sub-packet.
	ErrUnexpectedEOF = bitio.ErrUnexpectedEOF
	// ErrFramingOverrun indicates a sub-packet crossed the bit boundary
	// declared by a total-bit-length framed operator.
	ErrFramingOverrun = errors.New("bits: sub-packets overrun declared bit length")
	// ErrBinaryOperatorArity indicates a comparison operator without exactly
	// two sub-packets.
	ErrBinaryOperatorArity = errors.New("bits: binary operator requires exactly two sub-packets")
	// ErrEmptyOperator indicates an operator packet with no sub-packets.
	ErrEmptyOperator = errors.New("bits: operator has no sub-packets")
	// ErrUnknownTypeID indicates a type id with no mapped operator kind.
	// Unreachable from a well-formed 3-bit field, kept as a hard failure
	// rather than an assumption.
	ErrUnknownTypeID = errors.New("bits: unknown packet type id")
	// ErrMaxDepth indicates packet nesting beyond the supported depth.
	ErrMaxDepth = errors.New("bits: packet nesting too deep")
)
