package bits

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a human-readable rendering of the packet tree to w, one
// packet per line, children indented beneath their operator.
//
// Example output for the transmission "C200B40A82":
//
//	sum (version 6)
//	  literal 1 (version 6)
//	  literal 2 (version 2)
func Fprint(w io.Writer, p Packet) error {
	return fprint(w, p, 0)
}

func fprint(w io.Writer, p Packet, indent int) error {
	pad := strings.Repeat("  ", indent)
	switch b := p.Body.(type) {
	case Literal:
		if _, err := fmt.Fprintf(w, "%sliteral %d (version %d)\n", pad, b.Value, p.Version); err != nil {
			return err
		}
	case Operator:
		if _, err := fmt.Fprintf(w, "%s%s (version %d)\n", pad, b.Op, p.Version); err != nil {
			return err
		}
		for _, c := range b.Children {
			if err := fprint(w, c, indent+1); err != nil {
				return err
			}
		}
	}
	return nil
}
