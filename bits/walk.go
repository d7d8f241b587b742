package bits

// Walk visits p and every packet beneath it in depth-first pre-order,
// calling fn for each. If fn returns false the packet's children are
// skipped; the walk continues with its siblings.
func Walk(p Packet, fn func(Packet) bool) {
	if !fn(p) {
		return
	}
	if op, ok := p.Body.(Operator); ok {
		for _, c := range op.Children {
			Walk(c, fn)
		}
	}
}
