package bits

// VersionSum returns the packet's own version plus the version sum of every
// packet nested beneath it.
func (p Packet) VersionSum() uint64 {
	sum := uint64(p.Version)
	if op, ok := p.Body.(Operator); ok {
		for _, c := range op.Children {
			sum += c.VersionSum()
		}
	}
	return sum
}

// Eval computes the value of the expression the packet encodes: literals
// yield their stored value, operators combine their children's values. It is
// a pure fold over the tree. Arity was validated at parse time, so min/max
// always see at least one value and comparisons exactly two.
func (p Packet) Eval() uint64 {
	switch b := p.Body.(type) {
	case Literal:
		return b.Value
	case Operator:
		return b.eval()
	}
	return 0
}

func (o Operator) eval() uint64 {
	switch o.Op {
	case OpSum:
		var sum uint64
		for _, c := range o.Children {
			sum += c.Eval()
		}
		return sum
	case OpProduct:
		product := uint64(1)
		for _, c := range o.Children {
			product *= c.Eval()
		}
		return product
	case OpMin:
		lo := o.Children[0].Eval()
		for _, c := range o.Children[1:] {
			if v := c.Eval(); v < lo {
				lo = v
			}
		}
		return lo
	case OpMax:
		hi := o.Children[0].Eval()
		for _, c := range o.Children[1:] {
			if v := c.Eval(); v > hi {
				hi = v
			}
		}
		return hi
	case OpGreaterThan:
		return truth(o.Children[0].Eval() > o.Children[1].Eval())
	case OpLessThan:
		return truth(o.Children[0].Eval() < o.Children[1].Eval())
	case OpEqual:
		return truth(o.Children[0].Eval() == o.Children[1].Eval())
	}
	return 0
}

func truth(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
