package pressgloss

// BuildTree turns a normalized list into an arrangement whose container is the
// given node (nil for a root). Dispatch is total: an operator keyword at the
// head, or an order keyword at its fixed offset, selects the variant, and
// anything else becomes an Unknown node. A recognized operator missing some
// of its fields still yields its variant with those fields left empty.
func BuildTree(list []Expr, container Arrangement) Arrangement {
	switch Operator(atom(list, 0)) {
	case OpFact:
		n := &Fact{}
		n.container = container
		n.Details = child(list, 1, n)
		return n
	case OpProposal:
		n := &Proposal{}
		n.container = container
		n.Details = child(list, 1, n)
		return n
	case OpAccept:
		n := &Accept{}
		n.container = container
		n.Details = child(list, 1, n)
		return n
	case OpReject:
		n := &Reject{}
		n.container = container
		n.Details = child(list, 1, n)
		return n
	case OpCancel:
		n := &Cancel{}
		n.container = container
		n.Details = child(list, 1, n)
		return n
	case OpConfusion:
		n := &Confusion{}
		n.container = container
		n.Details = child(list, 1, n)
		return n
	case OpIgnore:
		n := &Ignore{}
		n.container = container
		n.Details = child(list, 1, n)
		return n

	case OpPeace:
		return &Peace{node: node{container}, Parties: powersAt(list, 1)}
	case OpAlliance:
		n := &Alliance{node: node{container}, Allies: powersAt(list, 1)}
		if atom(list, 2) == kwVersus {
			n.Opponents = powersAt(list, 3)
		}
		return n
	case OpDMZ:
		return &DMZ{node: node{container}, Parties: powersAt(list, 1), Provinces: provincesAt(list, 2)}
	case OpDraw:
		return &Draw{node: node{container}, Parties: powersAt(list, 1)}
	case OpSolo:
		n := &Solo{node: node{container}}
		if ps := powersAt(list, 1); len(ps) > 0 {
			n.Winner = ps[0]
		} else if a := atom(list, 1); a != "" {
			n.Winner = Power(a)
		}
		return n

	case OpAnd:
		n := &And{node: node{container}}
		n.Items = children(list, 1, n)
		return n
	case OpOr:
		n := &Or{node: node{container}}
		n.Items = children(list, 1, n)
		return n
	case OpConditional:
		n := &Conditional{node: node{container}}
		n.Antecedent = child(list, 1, n)
		n.Consequent = child(list, 2, n)
		if atom(list, 3) == kwElse {
			n.Alternative = child(list, 4, n)
		}
		return n
	case OpNegation:
		n := &Negation{node: node{container}}
		n.Inner = child(list, 1, n)
		return n
	case OpUncertainty:
		n := &Uncertainty{node: node{container}}
		n.Inner = child(list, 1, n)
		return n
	case OpExecute:
		n := &Execute{node: node{container}}
		n.Order = child(list, 1, n)
		return n
	}
	if o := buildOrder(list, container); o != nil {
		return o
	}
	return &Unknown{node: node{container}, Raw: list}
}

// buildOrder recognizes the order shapes, keyed on the keyword after the
// unit (or power, for WVE). It returns nil for anything else.
func buildOrder(list []Expr, container Arrangement) Arrangement {
	if len(list) < 2 {
		return nil
	}
	n := node{container}
	switch Operator(atom(list, 1)) {
	case OpHold:
		return &Hold{node: n, Unit: unitAt(list, 0)}
	case OpMoveTo:
		return &MoveTo{node: n, Unit: unitAt(list, 0), Destination: provinceAt(list, 2)}
	case OpSupport:
		if atom(list, 3) == string(OpMoveTo) {
			return &SupportMove{node: n, Supporter: unitAt(list, 0), Supported: unitAt(list, 2), Destination: provinceAt(list, 4)}
		}
		return &SupportHold{node: n, Supporter: unitAt(list, 0), Supported: unitAt(list, 2)}
	case OpConvoy:
		c := &Convoy{node: n, Carrier: unitAt(list, 0), Cargo: unitAt(list, 2)}
		if atom(list, 3) == string(OpConvoyTo) {
			c.Destination = provinceAt(list, 4)
		}
		return c
	case OpConvoyTo:
		c := &ConvoyVia{node: n, Cargo: unitAt(list, 0), Destination: provinceAt(list, 2)}
		if atom(list, 3) == kwVia {
			c.Route = provincesAt(list, 4)
		}
		return c
	case OpRetreat:
		return &Retreat{node: n, Unit: unitAt(list, 0), Destination: provinceAt(list, 2)}
	case OpDisband:
		return &Disband{node: n, Unit: unitAt(list, 0)}
	case OpBuild:
		return &Build{node: n, Unit: unitAt(list, 0)}
	case OpRemove:
		return &Remove{node: n, Unit: unitAt(list, 0)}
	case OpWaive:
		return &Waive{node: n, Power: Power(atom(list, 0))}
	}
	return nil
}

// child builds the sub-list at index i under parent, or returns nil when
// there is none.
func child(list []Expr, i int, parent Arrangement) Arrangement {
	if i >= len(list) || list[i].IsAtom() {
		return nil
	}
	return BuildTree(list[i].List, parent)
}

// children builds every sub-list from index i on.
func children(list []Expr, from int, parent Arrangement) []Arrangement {
	var out []Arrangement
	for i := from; i < len(list); i++ {
		if c := child(list, i, parent); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func powersAt(list []Expr, i int) []Power {
	var out []Power
	for _, a := range atoms(list, i) {
		out = append(out, Power(a))
	}
	return out
}

// provinceAt reads a province atom, accepting an unfolded coastal pair
// such as (SPA NCS).
func provinceAt(list []Expr, i int) Province {
	if a := atom(list, i); a != "" {
		return Province(a)
	}
	return coastal(sub(list, i))
}

func coastal(pair []Expr) Province {
	if len(pair) == 2 && pair[0].IsAtom() && pair[1].IsAtom() {
		return Province(pair[0].Atom + pair[1].Atom)
	}
	if len(pair) == 1 && pair[0].IsAtom() {
		return Province(pair[0].Atom)
	}
	return ""
}

func provincesAt(list []Expr, i int) []Province {
	var out []Province
	for _, e := range sub(list, i) {
		if e.IsAtom() {
			out = append(out, Province(e.Atom))
		} else if p := coastal(e.List); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// unitAt reads "(power type province)".
func unitAt(list []Expr, i int) Unit {
	u := sub(list, i)
	return Unit{
		Power:    Power(atom(u, 0)),
		Type:     UnitType(atom(u, 1)),
		Province: provinceAt(u, 2),
	}
}
