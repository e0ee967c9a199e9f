package pressgloss

import "strings"

// order is implemented by every order variant. clause renders the order
// for a polarity with names looked up through n; brief is the same order
// without unit details, for conditions. shorthand is the expert notation
// without brackets, or "" when the order has none.
type order interface {
	Arrangement
	clause(n *namer, pol polarity) string
	brief(n *namer, pol polarity) string
	shorthand() string
}

// orderClause renders o for a polarity, with shorthand appended for the
// Expert tone.
func orderClause(o order, f *Frame, pol polarity) string {
	return orderText(o, f, pol, o.clause)
}

func orderText(o order, f *Frame, pol polarity, render func(*namer, polarity) string) string {
	n := f.names()
	s := render(n, pol)
	if n.bad || s == "" {
		return Sentinel
	}
	if f.expert() {
		if sh := o.shorthand(); sh != "" {
			s += " [" + sh + "]"
		}
	}
	return s
}

// movePhrases introduce an order for each speech context and polarity.
var movePhrases = map[speechContext][3]string{
	ctxProposal: {
		"I propose the following move: ",
		"I do not support the following move: ",
		"I am ambivalent about the following move: ",
	},
	ctxAccept: {
		"I agree to do my part in executing the move: ",
		"I agree to do my part in not executing the move: ",
		"I agree that I may or may not participate in the move: ",
	},
	ctxReject: {
		"I will not execute the move: ",
		"I will go ahead and execute the move regardless: ",
		"I am not ambiguous about the move: ",
	},
	ctxCancelProposal: {
		"I wish to cancel my proposed move: ",
		"I wish to cancel my opposition to the move: ",
		"I wish to cancel my ambivalence about the move: ",
	},
	ctxCancelAccept: {
		"I wish to cancel my agreement to your proposal about the move: ",
		"I wish to cancel my agreement to your proposal about the move: ",
		"I wish to cancel my agreement to your proposal about the move: ",
	},
}

func orderGloss(o order, f *Frame) string {
	ctx, pol := situate(o)
	if ctx == ctxFact {
		return sentence(initcap(orderClause(o, f, pol)))
	}
	intro, ok := movePhrases[ctx]
	if !ok {
		return fallback(o, f)
	}
	c := orderClause(o, f, affirmed)
	if c == Sentinel {
		return Sentinel
	}
	if ctx == ctxProposal && pol == affirmed {
		intro[0] = f.pick(intro[0], "How about this move: ", "I suggest this move: ")
	}
	return intro[pol] + sentence(initcap(c))
}

func orderListForm(o order, f *Frame) string {
	return orderClause(o, f, polarityOf(o))
}

func orderClauseForm(o order, f *Frame) string {
	return orderText(o, f, polarityOf(o), o.brief)
}

// ---- shorthand --------------------------------------------------------

func (u Unit) short() string {
	letter := "?"
	switch u.Type {
	case Army:
		letter = "A"
	case Fleet:
		letter = "F"
	}
	return letter + " " + provinceShort(u.Province)
}

// provinceShort writes coastal compounds as "SPA/NC".
func provinceShort(p Province) string {
	base, coast := splitCoast(p)
	if coast == "" {
		return string(p)
	}
	return string(base) + "/" + coast[:2]
}

func (a *Hold) shorthand() string   { return a.Unit.short() + " H" }
func (a *MoveTo) shorthand() string { return a.Unit.short() + " - " + provinceShort(a.Destination) }
func (a *SupportHold) shorthand() string {
	return a.Supporter.short() + " S " + a.Supported.short()
}
func (a *SupportMove) shorthand() string {
	return a.Supporter.short() + " S " + a.Supported.short() + " - " + provinceShort(a.Destination)
}
func (a *Convoy) shorthand() string {
	return a.Carrier.short() + " C " + a.Cargo.short() + " - " + provinceShort(a.Destination)
}
func (a *ConvoyVia) shorthand() string {
	route := make([]string, len(a.Route))
	for i, p := range a.Route {
		route[i] = provinceShort(p)
	}
	return a.Cargo.short() + " - " + provinceShort(a.Destination) + " VIA " + strings.Join(route, " ")
}
func (a *Retreat) shorthand() string { return a.Unit.short() + " R " + provinceShort(a.Destination) }
func (a *Disband) shorthand() string { return a.Unit.short() + " D" }
func (a *Build) shorthand() string   { return a.Unit.short() + " B" }
func (a *Remove) shorthand() string  { return a.Unit.short() + " D" }
func (*Waive) shorthand() string     { return "" }

// ---- clauses ----------------------------------------------------------

// unitIn is "army in Liverpool".
func (n *namer) unitIn(u Unit) string {
	return n.unitType(u.Type) + " in " + n.province(u.Province)
}

func (a *Hold) clause(n *namer, pol polarity) string {
	o := n.actor(a.Unit.Power)
	switch pol {
	case negated:
		return o.poss + " " + n.unitIn(a.Unit) + " is free to move"
	case uncertain:
		return o.subj + " may or may not hold " + o.own + " " + n.unitIn(a.Unit)
	}
	return o.subj + " " + o.verb("hold") + " " + o.own + " " + n.unitIn(a.Unit)
}

func (a *MoveTo) clause(n *namer, pol polarity) string {
	o := n.actor(a.Unit.Power)
	unit, from, to := n.unitType(a.Unit.Type), n.province(a.Unit.Province), n.province(a.Destination)
	switch pol {
	case negated:
		return o.poss + " " + unit + " in " + from + " stays out of " + to
	case uncertain:
		return o.subj + " may or may not move " + o.own + " " + unit + " from " + from + " to " + to
	}
	return o.subj + " " + o.verb("move") + " " + o.own + " " + unit + " from " + from + " to " + to
}

func (a *SupportHold) clause(n *namer, pol polarity) string {
	s, t := n.actor(a.Supporter.Power), n.actor(a.Supported.Power)
	switch pol {
	case negated:
		return s.subj + " " + s.verb("withhold") + " support from " + t.poss + " " + n.unitIn(a.Supported)
	case uncertain:
		return s.subj + " may or may not support " + t.poss + " " + n.unitIn(a.Supported) +
			" with " + s.own + " " + n.unitIn(a.Supporter)
	}
	return s.subj + " " + s.verb("provide") + " support with " + s.own + " " + n.unitIn(a.Supporter) +
		" for " + t.obj + " to hold " + t.own + " " + n.unitIn(a.Supported)
}

func (a *SupportMove) clause(n *namer, pol polarity) string {
	s, t := n.actor(a.Supporter.Power), n.actor(a.Supported.Power)
	unit, from, to := n.unitType(a.Supported.Type), n.province(a.Supported.Province), n.province(a.Destination)
	switch pol {
	case negated:
		return s.subj + " " + s.verb("refuse") + " to support " + t.poss + " " + unit +
			" moving from " + from + " into " + to
	case uncertain:
		return s.subj + " may or may not support " + t.poss + " " + unit +
			" moving from " + from + " into " + to
	}
	return s.subj + " " + s.verb("provide") + " support with " + s.own + " " + n.unitIn(a.Supporter) +
		" so " + t.subj + " can move " + t.own + " " + unit + " from " + from + " into " + to
}

func (a *Convoy) clause(n *namer, pol polarity) string {
	c, g := n.actor(a.Carrier.Power), n.actor(a.Cargo.Power)
	carrier := c.poss + " " + n.unitIn(a.Carrier)
	cargo := g.poss + " " + n.unitType(a.Cargo.Type) + " from " + n.province(a.Cargo.Province) +
		" into " + n.province(a.Destination)
	switch pol {
	case negated:
		return carrier + " refuses to carry " + cargo
	case uncertain:
		return carrier + " may or may not convoy " + cargo
	}
	return carrier + " convoys " + cargo
}

func (a *ConvoyVia) clause(n *namer, pol polarity) string {
	o := n.actor(a.Cargo.Power)
	unit := o.poss + " " + n.unitIn(a.Cargo)
	to, route := n.province(a.Destination), n.provinces(a.Route)
	switch pol {
	case negated:
		return unit + " stays off the convoy route to " + to + " through " + route
	case uncertain:
		return unit + " may or may not take the convoy route to " + to + " through " + route
	}
	return unit + " moves by convoy to " + to + " following this path: " + route
}

func (a *Retreat) clause(n *namer, pol polarity) string {
	o := n.actor(a.Unit.Power)
	unit, from, to := n.unitType(a.Unit.Type), n.province(a.Unit.Province), n.province(a.Destination)
	switch pol {
	case negated:
		return o.poss + " " + unit + " in " + from + " keeps away from " + to + " when it retreats"
	case uncertain:
		return o.poss + " " + unit + " may or may not retreat from " + from + " to " + to
	}
	return o.poss + " " + unit + " retreats from " + from + " to " + to
}

func (a *Disband) clause(n *namer, pol polarity) string {
	o := n.actor(a.Unit.Power)
	switch pol {
	case negated:
		return o.poss + " " + n.unitIn(a.Unit) + " stays on the board"
	case uncertain:
		return o.subj + " may or may not disband " + o.own + " " + n.unitIn(a.Unit)
	}
	return o.subj + " " + o.verb("disband") + " " + o.own + " " + n.unitIn(a.Unit)
}

func (a *Build) clause(n *namer, pol polarity) string {
	o := n.actor(a.Unit.Power)
	unit, where := n.unitType(a.Unit.Type), n.province(a.Unit.Province)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("leave") + " " + where + " without a new " + unit
	case uncertain:
		return o.subj + " may or may not build a new " + unit + " in " + where
	}
	return o.subj + " " + o.verb("build") + " a new " + unit + " in " + where
}

func (a *Remove) clause(n *namer, pol polarity) string {
	o := n.actor(a.Unit.Power)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("keep") + " " + o.own + " " + n.unitIn(a.Unit)
	case uncertain:
		return o.subj + " may or may not remove " + o.own + " " + n.unitIn(a.Unit)
	}
	return o.subj + " " + o.verb("remove") + " " + o.own + " " + n.unitIn(a.Unit)
}

func (a *Waive) clause(n *namer, pol polarity) string {
	o := n.actor(a.Power)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("use") + " " + o.own + " next build phase"
	case uncertain:
		return o.subj + " may or may not waive " + o.own + " next build phase"
	}
	return o.subj + " " + o.verb("waive") + " " + o.own + " next build phase"
}

// ---- briefs -----------------------------------------------------------

func (a *Hold) brief(n *namer, pol polarity) string {
	o, where := n.actor(a.Unit.Power), n.province(a.Unit.Province)
	switch pol {
	case negated:
		return o.subj + " " + o.be() + " free to leave " + where
	case uncertain:
		return o.subj + " may or may not hold in " + where
	}
	return o.subj + " " + o.verb("hold") + " in " + where
}

func (a *MoveTo) brief(n *namer, pol polarity) string {
	o, to := n.actor(a.Unit.Power), n.province(a.Destination)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("stay") + " out of " + to
	case uncertain:
		return o.subj + " may or may not move into " + to
	}
	return o.subj + " " + o.verb("move") + " into " + to
}

func (a *SupportHold) brief(n *namer, pol polarity) string {
	s, t := n.actor(a.Supporter.Power), n.actor(a.Supported.Power)
	where := n.province(a.Supported.Province)
	switch pol {
	case negated:
		return s.subj + " " + s.verb("withhold") + " support from " + t.obj + " in " + where
	case uncertain:
		return s.subj + " may or may not support " + t.obj + " in " + where
	}
	return s.subj + " " + s.verb("support") + " " + t.obj + " in " + where
}

func (a *SupportMove) brief(n *namer, pol polarity) string {
	s, t := n.actor(a.Supporter.Power), n.actor(a.Supported.Power)
	move := t.poss + " move into " + n.province(a.Destination)
	switch pol {
	case negated:
		return s.subj + " " + s.verb("refuse") + " to support " + move
	case uncertain:
		return s.subj + " may or may not support " + move
	}
	return s.subj + " " + s.verb("support") + " " + move
}

func (a *Convoy) brief(n *namer, pol polarity) string {
	c, g := n.actor(a.Carrier.Power), n.actor(a.Cargo.Power)
	to := n.province(a.Destination)
	switch pol {
	case negated:
		return c.subj + " " + c.verb("refuse") + " to convoy " + g.obj + " to " + to
	case uncertain:
		return c.subj + " may or may not convoy " + g.obj + " to " + to
	}
	return c.subj + " " + c.verb("convoy") + " " + g.obj + " to " + to
}

func (a *ConvoyVia) brief(n *namer, pol polarity) string {
	o, to := n.actor(a.Cargo.Power), n.province(a.Destination)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("stay") + " off the convoy route to " + to
	case uncertain:
		return o.subj + " may or may not sail to " + to
	}
	return o.subj + " " + o.verb("sail") + " to " + to
}

func (a *Retreat) brief(n *namer, pol polarity) string {
	o, to := n.actor(a.Unit.Power), n.province(a.Destination)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("keep") + " away from " + to
	case uncertain:
		return o.subj + " may or may not retreat to " + to
	}
	return o.subj + " " + o.verb("retreat") + " to " + to
}

func (a *Disband) brief(n *namer, pol polarity) string {
	o, where := n.actor(a.Unit.Power), n.province(a.Unit.Province)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("stay") + " in " + where
	case uncertain:
		return o.subj + " may or may not disband in " + where
	}
	return o.subj + " " + o.verb("disband") + " in " + where
}

func (a *Build) brief(n *namer, pol polarity) string {
	o, where := n.actor(a.Unit.Power), n.province(a.Unit.Province)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("build") + " nothing in " + where
	case uncertain:
		return o.subj + " may or may not build in " + where
	}
	return o.subj + " " + o.verb("build") + " in " + where
}

func (a *Remove) brief(n *namer, pol polarity) string {
	o, where := n.actor(a.Unit.Power), n.province(a.Unit.Province)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("stay") + " in " + where
	case uncertain:
		return o.subj + " may or may not pull out of " + where
	}
	return o.subj + " " + o.verb("pull") + " out of " + where
}

func (a *Waive) brief(n *namer, pol polarity) string {
	o := n.actor(a.Power)
	switch pol {
	case negated:
		return o.subj + " " + o.verb("build") + " as usual"
	case uncertain:
		return o.subj + " may or may not skip a build"
	}
	return o.subj + " " + o.verb("skip") + " a build"
}

// ---- Arrangement renderings -------------------------------------------

func (a *Hold) Gloss(f *Frame) string             { return orderGloss(a, f) }
func (a *Hold) ListForm(f *Frame) string          { return orderListForm(a, f) }
func (a *Hold) ClauseForm(f *Frame) string        { return orderClauseForm(a, f) }
func (a *MoveTo) Gloss(f *Frame) string           { return orderGloss(a, f) }
func (a *MoveTo) ListForm(f *Frame) string        { return orderListForm(a, f) }
func (a *MoveTo) ClauseForm(f *Frame) string      { return orderClauseForm(a, f) }
func (a *SupportHold) Gloss(f *Frame) string      { return orderGloss(a, f) }
func (a *SupportHold) ListForm(f *Frame) string   { return orderListForm(a, f) }
func (a *SupportHold) ClauseForm(f *Frame) string { return orderClauseForm(a, f) }
func (a *SupportMove) Gloss(f *Frame) string      { return orderGloss(a, f) }
func (a *SupportMove) ListForm(f *Frame) string   { return orderListForm(a, f) }
func (a *SupportMove) ClauseForm(f *Frame) string { return orderClauseForm(a, f) }
func (a *Convoy) Gloss(f *Frame) string           { return orderGloss(a, f) }
func (a *Convoy) ListForm(f *Frame) string        { return orderListForm(a, f) }
func (a *Convoy) ClauseForm(f *Frame) string      { return orderClauseForm(a, f) }
func (a *ConvoyVia) Gloss(f *Frame) string        { return orderGloss(a, f) }
func (a *ConvoyVia) ListForm(f *Frame) string     { return orderListForm(a, f) }
func (a *ConvoyVia) ClauseForm(f *Frame) string   { return orderClauseForm(a, f) }
func (a *Retreat) Gloss(f *Frame) string          { return orderGloss(a, f) }
func (a *Retreat) ListForm(f *Frame) string       { return orderListForm(a, f) }
func (a *Retreat) ClauseForm(f *Frame) string     { return orderClauseForm(a, f) }
func (a *Disband) Gloss(f *Frame) string          { return orderGloss(a, f) }
func (a *Disband) ListForm(f *Frame) string       { return orderListForm(a, f) }
func (a *Disband) ClauseForm(f *Frame) string     { return orderClauseForm(a, f) }
func (a *Build) Gloss(f *Frame) string            { return orderGloss(a, f) }
func (a *Build) ListForm(f *Frame) string         { return orderListForm(a, f) }
func (a *Build) ClauseForm(f *Frame) string       { return orderClauseForm(a, f) }
func (a *Remove) Gloss(f *Frame) string           { return orderGloss(a, f) }
func (a *Remove) ListForm(f *Frame) string        { return orderListForm(a, f) }
func (a *Remove) ClauseForm(f *Frame) string      { return orderClauseForm(a, f) }
func (a *Waive) Gloss(f *Frame) string            { return orderGloss(a, f) }
func (a *Waive) ListForm(f *Frame) string         { return orderListForm(a, f) }
func (a *Waive) ClauseForm(f *Frame) string       { return orderClauseForm(a, f) }

// The XDO wrapper renders as its order.

func (a *Execute) Gloss(f *Frame) string {
	if a.Order == nil {
		return Sentinel
	}
	return a.Order.Gloss(f)
}

func (a *Execute) ListForm(f *Frame) string {
	if a.Order == nil {
		return Sentinel
	}
	return a.Order.ListForm(f)
}

func (a *Execute) ClauseForm(f *Frame) string {
	if a.Order == nil {
		return Sentinel
	}
	return a.Order.ClauseForm(f)
}
