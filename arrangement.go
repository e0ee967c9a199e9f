package pressgloss

import "strings"

// Operator is the DAIDE keyword that identifies a node.
type Operator string

const (
	OpUnknown Operator = ""

	// speech acts
	OpFact      Operator = "FCT"
	OpProposal  Operator = "PRP"
	OpAccept    Operator = "YES"
	OpReject    Operator = "REJ"
	OpCancel    Operator = "CCL"
	OpConfusion Operator = "HUH"
	OpIgnore    Operator = "BWX"

	// arrangements
	OpPeace       Operator = "PCE"
	OpAlliance    Operator = "ALY"
	OpDMZ         Operator = "DMZ"
	OpDraw        Operator = "DRW"
	OpSolo        Operator = "SLO"
	OpAnd         Operator = "AND"
	OpOr          Operator = "ORR"
	OpConditional Operator = "IFF"
	OpNegation    Operator = "NOT"
	OpUncertainty Operator = "NAR"
	OpExecute     Operator = "XDO"

	// orders
	OpHold     Operator = "HLD"
	OpMoveTo   Operator = "MTO"
	OpSupport  Operator = "SUP"
	OpConvoy   Operator = "CVY"
	OpConvoyTo Operator = "CTO"
	OpRetreat  Operator = "RTO"
	OpDisband  Operator = "DSB"
	OpBuild    Operator = "BLD"
	OpRemove   Operator = "REM"
	OpWaive    Operator = "WVE"
)

// Keywords that only appear inside other operators.
const (
	kwFrom   = "FRM"
	kwVersus = "VSS"
	kwElse   = "ELS"
	kwVia    = "VIA"
)

// Arrangement is a node of a press content tree. The set of
// implementations is closed; every node knows its enclosing node, fixed
// when the tree is built.
type Arrangement interface {
	// Operator returns the node's DAIDE keyword.
	Operator() Operator
	// Container returns the enclosing node, or nil at the root.
	Container() Arrangement
	// Children returns the directly nested nodes in source order.
	Children() []Arrangement
	// Gloss renders the node as one or more full English sentences,
	// phrased for the speech act that encloses it.
	Gloss(f *Frame) string
	// ListForm renders a short declarative fragment for a bulleted list.
	ListForm(f *Frame) string
	// ClauseForm renders a fragment that fits inside "if ... then ...".
	ClauseForm(f *Frame) string
	// DAIDE serializes the node back to press notation.
	DAIDE() string

	arrangement()
}

// node carries the container link shared by every variant.
type node struct {
	container Arrangement
}

func (n node) Container() Arrangement  { return n.container }
func (n node) Children() []Arrangement { return nil }
func (node) arrangement()              {}

// Unit is a power's army or fleet in a province.
type Unit struct {
	Power    Power
	Type     UnitType
	Province Province
}

// DAIDE renders the unit as "(ENG AMY LVP)"; coastal provinces are written
// "(SPA NCS)".
func (u Unit) DAIDE() string {
	var parts []string
	if u.Power != "" {
		parts = append(parts, string(u.Power))
	}
	if u.Type != "" {
		parts = append(parts, string(u.Type))
	}
	if u.Province != "" {
		parts = append(parts, provinceDAIDE(u.Province))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func provinceDAIDE(p Province) string {
	base, coast := splitCoast(p)
	if coast == "" {
		return string(p)
	}
	return "(" + string(base) + " " + coast + ")"
}

func powersDAIDE(list []Power) string {
	parts := make([]string, len(list))
	for i, p := range list {
		parts[i] = string(p)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func provincesDAIDE(list []Province) string {
	parts := make([]string, len(list))
	for i, p := range list {
		parts[i] = provinceDAIDE(p)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// wrap serializes an optional child inside brackets.
func wrap(a Arrangement) string {
	if a == nil {
		return "()"
	}
	return "(" + a.DAIDE() + ")"
}

func nonNil(list ...Arrangement) []Arrangement {
	out := make([]Arrangement, 0, len(list))
	for _, a := range list {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// ---- speech acts ------------------------------------------------------

// speech is the shared body of the single-child speech acts.
type speech struct {
	node
	Details Arrangement
}

func (s *speech) Children() []Arrangement { return nonNil(s.Details) }

// Fact asserts its details (FCT).
type Fact struct{ speech }

// Proposal proposes its details (PRP).
type Proposal struct{ speech }

// Accept agrees to a proposal (YES).
type Accept struct{ speech }

// Reject turns down a proposal (REJ).
type Reject struct{ speech }

// Cancel withdraws a proposal or an acceptance (CCL).
type Cancel struct{ speech }

// Confusion reports that a message was not understood (HUH).
type Confusion struct{ speech }

// Ignore declines to answer (BWX).
type Ignore struct{ speech }

func (*Fact) Operator() Operator      { return OpFact }
func (*Proposal) Operator() Operator  { return OpProposal }
func (*Accept) Operator() Operator    { return OpAccept }
func (*Reject) Operator() Operator    { return OpReject }
func (*Cancel) Operator() Operator    { return OpCancel }
func (*Confusion) Operator() Operator { return OpConfusion }
func (*Ignore) Operator() Operator    { return OpIgnore }

func (a *Fact) DAIDE() string      { return string(OpFact) + " " + wrap(a.Details) }
func (a *Proposal) DAIDE() string  { return string(OpProposal) + " " + wrap(a.Details) }
func (a *Accept) DAIDE() string    { return string(OpAccept) + " " + wrap(a.Details) }
func (a *Reject) DAIDE() string    { return string(OpReject) + " " + wrap(a.Details) }
func (a *Cancel) DAIDE() string    { return string(OpCancel) + " " + wrap(a.Details) }
func (a *Confusion) DAIDE() string { return string(OpConfusion) + " " + wrap(a.Details) }
func (a *Ignore) DAIDE() string    { return string(OpIgnore) + " " + wrap(a.Details) }

// ---- long-term arrangements -------------------------------------------

// Peace is a peace treaty between its parties (PCE).
type Peace struct {
	node
	Parties []Power
}

// Alliance joins allies against opponents (ALY ... VSS ...).
type Alliance struct {
	node
	Allies    []Power
	Opponents []Power
}

// DMZ keeps the parties' units out of the provinces.
type DMZ struct {
	node
	Parties   []Power
	Provinces []Province
}

func (*Peace) Operator() Operator    { return OpPeace }
func (*Alliance) Operator() Operator { return OpAlliance }
func (*DMZ) Operator() Operator      { return OpDMZ }

func (a *Peace) DAIDE() string { return string(OpPeace) + " " + powersDAIDE(a.Parties) }

func (a *Alliance) DAIDE() string {
	return string(OpAlliance) + " " + powersDAIDE(a.Allies) + " " + kwVersus + " " + powersDAIDE(a.Opponents)
}

func (a *DMZ) DAIDE() string {
	return string(OpDMZ) + " " + powersDAIDE(a.Parties) + " " + provincesDAIDE(a.Provinces)
}

// ---- end-game arrangements --------------------------------------------

// Draw ends the game in a draw, optionally among named parties (DRW).
type Draw struct {
	node
	Parties []Power
}

// Solo ends the game with a single winner (SLO).
type Solo struct {
	node
	Winner Power
}

func (*Draw) Operator() Operator { return OpDraw }
func (*Solo) Operator() Operator { return OpSolo }

func (a *Draw) DAIDE() string {
	if len(a.Parties) == 0 {
		return string(OpDraw)
	}
	return string(OpDraw) + " " + powersDAIDE(a.Parties)
}

func (a *Solo) DAIDE() string {
	if a.Winner == "" {
		return string(OpSolo) + " ()"
	}
	return string(OpSolo) + " (" + string(a.Winner) + ")"
}

// ---- logical connectives ----------------------------------------------

// And requires every item (AND).
type And struct {
	node
	Items []Arrangement
}

// Or requires one of the items (ORR).
type Or struct {
	node
	Items []Arrangement
}

// Conditional is IFF antecedent consequent [ELS alternative].
type Conditional struct {
	node
	Antecedent  Arrangement
	Consequent  Arrangement
	Alternative Arrangement
}

// Negation denies its inner arrangement (NOT).
type Negation struct {
	node
	Inner Arrangement
}

// Uncertainty leaves its inner arrangement unconfirmed (NAR).
type Uncertainty struct {
	node
	Inner Arrangement
}

// Execute wraps an order (XDO).
type Execute struct {
	node
	Order Arrangement
}

func (*And) Operator() Operator         { return OpAnd }
func (*Or) Operator() Operator          { return OpOr }
func (*Conditional) Operator() Operator { return OpConditional }
func (*Negation) Operator() Operator    { return OpNegation }
func (*Uncertainty) Operator() Operator { return OpUncertainty }
func (*Execute) Operator() Operator     { return OpExecute }

func (a *And) Children() []Arrangement { return nonNil(a.Items...) }
func (a *Or) Children() []Arrangement  { return nonNil(a.Items...) }
func (a *Conditional) Children() []Arrangement {
	return nonNil(a.Antecedent, a.Consequent, a.Alternative)
}
func (a *Negation) Children() []Arrangement    { return nonNil(a.Inner) }
func (a *Uncertainty) Children() []Arrangement { return nonNil(a.Inner) }
func (a *Execute) Children() []Arrangement     { return nonNil(a.Order) }

func itemsDAIDE(op Operator, items []Arrangement) string {
	var b strings.Builder
	b.WriteString(string(op))
	for _, it := range items {
		b.WriteString(" ")
		b.WriteString(wrap(it))
	}
	return b.String()
}

func (a *And) DAIDE() string { return itemsDAIDE(OpAnd, a.Items) }
func (a *Or) DAIDE() string  { return itemsDAIDE(OpOr, a.Items) }

func (a *Conditional) DAIDE() string {
	s := string(OpConditional) + " " + wrap(a.Antecedent) + " " + wrap(a.Consequent)
	if a.Alternative != nil {
		s += " " + kwElse + " " + wrap(a.Alternative)
	}
	return s
}

func (a *Negation) DAIDE() string    { return string(OpNegation) + " " + wrap(a.Inner) }
func (a *Uncertainty) DAIDE() string { return string(OpUncertainty) + " " + wrap(a.Inner) }
func (a *Execute) DAIDE() string     { return string(OpExecute) + " " + wrap(a.Order) }

// ---- orders -----------------------------------------------------------

// Hold keeps a unit in place.
type Hold struct {
	node
	Unit Unit
}

// MoveTo moves a unit to a destination.
type MoveTo struct {
	node
	Unit        Unit
	Destination Province
}

// SupportHold supports another unit holding.
type SupportHold struct {
	node
	Supporter Unit
	Supported Unit
}

// SupportMove supports another unit moving to a destination.
type SupportMove struct {
	node
	Supporter   Unit
	Supported   Unit
	Destination Province
}

// Convoy carries an army across a sea province.
type Convoy struct {
	node
	Carrier     Unit
	Cargo       Unit
	Destination Province
}

// ConvoyVia moves an army by convoy along a route of seas.
type ConvoyVia struct {
	node
	Cargo       Unit
	Destination Province
	Route       []Province
}

// Retreat moves a dislodged unit.
type Retreat struct {
	node
	Unit        Unit
	Destination Province
}

// Disband removes a dislodged unit.
type Disband struct {
	node
	Unit Unit
}

// Build places a new unit.
type Build struct {
	node
	Unit Unit
}

// Remove removes a unit during adjustments.
type Remove struct {
	node
	Unit Unit
}

// Waive skips a build.
type Waive struct {
	node
	Power Power
}

func (*Hold) Operator() Operator        { return OpHold }
func (*MoveTo) Operator() Operator      { return OpMoveTo }
func (*SupportHold) Operator() Operator { return OpSupport }
func (*SupportMove) Operator() Operator { return OpSupport }
func (*Convoy) Operator() Operator      { return OpConvoy }
func (*ConvoyVia) Operator() Operator   { return OpConvoyTo }
func (*Retreat) Operator() Operator     { return OpRetreat }
func (*Disband) Operator() Operator     { return OpDisband }
func (*Build) Operator() Operator       { return OpBuild }
func (*Remove) Operator() Operator      { return OpRemove }
func (*Waive) Operator() Operator       { return OpWaive }

func (a *Hold) DAIDE() string { return a.Unit.DAIDE() + " " + string(OpHold) }

func (a *MoveTo) DAIDE() string {
	return a.Unit.DAIDE() + " " + string(OpMoveTo) + " " + provinceDAIDE(a.Destination)
}

func (a *SupportHold) DAIDE() string {
	return a.Supporter.DAIDE() + " " + string(OpSupport) + " " + a.Supported.DAIDE()
}

func (a *SupportMove) DAIDE() string {
	return a.Supporter.DAIDE() + " " + string(OpSupport) + " " + a.Supported.DAIDE() +
		" " + string(OpMoveTo) + " " + provinceDAIDE(a.Destination)
}

func (a *Convoy) DAIDE() string {
	return a.Carrier.DAIDE() + " " + string(OpConvoy) + " " + a.Cargo.DAIDE() +
		" " + string(OpConvoyTo) + " " + provinceDAIDE(a.Destination)
}

func (a *ConvoyVia) DAIDE() string {
	return a.Cargo.DAIDE() + " " + string(OpConvoyTo) + " " + provinceDAIDE(a.Destination) +
		" " + kwVia + " " + provincesDAIDE(a.Route)
}

func (a *Retreat) DAIDE() string {
	return a.Unit.DAIDE() + " " + string(OpRetreat) + " " + provinceDAIDE(a.Destination)
}

func (a *Disband) DAIDE() string { return a.Unit.DAIDE() + " " + string(OpDisband) }
func (a *Build) DAIDE() string   { return a.Unit.DAIDE() + " " + string(OpBuild) }
func (a *Remove) DAIDE() string  { return a.Unit.DAIDE() + " " + string(OpRemove) }
func (a *Waive) DAIDE() string   { return string(a.Power) + " " + string(OpWaive) }

// ---- fallback ---------------------------------------------------------

// Unknown holds a list that matched no operator. It renders as the
// sentinel and serializes back to its source.
type Unknown struct {
	node
	Raw []Expr
}

func (*Unknown) Operator() Operator { return OpUnknown }
func (a *Unknown) DAIDE() string    { return joinExprs(a.Raw) }

// ToDAIDE serializes a content tree; nil yields "".
func ToDAIDE(a Arrangement) string {
	if a == nil {
		return ""
	}
	return a.DAIDE()
}

// Walk visits a and its descendants in pre-order. Returning false from fn
// skips the node's children.
func Walk(a Arrangement, fn func(Arrangement) bool) {
	if a == nil {
		return
	}
	if !fn(a) {
		return
	}
	for _, c := range a.Children() {
		Walk(c, fn)
	}
}
