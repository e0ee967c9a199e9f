package pressgloss

// speechContext names the speech act an arrangement is rendered for. Only
// the ancestor shapes listed here are recognized; any other chain is
// ctxUnknown and renders with the node's ListForm.
type speechContext int

const (
	ctxUnknown        speechContext = iota
	ctxFact                         // FCT (x)
	ctxProposal                     // PRP (x)
	ctxAccept                       // YES (PRP (x))
	ctxReject                       // REJ (PRP (x))
	ctxCancelProposal               // CCL (PRP (x))
	ctxCancelAccept                 // CCL (YES (PRP (x)))
	ctxConfusion                    // HUH (PRP (x)), HUH (FCT (x))
	ctxIgnore                       // BWX (PRP (x))
)

func (c speechContext) String() string {
	switch c {
	case ctxFact:
		return "fact"
	case ctxProposal:
		return "proposal"
	case ctxAccept:
		return "accept"
	case ctxReject:
		return "reject"
	case ctxCancelProposal:
		return "cancel-proposal"
	case ctxCancelAccept:
		return "cancel-accept"
	case ctxConfusion:
		return "confusion"
	case ctxIgnore:
		return "ignore"
	}
	return "unknown"
}

// polarity is set by an immediately enclosing NOT or NAR.
type polarity int

const (
	affirmed  polarity = iota
	negated            // NOT
	uncertain          // NAR
)

// situate reports the speech context and polarity of a. Orders look
// through their XDO wrapper, then one NOT or NAR, then the speech act.
func situate(a Arrangement) (speechContext, polarity) {
	up := a.Container()
	if x, ok := up.(*Execute); ok {
		up = x.Container()
	}
	pol := affirmed
	switch w := up.(type) {
	case *Negation:
		pol = negated
		up = w.Container()
	case *Uncertainty:
		pol = uncertain
		up = w.Container()
	}
	return speechOf(up), pol
}

// polarityOf is the polarity half of situate.
func polarityOf(a Arrangement) polarity {
	_, pol := situate(a)
	return pol
}

// speechOf classifies the speech act s by its own container chain.
func speechOf(s Arrangement) speechContext {
	switch s := s.(type) {
	case *Fact:
		switch s.Container().(type) {
		case nil:
			return ctxFact
		case *Confusion:
			return ctxConfusion
		}
	case *Proposal:
		switch up := s.Container().(type) {
		case nil:
			return ctxProposal
		case *Accept:
			switch up.Container().(type) {
			case nil:
				return ctxAccept
			case *Cancel:
				return ctxCancelAccept
			}
		case *Reject:
			return ctxReject
		case *Cancel:
			return ctxCancelProposal
		case *Confusion:
			return ctxConfusion
		case *Ignore:
			return ctxIgnore
		}
	}
	return ctxUnknown
}

// topic names the subject of a proposal for the short "your ... proposal"
// phrasings. When a tree mixes subjects, zones outrank moves, which outrank
// solo wins, draws, alliances and peace, in that order.
func topic(a Arrangement) string {
	seen := make(map[Operator]bool)
	Walk(a, func(n Arrangement) bool {
		op := n.Operator()
		if isOrder(n) {
			op = OpExecute
		}
		seen[op] = true
		return true
	})
	switch {
	case seen[OpDMZ]:
		return "Demilitarized Zone"
	case seen[OpExecute]:
		return "move"
	case seen[OpSolo]:
		return "solo"
	case seen[OpDraw]:
		return "draw"
	case seen[OpAlliance]:
		return "alliance"
	case seen[OpPeace]:
		return "peace"
	}
	return ""
}

// isOrder reports whether a is one of the order variants.
func isOrder(a Arrangement) bool {
	switch a.(type) {
	case *Hold, *MoveTo, *SupportHold, *SupportMove, *Convoy, *ConvoyVia,
		*Retreat, *Disband, *Build, *Remove, *Waive:
		return true
	}
	return false
}
