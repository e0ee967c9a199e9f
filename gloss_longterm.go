package pressgloss

// phraser builds the full sentence for a node in its speech context, or ""
// when the context has no dedicated phrasing.
type phraser func(n *namer, ctx speechContext, pol polarity) string

// situatedGloss renders a through phrase, falling back to the list form for
// contexts phrase does not cover.
func situatedGloss(a Arrangement, f *Frame, phrase phraser) string {
	ctx, pol := situate(a)
	n := f.names()
	s := phrase(n, ctx, pol)
	if s == "" {
		return fallback(a, f)
	}
	return said(n, s)
}

// ---- PCE ----------------------------------------------------------------

func (a *Peace) Gloss(f *Frame) string {
	return situatedGloss(a, f, a.phrase)
}

func (a *Peace) phrase(n *namer, ctx speechContext, pol polarity) string {
	sender := n.f.Sender
	ours := hasPower(a.Parties, sender)
	partners := without(a.Parties, sender)

	switch ctx {
	case ctxProposal:
		switch pol {
		case negated:
			if ours {
				return "I propose that we end any promises of peace between us"
			}
			return "I propose that " + n.powers(a.Parties, Subjective) + " end " +
				n.powers(a.Parties, Possessive) + " treaty together"
		case uncertain:
			if ours {
				return "I propose we don't make peace at this time"
			}
			return "I propose that " + n.powers(a.Parties, Subjective) + " hold off on a peace agreement for now"
		}
		if ours {
			return n.f.pick("Let us sign a peace treaty together.", "I think we should make peace.")
		}
		who := n.powers(a.Parties, Subjective)
		if named := n.third(a.Parties, Objective); named != who && allRecipients(a.Parties, n.f.Recipients) {
			who += ", " + named + ","
		}
		return "Would " + who + " agree to end any conflict between you and sign a peace treaty?"

	case ctxAccept:
		switch pol {
		case negated:
			return "I will end any peace treaties between me and " + n.third(partners, Objective)
		case uncertain:
			return "I agree, no promise of peace with " + n.third(partners, Objective)
		}
		return "Yes, I will sign a peace treaty between " + n.third(a.Parties, Objective)

	case ctxReject:
		switch pol {
		case negated:
			if len(partners) < len(n.f.Recipients) {
				return "I won't promise not to make peace with " + n.third(partners, Objective)
			}
			return "I think a peace treaty would be a good idea between the " + n.count(a.Parties) + " of us"
		case uncertain:
			return "I can't promise I won't pursue peace between me and " + n.third(partners, Objective)
		}
		return "I will not sign a peace deal with " + n.third(partners, Objective)

	case ctxCancelProposal:
		switch pol {
		case negated:
			return "I wish to cancel my opposition to " + n.powers(a.Parties, Possessive) + " peace deal"
		case uncertain:
			return "I wish to cancel my ambivalence about " + n.powers(a.Parties, Possessive) + " peace deal"
		}
		if ours {
			return "I wish to cancel the request that we sign a peace deal"
		}
		return "I wish to cancel the request that you sign a peace deal"

	case ctxCancelAccept:
		return "I wish to cancel my agreement to your peace proposal"

	case ctxFact:
		if ours {
			with := n.powers(partners, Objective)
			switch pol {
			case negated:
				return "I broke my peace deal with " + with
			case uncertain:
				return "I may or may not have a peace deal with " + with
			}
			return "I have a peace deal with " + with
		}
		between := n.powers(a.Parties, Objective)
		switch pol {
		case negated:
			return "There is no longer a peace deal between " + between
		case uncertain:
			return "There may or may not be a peace deal between " + between
		}
		return "There is a peace deal between " + between
	}
	return ""
}

func (a *Peace) ListForm(f *Frame) string {
	n := f.names()
	g := n.group(a.Parties)
	var s string
	switch polarityOf(a) {
	case negated:
		s = g.text + " " + g.verb("stay") + " at war"
	case uncertain:
		s = g.text + " may or may not make peace"
	default:
		s = g.text + " " + g.verb("make") + " peace"
	}
	return n.done(s)
}

func (a *Peace) ClauseForm(f *Frame) string {
	n := f.names()
	between := " between " + n.powers(a.Parties, Objective)
	var s string
	switch polarityOf(a) {
	case negated:
		s = "war goes on" + between
	case uncertain:
		s = "peace may or may not hold" + between
	default:
		s = "peace holds" + between
	}
	return n.done(s)
}

// ---- ALY ... VSS ... ----------------------------------------------------

func (a *Alliance) Gloss(f *Frame) string {
	return situatedGloss(a, f, a.phrase)
}

func (a *Alliance) phrase(n *namer, ctx speechContext, pol polarity) string {
	f := n.f
	ours := hasPower(a.Allies, f.Sender)
	targeted := hasPower(a.Opponents, f.Sender)
	allies := without(a.Allies, f.Sender)
	versus := n.powers(a.Opponents, Objective)

	switch ctx {
	case ctxProposal:
		switch pol {
		case negated:
			switch {
			case ours:
				return "We should not ally against " + versus
			case targeted:
				return "Please do not form an alliance against " + versus
			}
			return "Don't ally together against " + versus
		case uncertain:
			switch {
			case ours:
				return "I propose we make no firm alliance against " + versus + " yet"
			case targeted:
				return "Please think twice before forming an alliance against " + versus
			}
			return "I propose you don't commit to an alliance against " + versus
		}
		var masked []Power
		for _, p := range allies {
			if !hasPower(f.Recipients, p) {
				masked = append(masked, p)
			}
		}
		if len(masked) > 0 {
			with := n.third(masked, Objective)
			switch {
			case ours:
				return "Let us declare an alliance against " + versus + " with " + with
			case len(f.Recipients) == 1:
				return "Would you declare an alliance against " + versus + " with " + with + "?"
			}
			return "Would you " + sizeWord(len(f.Recipients)) + " declare an alliance against " + versus +
				" with " + with + "?"
		}
		if ours {
			return f.pick("Let us declare an alliance against ", "Let us join forces against ") + versus
		}
		return "Would " + n.powers(a.Allies, Subjective) + " ally against " + versus + "?"

	case ctxAccept:
		switch pol {
		case negated:
			return "I will not ally with " + n.third(allies, Objective) + " against " + versus
		case uncertain:
			return "I agree that I may or may not ally against " + versus
		}
		return "Yes, I will sign an alliance between " + n.third(a.Allies, Objective) + " against " + versus

	case ctxReject:
		switch pol {
		case negated:
			return "I think an alliance against " + versus + " is a good idea"
		case uncertain:
			return "I can't promise not to ally against " + versus
		}
		return "I will not ally with " + n.third(allies, Objective) + " against " + versus

	case ctxCancelProposal:
		switch pol {
		case negated:
			return "I wish to cancel my opposition to the proposed alliance against " + versus
		case uncertain:
			return "I wish to cancel my ambivalence about the proposed alliance against " + versus
		}
		return "I wish to cancel the proposed alliance against " + versus

	case ctxCancelAccept:
		return "I wish to cancel my agreement to your alliance proposal"

	case ctxFact:
		if ours {
			with := n.powers(allies, Objective)
			switch pol {
			case negated:
				return "I do not have an alliance with " + with + " against " + versus
			case uncertain:
				return "I may or may not have an alliance with " + with + " against " + versus
			}
			return "I have an alliance with " + with + " against " + versus
		}
		between := n.powers(a.Allies, Objective)
		switch pol {
		case negated:
			return "There is no alliance between " + between + " against " + versus
		case uncertain:
			return "There may or may not be an alliance between " + between + " against " + versus
		}
		return "There is an alliance between " + between + " against " + versus
	}
	return ""
}

func (a *Alliance) ListForm(f *Frame) string {
	n := f.names()
	g := n.group(a.Allies)
	versus := n.powers(a.Opponents, Objective)
	var s string
	switch polarityOf(a) {
	case negated:
		s = g.text + " " + g.verb("refuse") + " to ally against " + versus
	case uncertain:
		s = g.text + " may or may not ally against " + versus
	default:
		s = g.text + " " + g.verb("ally") + " against " + versus
	}
	return n.done(s)
}

func (a *Alliance) ClauseForm(f *Frame) string {
	n := f.names()
	versus := n.powers(a.Opponents, Objective)
	var s string
	switch polarityOf(a) {
	case negated:
		s = "no alliance forms against " + versus
	case uncertain:
		s = "an alliance may or may not form against " + versus
	default:
		s = "an alliance forms against " + versus
	}
	return n.done(s)
}

// ---- DMZ ----------------------------------------------------------------

func (a *DMZ) Gloss(f *Frame) string {
	return situatedGloss(a, f, a.phrase)
}

func (a *DMZ) phrase(n *namer, ctx speechContext, pol polarity) string {
	zone := "the Demilitarized Zone in " + n.provinces(a.Provinces)

	switch ctx {
	case ctxProposal:
		switch pol {
		case negated:
			return "I propose that " + n.powers(a.Parties, Subjective) + " do not create a Demilitarized Zone in " +
				n.provinces(a.Provinces)
		case uncertain:
			return "I am ambivalent about " + n.powers(a.Parties, Objective) + " creating a Demilitarized Zone in " +
				n.provinces(a.Provinces)
		}
		return "I propose that " + n.powers(a.Parties, Subjective) + " agree to create a Demilitarized Zone in " +
			n.provinces(a.Provinces)

	case ctxAccept:
		switch pol {
		case negated:
			return "I agree to do my part in ignoring " + zone
		case uncertain:
			return "I agree that I may or may not respect " + zone
		}
		return "I agree to do my part in respecting " + zone

	case ctxReject:
		switch pol {
		case negated:
			return "Regardless, I will still respect " + zone
		case uncertain:
			return "I am not ambiguous about " + zone
		}
		return "I will not respect " + zone

	case ctxCancelProposal:
		switch pol {
		case negated:
			return "I wish to cancel my opposition to " + zone
		case uncertain:
			return "I wish to cancel my ambivalence about " + zone
		}
		return "I wish to cancel my proposed Demilitarized Zone in " + n.provinces(a.Provinces)

	case ctxCancelAccept:
		return "I wish to cancel my agreement to your proposal regarding " + zone

	case ctxFact:
		between := " between " + n.powers(a.Parties, Objective)
		where := "a Demilitarized Zone in " + n.provinces(a.Provinces)
		switch pol {
		case negated:
			return "There is no " + where + between
		case uncertain:
			return "There may or may not be " + where + between
		}
		return "There is " + where + between
	}
	return ""
}

func (a *DMZ) ListForm(f *Frame) string {
	n := f.names()
	g := n.group(a.Parties)
	zone := n.provinces(a.Provinces)
	own := n.powers(a.Parties, Possessive)
	var s string
	switch polarityOf(a) {
	case negated:
		s = g.text + " " + g.verb("be") + " free to enter " + zone
	case uncertain:
		s = g.text + " may or may not keep " + own + " units out of " + zone
	default:
		s = g.text + " " + g.verb("keep") + " " + own + " units out of " + zone
	}
	return n.done(s)
}

func (a *DMZ) ClauseForm(f *Frame) string {
	n := f.names()
	zone := n.provinces(a.Provinces)
	be := conjugate("be", len(a.Provinces) == 1)
	var s string
	switch polarityOf(a) {
	case negated:
		s = zone + " " + be + " open to all"
	case uncertain:
		s = zone + " may or may not be demilitarized"
	default:
		s = zone + " " + be + " demilitarized"
	}
	return n.done(s)
}
