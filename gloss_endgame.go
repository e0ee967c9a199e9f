package pressgloss

// ---- DRW ----------------------------------------------------------------

func (a *Draw) Gloss(f *Frame) string {
	return situatedGloss(a, f, a.phrase)
}

func (a *Draw) phrase(n *namer, ctx speechContext, pol polarity) string {
	f := n.f
	open := len(a.Parties) == 0
	ours := hasPower(a.Parties, f.Sender)

	// between names the parties from the sender's side: "England, Italy and me".
	between := func() string { return " between " + n.third(a.Parties, Objective) }

	switch ctx {
	case ctxProposal:
		switch pol {
		case negated:
			if open {
				return "I wouldn't agree to a draw with " + n.powers(f.Recipients, Objective)
			}
			return "I wouldn't agree to a draw" + between()
		case uncertain:
			if open {
				return "I am not sure a draw is the right outcome yet"
			}
			return "I am not sure a draw" + between() + " is the right outcome yet"
		}
		if open {
			return f.pick("Are you amenable to a draw?", "Would you consider a draw?")
		}
		return "Are you amenable to a draw" + between() + "?"

	case ctxAccept:
		switch pol {
		case negated:
			return "You're right, it's not the time for a draw"
		case uncertain:
			return "I agree, a draw may or may not be right at this time"
		}
		switch {
		case open:
			return "Yes, I agree to a draw"
		case ours:
			return "Yes, I agree to a draw between our " + n.count(a.Parties) + " countries"
		}
		return "Yes, I agree to a draw" + between()

	case ctxReject:
		switch pol {
		case negated:
			return "I will still be seeking a draw condition"
		case uncertain:
			return "I think a draw is very possible now"
		}
		if open {
			return "I reject a draw"
		}
		return "I reject a draw" + between()

	case ctxCancelProposal:
		switch pol {
		case negated:
			return "I wish to cancel my opposition to a draw"
		case uncertain:
			return "I wish to cancel my ambivalence about a draw"
		}
		return "I wish to cancel the proposed draw"

	case ctxCancelAccept:
		return "I wish to cancel my agreement to your draw proposal"

	case ctxFact:
		switch pol {
		case negated:
			switch {
			case open:
				return "I am not in a draw condition"
			case ours:
				return "I am not in a draw condition with " + n.powers(without(a.Parties, f.Sender), Objective)
			}
			return "There is no draw condition" + between()
		case uncertain:
			switch {
			case open:
				return "A draw is not something I've considered"
			case ours:
				return "I haven't considered a draw with " + n.powers(without(a.Parties, f.Sender), Objective)
			}
			return "I haven't considered a draw" + between()
		}
		switch {
		case open:
			return "I am in a draw condition"
		case ours:
			return "I am in a draw condition with " + n.powers(without(a.Parties, f.Sender), Objective)
		}
		return "There is a draw condition" + between()
	}
	return ""
}

func (a *Draw) ListForm(f *Frame) string {
	n := f.names()
	var s string
	switch polarityOf(a) {
	case negated:
		s = "the game goes on without a draw"
	case uncertain:
		s = "the game may or may not end in a draw"
	default:
		s = "the game ends in a draw"
	}
	if len(a.Parties) > 0 {
		s += " between " + n.third(a.Parties, Objective)
	}
	return n.done(s)
}

func (a *Draw) ClauseForm(f *Frame) string {
	n := f.names()
	var s string
	switch polarityOf(a) {
	case negated:
		s = "there is no draw"
	case uncertain:
		s = "a draw may or may not come"
	default:
		s = "the game is drawn"
	}
	if len(a.Parties) > 0 {
		s += " among " + n.third(a.Parties, Objective)
	}
	return n.done(s)
}

// ---- SLO ----------------------------------------------------------------

func (a *Solo) Gloss(f *Frame) string {
	return situatedGloss(a, f, a.phrase)
}

// soloBidder says whose solo win is meant: the sender's, the sole
// recipient's, or someone else's.
type soloBidder int

const (
	bidderOther soloBidder = iota
	bidderSelf
	bidderYou
)

func (a *Solo) bidder(f *Frame) soloBidder {
	switch {
	case a.Winner != "" && a.Winner == f.Sender:
		return bidderSelf
	case a.Winner != "" && f.soleRecipient(a.Winner):
		return bidderYou
	}
	return bidderOther
}

func (a *Solo) phrase(n *namer, ctx speechContext, pol polarity) string {
	w := n.actor(a.Winner)
	who := a.bidder(n.f)

	switch ctx {
	case ctxProposal:
		switch pol {
		case negated:
			switch who {
			case bidderSelf:
				return "You should not let me go for a solo win"
			case bidderYou:
				return "I wouldn't try for a solo win if I were you"
			}
			return "We should not let " + w.obj + " go for a solo victory"
		case uncertain:
			switch who {
			case bidderSelf:
				return "You should not support my solo win attempt"
			case bidderYou:
				return "I won't pledge support of your solo win"
			}
			return "We should not support " + w.poss + " solo victory"
		}
		switch who {
		case bidderSelf:
			return "You should let me go for a solo win"
		case bidderYou:
			return "You should go for a solo win, I won't get in your way"
		}
		return "We should let " + w.obj + " go for a solo victory"

	case ctxAccept:
		switch pol {
		case negated:
			switch who {
			case bidderSelf:
				return "I will not pursue a solo win"
			case bidderYou:
				return "I agree you shouldn't pursue a solo win bid"
			}
			return "I agree that " + w.subj + " should not pursue a solo win"
		case uncertain:
			switch who {
			case bidderSelf:
				return "If I pursue a solo win, I won't rely on your support"
			case bidderYou:
				return "I agree that you can't rely on me to support your solo win bid"
			}
			return "I agree that " + w.subj + " should not rely on me to support a solo win"
		}
		switch who {
		case bidderSelf:
			return "I will use your support to pursue a solo win"
		case bidderYou:
			return "I will support your solo win bid"
		}
		return "I will support " + w.poss + " solo win bid"

	case ctxReject:
		switch pol {
		case negated:
			switch who {
			case bidderSelf:
				return "I will pursue a solo win if I want to"
			case bidderYou:
				return "I think you are going for a solo win despite what you say"
			}
			return "I think " + w.subj + " is going for a solo win despite what you say"
		case uncertain:
			switch who {
			case bidderSelf:
				return "A solo win is still on the table if I want it"
			case bidderYou:
				return "I don't know what your intentions for a solo win are"
			}
			return "I don't know what " + w.poss + " intentions for a solo win are"
		}
		switch who {
		case bidderSelf:
			return "I am not pursuing a solo win at this time"
		case bidderYou:
			return "I will block your attempt at a solo win"
		}
		return "I will block " + w.poss + " solo win bid"

	case ctxCancelProposal:
		switch pol {
		case negated:
			return "I wish to cancel my opposition to " + w.poss + " solo win"
		case uncertain:
			return "I wish to cancel my ambivalence about " + w.poss + " solo win"
		}
		return "I wish to cancel my support for " + w.poss + " solo win"

	case ctxCancelAccept:
		return "I wish to cancel my agreement to your solo proposal"

	case ctxFact:
		switch pol {
		case negated:
			return initcap(w.subj) + " " + w.be() + " not going for a solo win"
		case uncertain:
			if who == bidderSelf {
				return "A solo win is not something I've considered"
			}
			return "I haven't considered a solo win by " + w.obj
		}
		return initcap(w.subj) + " " + w.be() + " going for a solo win"
	}
	return ""
}

func (a *Solo) ListForm(f *Frame) string {
	n := f.names()
	w := n.actor(a.Winner)
	var s string
	switch polarityOf(a) {
	case negated:
		s = w.subj + " " + w.be() + " denied a solo win"
	case uncertain:
		s = w.subj + " may or may not win the game outright"
	default:
		s = w.subj + " " + w.verb("win") + " the game outright"
	}
	return n.done(s)
}

func (a *Solo) ClauseForm(f *Frame) string {
	n := f.names()
	w := n.actor(a.Winner)
	var s string
	switch polarityOf(a) {
	case negated:
		s = w.subj + " " + w.verb("fall") + " short of a solo"
	case uncertain:
		s = w.subj + " may or may not win"
	default:
		s = w.subj + " " + w.verb("win")
	}
	return n.done(s)
}
