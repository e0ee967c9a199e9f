package pressgloss

// Speech acts render by delegating to their details, which read the
// speech act back through their container chain. Confusion and Ignore
// answer for themselves.

func (s *speech) Gloss(f *Frame) string {
	if s.Details == nil {
		return Sentinel
	}
	return s.Details.Gloss(f)
}

func (s *speech) ListForm(f *Frame) string {
	if s.Details == nil {
		return Sentinel
	}
	return s.Details.ListForm(f)
}

func (s *speech) ClauseForm(f *Frame) string {
	if s.Details == nil {
		return Sentinel
	}
	return s.Details.ClauseForm(f)
}

// Gloss says which proposal or claim was not understood.
func (a *Confusion) Gloss(f *Frame) string {
	switch d := a.Details.(type) {
	case *Proposal:
		if t := topic(d.Details); t != "" {
			return "I don't understand your " + t + " proposal."
		}
		return "I don't understand your proposal."
	case *Fact:
		if neg, ok := d.Details.(*Negation); ok && neg.Inner != nil {
			c := neg.Inner.ClauseForm(f)
			if c == Sentinel {
				return "I don't understand what you are denying."
			}
			return "I don't understand why you say " + c + "."
		}
		if d.Details != nil {
			if c := d.Details.ClauseForm(f); c != Sentinel {
				return "I don't understand what you mean when you say " + c + "."
			}
		}
		return "I don't understand your claim."
	}
	return "I don't understand your message."
}

// Gloss of an ignored message is empty: there is nothing to say.
func (*Ignore) Gloss(*Frame) string      { return "" }
func (*Ignore) ListForm(*Frame) string   { return "" }
func (*Ignore) ClauseForm(*Frame) string { return "" }

func (*Unknown) Gloss(*Frame) string      { return Sentinel }
func (*Unknown) ListForm(*Frame) string   { return Sentinel }
func (*Unknown) ClauseForm(*Frame) string { return Sentinel }

// fallback renders a node whose context has no dedicated phrasing as a
// sentence built from its list form.
func fallback(a Arrangement, f *Frame) string {
	s := a.ListForm(f)
	if s == Sentinel || s == "" {
		return s
	}
	return sentence(initcap(s))
}

// said finishes a phrasing built with n: the sentinel when any name was
// missing, otherwise s as a sentence.
func said(n *namer, s string) string {
	return n.done(sentence(s))
}
