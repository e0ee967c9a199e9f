package pressgloss

// ---- NOT / NAR ----------------------------------------------------------

// Negation and Uncertainty have no words of their own: the inner node reads
// its polarity from them and phrases itself accordingly.

func (a *Negation) Gloss(f *Frame) string      { return inner(a.Inner, f, Arrangement.Gloss) }
func (a *Negation) ListForm(f *Frame) string   { return inner(a.Inner, f, Arrangement.ListForm) }
func (a *Negation) ClauseForm(f *Frame) string { return inner(a.Inner, f, Arrangement.ClauseForm) }

func (a *Uncertainty) Gloss(f *Frame) string      { return inner(a.Inner, f, Arrangement.Gloss) }
func (a *Uncertainty) ListForm(f *Frame) string   { return inner(a.Inner, f, Arrangement.ListForm) }
func (a *Uncertainty) ClauseForm(f *Frame) string { return inner(a.Inner, f, Arrangement.ClauseForm) }

func inner(a Arrangement, f *Frame, render func(Arrangement, *Frame) string) string {
	if a == nil {
		return Sentinel
	}
	return render(a, f)
}

// ---- AND / ORR ----------------------------------------------------------

// comboIntros lead a bulleted AND list, per context and polarity.
var comboIntros = map[speechContext][3]string{
	ctxProposal: {
		"I propose all of the following:",
		"I oppose the following combination:",
		"I am ambivalent about the following combination:",
	},
	ctxAccept: {
		"I agree to all of the following:",
		"I agree to avoid the following combination:",
		"I agree that the following may or may not happen together:",
	},
	ctxReject: {
		"I reject the following combination:",
		"I will go ahead with the following combination regardless:",
		"I am not ambiguous about the following combination:",
	},
	ctxCancelProposal: {
		"I wish to cancel my proposal of the following:",
		"I wish to cancel my opposition to the following:",
		"I wish to cancel my ambivalence about the following:",
	},
	ctxCancelAccept: {
		"I wish to cancel my agreement to the following:",
		"I wish to cancel my agreement to the following:",
		"I wish to cancel my agreement to the following:",
	},
	ctxFact: {
		"All of the following are true:",
		"The following are not all true:",
		"The following may or may not all be true:",
	},
}

// choiceIntros lead a bulleted ORR list.
var choiceIntros = map[speechContext][3]string{
	ctxProposal: {
		"I propose one of the following:",
		"I oppose each of the following:",
		"I am ambivalent about each of the following:",
	},
	ctxAccept: {
		"I agree to one of the following:",
		"I agree to avoid each of the following:",
		"I agree that any of the following may or may not happen:",
	},
	ctxReject: {
		"I reject every one of the following:",
		"I will go ahead with one of the following regardless:",
		"I am not ambiguous about the following:",
	},
	ctxCancelProposal: {
		"I wish to cancel my proposal of one of the following:",
		"I wish to cancel my opposition to the following:",
		"I wish to cancel my ambivalence about the following:",
	},
	ctxCancelAccept: {
		"I wish to cancel my agreement to one of the following:",
		"I wish to cancel my agreement to one of the following:",
		"I wish to cancel my agreement to one of the following:",
	},
	ctxFact: {
		"One of the following is true:",
		"None of the following is true:",
		"Any of the following may or may not be true:",
	},
}

// listItems renders each item's list form; ok is false when any of them,
// or the list itself, is empty or unusable.
func listItems(items []Arrangement, f *Frame, render func(Arrangement, *Frame) string) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == nil {
			return nil, false
		}
		s := render(it, f)
		if s == "" || s == Sentinel {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func connectiveGloss(a Arrangement, items []Arrangement, f *Frame, intros map[speechContext][3]string) string {
	ctx, pol := situate(a)
	intro, ok := intros[ctx]
	if !ok {
		return fallback(a, f)
	}
	lines, ok := listItems(items, f, Arrangement.ListForm)
	if !ok {
		return Sentinel
	}
	return intro[pol] + " " + bulletList(lines)
}

func (a *And) Gloss(f *Frame) string { return connectiveGloss(a, a.Items, f, comboIntros) }
func (a *Or) Gloss(f *Frame) string  { return connectiveGloss(a, a.Items, f, choiceIntros) }

func (a *And) ListForm(f *Frame) string {
	lines, ok := listItems(a.Items, f, Arrangement.ListForm)
	if !ok {
		return Sentinel
	}
	return "all of these: " + bulletList(lines)
}

func (a *Or) ListForm(f *Frame) string {
	lines, ok := listItems(a.Items, f, Arrangement.ListForm)
	if !ok {
		return Sentinel
	}
	return "one of these: " + bulletList(lines)
}

func (a *And) ClauseForm(f *Frame) string {
	parts, ok := listItems(a.Items, f, Arrangement.ClauseForm)
	if !ok {
		return Sentinel
	}
	return joinAnd(parts)
}

func (a *Or) ClauseForm(f *Frame) string {
	parts, ok := listItems(a.Items, f, Arrangement.ClauseForm)
	if !ok {
		return Sentinel
	}
	return joinOr(parts)
}

// ---- IFF ... ELS ... ----------------------------------------------------

// conditionPrefixes introduce "if ..., then ..." per context and polarity.
var conditionPrefixes = map[speechContext][3]string{
	ctxProposal: {
		"I propose that ",
		"I don't think it should be that ",
		"I'm not sure whether it should be that ",
	},
	ctxAccept: {
		"I agree that ",
		"I agree it should not be that ",
		"I agree it may or may not be that ",
	},
	ctxReject: {
		"I don't agree that ",
		"I insist that ",
		"I am not ambiguous that ",
	},
	ctxCancelProposal: {
		"I wish to withdraw my proposal that ",
		"I wish to withdraw my opposition to the idea that ",
		"I wish to withdraw my ambivalence about the idea that ",
	},
	ctxCancelAccept: {
		"I wish to withdraw my agreement that ",
		"I wish to withdraw my agreement that ",
		"I wish to withdraw my agreement that ",
	},
	ctxFact: {
		"",
		"It is not true that ",
		"It may or may not be true that ",
	},
}

// parts renders the antecedent, consequent and optional alternative as
// clauses. ok is false when a required part is missing or unusable.
func (a *Conditional) parts(f *Frame) (cond, then, otherwise string, ok bool) {
	if a.Antecedent == nil || a.Consequent == nil {
		return "", "", "", false
	}
	cond, then = a.Antecedent.ClauseForm(f), a.Consequent.ClauseForm(f)
	if cond == Sentinel || then == Sentinel || cond == "" || then == "" {
		return "", "", "", false
	}
	if a.Alternative != nil {
		otherwise = a.Alternative.ClauseForm(f)
		if otherwise == Sentinel || otherwise == "" {
			return "", "", "", false
		}
	}
	return cond, then, otherwise, true
}

func (a *Conditional) Gloss(f *Frame) string {
	ctx, pol := situate(a)
	prefix, ok := conditionPrefixes[ctx]
	if !ok {
		return fallback(a, f)
	}
	cond, then, otherwise, ok := a.parts(f)
	if !ok {
		return Sentinel
	}
	s := initcap(prefix[pol] + "if " + cond + ", then " + then + ".")
	if otherwise != "" {
		s += " Otherwise, " + otherwise + "."
	}
	return s
}

func (a *Conditional) ListForm(f *Frame) string {
	cond, then, otherwise, ok := a.parts(f)
	if !ok {
		return Sentinel
	}
	s := "if " + cond + ", then " + then
	if otherwise != "" {
		s += ", otherwise " + otherwise
	}
	return s
}

func (a *Conditional) ClauseForm(f *Frame) string {
	cond, then, otherwise, ok := a.parts(f)
	if !ok {
		return Sentinel
	}
	s := then + " if " + cond
	if otherwise != "" {
		s += ", else " + otherwise
	}
	return s
}
