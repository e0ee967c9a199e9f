package pressgloss

import (
	"math/rand/v2"
	"strings"
)

// speechKind is the coarse speech act a tone frames its text around.
type speechKind int

const (
	kindStatement    speechKind = iota // PRP, FCT and anything else
	kindResponse                       // YES or REJ
	kindCancellation                   // CCL
)

// pressKeywords returns the set of bare tokens in raw press text.
func pressKeywords(raw string) map[string]bool {
	fields := strings.Fields(strings.NewReplacer("(", " ", ")", " ").Replace(strings.ToUpper(raw)))
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// toneFrame is what a tone rule may look at.
type toneFrame struct {
	gloss      string
	sender     Power
	recipients []Power
	kind       speechKind
	rejects    bool // REJ present
	proposes   bool // PRP present
	urgent     bool // Urgent accompanies the primary tone
	ref        *RefData
	rng        *rand.Rand
}

func (t *toneFrame) pick(options ...string) string {
	if t.rng == nil || len(options) < 2 {
		return options[0]
	}
	return options[t.rng.IntN(len(options))]
}

// name looks up a power in a reference column, falling back to the trigram.
func (t *toneFrame) name(p Power, column string) string {
	if s, ok := t.ref.PowerName(p, column); ok {
		return s
	}
	return string(p)
}

// hurry appends the Urgent combination clause for the speech kind.
func (t *toneFrame) hurry(s, onReject, onResponse, onProposal string) string {
	if !t.urgent {
		return s
	}
	switch {
	case t.kind == kindResponse && t.rejects:
		return s + " " + onReject
	case t.kind == kindResponse:
		return s + " " + onResponse
	case t.kind == kindStatement && t.proposes:
		return s + " " + onProposal
	}
	return s
}

// toneRule rewrites a gloss in one rhetorical style.
type toneRule func(t *toneFrame) string

// primaryTones are tried in priority order; the first present one wins.
var primaryTones = []struct {
	tone Tone
	rule toneRule
}{
	{ToneHaughty, haughty},
	{ToneObsequious, obsequious},
	{ToneHostile, hostile},
	{ToneFriendly, friendly},
	{ToneFearful, fearful},
	{ToneConfident, confident},
	{ToneEmpathetic, empathetic},
	{ToneUpset, upset},
	{ToneUrgent, urgent},
}

// ApplyTones rewrites a neutral gloss in the first primary tone of tones,
// adds the Urgent clause when Urgent accompanies another primary tone, and
// finally applies PigLatin. Confusion and ignore messages (HUH, BWX in raw)
// and empty or sentinel glosses are returned unchanged. rng may be nil.
func ApplyTones(raw, gloss string, sender Power, recipients []Power, tones ToneSet, ref *RefData, rng *rand.Rand) string {
	if gloss == "" || gloss == Sentinel {
		return gloss
	}
	kw := pressKeywords(raw)
	if kw[string(OpConfusion)] || kw[string(OpIgnore)] {
		return gloss
	}

	t := &toneFrame{
		gloss:      gloss,
		sender:     sender,
		recipients: recipients,
		rejects:    kw[string(OpReject)],
		proposes:   kw[string(OpProposal)],
		ref:        ref,
		rng:        rng,
	}
	switch {
	case kw[string(OpCancel)]:
		t.kind = kindCancellation
	case kw[string(OpAccept)] || kw[string(OpReject)]:
		t.kind = kindResponse
	}

	out := gloss
	for _, p := range primaryTones {
		if !tones.Has(p.tone) {
			continue
		}
		t.urgent = p.tone != ToneUrgent && tones.Has(ToneUrgent)
		out = p.rule(t)
		break
	}
	if tones.Has(TonePigLatin) {
		out = PigLatin(out)
	}
	return out
}

// ---- primary tones ----------------------------------------------------

func haughty(t *toneFrame) string {
	self := initcap(t.name(t.sender, ColHaughty))
	switch t.kind {
	case kindCancellation:
		return t.gloss + " Pray we do not alter the deal further."
	case kindResponse:
		s := self + " has deigned to respond to your missive: " + t.gloss
		return t.hurry(s,
			"Now leave me alone for a while, many things are afoot.",
			"I expect to see action on this matter from you soon.", "")
	}
	s := self + " demands your attention in this matter. " + t.gloss + " " +
		t.pick("What say you to that?", "We await your reply.")
	return t.hurry(s, "", "", "You don't have much time to waste in considering your response.")
}

func obsequious(t *toneFrame) string {
	switch t.kind {
	case kindCancellation:
		return t.gloss + " Sorry for bothering you."
	case kindResponse:
		s := initcap(t.name(t.sender, ColFamiliar)) + " are happy to provide a response: " + t.gloss
		return t.hurry(s,
			"Not much time to chat, but all the best for your game.",
			"I really need a response if you could be so kind.", "")
	}
	greeting := "Oh great Powers of Europe, please hear me out. "
	if len(t.recipients) == 1 {
		greeting = "Oh great leader of " + t.name(t.recipients[0], ColHaughty) + ", please hear me out. "
	}
	s := greeting + t.gloss + " Respectfully, the nation of " + t.name(t.sender, ColObjective) + "."
	return t.hurry(s, "", "", "I really need a response if you could be so kind.")
}

func hostile(t *toneFrame) string {
	switch t.kind {
	case kindCancellation:
		return t.gloss + " Don't mistake this for weakness."
	case kindResponse:
		s := "You want an answer? " + t.gloss
		return t.hurry(s, "And stay out of my way.", "Do not keep me waiting.", "")
	}
	s := t.gloss + " " + t.pick("Cross me and you will regret it.", "Think carefully before you cross me.")
	return t.hurry(s, "", "", "Answer now, or I will take silence as a refusal.")
}

func friendly(t *toneFrame) string {
	switch t.kind {
	case kindCancellation:
		return "Sorry to change plans on you, friend. " + t.gloss
	case kindResponse:
		s := "Thanks for reaching out, friend! " + t.gloss
		return t.hurry(s, "No hard feelings, I hope.", "Let's move on this quickly.", "")
	}
	s := t.pick("Hello friend! ", "Good to hear from you! ") + t.gloss + " Let me know what you think."
	return t.hurry(s, "", "", "A quick reply would help us both.")
}

func fearful(t *toneFrame) string {
	switch t.kind {
	case kindCancellation:
		return t.gloss + " Please don't hold this against me."
	case kindResponse:
		s := "I hope this doesn't upset you. " + t.gloss
		return t.hurry(s, "Please don't turn on me for this.", "Please reply soon, I'm worried.", "")
	}
	s := "I'm in a difficult spot. " + t.gloss + " Please don't leave me exposed."
	return t.hurry(s, "", "", "Time is running out for me.")
}

func confident(t *toneFrame) string {
	switch t.kind {
	case kindCancellation:
		return t.gloss + " I have better options now."
	case kindResponse:
		s := "I've thought it through. " + t.gloss
		return t.hurry(s, "My decision is final.", "Let's get it done this turn.", "")
	}
	s := t.gloss + " " + t.pick("You know this is the smart play.", "This is the obvious move for both of us.")
	return t.hurry(s, "", "", "The sooner you agree, the better for both of us.")
}

func empathetic(t *toneFrame) string {
	switch t.kind {
	case kindCancellation:
		return t.gloss + " I know this may be disappointing."
	case kindResponse:
		s := "I appreciate your position. " + t.gloss
		return t.hurry(s, "I hope you understand.", "Let's act while we can.", "")
	}
	s := "I understand how hard your position is. " + t.gloss + " I think this helps us both."
	return t.hurry(s, "", "", "I'd be grateful for a quick answer.")
}

func upset(t *toneFrame) string {
	switch t.kind {
	case kindCancellation:
		return t.gloss + " Frankly, I am disappointed it came to this."
	case kindResponse:
		s := "I can't say I'm happy about this. " + t.gloss
		return t.hurry(s, "Don't ask again.", "And I want to see it happen soon.", "")
	}
	s := "I am not pleased with how things have gone. " + t.gloss + " Things need to change."
	return t.hurry(s, "", "", "I need an answer now.")
}

// urgent is the primary rule when Urgent is the only primary tone.
func urgent(t *toneFrame) string {
	switch t.kind {
	case kindCancellation:
		return t.gloss + " Please take note of this immediately."
	case kindResponse:
		return t.gloss + " Time is short, so act on this now."
	}
	return "Time is short. " + t.gloss + " Please respond right away."
}
