package pressgloss

import "math/rand/v2"

// Frame is the point of view a tree is rendered from: who speaks, who
// listens, which tones are active, and where names come from. A Frame is
// used by one goroutine at a time; build one per call.
type Frame struct {
	Sender     Power
	Recipients []Power
	Tones      ToneSet

	ref *RefData
	rng *rand.Rand
	// varied allows the random "you and me" -> "us" collapse used for
	// synthesized text.
	varied bool
}

// NewFrame returns a frame for rendering press from sender to recipients.
// rng may be nil, in which case every phrasing choice takes its first
// option.
func NewFrame(ref *RefData, sender Power, recipients []Power, tones ToneSet, rng *rand.Rand) *Frame {
	if tones == nil {
		tones = NewToneSet()
	}
	return &Frame{
		Sender:     sender,
		Recipients: recipients,
		Tones:      tones,
		ref:        ref,
		rng:        rng,
	}
}

// pick returns one of the options, the first when the frame has no
// random source.
func (f *Frame) pick(options ...string) string {
	if f.rng == nil || len(options) < 2 {
		return options[0]
	}
	return options[f.rng.IntN(len(options))]
}

// soleRecipient reports whether p is the only recipient.
func (f *Frame) soleRecipient(p Power) bool {
	return len(f.Recipients) == 1 && f.Recipients[0] == p
}

// expert reports whether order shorthand should be appended.
func (f *Frame) expert() bool {
	return f.Tones.Has(ToneExpert)
}

// ---- names ------------------------------------------------------------

// namer looks names up and remembers whether any lookup failed, so a
// rendering can report the sentinel once at the end.
type namer struct {
	f   *Frame
	bad bool
}

func (f *Frame) names() *namer {
	return &namer{f: f}
}

// check marks the rendering as unusable when s is the sentinel or empty.
func (n *namer) check(s string) string {
	if s == "" || s == Sentinel {
		n.bad = true
	}
	return s
}

func (n *namer) power(p Power) string {
	s, ok := n.f.ref.PowerName(p, ColObjective)
	if !ok {
		n.bad = true
	}
	return s
}

func (n *namer) province(p Province) string {
	s, ok := n.f.ref.ProvinceName(p)
	if !ok {
		n.bad = true
	}
	return s
}

func (n *namer) provinces(list []Province) string {
	return n.check(n.f.ref.FormatProvinces(list))
}

func (n *namer) unitType(u UnitType) string {
	s, ok := n.f.ref.UnitName(u)
	if !ok {
		n.bad = true
	}
	return s
}

// powers formats a list relative to the frame's sender and recipients.
func (n *namer) powers(list []Power, c Case) string {
	return n.check(n.f.formatPowers(list, n.f.Recipients, c))
}

// third formats a list naming every power except the sender, who is
// still "me" or "I".
func (n *namer) third(list []Power, c Case) string {
	return n.check(n.f.formatPowers(list, nil, c))
}

// count spells out the size of a list.
func (n *namer) count(list []Power) string {
	if len(list) == 0 {
		n.bad = true
	}
	return sizeWord(len(list))
}

// done returns s, or the sentinel if any lookup failed.
func (n *namer) done(s string) string {
	if n.bad {
		return Sentinel
	}
	return s
}

// formatPowers applies FormatPowers and, in varied frames, sometimes
// shortens "you and me" to "us".
func (f *Frame) formatPowers(list, recipients []Power, c Case) string {
	s := f.ref.FormatPowers(list, f.Sender, recipients, c)
	if f.varied && f.rng != nil && f.rng.IntN(2) == 0 {
		switch s {
		case "you and me":
			s = "us"
		case "you and I":
			s = "we"
		}
	}
	return s
}

// ---- actors -----------------------------------------------------------

// actor is a power seen from the frame: "I", "you" or a name, with the
// matching possessives and verb agreement.
type actor struct {
	subj   string // I, you, France
	obj    string // me, you, France
	poss   string // my, your, France's
	own    string // my, your, their
	person int    // 1, 2 or 3
}

func (n *namer) actor(p Power) actor {
	switch {
	case p != "" && p == n.f.Sender:
		return actor{subj: "I", obj: "me", poss: "my", own: "my", person: 1}
	case p != "" && n.f.soleRecipient(p):
		return actor{subj: "you", obj: "you", poss: "your", own: "your", person: 2}
	}
	name := n.power(p)
	return actor{subj: name, obj: name, poss: name + "'s", own: "their", person: 3}
}

// verb conjugates a present-tense verb for the actor.
func (a actor) verb(base string) string {
	return conjugate(base, a.person == 3)
}

// conjugate returns the present tense of base, third-person singular when
// third is set.
func conjugate(base string, third bool) string {
	switch base {
	case "be":
		if third {
			return "is"
		}
		return "are"
	case "have":
		if third {
			return "has"
		}
		return "have"
	}
	if !third {
		return base
	}
	if hasAnySuffix(base, "s", "sh", "ch", "x", "z", "o") {
		return base + "es"
	}
	if n := len(base); n > 1 && base[n-1] == 'y' && !hasAnySuffix(base[:n-1], "a", "e", "o", "u") {
		return base[:n-1] + "ies"
	}
	return base + "s"
}

// be conjugates "to be" for the actor.
func (a actor) be() string {
	if a.person == 1 {
		return "am"
	}
	return conjugate("be", a.person == 3)
}

// group is a formatted list of powers used as a sentence subject.
type group struct {
	text   string
	plural bool
}

func (n *namer) group(list []Power) group {
	text := n.powers(list, Subjective)
	plural := len(list) > 1 || text == "you" || text == "I"
	return group{text: text, plural: plural}
}

func (g group) verb(base string) string {
	if g.text == "I" && base == "be" {
		return "am"
	}
	return conjugate(base, !g.plural)
}
