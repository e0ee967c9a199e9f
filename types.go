package pressgloss

import "sort"

// Sentinel is the gloss returned whenever an expression cannot be rendered:
// unparseable text, a shape no rule recognizes, or a node missing fields.
const Sentinel = "Ahem."

// Power is a DAIDE power trigram such as "ENG".
type Power string

// Province is a DAIDE province trigram such as "LVP", or a six-letter coastal
// compound such as "SPANCS".
type Province string

// UnitType is "AMY" or "FLT".
type UnitType string

const (
	Army  UnitType = "AMY"
	Fleet UnitType = "FLT"
)

// Case selects the grammatical case used when a list of powers collapses
// into pronouns.
type Case int

const (
	Objective Case = iota
	Subjective
	Possessive
)

// Tone is a rhetorical style applied after the neutral gloss is produced.
type Tone string

const (
	ToneObjective  Tone = "Objective"
	ToneHaughty    Tone = "Haughty"
	ToneObsequious Tone = "Obsequious"
	ToneHostile    Tone = "Hostile"
	ToneFriendly   Tone = "Friendly"
	ToneFearful    Tone = "Fearful"
	ToneConfident  Tone = "Confident"
	ToneEmpathetic Tone = "Empathetic"
	ToneUpset      Tone = "Upset"
	ToneUrgent     Tone = "Urgent"
	TonePigLatin   Tone = "PigLatin"
	ToneExpert     Tone = "Expert"
)

// Tones lists every tone the pipeline knows, primary tones first in
// priority order.
var Tones = []Tone{
	ToneHaughty, ToneObsequious, ToneHostile, ToneFriendly, ToneFearful,
	ToneConfident, ToneEmpathetic, ToneUpset, ToneUrgent,
	ToneObjective, TonePigLatin, ToneExpert,
}

// ToneSet is an unordered set of tones.
type ToneSet map[Tone]bool

// NewToneSet builds a set from a list, ignoring empty names.
func NewToneSet(tones ...Tone) ToneSet {
	s := make(ToneSet, len(tones))
	for _, t := range tones {
		if t != "" {
			s[t] = true
		}
	}
	return s
}

// Has reports whether t is in the set. A nil set has no tones.
func (s ToneSet) Has(t Tone) bool {
	return s[t]
}

// List returns the tones of the set in the order of Tones, followed by any
// unknown names.
func (s ToneSet) List() []Tone {
	out := make([]Tone, 0, len(s))
	seen := make(map[Tone]bool, len(s))
	for _, t := range Tones {
		if s[t] {
			out = append(out, t)
			seen[t] = true
		}
	}
	var extra []Tone
	for t := range s {
		if !seen[t] {
			extra = append(extra, t)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// ParseTones splits a comma separated tone list ("Haughty,Urgent").
func ParseTones(s string) []Tone {
	var out []Tone
	for _, part := range splitTrim(s, ",") {
		out = append(out, Tone(part))
	}
	return out
}
