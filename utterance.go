package pressgloss

import (
	"math/rand/v2"
	"strings"
)

// Utterance is one press message: who sent it, to whom, in which tones,
// and its content tree.
type Utterance struct {
	Sender     Power
	Recipients []Power
	Tones      ToneSet
	// Content is nil when the raw text is not FRM (sender) (recipients)
	// (content).
	Content Arrangement
	// Raw is the text the utterance was parsed from, kept for keyword
	// sniffing by the tone pipeline.
	Raw string
}

// NewUtterance parses raw press. Text that does not have exactly the shape
// FRM (sender) (recipients) (content) gives an utterance with no sender,
// recipients or content.
func NewUtterance(raw string, tones []Tone) *Utterance {
	u := &Utterance{Tones: NewToneSet(tones...), Raw: raw}
	list := Normalize(raw)
	if len(list) != 4 || atom(list, 0) != kwFrom {
		return u
	}
	sender := atoms(list, 1)
	recipients := powersAt(list, 2)
	content := sub(list, 3)
	if len(sender) == 0 || len(recipients) == 0 || content == nil {
		return u
	}
	u.Sender = Power(sender[0])
	u.Recipients = recipients
	u.Content = BuildTree(content, nil)
	return u
}

// Valid reports whether the utterance has a sender, recipients and content.
func (u *Utterance) Valid() bool {
	return u != nil && u.Sender != "" && len(u.Recipients) > 0 && u.Content != nil
}

// DAIDE serializes the utterance as FRM (sender) (recipients) (content).
func (u *Utterance) DAIDE() string {
	if !u.Valid() {
		return ""
	}
	return kwFrom + " (" + string(u.Sender) + ") " + powersDAIDE(u.Recipients) + " " + wrap(u.Content)
}

// Frame returns the rendering frame of the utterance.
func (u *Utterance) Frame(ref *RefData, rng *rand.Rand) *Frame {
	return NewFrame(ref, u.Sender, u.Recipients, u.Tones, rng)
}

// Gloss renders the utterance as English with its tones applied. It
// returns the sentinel for an invalid utterance and "" for an ignored one.
func (u *Utterance) Gloss(ref *RefData, rng *rand.Rand) string {
	return u.render(ref, rng, false)
}

func (u *Utterance) render(ref *RefData, rng *rand.Rand, varied bool) string {
	if !u.Valid() {
		return Sentinel
	}
	f := u.Frame(ref, rng)
	f.varied = varied
	g := strings.TrimSpace(u.Content.Gloss(f))
	if g == "" || g == Sentinel {
		return g
	}
	raw := u.Raw
	if raw == "" {
		raw = u.DAIDE()
	}
	return ApplyTones(raw, g, u.Sender, u.Recipients, u.Tones, ref, rng)
}

// Operators lists the operators of the content tree in pre-order.
func (u *Utterance) Operators() []Operator {
	var ops []Operator
	Walk(u.Content, func(a Arrangement) bool {
		ops = append(ops, a.Operator())
		return true
	})
	return ops
}
