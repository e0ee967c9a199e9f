package pressgloss

import (
	"math/rand/v2"
	"strings"
	"testing"
)

const peaceProposal = "FRM (FRA) (ENG) (PRP (PCE (FRA ENG)))"

func TestApplyTonesHaughty(t *testing.T) {
	g := newGlosser(t)

	got := g.Translate(peaceProposal, []Tone{ToneHaughty})
	want := "The French Republic demands your attention in this matter. Let us sign a peace treaty together. What say you to that?"
	if got != want {
		t.Errorf("Haughty gloss\n got %q\nwant %q", got, want)
	}

	urgent := g.Translate(peaceProposal, []Tone{ToneHaughty, ToneUrgent})
	if !strings.HasPrefix(urgent, got) {
		t.Errorf("Haughty+Urgent gloss %q does not extend %q", urgent, got)
	}
	if !strings.HasSuffix(urgent, "You don't have much time to waste in considering your response.") {
		t.Errorf("Haughty+Urgent gloss %q lacks the urgent clause", urgent)
	}

	reply := g.Translate("FRM (FRA) (ENG) (YES (PRP (PCE (FRA ENG))))", []Tone{ToneHaughty})
	if !strings.HasPrefix(reply, "The French Republic has deigned to respond to your missive: ") {
		t.Errorf("Haughty reply = %q", reply)
	}

	cancel := g.Translate("FRM (FRA) (ENG) (CCL (PRP (PCE (FRA ENG))))", []Tone{ToneHaughty})
	if !strings.HasSuffix(cancel, "Pray we do not alter the deal further.") {
		t.Errorf("Haughty cancellation = %q", cancel)
	}
}

func TestApplyTonesPriority(t *testing.T) {
	g := newGlosser(t)

	// Haughty outranks Friendly regardless of order
	a := g.Translate(peaceProposal, []Tone{ToneFriendly, ToneHaughty})
	b := g.Translate(peaceProposal, []Tone{ToneHaughty})
	if a != b {
		t.Errorf("Friendly+Haughty = %q, want the Haughty gloss %q", a, b)
	}

	friendly := g.Translate(peaceProposal, []Tone{ToneFriendly})
	if !strings.HasPrefix(friendly, "Hello friend! ") {
		t.Errorf("Friendly gloss = %q", friendly)
	}

	plain := g.Translate(peaceProposal, []Tone{ToneObjective})
	if plain != "Let us sign a peace treaty together." {
		t.Errorf("Objective gloss = %q", plain)
	}
}

func TestApplyTonesObsequious(t *testing.T) {
	g := newGlosser(t)

	got := g.Translate(peaceProposal, []Tone{ToneObsequious})
	want := "Oh great leader of the British Empire, please hear me out. Let us sign a peace treaty together. Respectfully, the nation of France."
	if got != want {
		t.Errorf("Obsequious gloss\n got %q\nwant %q", got, want)
	}
	if strings.Contains(got, "..") {
		t.Errorf("Obsequious gloss %q has a doubled period", got)
	}

	many := g.Translate("FRM (FRA) (ENG ITA) (PRP (PCE (ENG ITA)))", []Tone{ToneObsequious})
	if !strings.HasPrefix(many, "Oh great Powers of Europe") {
		t.Errorf("Obsequious gloss to two powers = %q", many)
	}
}

func TestApplyTonesSkipsConfusion(t *testing.T) {
	g := newGlosser(t)

	for _, daide := range []string{
		"FRM (FRA) (ENG) (HUH (PRP (PCE (FRA ENG))))",
		"FRM (FRA) (ENG) (BWX (PRP (PCE (FRA ENG))))",
	} {
		plain := g.Translate(daide, nil)
		for _, tone := range Tones {
			if got := g.Translate(daide, []Tone{tone}); got != plain {
				t.Errorf("Translate(%q, %s) = %q, want %q", daide, tone, got, plain)
			}
		}
	}
}

func TestApplyTonesSentinel(t *testing.T) {
	ref := MustDefaultRefData()
	tones := NewToneSet(ToneHaughty, TonePigLatin)
	if got := ApplyTones("BORK", Sentinel, "FRA", []Power{"ENG"}, tones, ref, nil); got != Sentinel {
		t.Errorf("ApplyTones(sentinel) = %q", got)
	}
	if got := ApplyTones("FRM (FRA) (ENG) (PRP (DRW))", "", "FRA", []Power{"ENG"}, tones, ref, nil); got != "" {
		t.Errorf("ApplyTones(empty) = %q", got)
	}
}

func TestApplyTonesRandom(t *testing.T) {
	ref := MustDefaultRefData()
	rng := rand.New(rand.NewPCG(1, 2))
	const body = "Let us sign a peace treaty together."
	for i := 0; i < 20; i++ {
		got := ApplyTones(peaceProposal, body, "FRA", []Power{"ENG"}, NewToneSet(ToneHaughty), ref, rng)
		if !strings.Contains(got, body) {
			t.Errorf("ApplyTones dropped the gloss: %q", got)
		}
		if !strings.HasSuffix(got, "What say you to that?") && !strings.HasSuffix(got, "We await your reply.") {
			t.Errorf("ApplyTones Haughty ending = %q", got)
		}
	}
}

func TestPigLatin(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"apple", "appleyay"},
		{"Hello world", "Ellohay orldway"},
		{"quick", "ickquay"},
		{"yellow", "ellowyay"},
		{"rhythm", "ythmrhay"},
		{"I agree.", "Iyay agreeyay."},
		{"I don't know", "Iyay on'tday owknay"},
		{"Hello <ul><li>world</li></ul>", "Ellohay <ul><li>orldway</li></ul>"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PigLatin(tt.in); got != tt.want {
			t.Errorf("PigLatin(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPigLatinAfterTone(t *testing.T) {
	g := newGlosser(t)
	got := g.Translate("FRM (FRA) (ENG) (PRP (AND (PCE (FRA ENG)) (DRW)))", []Tone{TonePigLatin})
	if !strings.Contains(got, "<ul><li>") || !strings.Contains(got, "</li></ul>") {
		t.Errorf("PigLatin gloss %q lost its list markup", got)
	}
	if strings.Contains(got, "propose") {
		t.Errorf("PigLatin gloss %q still has plain words", got)
	}
}
