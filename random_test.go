package pressgloss

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSynthesizerRoundTrip(t *testing.T) {
	ref := MustDefaultRefData()
	s := NewSynthesizer(ref, rand.New(rand.NewPCG(7, 11)))
	for i := 0; i < 300; i++ {
		u := s.Utterance(nil)
		daide := u.DAIDE()
		back := NewUtterance(daide, nil)
		if !back.Valid() {
			t.Fatalf("synthesized press %q does not parse", daide)
		}
		if diff := cmp.Diff(daide, back.DAIDE()); diff != "" {
			t.Errorf("round trip of %q changed (-want +got):\n%s", daide, diff)
		}
		if diff := cmp.Diff(u.Operators(), back.Operators()); diff != "" {
			t.Errorf("operators of %q changed (-want +got):\n%s", daide, diff)
		}
		if diff := cmp.Diff(u.Recipients, back.Recipients); diff != "" {
			t.Errorf("recipients of %q changed (-want +got):\n%s", daide, diff)
		}
	}
}

func TestSynthesizerGlosses(t *testing.T) {
	ref := MustDefaultRefData()
	rng := rand.New(rand.NewPCG(3, 5))
	s := NewSynthesizer(ref, rng)
	for i := 0; i < 300; i++ {
		u := s.Utterance(nil)
		if g := u.render(ref, rng, true); g == Sentinel {
			t.Errorf("no gloss for synthesized press %q", u.DAIDE())
		}
		if g := u.Gloss(ref, nil); g == Sentinel {
			t.Errorf("no plain gloss for synthesized press %q", u.DAIDE())
		}
	}
}

func TestSynthesizerSeeded(t *testing.T) {
	ref := MustDefaultRefData()
	run := func() []string {
		s := NewSynthesizer(ref, rand.New(rand.NewPCG(99, 100)))
		out := make([]string, 20)
		for i := range out {
			out[i] = s.Utterance(nil).DAIDE()
		}
		return out
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed gave different press (-first +second):\n%s", diff)
	}
}

func TestSynthesizerDepth(t *testing.T) {
	ref := MustDefaultRefData()
	s := NewSynthesizer(ref, rand.New(rand.NewPCG(5, 8)))
	s.MaxDepth = 0
	for i := 0; i < 200; i++ {
		u := s.Utterance(nil)
		Walk(u.Content, func(a Arrangement) bool {
			switch a.Operator() {
			case OpAnd, OpOr, OpConditional:
				t.Errorf("MaxDepth 0 produced a connective in %q", u.DAIDE())
			}
			return true
		})
	}
}

func TestPairs(t *testing.T) {
	ref := MustDefaultRefData()
	s := NewSynthesizer(ref, rand.New(rand.NewPCG(13, 17)))
	pairs := s.Pairs(50, []Tone{ToneFriendly})
	if len(pairs) != 50 {
		t.Fatalf("Pairs(50) returned %d pairs", len(pairs))
	}
	for _, p := range pairs {
		if p.Prompt == "" || p.Prompt == Sentinel {
			t.Errorf("pair for %q has prompt %q", p.Completion, p.Prompt)
		}
		if !NewUtterance(p.Completion, nil).Valid() {
			t.Errorf("pair completion %q does not parse", p.Completion)
		}
	}
}

func TestSynthesizerSmallTables(t *testing.T) {
	tables := map[string]string{
		"one power": `trigram,type,Objective
XAA,Power,Atlantis
AMY,Unit,army
FLT,Unit,fleet
XLA,Province,Lowland
`,
		"two powers one province each": `trigram,type,Objective,Sea,Coast,Supply,Home
XAA,Power,Atlantis,,,,
XBB,Power,Borealis,,,,
AMY,Unit,army,,,,
FLT,Unit,fleet,,,,
XLA,Province,Lowland,0,0,1,XAA
XSE,Province,the Deep,1,0,0,
`,
		"no sea no supply": `trigram,type,Objective,Sea,Coast,Supply,Home
XAA,Power,Atlantis,,,,
XBB,Power,Borealis,,,,
XCC,Power,Cathay,,,,
AMY,Unit,army,,,,
FLT,Unit,fleet,,,,
XLA,Province,Lowland,0,0,0,
`,
	}
	for name, table := range tables {
		ref, err := LoadRefData(strings.NewReader(table))
		if err != nil {
			t.Fatalf("%s: LoadRefData(): %v", name, err)
		}
		s := NewSynthesizer(ref, rand.New(rand.NewPCG(21, 34)))
		few := len(ref.Powers()) < 2
		for i := 0; i < 300; i++ {
			u := s.Utterance(nil)
			if few {
				if u.Valid() {
					t.Fatalf("%s: synthesized %q with a single power", name, u.DAIDE())
				}
				continue
			}
			if !u.Valid() {
				t.Fatalf("%s: synthesized an invalid utterance", name)
			}
			if back := NewUtterance(u.DAIDE(), nil); !back.Valid() {
				t.Errorf("%s: synthesized press %q does not parse", name, u.DAIDE())
			}
			_ = u.Gloss(ref, nil)
		}
		pairs := s.Pairs(5, nil)
		if few && len(pairs) != 0 {
			t.Errorf("%s: Pairs returned %d pairs with a single power", name, len(pairs))
		}
		t.Logf("%s: %d pairs", name, len(pairs))
	}
}
