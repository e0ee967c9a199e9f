// Package pressgloss translates DAIDE press, the bracketed trigram notation
// Diplomacy bots use to negotiate, into English, and synthesizes random
// well-formed press together with its English gloss.
package pressgloss

import (
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Glosser holds the reference data and provides the public API. It is safe
// for concurrent use.
type Glosser struct {
	ref    *RefData
	logger *zap.Logger

	// mu guards rng, which only seeds the per-call sources.
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Glosser.
type Option func(*Glosser)

// WithRefData replaces the embedded standard map.
func WithRefData(ref *RefData) Option {
	return func(g *Glosser) { g.ref = ref }
}

// WithLogger sets the logger used for debug output on unparseable press.
// A nil logger keeps the default no-op one.
func WithLogger(l *zap.Logger) Option {
	return func(g *Glosser) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed makes random synthesis reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Glosser) { g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// New returns a Glosser over the embedded standard map unless WithRefData
// says otherwise.
func New(opts ...Option) (*Glosser, error) {
	g := &Glosser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	if g.ref == nil {
		ref, err := DefaultRefData()
		if err != nil {
			return nil, err
		}
		g.ref = ref
	}
	if g.rng == nil {
		now := uint64(time.Now().UnixNano())
		g.rng = rand.New(rand.NewPCG(now, now>>17))
	}
	return g, nil
}

// RefData returns the reference data in use.
func (g *Glosser) RefData() *RefData {
	return g.ref
}

// source returns a fresh random source seeded from the glosser's own.
func (g *Glosser) source() *rand.Rand {
	g.mu.Lock()
	a, b := g.rng.Uint64(), g.rng.Uint64()
	g.mu.Unlock()
	return rand.New(rand.NewPCG(a, b))
}

// Translate renders DAIDE press as English in the given tones. Unparseable
// press gives the sentinel "Ahem."; ignored press (BWX) gives "". Phrasing
// is deterministic.
func (g *Glosser) Translate(daide string, tones []Tone) string {
	return g.TranslateRand(daide, tones, nil)
}

// TranslateRand is Translate with phrasing variety drawn from rng. A nil
// rng always takes the first phrasing.
func (g *Glosser) TranslateRand(daide string, tones []Tone, rng *rand.Rand) string {
	u := NewUtterance(daide, tones)
	if !u.Valid() {
		g.logger.Debug("unparseable press", zap.String("daide", daide))
		return Sentinel
	}
	out := u.Gloss(g.ref, rng)
	if out == Sentinel {
		g.logger.Debug("no gloss for press",
			zap.String("daide", daide),
			zap.String("content", ToDAIDE(u.Content)))
	}
	return out
}

// RandomUtterance synthesizes a random utterance and returns its DAIDE and
// English forms.
func (g *Glosser) RandomUtterance(tones []Tone) (daide, english string) {
	return g.RandomUtteranceRand(tones, g.source())
}

// RandomUtteranceRand is RandomUtterance drawing every choice from rng.
func (g *Glosser) RandomUtteranceRand(tones []Tone, rng *rand.Rand) (daide, english string) {
	u := NewSynthesizer(g.ref, rng).Utterance(tones)
	return u.DAIDE(), u.render(g.ref, rng, true)
}

// Synthesizer returns a synthesizer over the glosser's reference data with
// its own random source.
func (g *Glosser) Synthesizer() *Synthesizer {
	return NewSynthesizer(g.ref, g.source())
}

// Parse returns the utterance for daide, or nil when it is not of the form
// FRM (sender) (recipients) (content).
func (g *Glosser) Parse(daide string) *Utterance {
	u := NewUtterance(daide, nil)
	if !u.Valid() {
		g.logger.Debug("unparseable press", zap.String("daide", daide))
		return nil
	}
	return u
}
