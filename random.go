package pressgloss

import "math/rand/v2"

// Synthesizer builds random, well-formed utterances. Choices lean towards
// the utterance's own sender and recipients so the English reads like a
// real exchange. A Synthesizer is not safe for concurrent use; give each
// goroutine its own.
type Synthesizer struct {
	ref *RefData
	rng *rand.Rand

	// MaxDepth bounds the nesting of AND, ORR and IFF.
	MaxDepth int

	sender     Power
	recipients []Power

	land  []Province // provinces an army may stand in
	water []Province // provinces a fleet may stand in
	coast []Province // land provinces a fleet may stand in
	seas  []Province
}

// NewSynthesizer returns a synthesizer drawing from rng.
func NewSynthesizer(ref *RefData, rng *rand.Rand) *Synthesizer {
	s := &Synthesizer{ref: ref, rng: rng, MaxDepth: 2, seas: ref.Seas()}
	for _, p := range ref.Provinces() {
		switch {
		case ref.IsSea(p):
			s.water = append(s.water, p)
		case ref.IsCoastal(p):
			s.land = append(s.land, p)
			s.water = append(s.water, p)
			s.coast = append(s.coast, p)
		default:
			s.land = append(s.land, p)
		}
	}
	return s
}

// Pair is one synthesized training example: English prompt, DAIDE
// completion.
type Pair struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

// Pairs synthesizes n utterances and their glosses. Utterances whose
// gloss is empty (ignored messages) are replaced. Fewer than n pairs come
// back when the reference data cannot support a message.
func (s *Synthesizer) Pairs(n int, tones []Tone) []Pair {
	out := make([]Pair, 0, n)
	for tries := 0; len(out) < n && tries < 20*n+100; tries++ {
		u := s.Utterance(tones)
		if !u.Valid() {
			break
		}
		g := u.render(s.ref, s.rng, true)
		if g == "" || g == Sentinel {
			continue
		}
		out = append(out, Pair{Prompt: g, Completion: u.DAIDE()})
	}
	return out
}

// Utterance builds a random utterance with its Raw text set to its DAIDE
// serialization. With fewer than two powers there is nobody to talk to,
// and the utterance has no sender, recipients or content.
func (s *Synthesizer) Utterance(tones []Tone) *Utterance {
	powers := s.ref.Powers()
	if len(powers) < 2 {
		return &Utterance{Tones: NewToneSet(tones...)}
	}
	s.rng.Shuffle(len(powers), func(i, j int) { powers[i], powers[j] = powers[j], powers[i] })
	s.sender = powers[0]
	s.recipients = append([]Power(nil), powers[1:1+s.between(1, min(3, len(powers)-1))]...)

	u := &Utterance{
		Sender:     s.sender,
		Recipients: s.recipients,
		Tones:      NewToneSet(tones...),
	}
	u.Content = s.speech()
	u.Raw = u.DAIDE()
	return u
}

// ---- choices ----------------------------------------------------------

// between returns a number in [lo, hi].
func (s *Synthesizer) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Synthesizer) chance(percent int) bool {
	return s.rng.IntN(100) < percent
}

// pickOne picks an element of a non-empty list.
func pickOne[T any](rng *rand.Rand, list []T) T {
	return list[rng.IntN(len(list))]
}

// elsewhere picks an element of list other than not. list must hold at
// least two elements.
func elsewhere[T comparable](rng *rand.Rand, list []T, not T) T {
	i := rng.IntN(len(list))
	if list[i] == not && len(list) > 1 {
		i = (i + 1 + rng.IntN(len(list)-1)) % len(list)
	}
	return list[i]
}

// power picks the sender half the time, a recipient most of the rest.
func (s *Synthesizer) power() Power {
	switch r := s.rng.IntN(100); {
	case r < 50:
		return s.sender
	case r < 85:
		return pickOne(s.rng, s.recipients)
	}
	return pickOne(s.rng, s.ref.Powers())
}

// outsider picks a power that is not in list, or "" when there is none.
func (s *Synthesizer) outsider(list []Power) Power {
	var free []Power
	for _, p := range s.ref.Powers() {
		if !hasPower(list, p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return ""
	}
	return pickOne(s.rng, free)
}

// parties returns between lo and hi distinct powers, usually including the
// sender and recipients.
func (s *Synthesizer) parties(lo, hi int) []Power {
	want := min(s.between(lo, hi), len(s.ref.Powers()))
	var out []Power
	add := func(p Power) {
		if p != "" && !hasPower(out, p) && len(out) < want {
			out = append(out, p)
		}
	}
	if s.chance(75) {
		add(s.sender)
	}
	for _, p := range s.recipients {
		if s.chance(70) {
			add(p)
		}
	}
	for len(out) < want {
		p := s.outsider(out)
		if p == "" {
			break
		}
		add(p)
	}
	return out
}

func (s *Synthesizer) provinces(from []Province, lo, hi int) []Province {
	want := min(s.between(lo, hi), len(from))
	idx := s.rng.Perm(len(from))[:want]
	out := make([]Province, want)
	for i, j := range idx {
		out[i] = from[j]
	}
	return out
}

// ---- speech acts ------------------------------------------------------

func (s *Synthesizer) speech() Arrangement {
	r := s.rng.IntN(100)
	switch {
	case r < 40:
		return s.proposal(nil)
	case r < 55:
		n := &Fact{}
		n.Details = s.arrangement(n, 0)
		return n
	case r < 67:
		n := &Accept{}
		n.Details = s.proposal(n)
		return n
	case r < 79:
		n := &Reject{}
		n.Details = s.proposal(n)
		return n
	case r < 86:
		n := &Cancel{}
		n.Details = s.proposal(n)
		return n
	case r < 91:
		n := &Cancel{}
		yes := &Accept{}
		yes.container = n
		yes.Details = s.proposal(yes)
		n.Details = yes
		return n
	case r < 96:
		n := &Confusion{}
		n.Details = s.proposal(n)
		return n
	}
	n := &Ignore{}
	n.Details = s.proposal(n)
	return n
}

func (s *Synthesizer) proposal(container Arrangement) *Proposal {
	p := &Proposal{}
	p.container = container
	p.Details = s.arrangement(p, 0)
	return p
}

// ---- arrangements -----------------------------------------------------

// arrangement picks any content node; connectives only below MaxDepth.
func (s *Synthesizer) arrangement(c Arrangement, depth int) Arrangement {
	if depth < s.MaxDepth && s.chance(20) {
		switch s.rng.IntN(3) {
		case 0:
			n := &And{node: node{c}}
			n.Items = s.items(n, depth+1)
			return n
		case 1:
			n := &Or{node: node{c}}
			n.Items = s.items(n, depth+1)
			return n
		}
		n := &Conditional{node: node{c}}
		n.Antecedent = s.arrangement(n, depth+1)
		n.Consequent = s.arrangement(n, depth+1)
		if s.chance(30) {
			n.Alternative = s.arrangement(n, depth+1)
		}
		return n
	}
	if s.chance(25) {
		if s.chance(50) {
			n := &Negation{node: node{c}}
			n.Inner = s.simple(n)
			return n
		}
		n := &Uncertainty{node: node{c}}
		n.Inner = s.simple(n)
		return n
	}
	return s.simple(c)
}

func (s *Synthesizer) items(c Arrangement, depth int) []Arrangement {
	out := make([]Arrangement, s.between(2, 3))
	for i := range out {
		out[i] = s.arrangement(c, depth)
	}
	return out
}

// simple picks a long-term, end-game or order node. Kinds the reference
// data cannot support become draws.
func (s *Synthesizer) simple(c Arrangement) Arrangement {
	switch s.rng.IntN(6) {
	case 0:
		return &Peace{node: node{c}, Parties: s.parties(2, 3)}
	case 1:
		allies := s.parties(2, 3)
		versus := s.outsider(allies)
		if versus == "" {
			break
		}
		opponents := []Power{versus}
		if s.chance(40) {
			if p := s.outsider(append(append([]Power(nil), allies...), opponents...)); p != "" {
				opponents = append(opponents, p)
			}
		}
		return &Alliance{node: node{c}, Allies: allies, Opponents: opponents}
	case 2:
		if len(s.land) == 0 {
			break
		}
		return &DMZ{node: node{c}, Parties: s.parties(1, 3), Provinces: s.provinces(s.land, 1, 3)}
	case 3:
		n := &Draw{node: node{c}}
		if s.chance(50) {
			n.Parties = s.parties(2, 4)
		}
		return n
	case 4:
		winner := s.sender
		if s.chance(60) {
			winner = s.power()
		}
		return &Solo{node: node{c}, Winner: winner}
	case 5:
		n := &Execute{node: node{c}}
		n.Order = s.order(n)
		return n
	}
	return &Draw{node: node{c}}
}

// ---- orders -----------------------------------------------------------

// unit places a unit of p: fleets on water or coast, armies on land.
func (s *Synthesizer) unit(p Power) Unit {
	if s.chance(40) {
		return Unit{Power: p, Type: Fleet, Province: pickOne(s.rng, s.water)}
	}
	return Unit{Power: p, Type: Army, Province: pickOne(s.rng, s.land)}
}

// destination picks somewhere u may go other than where it stands.
func (s *Synthesizer) destination(u Unit) Province {
	from := s.land
	if u.Type == Fleet {
		from = s.water
	}
	return elsewhere(s.rng, from, u.Province)
}

// feasible reports whether the reference data has the provinces order
// kind k needs.
func (s *Synthesizer) feasible(k int, p Power) bool {
	switch k {
	case 0, 2, 7, 9:
		return len(s.land) > 0 && len(s.water) > 0
	case 1, 3, 6:
		return len(s.land) > 1 && len(s.water) > 1
	case 4, 5:
		return len(s.seas) > 0 && len(s.coast) > 1
	case 8:
		return len(s.ref.HomeCenters(p)) > 0 || len(s.ref.SupplyCenters()) > 0
	}
	return true
}

// order picks an order; kinds the reference data cannot support become
// waived builds.
func (s *Synthesizer) order(c Arrangement) Arrangement {
	n := node{c}
	p := s.power()
	k := s.rng.IntN(11)
	if !s.feasible(k, p) {
		k = 10
	}
	switch k {
	case 0:
		return &Hold{node: n, Unit: s.unit(p)}
	case 1:
		u := s.unit(p)
		return &MoveTo{node: n, Unit: u, Destination: s.destination(u)}
	case 2:
		return &SupportHold{node: n, Supporter: s.unit(p), Supported: s.unit(s.power())}
	case 3:
		t := s.unit(s.power())
		return &SupportMove{node: n, Supporter: s.unit(p), Supported: t, Destination: s.destination(t)}
	case 4:
		carrier := Unit{Power: p, Type: Fleet, Province: pickOne(s.rng, s.seas)}
		cargo := Unit{Power: s.power(), Type: Army, Province: pickOne(s.rng, s.coast)}
		return &Convoy{node: n, Carrier: carrier, Cargo: cargo, Destination: s.landing(cargo.Province)}
	case 5:
		cargo := Unit{Power: p, Type: Army, Province: pickOne(s.rng, s.coast)}
		return &ConvoyVia{node: n, Cargo: cargo, Destination: s.landing(cargo.Province), Route: s.provinces(s.seas, 1, 3)}
	case 6:
		u := s.unit(p)
		return &Retreat{node: n, Unit: u, Destination: s.destination(u)}
	case 7:
		return &Disband{node: n, Unit: s.unit(p)}
	case 8:
		home := s.ref.HomeCenters(p)
		if len(home) == 0 {
			home = s.ref.SupplyCenters()
		}
		prov := pickOne(s.rng, home)
		t := Army
		if s.ref.IsCoastal(prov) && s.chance(40) {
			t = Fleet
		}
		return &Build{node: n, Unit: Unit{Power: p, Type: t, Province: prov}}
	case 9:
		return &Remove{node: n, Unit: s.unit(p)}
	}
	return &Waive{node: n, Power: p}
}

// landing picks a coastal province other than from.
func (s *Synthesizer) landing(from Province) Province {
	return elsewhere(s.rng, s.coast, from)
}
