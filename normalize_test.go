package pressgloss

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"FRM (ENG) (FRA) (PRP (DRW))", "FRM (ENG) (FRA) (PRP (DRW))"},
		{"FRM(ENG)(FRA)(PRP(DRW))", "FRM (ENG) (FRA) (PRP (DRW))"},
		{"  frm ( eng )  (fra ita)\n(prp (pce (fra ita) ))", "FRM (ENG) (FRA ITA) (PRP (PCE (FRA ITA)))"},
		{"FRM (FRA) (ENG) (PRP (XDO ((FRA FLT (SPA NCS)) HLD)))", "FRM (FRA) (ENG) (PRP (XDO ((FRA FLT SPANCS) HLD)))"},
		{"FRM (FRA) (ENG) (PRP (XDO ((FRA FLT SPA/NC) HLD)))", "FRM (FRA) (ENG) (PRP (XDO ((FRA FLT SPANCS) HLD)))"},
		{"FRM (FRA) (ENG) (PRP (XDO ((FRA FLT (STP SC)) MTO BOT)))", "FRM (FRA) (ENG) (PRP (XDO ((FRA FLT STPSCS) MTO BOT)))"},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q)\n got %q\nwant %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	for _, in := range []string{
		"FRM(ENG)(FRA ITA)(PRP(ALY(ENG FRA ITA)VSS(RUS TUR)))",
		"FRM (FRA) (ENG) (PRP (XDO ((ENG FLT NTH) CVY (FRA AMY BRE) CTO LON)))",
		"FRM (FRA) (ENG) (PRP (XDO ((FRA FLT SPA/SC) MTO WES)))",
	} {
		once := Canonical(in)
		if once == "" {
			t.Errorf("Canonical(%q) is empty", in)
			continue
		}
		if twice := Canonical(once); twice != once {
			t.Errorf("Canonical is not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"FRM (ENG (FRA) (PRP (DRW))",
		"FRM (ENG) (FRA) (PRP (DRW)))",
		"FRM (ENG) (FRA) (PRP [DRW])",
		"FRM (ENG) (FRA) (PRP (DRW 1901))",
		"FRM (ÉNG) (FRA) (PRP (DRW))",
	} {
		if got := Normalize(in); got != nil {
			t.Errorf("Normalize(%q) = %v, want nil", in, got)
		}
	}
}

func TestNormalizeShape(t *testing.T) {
	list := Normalize("FRM (ENG) (FRA ITA) (PRP (PCE (FRA ITA)))")
	if len(list) != 4 {
		t.Fatalf("got %d top-level elements, want 4", len(list))
	}
	if atom(list, 0) != "FRM" {
		t.Errorf("head = %q, want FRM", atom(list, 0))
	}
	if got := atoms(list, 2); len(got) != 2 || got[0] != "FRA" || got[1] != "ITA" {
		t.Errorf("recipients = %v, want [FRA ITA]", got)
	}
	content := sub(list, 3)
	if atom(content, 0) != "PRP" || sub(content, 1) == nil {
		t.Errorf("content = %v, want PRP (...)", content)
	}
}
