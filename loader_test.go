package pressgloss

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultRefData(t *testing.T) {
	ref, err := DefaultRefData()
	if err != nil {
		t.Fatalf("DefaultRefData(): %v", err)
	}

	checks := []struct {
		name string
		got  bool
		want bool
	}{
		{"IsPower(FRA)", ref.IsPower("FRA"), true},
		{"IsPower(LVP)", ref.IsPower("LVP"), false},
		{"IsProvince(LVP)", ref.IsProvince("LVP"), true},
		{"IsProvince(SPANCS)", ref.IsProvince("SPANCS"), true},
		{"IsUnitType(AMY)", ref.IsUnitType(Army), true},
		{"IsSea(NTH)", ref.IsSea("NTH"), true},
		{"IsSea(LVP)", ref.IsSea("LVP"), false},
		{"IsCoastal(LVP)", ref.IsCoastal("LVP"), true},
		{"IsCoastal(MUN)", ref.IsCoastal("MUN"), false},
		{"HomeCenters(ENG) has LVP", hasProvince(ref.HomeCenters("ENG"), "LVP"), true},
		{"HomeCenters(XXX) empty", len(ref.HomeCenters("XXX")) == 0, true},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if name, ok := ref.PowerName("FRA", ColHaughty); !ok || name != "the French Republic" {
		t.Errorf("PowerName(FRA, Haughty) = %q, %v", name, ok)
	}
	if name, _ := ref.PowerName("FRA", "NoSuchColumn"); name != "France" {
		t.Errorf("PowerName(FRA, NoSuchColumn) = %q, want the Objective name", name)
	}
	if _, ok := ref.PowerName("XXX", ColObjective); ok {
		t.Error("PowerName(XXX) found an unknown power")
	}
	if name, ok := ref.ProvinceName("STPSCS"); !ok || name != "St Petersburg (south coast)" {
		t.Errorf("ProvinceName(STPSCS) = %q, %v", name, ok)
	}
	if unit, ok := ref.UnitName(Fleet); !ok || unit != "fleet" {
		t.Errorf("UnitName(FLT) = %q, %v", unit, ok)
	}
}

func hasProvince(list []Province, p Province) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

func TestLoadRefData(t *testing.T) {
	const table = `trigram,type,Objective,Haughty
XAA,Power,Atlantis,the Sunken Kingdom
AMY,Unit,army,
FLT,Unit,fleet,
XSE,Province,the Deep,,
`
	ref, err := LoadRefData(strings.NewReader(table))
	if err != nil {
		t.Fatalf("LoadRefData(): %v", err)
	}
	if got := ref.Powers(); len(got) != 1 || got[0] != "XAA" {
		t.Errorf("Powers() = %v, want [XAA]", got)
	}
	if got := ref.FormatProvinces([]Province{"XSE"}); got != "the Deep" {
		t.Errorf("FormatProvinces(XSE) = %q", got)
	}
	if name, _ := ref.PowerName("XAA", ColHaughty); name != "the Sunken Kingdom" {
		t.Errorf("PowerName(XAA, Haughty) = %q", name)
	}
}

func TestLoadRefDataErrors(t *testing.T) {
	if _, err := LoadRefData(strings.NewReader("")); !errors.Is(err, ErrBadRefData) {
		t.Errorf("empty input: err = %v, want ErrBadRefData", err)
	}
	if _, err := LoadRefData(strings.NewReader("trigram,type\nFRA,Power\n")); err == nil {
		t.Error("missing Objective column: no error")
	}
	if _, err := LoadRefData(strings.NewReader("trigram,type,Objective\nFRA,Kingdom,France\n")); err == nil {
		t.Error("unknown row type: no error")
	}
	if _, err := LoadRefDataFile("testdata/no-such-file.csv"); err == nil {
		t.Error("missing file: no error")
	}
}
