package pressgloss

import "testing"

func TestFormatPowers(t *testing.T) {
	ref := MustDefaultRefData()
	tests := []struct {
		list       []Power
		sender     Power
		recipients []Power
		c          Case
		want       string
	}{
		{[]Power{"ENG"}, "ENG", []Power{"FRA", "ITA"}, Objective, "me"},
		{[]Power{"ENG"}, "ENG", []Power{"FRA", "ITA"}, Subjective, "I"},
		{[]Power{"FRA"}, "ENG", []Power{"FRA"}, Objective, "you"},
		{[]Power{"FRA", "ENG"}, "ENG", []Power{"FRA"}, Objective, "you and me"},
		{[]Power{"FRA", "ENG"}, "ENG", []Power{"FRA"}, Subjective, "you and I"},
		{[]Power{"FRA", "ENG", "ITA"}, "ENG", []Power{"FRA"}, Objective, "you, Italy and me"},
		{[]Power{"FRA", "ENG", "ITA"}, "ENG", []Power{"FRA"}, Subjective, "you, Italy and I"},
		{[]Power{"FRA", "ITA"}, "ENG", []Power{"FRA", "ITA"}, Objective, "you two"},
		{[]Power{"FRA", "ITA"}, "ENG", []Power{"FRA"}, Objective, "you and Italy"},
		{[]Power{"FRA", "ITA", "RUS"}, "ENG", []Power{"FRA"}, Objective, "you, Italy and Russia"},
		{[]Power{"FRA", "ITA", "RUS"}, "ENG", []Power{"FRA", "ITA"}, Objective, "you two and Russia"},
		{[]Power{"FRA", "ITA", "RUS"}, "ENG", []Power{"TUR"}, Objective, "France, Italy and Russia"},
		// only some recipients listed: name them
		{[]Power{"FRA"}, "ENG", []Power{"FRA", "ITA"}, Objective, "France"},
		{[]Power{"FRA", "ITA", "GER"}, "ENG", []Power{"FRA", "ITA", "GER"}, Objective, "you three"},
		{[]Power{"FRA", "FRA"}, "ENG", []Power{"TUR"}, Objective, "France"},

		{[]Power{"ENG"}, "ENG", []Power{"FRA"}, Possessive, "my"},
		{[]Power{"ENG", "FRA"}, "ENG", []Power{"FRA"}, Possessive, "our"},
		{[]Power{"FRA"}, "ENG", []Power{"FRA"}, Possessive, "your"},
		{[]Power{"RUS"}, "ENG", []Power{"FRA"}, Possessive, "their"},

		{nil, "ENG", []Power{"FRA"}, Objective, Sentinel},
		{[]Power{"XXX"}, "ENG", []Power{"FRA"}, Objective, Sentinel},
	}
	for _, tt := range tests {
		got := ref.FormatPowers(tt.list, tt.sender, tt.recipients, tt.c)
		if got != tt.want {
			t.Errorf("FormatPowers(%v, %s, %v, %d) = %q, want %q",
				tt.list, tt.sender, tt.recipients, tt.c, got, tt.want)
		}
	}
}

func TestFormatProvinces(t *testing.T) {
	ref := MustDefaultRefData()
	tests := []struct {
		list []Province
		want string
	}{
		{[]Province{"LVP"}, "Liverpool"},
		{[]Province{"LVP", "YOR"}, "Liverpool and Yorkshire"},
		{[]Province{"NAO", "IRI", "NTH"}, "the North Atlantic Ocean, the Irish Sea and the North Sea"},
		{[]Province{"SPANCS"}, "Spain (north coast)"},
		{nil, Sentinel},
		{[]Province{"LVP", "XXX"}, Sentinel},
		{[]Province{"SPAXCS"}, Sentinel},
	}
	for _, tt := range tests {
		if got := ref.FormatProvinces(tt.list); got != tt.want {
			t.Errorf("FormatProvinces(%v) = %q, want %q", tt.list, got, tt.want)
		}
	}
}
