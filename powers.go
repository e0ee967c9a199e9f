package pressgloss

// FormatPowers renders a list of powers as English from the point of view
// of sender speaking to recipients:
//
//   - when every recipient is listed they collapse to "you" or "you two",
//     "you three" and so on;
//   - other listed powers follow by name, in list order;
//   - the sender comes last as "me", or "I" in the Subjective case;
//   - items are joined with commas and a final "and".
//
// Listed recipients are named individually when not all recipients are
// listed. The Possessive case returns only a determiner: "my", "our",
// "your" or "their". An empty list, or an unknown power, yields the
// sentinel.
func (r *RefData) FormatPowers(list []Power, sender Power, recipients []Power, c Case) string {
	if c == Possessive {
		return possessive(list, sender, recipients)
	}
	if len(list) == 0 {
		return Sentinel
	}

	listed := 0
	for _, p := range recipients {
		if hasPower(list, p) {
			listed++
		}
	}
	allYou := len(recipients) > 0 && listed == len(recipients)

	var items []string
	if allYou {
		if len(recipients) == 1 {
			items = append(items, "you")
		} else {
			items = append(items, "you "+sizeWord(len(recipients)))
		}
	}
	seen := make(map[Power]bool, len(list))
	for _, p := range list {
		if p == sender || seen[p] {
			continue
		}
		seen[p] = true
		if allYou && hasPower(recipients, p) {
			continue
		}
		name, ok := r.PowerName(p, ColObjective)
		if !ok {
			return Sentinel
		}
		items = append(items, name)
	}
	if sender != "" && hasPower(list, sender) {
		if c == Subjective {
			items = append(items, "I")
		} else {
			items = append(items, "me")
		}
	}
	return joinAnd(items)
}

func possessive(list []Power, sender Power, recipients []Power) string {
	if sender != "" && hasPower(list, sender) {
		if len(list) == 1 {
			return "my"
		}
		return "our"
	}
	for _, p := range recipients {
		if hasPower(list, p) {
			return "your"
		}
	}
	return "their"
}

// FormatProvinces joins province names with commas and a final "and". An
// empty list or an unknown province yields the sentinel.
func (r *RefData) FormatProvinces(list []Province) string {
	if len(list) == 0 {
		return Sentinel
	}
	names := make([]string, 0, len(list))
	for _, p := range list {
		name, ok := r.ProvinceName(p)
		if !ok {
			return Sentinel
		}
		names = append(names, name)
	}
	return joinAnd(names)
}
