package pressgloss

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleWord upper-cases the first letter of w and lower-cases the rest.
// Casers carry state, so each call gets its own.
func titleWord(w string) string {
	return cases.Title(language.English).String(w)
}

// numberWords spells out list sizes; anything past seven is "all".
var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven"}

// sizeWord returns the English word for n, as used in "you two".
func sizeWord(n int) string {
	if n < 0 {
		return "zero"
	}
	if n < len(numberWords) {
		return numberWords[n]
	}
	return "all"
}

// initcap upper-cases the first byte of s, leaving the rest untouched.
func initcap(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// joinAnd joins items with commas and a final "and", without an Oxford comma.
func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// joinOr is joinAnd with "or".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

// splitTrim splits s on sep and drops empty, space-only parts.
func splitTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func hasPower(list []Power, p Power) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

// allRecipients reports whether list is non-empty and every power in it
// is a recipient.
func allRecipients(list, recipients []Power) bool {
	for _, p := range list {
		if !hasPower(recipients, p) {
			return false
		}
	}
	return len(list) > 0
}

// without returns list minus p, keeping order.
func without(list []Power, p Power) []Power {
	out := make([]Power, 0, len(list))
	for _, q := range list {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}

// sentence terminates s with a period unless it already ends in
// punctuation or markup.
func sentence(s string) string {
	if s == "" || s == Sentinel {
		return s
	}
	switch s[len(s)-1] {
	case '.', '?', '!', '>', ':':
		return s
	}
	return s + "."
}

// bulletList renders items as an HTML unordered list.
func bulletList(items []string) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, it := range items {
		b.WriteString("<li>")
		b.WriteString(it)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
