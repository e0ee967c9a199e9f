package pressgloss

import (
	"regexp"
	"strings"
)

// pigTokens splits text into markup tags, words (with inner apostrophes)
// and everything else.
var pigTokens = regexp.MustCompile(`<[^>]*>|[A-Za-z]+(?:'[A-Za-z]+)*|[^<A-Za-z]+|<`)

// PigLatin rewrites every word of s: words starting with a vowel get "yay",
// others move their leading consonants to the end and get "ay". Markup,
// punctuation and spacing pass through, and a capitalised word stays
// capitalised.
func PigLatin(s string) string {
	var b strings.Builder
	for _, tok := range pigTokens.FindAllString(s, -1) {
		if isWord(tok) {
			b.WriteString(pigWord(tok))
		} else {
			b.WriteString(tok)
		}
	}
	return b.String()
}

func isWord(tok string) bool {
	c := tok[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func pigWord(w string) string {
	capital := w[0] >= 'A' && w[0] <= 'Z'
	if isVowel(w[0]) {
		return w + "yay"
	}
	i := 0
	for i < len(w) && !isVowel(w[i]) && w[i] != '\'' {
		// "qu" travels together
		if (w[i] == 'q' || w[i] == 'Q') && i+1 < len(w) && (w[i+1] == 'u' || w[i+1] == 'U') {
			i += 2
			continue
		}
		// y after the first letter acts as a vowel
		if i > 0 && (w[i] == 'y' || w[i] == 'Y') {
			break
		}
		i++
	}
	out := strings.ToLower(w[i:]) + strings.ToLower(w[:i]) + "ay"
	if capital {
		return titleWord(out)
	}
	return out
}
