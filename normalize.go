package pressgloss

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Expr is one element of a normalized DAIDE expression: either an atom
// (Atom != "") or a bracketed list of elements.
type Expr struct {
	Atom string
	List []Expr
}

// IsAtom reports whether e is a token rather than a list.
func (e Expr) IsAtom() bool {
	return e.Atom != ""
}

// String renders e in canonical DAIDE spacing.
func (e Expr) String() string {
	if e.IsAtom() {
		return e.Atom
	}
	return "(" + joinExprs(e.List) + ")"
}

// joinExprs renders a list body without its outer brackets.
func joinExprs(list []Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// atom returns the atom at index i of list, or "" when i is out of range or
// names a sub-list.
func atom(list []Expr, i int) string {
	if i < 0 || i >= len(list) {
		return ""
	}
	return list[i].Atom
}

// sub returns the sub-list at index i, or nil.
func sub(list []Expr, i int) []Expr {
	if i < 0 || i >= len(list) || list[i].IsAtom() {
		return nil
	}
	return list[i].List
}

// atoms returns the atoms of the sub-list at index i, skipping nested lists.
func atoms(list []Expr, i int) []string {
	var out []string
	for _, e := range sub(list, i) {
		if e.IsAtom() {
			out = append(out, e.Atom)
		}
	}
	return out
}

// ---- rewrite pipeline -------------------------------------------------

// normalizeSteps rewrite raw press into strictly spaced bracket notation.
// Order matters: whitespace first, then juxtaposition, then coasts.
var normalizeSteps = []struct {
	re  *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`\s+`), " "},
	{regexp.MustCompile(`\(\s+`), "("},
	{regexp.MustCompile(`\s+\)`), ")"},
	{regexp.MustCompile(`\)([A-Z(])`), ") $1"},
	{regexp.MustCompile(`([A-Z])\(`), "$1 ("},
	// (SPA NCS) and (SPA NC) after a unit type or a destination keyword
	{regexp.MustCompile(`\(([A-Z]{3}) ([NSEW])CS?\)`), "${1}${2}CS"},
	// SPA/NC, SPA/NCS
	{regexp.MustCompile(`([A-Z]{3})\s*/\s*([NSEW])CS?`), "${1}${2}CS"},
	{regexp.MustCompile(` +`), " "},
}

// canonical rewrites text into the bracketed, single-spaced form that the
// grammar accepts. ok is false for text the grammar can never accept.
func canonical(text string) (string, bool) {
	for _, r := range text {
		if r > 0x7f {
			return "", false
		}
	}
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}
	s = "(" + s + ")"
	for _, step := range normalizeSteps {
		s = step.re.ReplaceAllString(s, step.rep)
	}
	return s, true
}

// ---- grammar ----------------------------------------------------------

var daideLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Atom", Pattern: `[A-Z]+`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type sList struct {
	Items []*sItem `parser:"'(' @@* ')'"`
}

type sItem struct {
	Atom *string `parser:"  @Atom"`
	List *sList  `parser:"| @@"`
}

var parseSList = participle.MustBuild[sList](
	participle.Lexer(daideLexer),
)

func (l *sList) toExprs() []Expr {
	out := make([]Expr, 0, len(l.Items))
	for _, it := range l.Items {
		switch {
		case it.Atom != nil:
			out = append(out, Expr{Atom: *it.Atom})
		case it.List != nil:
			out = append(out, Expr{List: it.List.toExprs()})
		}
	}
	return out
}

// Normalize turns raw DAIDE text into its nested-list form. The outer
// bracket pair added during normalization is not part of the result, so
// "FRM (ENG) (FRA) (PRP (DRW))" yields four elements. Malformed bracketing,
// stray punctuation and non-ASCII input yield nil. Normalize is idempotent
// on canonical text and safe for concurrent use.
func Normalize(text string) []Expr {
	s, ok := canonical(text)
	if !ok {
		return nil
	}
	tree, err := parseSList.ParseString("", s)
	if err != nil {
		return nil
	}
	return tree.toExprs()
}

// Canonical returns the normalized spelling of text ("FRM (ENG) (FRA ITA)
// ..."), or "" when text does not normalize.
func Canonical(text string) string {
	exprs := Normalize(text)
	if exprs == nil {
		return ""
	}
	return joinExprs(exprs)
}
