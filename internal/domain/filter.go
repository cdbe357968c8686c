package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Keywords with pagination and sort meaning.
const (
	FilterKeywordFirst       = "first"
	FilterKeywordRows        = "rows"
	FilterKeywordSort        = "sort"
	FilterKeywordSortReverse = "sort-reverse"
)

// filterRelations are the characters that separate a keyword from its value.
const filterRelations = "=~:<>"

// FilterTerm is one whitespace-separated element of a filter string. Bare
// search words have neither Keyword nor Relation.
type FilterTerm struct {
	Keyword  string
	Relation string
	Value    string
}

// String returns the canonical text of the term. Values containing
// whitespace or quotes, and bare words containing a relation character, are
// quoted; inside quotes a backslash escapes the next character.
func (t FilterTerm) String() string {
	v := t.Value
	bare := t.Keyword == "" && t.Relation == ""
	if strings.ContainsFunc(v, unicode.IsSpace) || strings.ContainsRune(v, '"') ||
		(bare && strings.ContainsAny(v, filterRelations)) {
		v = `"` + quoteEscaper.Replace(v) + `"`
	}
	return t.Keyword + t.Relation + v
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Filter is an immutable query/sort/pagination specification for a
// collection request. It stores only its canonical form, so two filters are
// equal (==) exactly when their canonical strings match. Filters are only
// built by ParseFilter, and the canonical form re-parses to the same terms.
type Filter struct {
	canonical string
}

// ParseFilter parses a filter string such as `name~scan rows=10 sort=name`.
// Keywords are lower-cased, runs of whitespace collapse to one space and term
// order is preserved. An unterminated quote is a validation error.
func ParseFilter(s string) (Filter, error) {
	terms, err := parseFilterTerms(s)
	if err != nil {
		return Filter{}, err
	}
	return filterFromTerms(terms), nil
}

// MustParseFilter is like ParseFilter but panics on malformed input. It is
// intended for constants and tests.
func MustParseFilter(s string) Filter {
	f, err := ParseFilter(s)
	if err != nil {
		panic(err)
	}
	return f
}

func filterFromTerms(terms []FilterTerm) Filter {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, t.String())
	}
	return Filter{canonical: strings.Join(parts, " ")}
}

// String returns the canonical filter text.
func (f Filter) String() string {
	return f.canonical
}

// IsEmpty reports whether the filter has no terms.
func (f Filter) IsEmpty() bool {
	return f.canonical == ""
}

// Equal reports whether both filters have the same canonical form.
func (f Filter) Equal(other Filter) bool {
	return f.canonical == other.canonical
}

// Terms returns the parsed terms in order. It panics if the canonical form
// does not re-parse, which would mean FilterTerm.String and the tokenizer
// disagree.
func (f Filter) Terms() []FilterTerm {
	terms, err := parseFilterTerms(f.canonical)
	if err != nil {
		panic(fmt.Sprintf("domain: canonical filter %q does not parse: %v", f.canonical, err))
	}
	return terms
}

// Value returns the value of the last term using keyword.
func (f Filter) Value(keyword string) (string, bool) {
	keyword = strings.ToLower(keyword)
	terms := f.Terms()
	for i := len(terms) - 1; i >= 0; i-- {
		if terms[i].Keyword == keyword {
			return terms[i].Value, true
		}
	}
	return "", false
}

// First returns the 1-based index of the first row to return. Missing or
// invalid values yield 1.
func (f Filter) First() int {
	v, ok := f.Value(FilterKeywordFirst)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Rows returns the requested page size, or 0 when the backend default applies.
func (f Filter) Rows() int {
	v, ok := f.Value(FilterKeywordRows)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SortField returns the sort field and whether the order is reversed.
// sort-reverse wins when both keywords are present.
func (f Filter) SortField() (field string, reverse bool) {
	if v, ok := f.Value(FilterKeywordSortReverse); ok {
		return v, true
	}
	v, _ := f.Value(FilterKeywordSort)
	return v, false
}

func parseFilterTerms(s string) ([]FilterTerm, error) {
	tokens, err := tokenizeFilter(s)
	if err != nil {
		return nil, err
	}

	terms := make([]FilterTerm, 0, len(tokens))
	for _, tok := range tokens {
		terms = append(terms, parseFilterTerm(tok))
	}
	return terms, nil
}

// filterToken keeps track of which part of a token was quoted so that a
// quoted relation character is not mistaken for a separator.
type filterToken struct {
	text     string
	quotedAt int // index in text where quoted content starts, -1 when unquoted
}

func tokenizeFilter(s string) ([]filterToken, error) {
	var (
		tokens  []filterToken
		cur     strings.Builder
		inQuote bool
		quoteAt = -1
	)

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, filterToken{text: cur.String(), quotedAt: quoteAt})
		}
		cur.Reset()
		quoteAt = -1
	}

	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && inQuote:
			escaped = true
		case r == '"':
			if !inQuote && quoteAt < 0 {
				quoteAt = cur.Len()
			}
			inQuote = !inQuote
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}

	if inQuote {
		return nil, &ValidationError{Fields: map[string]string{
			"filter": fmt.Sprintf("unterminated quote in %q", s),
		}}
	}
	flush()
	return tokens, nil
}

func parseFilterTerm(tok filterToken) FilterTerm {
	head := tok.text
	if tok.quotedAt >= 0 {
		head = tok.text[:tok.quotedAt]
	}

	idx := strings.IndexAny(head, filterRelations)
	if idx < 0 {
		return FilterTerm{Value: tok.text}
	}

	return FilterTerm{
		Keyword:  strings.ToLower(tok.text[:idx]),
		Relation: tok.text[idx : idx+1],
		Value:    tok.text[idx+1:],
	}
}
