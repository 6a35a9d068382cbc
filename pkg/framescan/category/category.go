// Package category defines the ordered table of framing categories and
// the matching rules behind them. Table order is semantically significant:
// it is the priority order used for exclusive assignment, so more specific
// categories must come before general ones that could match the same text.
package category

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Eden-Eldith/framescan/pkg/framescan/internalerr"
)

// Spec describes one category before compilation. Exactly one of Terms or
// Pattern supplies the matching rule: Terms is a list of literal words and
// phrases joined into a word-bounded alternation, Pattern is a raw regular
// expression used as-is. ExcludeAfter lists trailing phrases that disqualify
// a candidate match when they immediately follow it.
type Spec struct {
	Label        string
	Terms        []string
	Pattern      string
	ExcludeAfter []string
}

// Rule is a compiled, case-insensitive matching rule.
type Rule struct {
	re      *regexp.Regexp
	exclude *regexp.Regexp
}

// Matches reports whether the rule matches anywhere in text. When an
// exclusion clause is present, a candidate match only counts if the
// disqualifying phrase does not immediately follow it.
func (r Rule) Matches(text string) bool {
	if text == "" {
		return false
	}
	if r.exclude == nil {
		return r.re.MatchString(text)
	}
	for _, loc := range r.re.FindAllStringIndex(text, -1) {
		if !r.exclude.MatchString(text[loc[1]:]) {
			return true
		}
	}
	return false
}

// Category pairs a label with its compiled rule.
type Category struct {
	Label string
	Rule  Rule
}

// Table is an ordered, immutable sequence of categories.
type Table struct {
	cats []Category
}

// NewTable compiles specs into a table, preserving order. A duplicate label
// or malformed rule fails construction.
func NewTable(specs []Spec) (*Table, error) {
	seen := make(map[string]struct{}, len(specs))
	cats := make([]Category, 0, len(specs))
	for _, s := range specs {
		if s.Label == "" {
			return nil, fmt.Errorf("category with empty label: %w", internalerr.ErrInvalidConfig)
		}
		if _, ok := seen[s.Label]; ok {
			return nil, fmt.Errorf("category %q: %w", s.Label, internalerr.ErrDuplicateLabel)
		}
		seen[s.Label] = struct{}{}

		rule, err := compile(s)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", s.Label, err)
		}
		cats = append(cats, Category{Label: s.Label, Rule: rule})
	}
	return &Table{cats: cats}, nil
}

// Categories returns the categories in table order.
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.cats))
	copy(out, t.cats)
	return out
}

// Labels returns the labels in table order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.cats))
	for i, c := range t.cats {
		out[i] = c.Label
	}
	return out
}

// Len returns the number of categories.
func (t *Table) Len() int {
	return len(t.cats)
}

func compile(s Spec) (Rule, error) {
	var expr string
	switch {
	case s.Pattern != "" && len(s.Terms) > 0:
		return Rule{}, fmt.Errorf("both terms and pattern given: %w", internalerr.ErrInvalidConfig)
	case s.Pattern != "":
		expr = s.Pattern
	case len(s.Terms) > 0:
		quoted := make([]string, len(s.Terms))
		for i, term := range s.Terms {
			quoted[i] = regexp.QuoteMeta(term)
		}
		expr = `(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`
	default:
		return Rule{}, fmt.Errorf("no terms or pattern given: %w", internalerr.ErrInvalidConfig)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	rule := Rule{re: re}
	if len(s.ExcludeAfter) > 0 {
		quoted := make([]string, len(s.ExcludeAfter))
		for i, phrase := range s.ExcludeAfter {
			quoted[i] = regexp.QuoteMeta(phrase)
		}
		exclude, err := regexp.Compile(`(?i)^\s+(?:` + strings.Join(quoted, "|") + `)\b`)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: exclusion clause: %v", internalerr.ErrInvalidConfig, err)
		}
		rule.exclude = exclude
	}
	return rule, nil
}
