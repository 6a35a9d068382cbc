// Package classify applies a category table to headline text. It produces
// two views of the same rule evaluation: the full match set (every category
// whose rule matches) and the exclusive label (first match in table order).
package classify

import "github.com/Eden-Eldith/framescan/pkg/framescan/category"

// Uncategorized is the sentinel exclusive label for headlines that match
// no category.
const Uncategorized = "Uncategorized"

// Result holds both classification views for one headline.
type Result struct {
	Text      string
	Matches   []string
	Exclusive string
}

// Classifier evaluates headlines against an immutable category table.
// Safe for concurrent use: classification is read-only.
type Classifier struct {
	cats []category.Category
}

// New creates a classifier over the given table.
func New(table *category.Table) *Classifier {
	return &Classifier{cats: table.Categories()}
}

// MatchSet returns the labels of every category whose rule matches text,
// in table order. Empty text matches nothing.
func (c *Classifier) MatchSet(text string) []string {
	var matches []string
	for _, cat := range c.cats {
		if cat.Rule.Matches(text) {
			matches = append(matches, cat.Label)
		}
	}
	return matches
}

// ExclusiveLabel returns the label of the first category in table order
// whose rule matches text, or Uncategorized when none do.
func (c *Classifier) ExclusiveLabel(text string) string {
	for _, cat := range c.cats {
		if cat.Rule.Matches(text) {
			return cat.Label
		}
	}
	return Uncategorized
}

// Classify evaluates both views in a single pass over the table. The
// exclusive label is taken from the match set, so it is always either a
// member of Matches or Uncategorized.
func (c *Classifier) Classify(text string) Result {
	matches := c.MatchSet(text)
	exclusive := Uncategorized
	if len(matches) > 0 {
		exclusive = matches[0]
	}
	return Result{Text: text, Matches: matches, Exclusive: exclusive}
}
