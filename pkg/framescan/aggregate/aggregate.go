// Package aggregate reduces per-headline classification results into corpus
// statistics: multi-category and exclusive counts, a co-occurrence matrix,
// the compound framing ratio, the uncategorized rate, and a chi-square
// goodness-of-fit test against a uniform distribution.
package aggregate

import (
	"fmt"

	"github.com/Eden-Eldith/framescan/pkg/framescan/classify"
	"github.com/Eden-Eldith/framescan/pkg/framescan/internalerr"
)

// Options configures aggregation.
type Options struct {
	// IncludeUncategorized adds the Uncategorized sentinel as a cell in the
	// goodness-of-fit test. Counts and rates always include it.
	IncludeUncategorized bool
}

// Aggregator accumulates classification results for one corpus.
type Aggregator struct {
	labels     []string
	opts       Options
	corpus     int
	matchTotal int
	multi      map[string]int
	exclusive  map[string]int
	pairs      map[pair]int
	unmatched  []string
}

// pair is a canonically ordered label pair (A <= B lexically). The diagonal
// is represented as a pair of a label with itself.
type pair struct {
	A, B string
}

func newPair(a, b string) pair {
	if a > b {
		a, b = b, a
	}
	return pair{A: a, B: b}
}

// New creates an aggregator over the given category labels (table order).
func New(labels []string, opts Options) *Aggregator {
	ls := make([]string, len(labels))
	copy(ls, labels)
	return &Aggregator{
		labels:    ls,
		opts:      opts,
		multi:     make(map[string]int, len(labels)),
		exclusive: make(map[string]int, len(labels)+1),
		pairs:     make(map[pair]int),
	}
}

// Add consumes one headline's classification result.
func (a *Aggregator) Add(r classify.Result) {
	a.corpus++
	a.matchTotal += len(r.Matches)
	a.exclusive[r.Exclusive]++

	if len(r.Matches) == 0 {
		a.unmatched = append(a.unmatched, r.Text)
		return
	}

	for i, first := range r.Matches {
		a.multi[first]++
		// The diagonal (i == j) counts every headline containing the label,
		// so it equals the label's multi-category count.
		for _, second := range r.Matches[i:] {
			a.pairs[newPair(first, second)]++
		}
	}
}

// Snapshot computes the final statistics. An empty corpus is a hard error:
// no rates can be produced over zero headlines.
func (a *Aggregator) Snapshot() (Stats, error) {
	if a.corpus == 0 {
		return Stats{}, fmt.Errorf("aggregate: %w", internalerr.ErrEmptyCorpus)
	}

	multi := make(map[string]int, len(a.labels))
	exclusive := make(map[string]int, len(a.labels)+1)
	for _, label := range a.labels {
		multi[label] = a.multi[label]
		exclusive[label] = a.exclusive[label]
	}
	exclusive[classify.Uncategorized] = a.exclusive[classify.Uncategorized]

	matrix := newMatrix(a.labels, a.pairs)

	stats := Stats{
		Corpus:            a.corpus,
		Labels:            append([]string(nil), a.labels...),
		MultiCounts:       multi,
		ExclusiveCounts:   exclusive,
		CoOccurrence:      matrix,
		CompoundRatio:     float64(a.matchTotal) / float64(a.corpus),
		UncategorizedRate: float64(a.exclusive[classify.Uncategorized]) / float64(a.corpus),
		Unmatched:         append([]string(nil), a.unmatched...),
	}
	stats.Fit = goodnessOfFit(stats, a.opts.IncludeUncategorized)
	return stats, nil
}

// Stats is the read-only output of one aggregation pass.
type Stats struct {
	Corpus            int
	Labels            []string
	MultiCounts       map[string]int
	ExclusiveCounts   map[string]int
	CoOccurrence      *Matrix
	CompoundRatio     float64
	UncategorizedRate float64
	Unmatched         []string
	Fit               ChiSquare
}

// GroupTotals sums the multi-category and exclusive counts over a named set
// of labels. Unknown labels contribute zero.
func (s Stats) GroupTotals(labels []string) (multi, exclusive int) {
	for _, label := range labels {
		multi += s.MultiCounts[label]
		exclusive += s.ExclusiveCounts[label]
	}
	return multi, exclusive
}

// Matrix is a symmetric co-occurrence matrix over category labels. The
// off-diagonal entry (A, B) counts headlines matching both A and B; the
// diagonal entry (A, A) counts every headline matching A, with or without
// co-matches.
type Matrix struct {
	labels []string
	counts map[pair]int
}

func newMatrix(labels []string, counts map[pair]int) *Matrix {
	copied := make(map[pair]int, len(counts))
	for p, n := range counts {
		copied[p] = n
	}
	return &Matrix{labels: append([]string(nil), labels...), counts: copied}
}

// Labels returns the axis labels in table order.
func (m *Matrix) Labels() []string {
	return append([]string(nil), m.labels...)
}

// At returns the co-occurrence count for a label pair, in either order.
func (m *Matrix) At(a, b string) int {
	return m.counts[newPair(a, b)]
}
