// Package framescan analyzes how a corpus of news headlines frames
// disability: which thematic categories each headline touches, how the
// corpus distributes across them, and how often categories co-occur.
package framescan

import (
	"crypto/rand"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/Eden-Eldith/framescan/pkg/framescan/aggregate"
	"github.com/Eden-Eldith/framescan/pkg/framescan/category"
	"github.com/Eden-Eldith/framescan/pkg/framescan/classify"
)

// Engine wires the category table, classifier and aggregator together.
type Engine struct {
	table      *category.Table
	classifier *classify.Classifier
	opts       aggregate.Options
}

// Options configures an Engine.
type Options struct {
	Aggregate aggregate.Options
}

// New creates an engine over the given table.
func New(table *category.Table, opts Options) *Engine {
	return &Engine{
		table:      table,
		classifier: classify.New(table),
		opts:       opts.Aggregate,
	}
}

// Table returns the engine's category table.
func (e *Engine) Table() *category.Table {
	return e.table
}

// Run holds the output of one analysis pass.
type Run struct {
	ID      string
	Stats   aggregate.Stats
	Results []classify.Result
}

// Analyze classifies every headline and aggregates the results. An empty
// corpus is an error.
func (e *Engine) Analyze(headlines []string) (*Run, error) {
	agg := aggregate.New(e.table.Labels(), e.opts)
	results := make([]classify.Result, 0, len(headlines))
	for _, h := range headlines {
		r := e.classifier.Classify(h)
		results = append(results, r)
		agg.Add(r)
	}

	stats, err := agg.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	return &Run{
		ID:      newRunID(),
		Stats:   stats,
		Results: results,
	}, nil
}

func newRunID() string {
	return ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String()
}
