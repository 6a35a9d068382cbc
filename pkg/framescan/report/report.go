// Package report shapes analysis output for consumers: a structured JSON
// record for downstream tooling and a styled terminal summary.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Eden-Eldith/framescan/pkg/framescan"
	"github.com/Eden-Eldith/framescan/pkg/framescan/classify"
)

// LabelCount is one label's count with its share of the corpus.
type LabelCount struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Fit is the distribution test result.
type Fit struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	DF        int     `json:"df"`
	Cells     int     `json:"cells"`
}

// CoOccurrence is the symmetric matrix in row-major form, both axes in
// table order.
type CoOccurrence struct {
	Labels []string `json:"labels"`
	Counts [][]int  `json:"counts"`
}

// Group is the totals for a named label group (e.g. visible vs invisible
// disability categories).
type Group struct {
	Name             string   `json:"name"`
	Labels           []string `json:"labels"`
	MultiTotal       int      `json:"multi_total"`
	ExclusiveTotal   int      `json:"exclusive_total"`
	ExclusivePercent float64  `json:"exclusive_percent"`
}

// Report is the full structured output of one run.
type Report struct {
	RunID                string       `json:"run_id"`
	GeneratedAt          time.Time    `json:"generated_at"`
	Corpus               int          `json:"corpus_size"`
	CompoundFramingRatio float64      `json:"compound_framing_ratio"`
	UncategorizedRate    float64      `json:"uncategorized_rate"`
	MultiCounts          []LabelCount `json:"multi_category_counts"`
	ExclusiveCounts      []LabelCount `json:"exclusive_counts"`
	DistributionTest     Fit          `json:"distribution_test"`
	CoOccurrence         CoOccurrence `json:"co_occurrence"`
	Groups               []Group      `json:"groups,omitempty"`
	UncategorizedSample  []string     `json:"uncategorized_sample,omitempty"`
}

// Build assembles a report from a run. Counts are sorted descending; labels
// with zero headlines stay in, reported as 0. sampleN caps the uncategorized
// headline sample (0 disables it).
func Build(run *framescan.Run, groups map[string][]string, sampleN int) Report {
	stats := run.Stats
	corpus := float64(stats.Corpus)

	rep := Report{
		RunID:                run.ID,
		GeneratedAt:          time.Now().UTC(),
		Corpus:               stats.Corpus,
		CompoundFramingRatio: stats.CompoundRatio,
		UncategorizedRate:    stats.UncategorizedRate,
		DistributionTest: Fit{
			Statistic: stats.Fit.Statistic,
			PValue:    stats.Fit.PValue,
			DF:        stats.Fit.DF,
			Cells:     stats.Fit.Cells,
		},
	}

	for _, label := range stats.Labels {
		rep.MultiCounts = append(rep.MultiCounts, LabelCount{
			Label:   label,
			Count:   stats.MultiCounts[label],
			Percent: float64(stats.MultiCounts[label]) / corpus * 100,
		})
	}
	// The multi view carries an Uncategorized row too: headlines matching
	// nothing at all, as the original analysis reported them.
	rep.MultiCounts = append(rep.MultiCounts, LabelCount{
		Label:   classify.Uncategorized,
		Count:   len(stats.Unmatched),
		Percent: float64(len(stats.Unmatched)) / corpus * 100,
	})
	sortCounts(rep.MultiCounts)

	exclusiveLabels := append(append([]string(nil), stats.Labels...), classify.Uncategorized)
	for _, label := range exclusiveLabels {
		rep.ExclusiveCounts = append(rep.ExclusiveCounts, LabelCount{
			Label:   label,
			Count:   stats.ExclusiveCounts[label],
			Percent: float64(stats.ExclusiveCounts[label]) / corpus * 100,
		})
	}
	sortCounts(rep.ExclusiveCounts)

	matrixLabels := stats.CoOccurrence.Labels()
	rep.CoOccurrence.Labels = matrixLabels
	rep.CoOccurrence.Counts = make([][]int, len(matrixLabels))
	for i, a := range matrixLabels {
		row := make([]int, len(matrixLabels))
		for j, b := range matrixLabels {
			row[j] = stats.CoOccurrence.At(a, b)
		}
		rep.CoOccurrence.Counts[i] = row
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		multi, exclusive := stats.GroupTotals(groups[name])
		rep.Groups = append(rep.Groups, Group{
			Name:             name,
			Labels:           groups[name],
			MultiTotal:       multi,
			ExclusiveTotal:   exclusive,
			ExclusivePercent: float64(exclusive) / corpus * 100,
		})
	}

	sample := stats.Unmatched
	if sampleN > 0 && len(sample) > sampleN {
		sample = sample[:sampleN]
	}
	if sampleN > 0 {
		rep.UncategorizedSample = append([]string(nil), sample...)
	}

	return rep
}

// sortCounts orders descending by count, ties broken by label for stable
// output across runs.
func sortCounts(counts []LabelCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
}

// WriteJSON writes the report to path.
func (r Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
