package aggregate

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Eden-Eldith/framescan/pkg/framescan/classify"
)

// ChiSquare is a goodness-of-fit test of the exclusive-count distribution
// against a uniform expected distribution over the same cells.
type ChiSquare struct {
	Statistic float64
	PValue    float64
	DF        int
	Cells     int
}

// goodnessOfFit compares the exclusive counts across categories (optionally
// including the Uncategorized sentinel) to uniform expected counts. With
// fewer than two cells, or when no headline falls into any cell, the test is
// degenerate and reports a statistic of zero with p = 1.
func goodnessOfFit(s Stats, includeUncategorized bool) ChiSquare {
	cells := append([]string(nil), s.Labels...)
	if includeUncategorized {
		cells = append(cells, classify.Uncategorized)
	}

	total := 0
	for _, cell := range cells {
		total += s.ExclusiveCounts[cell]
	}

	fit := ChiSquare{Cells: len(cells), DF: len(cells) - 1}
	if fit.DF < 1 || total == 0 {
		fit.DF = max(fit.DF, 0)
		fit.PValue = 1
		return fit
	}

	expected := float64(total) / float64(len(cells))
	for _, cell := range cells {
		diff := float64(s.ExclusiveCounts[cell]) - expected
		fit.Statistic += diff * diff / expected
	}

	dist := distuv.ChiSquared{K: float64(fit.DF)}
	fit.PValue = dist.Survival(fit.Statistic)
	return fit
}
