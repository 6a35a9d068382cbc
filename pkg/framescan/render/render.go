// Package render draws the two analysis charts as PNG files: a side-by-side
// bar chart comparing multi-category and exclusive counts, and a
// co-occurrence heatmap.
package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/Eden-Eldith/framescan/pkg/framescan/report"
)

var (
	multiColor     = color.RGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	exclusiveColor = color.RGBA{R: 0xA2, G: 0x3B, B: 0x72, A: 0xFF}
)

// Comparison draws horizontal bars of multi-category vs exclusive counts per
// label, sorted ascending by exclusive count so the largest category sits on
// top.
func Comparison(rep report.Report, path string) error {
	multiByLabel := make(map[string]int, len(rep.MultiCounts))
	for _, c := range rep.MultiCounts {
		multiByLabel[c.Label] = c.Count
	}

	n := len(rep.ExclusiveCounts)
	labels := make([]string, n)
	multi := make(plotter.Values, n)
	exclusive := make(plotter.Values, n)
	for i, c := range rep.ExclusiveCounts {
		// ExclusiveCounts is sorted descending; reverse it.
		j := n - 1 - i
		labels[j] = c.Label
		multi[j] = float64(multiByLabel[c.Label])
		exclusive[j] = float64(c.Count)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Coverage by category: multi vs exclusive (%d headlines)", rep.Corpus)
	p.X.Label.Text = "Number of headlines"

	multiBars, err := plotter.NewBarChart(multi, vg.Points(7))
	if err != nil {
		return fmt.Errorf("comparison chart: %w", err)
	}
	exclusiveBars, err := plotter.NewBarChart(exclusive, vg.Points(7))
	if err != nil {
		return fmt.Errorf("comparison chart: %w", err)
	}

	multiBars.Horizontal = true
	multiBars.Color = multiColor
	multiBars.Offset = vg.Points(4)
	exclusiveBars.Horizontal = true
	exclusiveBars.Color = exclusiveColor
	exclusiveBars.Offset = vg.Points(-4)

	p.Add(multiBars, exclusiveBars)
	p.Legend.Add("multi-category", multiBars)
	p.Legend.Add("exclusive", exclusiveBars)
	p.Legend.Top = true
	p.NominalY(labels...)

	height := vg.Length(n)*vg.Points(28) + vg.Inch
	if err := p.Save(9*vg.Inch, height, path); err != nil {
		return fmt.Errorf("save comparison chart: %w", err)
	}
	return nil
}

// Heatmap draws the co-occurrence matrix. Labels listed in exclude are left
// out of the chart (the matrix itself always covers every category); the
// catch-all category is the usual exclusion, since it co-occurs with nearly
// everything and washes out the scale.
func Heatmap(rep report.Report, exclude []string, path string) error {
	grid := newGrid(rep.CoOccurrence, exclude)
	if len(grid.labels) == 0 {
		return fmt.Errorf("heatmap: no categories left after exclusions")
	}

	p := plot.New()
	p.Title.Text = "Category co-occurrence"

	h := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	p.Add(h)

	ticks := make([]plot.Tick, len(grid.labels))
	for i, label := range grid.labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	annotations, err := cellLabels(grid)
	if err != nil {
		return fmt.Errorf("heatmap: %w", err)
	}
	p.Add(annotations)

	side := vg.Length(len(grid.labels))*vg.Points(36) + 2*vg.Inch
	if err := p.Save(side, side, path); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}
	return nil
}

// grid adapts the report's co-occurrence matrix to plotter.GridXYZ, applying
// label exclusions.
type grid struct {
	labels []string
	counts [][]int
}

func newGrid(co report.CoOccurrence, exclude []string) grid {
	skip := make(map[string]struct{}, len(exclude))
	for _, label := range exclude {
		skip[label] = struct{}{}
	}

	var keep []int
	var labels []string
	for i, label := range co.Labels {
		if _, ok := skip[label]; ok {
			continue
		}
		keep = append(keep, i)
		labels = append(labels, label)
	}

	counts := make([][]int, len(keep))
	for i, r := range keep {
		counts[i] = make([]int, len(keep))
		for j, c := range keep {
			counts[i][j] = co.Counts[r][c]
		}
	}
	return grid{labels: labels, counts: counts}
}

func (g grid) Dims() (int, int)   { return len(g.labels), len(g.labels) }
func (g grid) Z(c, r int) float64 { return float64(g.counts[r][c]) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

// cellLabels annotates every nonzero cell with its count.
func cellLabels(g grid) (*plotter.Labels, error) {
	var xys plotter.XYs
	var texts []string
	for r, row := range g.counts {
		for c, count := range row {
			if count == 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			texts = append(texts, fmt.Sprintf("%d", count))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	return labels, nil
}
