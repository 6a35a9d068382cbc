package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginTop(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Render writes a styled terminal summary of the report.
func Render(w io.Writer, r Report) {
	fmt.Fprintln(w, titleStyle.Render("Headline framing analysis"))
	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("run %s · %d headlines", r.RunID, r.Corpus)))

	fmt.Fprintln(w, titleStyle.Render("Category counts"))
	fmt.Fprintln(w, countsTable(r))

	fmt.Fprintf(w, "Compound framing ratio: %.2f categories per headline\n", r.CompoundFramingRatio)
	fmt.Fprintf(w, "Uncategorized rate:     %.1f%%\n", r.UncategorizedRate*100)
	fmt.Fprintf(w, "Distribution vs uniform: chi2=%.2f df=%d p=%.4g\n",
		r.DistributionTest.Statistic, r.DistributionTest.DF, r.DistributionTest.PValue)

	if len(r.Groups) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Group totals"))
		for _, g := range r.Groups {
			fmt.Fprintf(w, "  %s: %d thematic instances, %d exclusive (%.1f%%)\n",
				g.Name, g.MultiTotal, g.ExclusiveTotal, g.ExclusivePercent)
		}
		if len(r.Groups) == 2 && r.Groups[1].ExclusiveTotal > 0 {
			fmt.Fprintf(w, "  %s:%s exclusive ratio: %.1f:1\n",
				r.Groups[0].Name, r.Groups[1].Name,
				float64(r.Groups[0].ExclusiveTotal)/float64(r.Groups[1].ExclusiveTotal))
		}
	}

	if len(r.UncategorizedSample) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Uncategorized sample"))
		for i, h := range r.UncategorizedSample {
			fmt.Fprintf(w, "%3d. %s\n", i+1, h)
		}
	}
}

// countsTable lays out multi and exclusive counts side by side, in the
// descending exclusive order the report carries.
func countsTable(r Report) string {
	multiByLabel := make(map[string]LabelCount, len(r.MultiCounts))
	for _, c := range r.MultiCounts {
		multiByLabel[c.Label] = c
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(infoStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("Category", "Multi", "Exclusive", "Excl %")

	for _, c := range r.ExclusiveCounts {
		t.Row(
			c.Label,
			strconv.Itoa(multiByLabel[c.Label].Count),
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.1f", c.Percent),
		)
	}
	return t.Render()
}
