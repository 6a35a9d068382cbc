package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Eden-Eldith/framescan/pkg/framescan"
	"github.com/Eden-Eldith/framescan/pkg/framescan/category"
)

func testRun(t *testing.T) *framescan.Run {
	t.Helper()
	table, err := category.NewTable([]category.Spec{
		{Label: "SEND", Terms: []string{"special school"}},
		{Label: "Mental Health", Terms: []string{"mental health"}},
		{Label: "Chronic Pain", Terms: []string{"chronic pain"}},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	engine := framescan.New(table, framescan.Options{})
	run, err := engine.Analyze([]string{
		"New special school opens",
		"Mental health and chronic pain support",
		"Local weather update",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return run
}

func TestBuild(t *testing.T) {
	run := testRun(t)
	groups := map[string][]string{"invisible": {"Mental Health", "Chronic Pain"}}
	rep := Build(run, groups, 20)

	if rep.Corpus != 3 {
		t.Errorf("corpus = %d, want 3", rep.Corpus)
	}

	// Multi view includes an Uncategorized row; every zero-count label stays.
	if len(rep.MultiCounts) != 4 {
		t.Errorf("multi rows = %d, want 4", len(rep.MultiCounts))
	}
	if len(rep.ExclusiveCounts) != 4 {
		t.Errorf("exclusive rows = %d, want 4", len(rep.ExclusiveCounts))
	}

	// Descending order by count.
	for i := 1; i < len(rep.ExclusiveCounts); i++ {
		if rep.ExclusiveCounts[i-1].Count < rep.ExclusiveCounts[i].Count {
			t.Errorf("exclusive counts not sorted at %d", i)
		}
	}

	if len(rep.Groups) != 1 || rep.Groups[0].MultiTotal != 2 || rep.Groups[0].ExclusiveTotal != 1 {
		t.Errorf("groups = %+v", rep.Groups)
	}
	if len(rep.UncategorizedSample) != 1 {
		t.Errorf("uncategorized sample = %v", rep.UncategorizedSample)
	}

	n := len(rep.CoOccurrence.Labels)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rep.CoOccurrence.Counts[i][j] != rep.CoOccurrence.Counts[j][i] {
				t.Errorf("co-occurrence JSON not symmetric at (%d, %d)", i, j)
			}
		}
	}
}

func TestWriteJSON(t *testing.T) {
	run := testRun(t)
	rep := Build(run, nil, 0)

	path := filepath.Join(t.TempDir(), "report.json")
	if err := rep.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if decoded.RunID != rep.RunID || decoded.Corpus != rep.Corpus {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
	if decoded.UncategorizedSample != nil {
		t.Errorf("sample should be omitted when disabled, got %v", decoded.UncategorizedSample)
	}
}

func TestRender(t *testing.T) {
	run := testRun(t)
	rep := Build(run, map[string][]string{
		"visible":   {"SEND"},
		"invisible": {"Mental Health", "Chronic Pain"},
	}, 20)

	var buf bytes.Buffer
	Render(&buf, rep)
	out := buf.String()

	for _, want := range []string{"Mental Health", "Uncategorized", "Compound framing ratio", "invisible"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}
