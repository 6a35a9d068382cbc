// Package csvsource reads a headline corpus from a CSV export. The headline
// column name is a parameter: scrape exports name columns after CSS classes,
// so nothing here assumes a fixed schema.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/Eden-Eldith/framescan/pkg/framescan/internalerr"
)

// Load reads the named column from a CSV file and returns one headline per
// usable row. Malformed rows are skipped with a warning rather than failing
// the batch; a file yielding no headlines is an error.
func Load(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%s: column %q (have: %s): %w",
			path, column, strings.Join(header, ", "), internalerr.ErrMissingColumn)
	}

	var headlines []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError names the offending line itself; quoted fields
			// can span physical lines, so no record counter would be right.
			log.Printf("Warning: skipping malformed row in %s: %v", path, err)
			continue
		}
		if col >= len(record) {
			line, _ := r.FieldPos(0)
			log.Printf("Warning: skipping short row at line %d in %s", line, path)
			continue
		}

		headline := Clean(record[col])
		if headline == "" {
			continue
		}
		headlines = append(headlines, headline)
	}

	if len(headlines) == 0 {
		return nil, fmt.Errorf("no headlines found in %s: %w", path, internalerr.ErrEmptyCorpus)
	}
	return headlines, nil
}

// Clean strips residual scrape markup (tags, entities) from a headline cell
// and normalizes whitespace.
func Clean(cell string) string {
	return strings.Join(strings.Fields(stripMarkup(cell)), " ")
}

// stripMarkup drops HTML tags and decodes entities, keeping only text
// content. Cells without markup pass through untouched.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	tz := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.WriteString(tz.Token().Data)
		}
	}
}
