// Package config loads the category table and analysis options from YAML.
// Consumers can extend or replace the builtin taxonomy without touching the
// classifier or aggregator.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Eden-Eldith/framescan/pkg/framescan/category"
	"github.com/Eden-Eldith/framescan/pkg/framescan/internalerr"
)

// CategorySpec is one category entry. Order in the file is priority order.
type CategorySpec struct {
	Label        string   `yaml:"label"`
	Terms        []string `yaml:"terms,omitempty"`
	Pattern      string   `yaml:"pattern,omitempty"`
	ExcludeAfter []string `yaml:"exclude_after,omitempty"`
}

// DistributionTest configures the goodness-of-fit test.
type DistributionTest struct {
	IncludeUncategorized bool `yaml:"include_uncategorized"`
}

// File is the full analysis configuration.
type File struct {
	Categories          []CategorySpec      `yaml:"categories"`
	DistributionTest    DistributionTest    `yaml:"distribution_test"`
	Groups              map[string][]string `yaml:"groups,omitempty"`
	HeatmapExclude      []string            `yaml:"heatmap_exclude,omitempty"`
	UncategorizedSample int                 `yaml:"uncategorized_sample"`
}

// Default returns a configuration built around the builtin taxonomy, with
// the visibility groups and heatmap exclusions the original analysis used.
func Default() *File {
	specs := category.BuiltinSpecs()
	cats := make([]CategorySpec, len(specs))
	for i, s := range specs {
		cats[i] = CategorySpec{
			Label:        s.Label,
			Terms:        s.Terms,
			Pattern:      s.Pattern,
			ExcludeAfter: s.ExcludeAfter,
		}
	}
	return &File{
		Categories: cats,
		Groups: map[string][]string{
			"visible":   {"Deaf/Hearing", "Blind/Vision", "Physical & Mobility", "Learning Disabilities"},
			"invisible": {"Chronic Illness/Pain", "Mental Health & Neuro", "Autism/Neurodiversity"},
		},
		HeatmapExclude:      []string{"General 'Disability' Keyword"},
		UncategorizedSample: 20,
	}
}

// Load reads a configuration file. Missing optional fields fall back to the
// defaults; an empty category list is a configuration error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	f := &File{UncategorizedSample: 20}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w: %v", path, internalerr.ErrInvalidConfig, err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("config %s has no categories: %w", path, internalerr.ErrInvalidConfig)
	}
	return f, nil
}

// Table compiles the configured categories, preserving file order.
func (f *File) Table() (*category.Table, error) {
	specs := make([]category.Spec, len(f.Categories))
	for i, c := range f.Categories {
		specs[i] = category.Spec{
			Label:        c.Label,
			Terms:        c.Terms,
			Pattern:      c.Pattern,
			ExcludeAfter: c.ExcludeAfter,
		}
	}
	return category.NewTable(specs)
}
