// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the notion-alfred pipeline:
// search stubs, resolved results, the ordered result index, the launcher
// item schema, journal entries, and the workflow configuration.
package types

// RawResultStub is the minimal record reference returned by a search call,
// before any property has been resolved.
type RawResultStub struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// NormalizedResult is a resolved search hit. It is keyed externally by its
// display title in a ResultIndex.
type NormalizedResult struct {
	ID   string `json:"id" yaml:"id"`
	URL  string `json:"url" yaml:"url"`
	Icon string `json:"icon" yaml:"icon"`
}

// ResultIndex maps display titles to resolved results and remembers the
// order in which titles were first inserted. Setting a title that is already
// present replaces its result but keeps its position.
//
// The zero value is an empty index ready to use.
type ResultIndex struct {
	titles  []string
	results map[string]NormalizedResult
}

// NewResultIndex returns an empty index with room for n titles.
func NewResultIndex(n int) *ResultIndex {
	return &ResultIndex{
		titles:  make([]string, 0, n),
		results: make(map[string]NormalizedResult, n),
	}
}

// Set stores r under title. Last write wins.
func (x *ResultIndex) Set(title string, r NormalizedResult) {
	if x.results == nil {
		x.results = make(map[string]NormalizedResult)
	}
	if _, ok := x.results[title]; !ok {
		x.titles = append(x.titles, title)
	}
	x.results[title] = r
}

// Get returns the result stored under title.
func (x *ResultIndex) Get(title string) (NormalizedResult, bool) {
	if x == nil {
		return NormalizedResult{}, false
	}
	r, ok := x.results[title]
	return r, ok
}

// Len returns the number of distinct titles in the index.
func (x *ResultIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.titles)
}

// Titles returns the titles in insertion order.
func (x *ResultIndex) Titles() []string {
	if x == nil {
		return nil
	}
	out := make([]string, len(x.titles))
	copy(out, x.titles)
	return out
}

// Each calls fn for every entry in insertion order.
func (x *ResultIndex) Each(fn func(title string, r NormalizedResult)) {
	if x == nil {
		return
	}
	for _, t := range x.titles {
		fn(t, x.results[t])
	}
}
