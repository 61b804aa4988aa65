// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate runs a Notion search and resolves every hit into a
// titled, ordered result index.
package aggregate

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/notion-alfred/internal/notion"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

// Search parameters sent with every query. Results come back oldest edit
// first, and that order is the order the launcher shows.
const (
	PageSize      = 10
	SortDirection = "ascending"
	SortTimestamp = "last_edited_time"
)

const defaultWorkers = 4

// Searcher runs a search call. *notion.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, req notion.SearchRequest) ([]types.RawResultStub, error)
}

// PropertyResolver resolves display properties of a page.
// *resolve.Resolver satisfies it.
type PropertyResolver interface {
	ResolveTitle(ctx context.Context, recordID string) (string, error)
	ResolveIcon(ctx context.Context, recordID string) (string, error)
}

// Aggregator turns a query into a ResultIndex.
type Aggregator struct {
	search  Searcher
	props   PropertyResolver
	workers int
	log     *zap.Logger
}

// New returns an Aggregator. cfg.Workers bounds concurrent page lookups; a
// value of 0 uses the default (4).
func New(search Searcher, props PropertyResolver, cfg types.SearchConfig, log *zap.Logger) *Aggregator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{search: search, props: props, workers: workers, log: log}
}

// Request builds the search body for query.
func Request(query string) notion.SearchRequest {
	return notion.SearchRequest{
		Query:    query,
		PageSize: PageSize,
		Sort: notion.SearchSort{
			Direction: SortDirection,
			Timestamp: SortTimestamp,
		},
	}
}

type slot struct {
	title  string
	result types.NormalizedResult
}

// Search runs query and resolves the title and icon of every stub. Stubs are
// resolved concurrently, but the index is filled in the order the search
// returned them. Any failure aborts the whole search and no index is
// returned.
func (a *Aggregator) Search(ctx context.Context, query string) (*types.ResultIndex, error) {
	stubs, err := a.search.Search(ctx, Request(query))
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	a.log.Debug("search returned", zap.String("query", query), zap.Int("stubs", len(stubs)))

	if len(stubs) == 0 {
		return types.NewResultIndex(0), nil
	}

	slots := make([]slot, len(stubs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, stub := range stubs {
		i, stub := i, stub
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			title, err := a.props.ResolveTitle(gctx, stub.ID)
			if err != nil {
				return fmt.Errorf("resolving title of result %d: %w", i+1, err)
			}
			icon, err := a.props.ResolveIcon(gctx, stub.ID)
			if err != nil {
				return fmt.Errorf("resolving icon of result %d: %w", i+1, err)
			}
			slots[i] = slot{
				title:  title,
				result: types.NormalizedResult{ID: stub.ID, URL: stub.URL, Icon: icon},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := types.NewResultIndex(len(slots))
	for _, s := range slots {
		if _, dup := idx.Get(s.title); dup {
			a.log.Debug("duplicate title replaced", zap.String("title", s.title), zap.String("id", s.result.ID))
		}
		idx.Set(s.title, s.result)
	}
	return idx, nil
}
