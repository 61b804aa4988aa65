// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/notion-alfred/internal/aggregate"
	"github.com/pdiddy/notion-alfred/internal/config"
	"github.com/pdiddy/notion-alfred/internal/journal"
	"github.com/pdiddy/notion-alfred/internal/notion"
	"github.com/pdiddy/notion-alfred/internal/record"
	"github.com/pdiddy/notion-alfred/internal/resolve"
	"github.com/pdiddy/notion-alfred/internal/workflow"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

// newRunner builds the workflow runner for cfg. The journal is opened only
// when withJournal is set and a journal path is configured; the returned
// close function releases it.
func newRunner(cfg types.WorkflowConfig, out io.Writer, log *zap.Logger, withJournal bool) (*workflow.Runner, func(), error) {
	client := notion.NewClient(cfg.Notion, nil, log.Named("notion"))
	resolver := resolve.NewResolver(client, log.Named("resolve"))

	r := &workflow.Runner{
		Search:  aggregate.New(client, resolver, cfg.Search, log.Named("search")),
		Records: record.NewWriter(client, cfg, log.Named("record")),
		Out:     out,
		Log:     log,
	}

	closeFn := func() {}
	if withJournal && cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			return nil, nil, err
		}
		r.Journal = j
		closeFn = func() { j.Close() }
	}
	return r, closeFn, nil
}

// runAction performs one launcher action against the loaded configuration.
func runAction(ctx context.Context, out io.Writer, action, data string) error {
	writes := action == workflow.ActionTask || action == workflow.ActionNote
	if writes || action == workflow.ActionSearch {
		if err := config.RequireToken(appConfig); err != nil {
			return err
		}
	}

	r, closeFn, err := newRunner(appConfig, out, logger, writes)
	if err != nil {
		return err
	}
	defer closeFn()

	return r.Run(ctx, action, data)
}
