// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow dispatches a launcher action (search, task, note) to the
// component that serves it.
package workflow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/notion-alfred/internal/launcher"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

// Actions understood by Run.
const (
	ActionSearch = "search"
	ActionTask   = "task"
	ActionNote   = "note"
)

// ErrUnsupportedAction is returned for any action outside search, task,
// and note.
var ErrUnsupportedAction = errors.New("action not supported")

// Searcher produces the result index for a query.
// *aggregate.Aggregator satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string) (*types.ResultIndex, error)
}

// RecordWriter creates task and note records. *record.Writer satisfies it.
type RecordWriter interface {
	Add(ctx context.Context, kind types.RecordKind, title string) (types.JournalEntry, error)
}

// Recorder stores created records. *journal.Journal satisfies it.
type Recorder interface {
	Record(ctx context.Context, e types.JournalEntry) error
}

// Runner wires the components behind each action. Journal may be nil.
type Runner struct {
	Search  Searcher
	Records RecordWriter
	Journal Recorder
	Out     io.Writer
	Log     *zap.Logger
}

// Run performs action with data. Search output is written to Out only after
// the whole pipeline succeeded; on any error Out is left untouched.
func (r *Runner) Run(ctx context.Context, action, data string) error {
	switch action {
	case ActionSearch:
		return r.search(ctx, data)
	case ActionTask:
		return r.add(ctx, types.RecordTask, data)
	case ActionNote:
		return r.add(ctx, types.RecordNote, data)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedAction, action)
	}
}

func (r *Runner) search(ctx context.Context, query string) error {
	idx, err := r.Search.Search(ctx, query)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := launcher.WriteJSON(&buf, launcher.Format(idx)); err != nil {
		return fmt.Errorf("encoding launcher items: %w", err)
	}
	_, err = buf.WriteTo(r.Out)
	return err
}

func (r *Runner) add(ctx context.Context, kind types.RecordKind, title string) error {
	entry, err := r.Records.Add(ctx, kind, title)
	if err != nil {
		return err
	}
	if r.Journal == nil {
		return nil
	}
	// The page already exists; journal errors are logged, not returned.
	if err := r.Journal.Record(ctx, entry); err != nil && r.Log != nil {
		r.Log.Warn("journal write failed", zap.String("page", entry.PageID), zap.Error(err))
	}
	return nil
}
