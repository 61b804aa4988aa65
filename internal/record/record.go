// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record creates the two fixed record shapes the workflow can
// append: tasks and notes.
package record

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/notion-alfred/internal/notion"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

// Property names and option values of the task and note databases.
const (
	taskTitleProperty    = "Task"
	taskStatusProperty   = "Kanban Status"
	taskStatusValue      = "To Do"
	taskPriorityProperty = "Priority"
	taskPriorityValue    = "🧀 Medium"

	noteTitleProperty = "Title"
	noteTypeProperty  = "Type"
	noteTypeValue     = "Alfred"
)

var (
	// ErrEmptyTitle rejects records without a title.
	ErrEmptyTitle = errors.New("record title is empty")

	// ErrNoDatabase means the target database id is not configured.
	ErrNoDatabase = errors.New("database id not configured")
)

// PageCreator creates pages. *notion.Client satisfies it.
type PageCreator interface {
	CreatePage(ctx context.Context, req notion.CreatePageRequest) (notion.Page, error)
}

// Writer appends tasks and notes to their configured databases.
type Writer struct {
	pages PageCreator
	task  types.DatabaseTarget
	note  types.DatabaseTarget
	log   *zap.Logger
	now   func() time.Time
}

// NewWriter returns a Writer targeting the task and note databases of cfg.
func NewWriter(pages PageCreator, cfg types.WorkflowConfig, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{pages: pages, task: cfg.Task, note: cfg.Note, log: log, now: time.Now}
}

// TaskRequest builds the creation body for a task.
func TaskRequest(target types.DatabaseTarget, title string) notion.CreatePageRequest {
	return notion.CreatePageRequest{
		Parent: notion.Parent{DatabaseID: target.DatabaseID},
		Icon:   emojiIcon(target.Emoji),
		Properties: map[string]notion.PropertyValue{
			taskTitleProperty:    notion.TitleValue(title),
			taskStatusProperty:   notion.SelectOption(taskStatusValue),
			taskPriorityProperty: notion.SelectOption(taskPriorityValue),
		},
	}
}

// NoteRequest builds the creation body for a note.
func NoteRequest(target types.DatabaseTarget, title string) notion.CreatePageRequest {
	return notion.CreatePageRequest{
		Parent: notion.Parent{DatabaseID: target.DatabaseID},
		Icon:   emojiIcon(target.Emoji),
		Properties: map[string]notion.PropertyValue{
			noteTitleProperty: notion.TitleValue(title),
			noteTypeProperty:  notion.SelectOption(noteTypeValue),
		},
	}
}

// AddTask creates a task titled title.
func (w *Writer) AddTask(ctx context.Context, title string) (types.JournalEntry, error) {
	return w.add(ctx, types.RecordTask, w.task, title, TaskRequest)
}

// AddNote creates a note titled title.
func (w *Writer) AddNote(ctx context.Context, title string) (types.JournalEntry, error) {
	return w.add(ctx, types.RecordNote, w.note, title, NoteRequest)
}

// Add dispatches on kind.
func (w *Writer) Add(ctx context.Context, kind types.RecordKind, title string) (types.JournalEntry, error) {
	switch kind {
	case types.RecordTask:
		return w.AddTask(ctx, title)
	case types.RecordNote:
		return w.AddNote(ctx, title)
	default:
		return types.JournalEntry{}, fmt.Errorf("unknown record kind %q", kind)
	}
}

func (w *Writer) add(
	ctx context.Context,
	kind types.RecordKind,
	target types.DatabaseTarget,
	title string,
	build func(types.DatabaseTarget, string) notion.CreatePageRequest,
) (types.JournalEntry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return types.JournalEntry{}, fmt.Errorf("adding %s: %w", kind, ErrEmptyTitle)
	}
	if target.DatabaseID == "" {
		return types.JournalEntry{}, fmt.Errorf("adding %s: %w", kind, ErrNoDatabase)
	}

	page, err := w.pages.CreatePage(ctx, build(target, title))
	if err != nil {
		return types.JournalEntry{}, fmt.Errorf("adding %s %q: %w", kind, title, err)
	}
	w.log.Info("record created", zap.String("kind", string(kind)), zap.String("page", page.ID))

	return types.JournalEntry{
		PageID:     page.ID,
		Kind:       kind,
		Title:      title,
		URL:        page.URL,
		Icon:       target.Emoji,
		DatabaseID: target.DatabaseID,
		CreatedAt:  w.now().UTC(),
	}, nil
}

func emojiIcon(emoji string) *notion.Icon {
	if emoji == "" {
		return nil
	}
	return &notion.Icon{Type: notion.IconEmoji, Emoji: emoji}
}
