// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notion-alfred/internal/notion"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

type fakeCreator struct {
	reqs []notion.CreatePageRequest
	page notion.Page
	err  error
}

func (f *fakeCreator) CreatePage(_ context.Context, req notion.CreatePageRequest) (notion.Page, error) {
	f.reqs = append(f.reqs, req)
	return f.page, f.err
}

func testConfig() types.WorkflowConfig {
	return types.WorkflowConfig{
		Task: types.DatabaseTarget{DatabaseID: "task-db", Emoji: "✅"},
		Note: types.DatabaseTarget{DatabaseID: "note-db", Emoji: "📓"},
	}
}

func TestTaskRequestShape(t *testing.T) {
	got := TaskRequest(types.DatabaseTarget{DatabaseID: "task-db", Emoji: "✅"}, "Buy milk")
	want := notion.CreatePageRequest{
		Parent: notion.Parent{DatabaseID: "task-db"},
		Icon:   &notion.Icon{Type: "emoji", Emoji: "✅"},
		Properties: map[string]notion.PropertyValue{
			"Task":          {Title: []notion.RichText{{Text: &notion.TextBody{Content: "Buy milk"}}}},
			"Kanban Status": {Select: &notion.SelectValue{Name: "To Do"}},
			"Priority":      {Select: &notion.SelectValue{Name: "🧀 Medium"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TaskRequest() mismatch (-want +got):\n%s", diff)
	}
}

func TestNoteRequestShape(t *testing.T) {
	got := NoteRequest(types.DatabaseTarget{DatabaseID: "note-db"}, "Idea")
	want := notion.CreatePageRequest{
		Parent: notion.Parent{DatabaseID: "note-db"},
		Properties: map[string]notion.PropertyValue{
			"Title": {Title: []notion.RichText{{Text: &notion.TextBody{Content: "Idea"}}}},
			"Type":  {Select: &notion.SelectValue{Name: "Alfred"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NoteRequest() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddTaskReturnsEntry(t *testing.T) {
	fc := &fakeCreator{page: notion.Page{ID: "new-page", URL: "https://www.notion.so/new-page"}}
	w := NewWriter(fc, testConfig(), nil)
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	entry, err := w.AddTask(context.Background(), "  Buy milk ")
	require.NoError(t, err)

	require.Len(t, fc.reqs, 1)
	assert.Equal(t, "task-db", fc.reqs[0].Parent.DatabaseID)
	assert.Equal(t, types.JournalEntry{
		PageID:     "new-page",
		Kind:       types.RecordTask,
		Title:      "Buy milk",
		URL:        "https://www.notion.so/new-page",
		Icon:       "✅",
		DatabaseID: "task-db",
		CreatedAt:  fixed,
	}, entry)
}

func TestAddDispatch(t *testing.T) {
	fc := &fakeCreator{page: notion.Page{ID: "n"}}
	w := NewWriter(fc, testConfig(), nil)

	_, err := w.Add(context.Background(), types.RecordNote, "Idea")
	require.NoError(t, err)
	assert.Equal(t, "note-db", fc.reqs[0].Parent.DatabaseID)
	_, ok := fc.reqs[0].Properties["Title"]
	assert.True(t, ok)

	_, err = w.Add(context.Background(), types.RecordKind("bookmark"), "x")
	assert.Error(t, err)
}

func TestAddRejectsBeforeRequest(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.WorkflowConfig
		title   string
		wantErr error
	}{
		{"empty title", testConfig(), "   ", ErrEmptyTitle},
		{"no database", types.WorkflowConfig{}, "Buy milk", ErrNoDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCreator{}
			_, err := NewWriter(fc, tt.cfg, nil).AddTask(context.Background(), tt.title)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, fc.reqs)
		})
	}
}

func TestAddPropagatesTransportError(t *testing.T) {
	fc := &fakeCreator{err: &notion.APIError{Status: 400, Code: "validation_error"}}
	_, err := NewWriter(fc, testConfig(), nil).AddNote(context.Background(), "Idea")
	assert.ErrorIs(t, err, notion.ErrTransport)
}
