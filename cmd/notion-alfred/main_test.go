// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/notion-alfred/internal/config"
	"github.com/pdiddy/notion-alfred/internal/logging"
	"github.com/pdiddy/notion-alfred/internal/workflow"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

const taskDB = "59833787-2cf9-4fdf-8782-e53db20768a5"

func withConfig(t *testing.T, cfg types.WorkflowConfig) {
	t.Helper()
	oldCfg, oldLog := appConfig, logger
	appConfig, logger = cfg, zaptest.NewLogger(t)
	t.Cleanup(func() { appConfig, logger = oldCfg, oldLog })
}

func TestRunActionUnsupported(t *testing.T) {
	withConfig(t, types.WorkflowConfig{Search: types.SearchConfig{Workers: 1}})

	var out bytes.Buffer
	err := runAction(context.Background(), &out, "archive", "x")
	assert.ErrorIs(t, err, workflow.ErrUnsupportedAction)
	assert.Empty(t, out.String())
}

func TestRunActionRequiresToken(t *testing.T) {
	withConfig(t, types.WorkflowConfig{})

	var out bytes.Buffer
	err := runAction(context.Background(), &out, "search", "x")
	assert.ErrorIs(t, err, config.ErrMissingToken)
	assert.Empty(t, out.String())
}

func TestRunActionSearchEndToEnd(t *testing.T) {
	const id = "11111111-1111-4111-8111-111111111111"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search" {
			fmt.Fprintf(w, `{"results":[{"id":%q,"url":"https://x/p1"}]}`, id)
			return
		}
		fmt.Fprint(w, `{"id":"`+id+`","icon":{"type":"emoji","emoji":"📓"},
			"properties":{"title":{"type":"title","title":[{"plain_text":"My Note"}]}}}`)
	}))
	defer ts.Close()

	withConfig(t, types.WorkflowConfig{
		Notion: types.NotionConfig{BaseURL: ts.URL, Token: "t"},
		Search: types.SearchConfig{Workers: 2},
	})

	var out bytes.Buffer
	require.NoError(t, runAction(context.Background(), &out, "search", "my"))
	assert.JSONEq(t, `{"items":[{"uid":"My Note","type":"default","title":"My Note",
		"arg":"https://x/p1","quicklookurl":"https://x/p1","icon":"📓","autocomplete":"My Note"}]}`, out.String())
}

func TestTaskThenHistory(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pages" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"object":"page","id":"created-1","url":"https://www.notion.so/created-1"}`)
	}))
	defer ts.Close()

	cfg := types.WorkflowConfig{
		Notion:      types.NotionConfig{BaseURL: ts.URL, Token: "t"},
		Search:      types.SearchConfig{Workers: 1},
		Task:        types.DatabaseTarget{DatabaseID: taskDB, Emoji: "✅"},
		JournalPath: filepath.Join(t.TempDir(), "journal.db"),
	}
	withConfig(t, cfg)

	var out bytes.Buffer
	require.NoError(t, runAction(context.Background(), &out, "task", "Buy milk"))
	assert.Empty(t, out.String())

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, runHistory(cmd, cfg, &out, 10, false))
	assert.JSONEq(t, `{"items":[{"uid":"Buy milk","type":"default","title":"Buy milk",
		"arg":"https://www.notion.so/created-1","quicklookurl":"https://www.notion.so/created-1",
		"icon":"✅","autocomplete":"Buy milk"}]}`, out.String())

	out.Reset()
	require.NoError(t, runHistory(cmd, cfg, &out, 0, true))
	assert.Contains(t, out.String(), "page_id: created-1")
}

func TestHistoryRequiresJournal(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	assert.Error(t, runHistory(cmd, types.WorkflowConfig{}, &bytes.Buffer{}, 10, false))
}

// executeRoot runs rootCmd with args, capturing stdout. setup replaces the
// package config and logger, so both are restored afterwards.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	withConfig(t, types.WorkflowConfig{})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootDispatchUnsupportedAction(t *testing.T) {
	out, err := executeRoot(t, "archive", "x")
	assert.True(t, errors.Is(err, workflow.ErrUnsupportedAction))
	assert.Empty(t, out)
}

func TestRootDispatchUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"archive"}} {
		t.Run(fmt.Sprintf("args=%d", len(args)), func(t *testing.T) {
			out, err := executeRoot(t, args...)
			assert.ErrorIs(t, err, errUsage)
			assert.Empty(t, out)
		})
	}
}

func TestReportErrorLogs(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "warn")
	require.NoError(t, err)

	reportError(log, fmt.Errorf("dispatching: %w", workflow.ErrUnsupportedAction))
	assert.Contains(t, buf.String(), "error")
	assert.Contains(t, buf.String(), "command failed")
	assert.Contains(t, buf.String(), workflow.ErrUnsupportedAction.Error())
}
