// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dashedID = "59833787-2cf9-4fdf-8782-e53db20768a5"

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	require.NoError(t, SetDefaults(v, "notion-alfred/test", "/home/u"))
	return v
}

func TestLoadDefaults(t *testing.T) {
	v := newViper(t)
	v.Set(KeyToken, "secret_abc")

	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, "secret_abc", cfg.Notion.Token)
	assert.Equal(t, "https://api.notion.com/v1", cfg.Notion.BaseURL)
	assert.Equal(t, "2022-06-28", cfg.Notion.Version)
	assert.Equal(t, 30*time.Second, cfg.Notion.Timeout)
	assert.Equal(t, "notion-alfred/test", cfg.Notion.UserAgent)
	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Equal(t, "✅", cfg.Task.Emoji)
	assert.Equal(t, "📓", cfg.Note.Emoji)
	assert.Equal(t, filepath.Join("/home/u", ".local", "state", "notion-alfred", "journal.db"), cfg.JournalPath)
	assert.Empty(t, cfg.Task.DatabaseID)
}

func TestLoadLegacyEnvironment(t *testing.T) {
	t.Setenv("NOTION_API_TOKEN", "secret_env")
	t.Setenv("TASK_DB_ID", strings.ReplaceAll(dashedID, "-", ""))
	t.Setenv("NOTE_DB_ID", dashedID)
	t.Setenv("NOTE_EMOJI", "🗒️")
	t.Setenv("TASK_EMOJI", "☑️")

	cfg, err := Load(newViper(t), "")
	require.NoError(t, err)

	assert.Equal(t, "secret_env", cfg.Notion.Token)
	assert.Equal(t, dashedID, cfg.Task.DatabaseID)
	assert.Equal(t, dashedID, cfg.Note.DatabaseID)
	assert.Equal(t, "🗒️", cfg.Note.Emoji)
	assert.Equal(t, "☑️", cfg.Task.Emoji)
}

func TestLoadPrefixedEnvironment(t *testing.T) {
	t.Setenv("NOTION_ALFRED_SEARCH_WORKERS", "1")
	t.Setenv("NOTION_ALFRED_TOKEN", "secret_prefixed")

	cfg, err := Load(newViper(t), "")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Search.Workers)
	assert.Equal(t, "secret_prefixed", cfg.Notion.Token)
}

func TestLoadTokenFromSecrets(t *testing.T) {
	t.Setenv("NOTION_API_TOKEN", "")
	t.Setenv("NOTION_ALFRED_TOKEN", "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TokenSecretFile), []byte("  secret_file\n"), 0o600))

	cfg, err := Load(newViper(t), dir)
	require.NoError(t, err)
	assert.Equal(t, "secret_file", cfg.Notion.Token)
	assert.NoError(t, RequireToken(cfg))
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("NOTION_API_TOKEN", "")
	t.Setenv("NOTION_ALFRED_TOKEN", "")

	cfg, err := Load(newViper(t), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.ErrorIs(t, RequireToken(cfg), ErrMissingToken)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  any
		errMsg string
	}{
		{"bad task id", KeyTaskDatabase, "not-an-id", "task database id"},
		{"bad note id", KeyNoteDatabase, "1234", "note database id"},
		{"zero workers", KeyWorkers, 0, "workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper(t)
			v.Set(tt.key, tt.value)
			_, err := Load(v, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"dashed", dashedID, dashedID},
		{"undashed", "598337872cf94fdf8782e53db20768a5", dashedID},
		{"database url", "https://www.notion.so/acme/598337872cf94fdf8782e53db20768a5?v=abc", dashedID},
		{"slugged url", "https://www.notion.so/acme/Tasks-598337872cf94fdf8782e53db20768a5", dashedID},
		{"whitespace", "  " + dashedID + "\n", dashedID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadSecret(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k"), []byte("v\n"), 0o600))

	got, err := ReadSecret(dir, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	got, err = ReadSecret(dir, "absent")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ReadSecret(filepath.Join(dir, "nope"), "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}
