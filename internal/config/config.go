// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles the immutable workflow configuration from a
// viper instance (config file, environment, flags) and the secrets
// directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/pdiddy/notion-alfred/internal/notion"
	"github.com/pdiddy/notion-alfred/pkg/types"
)

// Keys read from viper.
const (
	KeyToken         = "token"
	KeyBaseURL       = "notion.base_url"
	KeyVersion       = "notion.version"
	KeyTimeout       = "notion.timeout"
	KeyUserAgent     = "notion.user_agent"
	KeyWorkers       = "search.workers"
	KeyTaskDatabase  = "task.database_id"
	KeyTaskEmoji     = "task.emoji"
	KeyNoteDatabase  = "note.database_id"
	KeyNoteEmoji     = "note.emoji"
	KeyJournalPath   = "journal_path"
	KeyLogLevel      = "log_level"
	EnvPrefix        = "NOTION_ALFRED"
	TokenSecretFile  = "notion-api-token"
	DefaultTaskEmoji = "✅"
	DefaultNoteEmoji = "📓"
)

// ErrMissingToken means no API token was found in the environment, the
// config file, or the secrets directory.
var ErrMissingToken = errors.New("notion API token not configured: set NOTION_API_TOKEN or .secrets/" + TokenSecretFile)

// legacyEnv maps keys to the unprefixed variable names the workflow has
// always read, so existing launcher setups keep working.
var legacyEnv = map[string]string{
	KeyToken:        "NOTION_API_TOKEN",
	KeyTaskDatabase: "TASK_DB_ID",
	KeyNoteDatabase: "NOTE_DB_ID",
	KeyTaskEmoji:    "TASK_EMOJI",
	KeyNoteEmoji:    "NOTE_EMOJI",
}

// SetDefaults installs defaults and environment bindings on v. userAgent
// is sent with every request; home, when non-empty, places the journal under
// ~/.local/state/notion-alfred.
func SetDefaults(v *viper.Viper, userAgent, home string) error {
	v.SetDefault(KeyBaseURL, notion.DefaultBaseURL)
	v.SetDefault(KeyVersion, notion.DefaultVersion)
	v.SetDefault(KeyTimeout, 30*time.Second)
	v.SetDefault(KeyUserAgent, userAgent)
	v.SetDefault(KeyWorkers, 4)
	v.SetDefault(KeyTaskEmoji, DefaultTaskEmoji)
	v.SetDefault(KeyNoteEmoji, DefaultNoteEmoji)
	v.SetDefault(KeyLogLevel, "warn")
	if home != "" {
		v.SetDefault(KeyJournalPath, filepath.Join(home, ".local", "state", "notion-alfred", "journal.db"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return fmt.Errorf("binding %s: %w", env, err)
		}
	}
	return nil
}

// Load reads the configuration from v. When no token is set it falls back
// to the secrets directory. Database ids are normalized to dashed UUIDs.
func Load(v *viper.Viper, secretsDir string) (types.WorkflowConfig, error) {
	cfg := types.WorkflowConfig{
		Notion: types.NotionConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration(KeyTimeout),
				UserAgent: v.GetString(KeyUserAgent),
			},
			BaseURL: v.GetString(KeyBaseURL),
			Version: v.GetString(KeyVersion),
			Token:   strings.TrimSpace(v.GetString(KeyToken)),
		},
		Search: types.SearchConfig{Workers: v.GetInt(KeyWorkers)},
		Task: types.DatabaseTarget{
			DatabaseID: v.GetString(KeyTaskDatabase),
			Emoji:      v.GetString(KeyTaskEmoji),
		},
		Note: types.DatabaseTarget{
			DatabaseID: v.GetString(KeyNoteDatabase),
			Emoji:      v.GetString(KeyNoteEmoji),
		},
		JournalPath: v.GetString(KeyJournalPath),
		LogLevel:    v.GetString(KeyLogLevel),
	}

	if cfg.Notion.Token == "" && secretsDir != "" {
		token, err := ReadSecret(secretsDir, TokenSecretFile)
		if err != nil {
			return types.WorkflowConfig{}, err
		}
		cfg.Notion.Token = token
	}

	var err error
	if cfg.Task.DatabaseID, err = normalizeID(cfg.Task.DatabaseID); err != nil {
		return types.WorkflowConfig{}, fmt.Errorf("task database id: %w", err)
	}
	if cfg.Note.DatabaseID, err = normalizeID(cfg.Note.DatabaseID); err != nil {
		return types.WorkflowConfig{}, fmt.Errorf("note database id: %w", err)
	}
	if cfg.Search.Workers < 1 {
		return types.WorkflowConfig{}, fmt.Errorf("search workers must be at least 1, got %d", cfg.Search.Workers)
	}
	return cfg, nil
}

// RequireToken reports ErrMissingToken when cfg has no API token.
func RequireToken(cfg types.WorkflowConfig) error {
	if cfg.Notion.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// normalizeID accepts dashed or undashed UUIDs, and the copy-pasted form
// "https://www.notion.so/<workspace>/<32 hex>?v=..." users take from the
// browser address bar. Empty stays empty.
func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", nil
	}
	if i := strings.IndexByte(id, '?'); i >= 0 {
		id = id[:i]
	}
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	u, err := uuid.Parse(id)
	if err != nil && len(id) > 32 {
		// Slugged form: "Tasks-<32 hex>".
		u, err = uuid.Parse(id[len(id)-32:])
	}
	if err != nil {
		return "", fmt.Errorf("%q is not a Notion id: %w", id, err)
	}
	return u.String(), nil
}

// ReadSecret returns the trimmed contents of dir/name. A missing directory
// or file yields an empty value, not an error.
func ReadSecret(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading secret %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}
