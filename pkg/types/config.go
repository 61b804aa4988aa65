// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by every Notion API call.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "notion-alfred/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// NotionConfig holds the API endpoint and credentials.
type NotionConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root (default https://api.notion.com/v1).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Version is sent as the Notion-Version header (default 2022-06-28).
	Version string `json:"version" yaml:"version"`

	// Token is the integration secret sent as a bearer token.
	Token string `json:"-" yaml:"-"`
}

// SearchConfig holds settings for the search action.
type SearchConfig struct {
	// Workers bounds the number of concurrent page lookups (default 4).
	// A value of 1 resolves stubs strictly one after another.
	Workers int `json:"workers" yaml:"workers"`
}

// DatabaseTarget names a database that receives new records and the icon
// given to those records.
type DatabaseTarget struct {
	// DatabaseID is the canonical dashed UUID of the database.
	DatabaseID string `json:"database_id" yaml:"database_id"`

	// Emoji is the page icon for created records.
	Emoji string `json:"emoji" yaml:"emoji"`
}

// WorkflowConfig is the immutable configuration assembled once at startup
// and handed to every component constructor.
type WorkflowConfig struct {
	Notion NotionConfig   `json:"notion" yaml:"notion"`
	Search SearchConfig   `json:"search" yaml:"search"`
	Task   DatabaseTarget `json:"task" yaml:"task"`
	Note   DatabaseTarget `json:"note" yaml:"note"`

	// JournalPath is the SQLite file that records created pages. Empty
	// disables the journal.
	JournalPath string `json:"journal_path" yaml:"journal_path"`

	// LogLevel is the zap level name (debug, info, warn, error).
	LogLevel string `json:"log_level" yaml:"log_level"`
}
