// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RecordKind identifies which of the two fixed record shapes was created.
type RecordKind string

const (
	RecordTask RecordKind = "task"
	RecordNote RecordKind = "note"
)

// JournalEntry is one record created through this tool.
type JournalEntry struct {
	PageID     string     `json:"page_id" yaml:"page_id"`
	Kind       RecordKind `json:"kind" yaml:"kind"`
	Title      string     `json:"title" yaml:"title"`
	URL        string     `json:"url" yaml:"url"`
	Icon       string     `json:"icon" yaml:"icon"`
	DatabaseID string     `json:"database_id" yaml:"database_id"`
	CreatedAt  time.Time  `json:"created_at" yaml:"created_at"`
}
