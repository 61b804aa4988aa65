// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package launcher converts a result index into the Alfred script-filter
// item list and writes it as JSON.
package launcher

import (
	"encoding/json"
	"io"

	"github.com/pdiddy/notion-alfred/pkg/types"
)

// Format returns one launcher item per index entry, in index order. A nil
// index yields an empty item list.
func Format(idx *types.ResultIndex) types.LauncherPayload {
	items := make([]types.LauncherItem, 0, idx.Len())
	idx.Each(func(title string, r types.NormalizedResult) {
		items = append(items, Item(title, r))
	})
	return types.LauncherPayload{Items: items}
}

// Item builds the launcher item for one titled result.
func Item(title string, r types.NormalizedResult) types.LauncherItem {
	return types.LauncherItem{
		UID:          title,
		Type:         types.ItemTypeDefault,
		Title:        title,
		Arg:          r.URL,
		QuickLookURL: r.URL,
		Icon:         r.Icon,
		Autocomplete: title,
	}
}

// WriteJSON writes payload as indented JSON. Emoji and HTML-significant
// characters are written as-is.
func WriteJSON(w io.Writer, payload types.LauncherPayload) error {
	if payload.Items == nil {
		payload.Items = []types.LauncherItem{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
