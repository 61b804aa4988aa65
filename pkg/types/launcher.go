// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ItemTypeDefault is the only launcher item type this tool emits.
const ItemTypeDefault = "default"

// LauncherItem is one row of an Alfred script-filter result list.
type LauncherItem struct {
	UID          string `json:"uid"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Arg          string `json:"arg"`
	QuickLookURL string `json:"quicklookurl"`
	Icon         string `json:"icon"`
	Autocomplete string `json:"autocomplete"`
}

// LauncherPayload is the top-level object the launcher reads from stdout.
// Items is never nil so that an empty result encodes as "items": [].
type LauncherPayload struct {
	Items []LauncherItem `json:"items"`
}
