// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notion

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/notion-alfred/pkg/types"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query    string     `json:"query"`
	PageSize int        `json:"page_size"`
	Sort     SearchSort `json:"sort"`
}

// SearchSort orders search results by a timestamp.
type SearchSort struct {
	Direction string `json:"direction"`
	Timestamp string `json:"timestamp"`
}

// SearchResponse is the list object returned by POST /search.
type SearchResponse struct {
	Object     string       `json:"object"`
	Results    []searchStub `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor *string      `json:"next_cursor"`
}

type searchStub struct {
	Object string `json:"object"`
	ID     string `json:"id"`
	URL    string `json:"url"`
}

// Search runs req and returns one stub per result in the order Notion
// returned them. A result without an id is a protocol error.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]types.RawResultStub, error) {
	var resp SearchResponse
	if err := c.Do(ctx, http.MethodPost, "/search", req, &resp); err != nil {
		return nil, err
	}

	stubs := make([]types.RawResultStub, 0, len(resp.Results))
	for i, r := range resp.Results {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: search result %d has no id", ErrProtocol, i)
		}
		stubs = append(stubs, types.RawResultStub{ID: r.ID, URL: r.URL})
	}
	return stubs, nil
}
