// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Icon types as reported in a page's icon object.
const (
	IconEmoji    = "emoji"
	IconExternal = "external"
	IconFile     = "file"
)

// Page is the subset of a Notion page object this tool reads.
type Page struct {
	Object     string              `json:"object"`
	ID         string              `json:"id"`
	URL        string              `json:"url"`
	Icon       *Icon               `json:"icon"`
	Properties map[string]Property `json:"properties"`
}

// Icon is a page icon. Only emoji icons carry a glyph.
type Icon struct {
	Type     string    `json:"type"`
	Emoji    string    `json:"emoji,omitempty"`
	External *FileLink `json:"external,omitempty"`
	File     *FileLink `json:"file,omitempty"`
}

// FileLink is the URL holder used by external and file icons.
type FileLink struct {
	URL string `json:"url"`
}

// Property is one entry of a page's properties map. Title holds the rich
// text segments of a title-type property; Raw keeps the full JSON value so
// other property types can be handed back uninterpreted.
type Property struct {
	ID    string          `json:"id"`
	Type  string          `json:"type"`
	Title []RichText      `json:"title,omitempty"`
	Raw   json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the typed fields and keeps a copy of the raw value.
func (p *Property) UnmarshalJSON(data []byte) error {
	type plain Property
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Property(v)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// RichText is one segment of a rich-text array.
type RichText struct {
	Type      string    `json:"type,omitempty"`
	PlainText string    `json:"plain_text,omitempty"`
	Text      *TextBody `json:"text,omitempty"`
}

// TextBody is the content of a text-type rich-text segment.
type TextBody struct {
	Content string `json:"content"`
}

// GetPage fetches one page by id.
func (c *Client) GetPage(ctx context.Context, id string) (Page, error) {
	var p Page
	if err := c.Do(ctx, http.MethodGet, "/pages/"+url.PathEscape(id), nil, &p); err != nil {
		return Page{}, err
	}
	return p, nil
}

// CreatePageRequest is the body of POST /pages for a database parent.
type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Properties map[string]PropertyValue `json:"properties"`
}

// Parent identifies the database a new page belongs to.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// PropertyValue is a writable property value. Only the title and select
// shapes are supported.
type PropertyValue struct {
	Title  []RichText   `json:"title,omitempty"`
	Select *SelectValue `json:"select,omitempty"`
}

// SelectValue names a select option.
type SelectValue struct {
	Name string `json:"name"`
}

// TitleValue returns a title property holding a single text segment.
func TitleValue(text string) PropertyValue {
	return PropertyValue{Title: []RichText{{Text: &TextBody{Content: text}}}}
}

// SelectOption returns a select property naming option.
func SelectOption(name string) PropertyValue {
	return PropertyValue{Select: &SelectValue{Name: name}}
}

// CreatePage creates a page and returns the created object.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (Page, error) {
	var p Page
	if err := c.Do(ctx, http.MethodPost, "/pages", req, &p); err != nil {
		return Page{}, err
	}
	return p, nil
}
