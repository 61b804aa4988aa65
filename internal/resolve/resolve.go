// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve fetches a single Notion page and extracts one display
// property from it: the title text, the emoji icon, or a named property
// returned as raw JSON.
package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/notion-alfred/internal/notion"
)

var (
	// ErrMalformedRecord means the page lacks the title or icon structure
	// the resolver needs, or the record id is not a page id.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrPropertyNotFound means a named property is absent from the page.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidKind means Resolve was given the zero Kind.
	ErrInvalidKind = errors.New("invalid property kind")
)

type kindTag int

const (
	kindTitle kindTag = iota + 1
	kindIcon
	kindNamed
)

// Kind selects which property Resolve extracts. The set is closed: use
// Title, Icon, or Named.
type Kind struct {
	tag  kindTag
	name string
}

var (
	// Title extracts the plain text of the first segment of the page's
	// title-type property.
	Title = Kind{tag: kindTitle}

	// Icon extracts the page's emoji icon.
	Icon = Kind{tag: kindIcon}
)

// Named extracts the property keyed by name without interpreting it.
func Named(name string) Kind {
	return Kind{tag: kindNamed, name: name}
}

func (k Kind) String() string {
	switch k.tag {
	case kindTitle:
		return "title"
	case kindIcon:
		return "icon"
	case kindNamed:
		return fmt.Sprintf("property %q", k.name)
	default:
		return "invalid"
	}
}

// Value is a resolved property. Text is set for Title and Icon; Raw holds
// the JSON value of a Named property.
type Value struct {
	Text string
	Raw  json.RawMessage
}

// PageFetcher loads a page by id. *notion.Client satisfies it.
type PageFetcher interface {
	GetPage(ctx context.Context, id string) (notion.Page, error)
}

// Resolver extracts display properties from pages. It keeps no cache: every
// call fetches the page again.
type Resolver struct {
	pages PageFetcher
	log   *zap.Logger
}

// NewResolver returns a Resolver reading pages through pages.
func NewResolver(pages PageFetcher, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{pages: pages, log: log}
}

// Resolve fetches recordID and extracts the property selected by kind.
func (r *Resolver) Resolve(ctx context.Context, recordID string, kind Kind) (Value, error) {
	if kind.tag == 0 {
		return Value{}, fmt.Errorf("resolving %s: %w", recordID, ErrInvalidKind)
	}
	if _, err := uuid.Parse(recordID); err != nil {
		return Value{}, fmt.Errorf("%w: record id %q: %v", ErrMalformedRecord, recordID, err)
	}

	page, err := r.pages.GetPage(ctx, recordID)
	if err != nil {
		return Value{}, fmt.Errorf("fetching page %s: %w", recordID, err)
	}
	r.log.Debug("resolving property", zap.String("page", recordID), zap.Stringer("kind", kind))

	switch kind.tag {
	case kindTitle:
		text, err := titleText(page)
		if err != nil {
			return Value{}, fmt.Errorf("page %s: %w", recordID, err)
		}
		return Value{Text: text}, nil
	case kindIcon:
		emoji, err := iconEmoji(page)
		if err != nil {
			return Value{}, fmt.Errorf("page %s: %w", recordID, err)
		}
		return Value{Text: emoji}, nil
	default:
		prop, ok := page.Properties[kind.name]
		if !ok {
			return Value{}, fmt.Errorf("page %s: %w: %q", recordID, ErrPropertyNotFound, kind.name)
		}
		return Value{Raw: prop.Raw}, nil
	}
}

// ResolveTitle is shorthand for Resolve with Title.
func (r *Resolver) ResolveTitle(ctx context.Context, recordID string) (string, error) {
	v, err := r.Resolve(ctx, recordID, Title)
	return v.Text, err
}

// ResolveIcon is shorthand for Resolve with Icon.
func (r *Resolver) ResolveIcon(ctx context.Context, recordID string) (string, error) {
	v, err := r.Resolve(ctx, recordID, Icon)
	return v.Text, err
}

// titleText returns the first title segment's plain text. Every page has
// exactly one title-type property, but its key depends on the parent
// database ("title" for workspace pages, "Name", "Task", ...).
func titleText(page notion.Page) (string, error) {
	for _, prop := range page.Properties {
		if prop.Type != "title" {
			continue
		}
		if len(prop.Title) == 0 {
			return "", fmt.Errorf("%w: title property has no text", ErrMalformedRecord)
		}
		text := prop.Title[0].PlainText
		if text == "" {
			return "", fmt.Errorf("%w: title text is empty", ErrMalformedRecord)
		}
		return text, nil
	}
	return "", fmt.Errorf("%w: no title property", ErrMalformedRecord)
}

// iconEmoji returns the page's emoji glyph. Image icons are not supported
// by the launcher output and are reported rather than substituted.
func iconEmoji(page notion.Page) (string, error) {
	if page.Icon == nil {
		return "", fmt.Errorf("%w: page has no icon", ErrMalformedRecord)
	}
	if page.Icon.Type != notion.IconEmoji || page.Icon.Emoji == "" {
		return "", fmt.Errorf("%w: icon type %q is not an emoji", ErrMalformedRecord, page.Icon.Type)
	}
	return page.Icon.Emoji, nil
}
