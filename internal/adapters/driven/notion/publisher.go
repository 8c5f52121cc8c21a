// Package notion implements the remote page publisher on top of the
// Notion API.
package notion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driven"
)

// Ensure Publisher implements the interface.
var _ driven.PagePublisher = (*Publisher)(nil)

// requestsPerSecond matches Notion's published average rate limit.
const requestsPerSecond = 3

// Default property names in the target database schema, matching the
// database this tool was built around. Both are overridable through
// settings.
const (
	DefaultTitleProperty    = "Name"
	DefaultRelationProperty = "Lit Notes"
)

// pageCreator is the slice of the Notion client the publisher needs.
type pageCreator interface {
	Create(ctx context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// Config carries the publisher's connection settings.
type Config struct {
	// Token is the integration token used for authentication.
	Token string

	// DatabaseID is the database every page is created in.
	DatabaseID string

	// TitleProperty is the database's title property name.
	// Empty selects DefaultTitleProperty.
	TitleProperty string

	// RelationProperty is the relation property name used when a
	// watch target carries a relation id.
	// Empty selects DefaultRelationProperty.
	RelationProperty string
}

// Publisher creates pages in a fixed Notion database, paced to the
// API rate limit. It never retries a failed call.
type Publisher struct {
	pages            pageCreator
	database         notionapi.DatabaseID
	titleProperty    string
	relationProperty string
	limiter          *rate.Limiter
}

// New creates a publisher from the given configuration.
func New(cfg Config) *Publisher {
	client := notionapi.NewClient(notionapi.Token(cfg.Token))
	return newPublisher(client.Page, cfg)
}

// newPublisher wires a publisher over an existing page service.
func newPublisher(pages pageCreator, cfg Config) *Publisher {
	if cfg.TitleProperty == "" {
		cfg.TitleProperty = DefaultTitleProperty
	}
	if cfg.RelationProperty == "" {
		cfg.RelationProperty = DefaultRelationProperty
	}
	return &Publisher{
		pages:            pages,
		database:         notionapi.DatabaseID(cfg.DatabaseID),
		titleProperty:    cfg.TitleProperty,
		relationProperty: cfg.RelationProperty,
		limiter:          rate.NewLimiter(requestsPerSecond, 1),
	}
}

// CreatePage sends one page-creation request.
func (p *Publisher) CreatePage(ctx context.Context, req domain.PageRequest) (domain.PageRef, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return domain.PageRef{}, fmt.Errorf("rate limit wait: %w", err)
	}

	page, err := p.pages.Create(ctx, p.buildRequest(req))
	if err != nil {
		return domain.PageRef{}, fmt.Errorf("create page: %w", err)
	}

	ref := domain.PageRef{ID: page.ID.String(), URL: page.URL}
	if ref.URL == "" {
		ref.URL = PageURL(ref.ID)
	}
	return ref, nil
}

// buildRequest maps a domain page request onto the wire format.
func (p *Publisher) buildRequest(req domain.PageRequest) *notionapi.PageCreateRequest {
	properties := notionapi.Properties{
		p.titleProperty: notionapi.TitleProperty{
			Type:  notionapi.PropertyTypeTitle,
			Title: richText(req.Title),
		},
	}
	// The relation property is attached only when the source
	// directory carries a relation id; it is never sent empty.
	if req.RelationID != "" {
		properties[p.relationProperty] = notionapi.RelationProperty{
			Type: notionapi.PropertyTypeRelation,
			Relation: []notionapi.Relation{
				{ID: notionapi.PageID(req.RelationID)},
			},
		}
	}

	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: p.database,
		},
		Properties: properties,
		Children:   Blocks(req.Blocks),
	}
}

// PageURL builds the browser link for a page id, the id without
// dashes under the notion.so host.
func PageURL(id string) string {
	return "https://notion.so/" + strings.ReplaceAll(id, "-", "")
}
