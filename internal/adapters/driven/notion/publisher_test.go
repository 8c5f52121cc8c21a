package notion

import (
	"context"
	"errors"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driven"
)

// fakePageCreator captures the wire request instead of calling the API.
type fakePageCreator struct {
	req  *notionapi.PageCreateRequest
	page *notionapi.Page
	err  error
}

func (f *fakePageCreator) Create(_ context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	if f.page != nil {
		return f.page, nil
	}
	return &notionapi.Page{
		ID:  notionapi.ObjectID("11111111-2222-3333-4444-555555555555"),
		URL: "https://www.notion.so/Note-11111111222233334444555555555555",
	}, nil
}

func TestNew(t *testing.T) {
	publisher := New(Config{Token: "secret", DatabaseID: "db-1"})
	require.NotNil(t, publisher)
	assert.Equal(t, DefaultTitleProperty, publisher.titleProperty)
	assert.Equal(t, DefaultRelationProperty, publisher.relationProperty)
}

func TestPublisher_CreatePage_Success(t *testing.T) {
	fake := &fakePageCreator{}
	publisher := newPublisher(fake, Config{DatabaseID: "db-42"})

	req := domain.PageRequest{
		Title: "Reading Notes",
		Blocks: []domain.Block{
			domain.NewHeading(1, "Chapter 1"),
			domain.NewParagraph("Some thoughts."),
		},
	}
	ref, err := publisher.CreatePage(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", ref.ID)
	assert.Equal(t, "https://www.notion.so/Note-11111111222233334444555555555555", ref.URL)

	require.NotNil(t, fake.req)
	assert.Equal(t, notionapi.ParentTypeDatabaseID, fake.req.Parent.Type)
	assert.Equal(t, notionapi.DatabaseID("db-42"), fake.req.Parent.DatabaseID)

	title, ok := fake.req.Properties[DefaultTitleProperty].(notionapi.TitleProperty)
	require.True(t, ok, "title property must be present under the default name")
	assert.Equal(t, notionapi.PropertyTypeTitle, title.Type)
	require.Len(t, title.Title, 1)
	assert.Equal(t, "Reading Notes", title.Title[0].Text.Content)

	require.Len(t, fake.req.Children, 2)
}

func TestPublisher_CreatePage_WithoutRelationOmitsProperty(t *testing.T) {
	fake := &fakePageCreator{}
	publisher := newPublisher(fake, Config{DatabaseID: "db-1"})

	_, err := publisher.CreatePage(context.Background(), domain.PageRequest{Title: "T"})

	require.NoError(t, err)
	_, present := fake.req.Properties[DefaultRelationProperty]
	assert.False(t, present, "relation property must be omitted entirely")
	assert.Len(t, fake.req.Properties, 1)
}

func TestPublisher_CreatePage_WithRelation(t *testing.T) {
	fake := &fakePageCreator{}
	publisher := newPublisher(fake, Config{DatabaseID: "db-1"})

	_, err := publisher.CreatePage(context.Background(), domain.PageRequest{
		Title:      "T",
		RelationID: "rel-123",
	})

	require.NoError(t, err)
	relation, ok := fake.req.Properties[DefaultRelationProperty].(notionapi.RelationProperty)
	require.True(t, ok, "relation property must be present")
	assert.Equal(t, notionapi.PropertyTypeRelation, relation.Type)
	require.Len(t, relation.Relation, 1)
	assert.Equal(t, notionapi.PageID("rel-123"), relation.Relation[0].ID)
}

func TestPublisher_CreatePage_CustomPropertyNames(t *testing.T) {
	fake := &fakePageCreator{}
	publisher := newPublisher(fake, Config{
		DatabaseID:       "db-1",
		TitleProperty:    "Title",
		RelationProperty: "Sources",
	})

	_, err := publisher.CreatePage(context.Background(), domain.PageRequest{
		Title:      "Custom",
		RelationID: "rel-9",
	})

	require.NoError(t, err)
	assert.Contains(t, fake.req.Properties, "Title")
	assert.Contains(t, fake.req.Properties, "Sources")
	assert.NotContains(t, fake.req.Properties, DefaultTitleProperty)
	assert.NotContains(t, fake.req.Properties, DefaultRelationProperty)
}

func TestPublisher_CreatePage_Error(t *testing.T) {
	fake := &fakePageCreator{err: errors.New("401 unauthorized")}
	publisher := newPublisher(fake, Config{DatabaseID: "db-1"})

	_, err := publisher.CreatePage(context.Background(), domain.PageRequest{Title: "T"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create page")
	assert.Contains(t, err.Error(), "401 unauthorized")
}

func TestPublisher_CreatePage_URLFallback(t *testing.T) {
	fake := &fakePageCreator{
		page: &notionapi.Page{ID: notionapi.ObjectID("aaaa-bbbb-cccc")},
	}
	publisher := newPublisher(fake, Config{DatabaseID: "db-1"})

	ref, err := publisher.CreatePage(context.Background(), domain.PageRequest{Title: "T"})

	require.NoError(t, err)
	assert.Equal(t, "https://notion.so/aaaabbbbcccc", ref.URL)
}

func TestPublisher_CreatePage_CancelledContext(t *testing.T) {
	fake := &fakePageCreator{}
	publisher := newPublisher(fake, Config{DatabaseID: "db-1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := publisher.CreatePage(ctx, domain.PageRequest{Title: "T"})

	require.Error(t, err)
	assert.Nil(t, fake.req, "no request should go out on a dead context")
}

func TestPageURL(t *testing.T) {
	assert.Equal(t,
		"https://notion.so/11111111222233334444555555555555",
		PageURL("11111111-2222-3333-4444-555555555555"))
	assert.Equal(t, "https://notion.so/plain", PageURL("plain"))
}

// TestPublisherInterfaceCompliance verifies Publisher satisfies the
// driven port.
func TestPublisherInterfaceCompliance(t *testing.T) {
	var _ driven.PagePublisher = New(Config{})
}
