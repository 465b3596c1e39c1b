package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
)

// NotionService is the subset of the Notion API used by Store.
type NotionService interface {
	// RetrieveDatabase returns the database with its property schema.
	RetrieveDatabase(ctx context.Context, databaseID string) (*notionapi.Database, error)

	// UpdateDatabase patches property definitions of a database.
	UpdateDatabase(ctx context.Context, databaseID string, properties notionapi.PropertyConfigs) (*notionapi.Database, error)

	// CreatePage creates a page in a database.
	CreatePage(ctx context.Context, databaseID string, properties notionapi.Properties, icon *notionapi.Icon) (*notionapi.Page, error)
}

// NotionClient implements NotionService with the notionapi SDK.
type NotionClient struct {
	client *notionapi.Client
}

// NewNotionClient creates a NotionClient authenticated with token.
func NewNotionClient(token string) *NotionClient {
	return &NotionClient{
		client: notionapi.NewClient(notionapi.Token(token)),
	}
}

func (n *NotionClient) RetrieveDatabase(ctx context.Context, databaseID string) (*notionapi.Database, error) {
	db, err := n.client.Database.Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		return nil, fmt.Errorf("RetrieveDatabase: %w", err)
	}
	return db, nil
}

func (n *NotionClient) UpdateDatabase(ctx context.Context, databaseID string, properties notionapi.PropertyConfigs) (*notionapi.Database, error) {
	req := &notionapi.DatabaseUpdateRequest{
		Properties: properties,
	}

	db, err := n.client.Database.Update(ctx, notionapi.DatabaseID(databaseID), req)
	if err != nil {
		return nil, fmt.Errorf("UpdateDatabase: %w", err)
	}
	return db, nil
}

func (n *NotionClient) CreatePage(ctx context.Context, databaseID string, properties notionapi.Properties, icon *notionapi.Icon) (*notionapi.Page, error) {
	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: properties,
		Icon:       icon,
	}

	page, err := n.client.Page.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("CreatePage: %w", err)
	}
	return page, nil
}
