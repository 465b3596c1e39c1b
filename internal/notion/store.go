package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/caelum-dev/caelum/internal/config"
	"github.com/caelum-dev/caelum/internal/logger"
	"github.com/caelum-dev/caelum/internal/model"
)

// PropertyNames names the expense database columns.
type PropertyNames struct {
	Name   string
	Amount string
	Date   string
	Card   string
	Month  string
	Tag    string
}

// PropertyNamesFromConfig copies the property names out of cfg.
func PropertyNamesFromConfig(cfg config.NotionConfig) PropertyNames {
	return PropertyNames{
		Name:   cfg.NameProperty,
		Amount: cfg.AmountProperty,
		Date:   cfg.DateProperty,
		Card:   cfg.CardProperty,
		Month:  cfg.MonthProperty,
		Tag:    cfg.TagProperty,
	}
}

// Store is the expense database: its schema and its pages.
type Store struct {
	api        NotionService
	databaseID string
	names      PropertyNames
}

// NewStore creates a Store for one database.
func NewStore(api NotionService, databaseID string, names PropertyNames) *Store {
	return &Store{api: api, databaseID: databaseID, names: names}
}

// RetrieveSchema reads the card, month and tag options of the database.
func (s *Store) RetrieveSchema(ctx context.Context) (model.Schema, error) {
	db, err := s.api.RetrieveDatabase(ctx, s.databaseID)
	if err != nil {
		return model.Schema{}, err
	}

	cards, err := selectOptions(db.Properties, s.names.Card)
	if err != nil {
		return model.Schema{}, err
	}
	months, err := selectOptions(db.Properties, s.names.Month)
	if err != nil {
		return model.Schema{}, err
	}
	tags, err := selectOptions(db.Properties, s.names.Tag)
	if err != nil {
		return model.Schema{}, err
	}

	return model.Schema{
		Cards:  optionIndex(cards),
		Months: optionIndex(months),
		Tags:   tags,
	}, nil
}

// UpdateTags sends the complete tag option list. Options must include the
// existing ones, or Notion drops them.
func (s *Store) UpdateTags(ctx context.Context, options []model.SelectOption) error {
	patch := notionapi.PropertyConfigs{
		s.names.Tag: tagPropertyConfig(options),
	}
	if _, err := s.api.UpdateDatabase(ctx, s.databaseID, patch); err != nil {
		return err
	}
	return nil
}

// WriteExpense creates one page for e and returns its id.
func (s *Store) WriteExpense(ctx context.Context, e model.Expense) (string, error) {
	page, err := s.api.CreatePage(ctx, s.databaseID, ExpenseToNotionProperties(e, s.names), expenseIcon(e))
	if err != nil {
		return "", fmt.Errorf("writing expense %s: %w", e.RowID, err)
	}

	log := logger.FromContext(ctx)
	log.Debug().
		Str("row_id", e.RowID).
		Str("page_id", string(page.ID)).
		Msg("Created Notion page")
	return string(page.ID), nil
}
