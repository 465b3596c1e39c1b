package notion

import (
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/caelum-dev/caelum/internal/model"
)

// selectOptions returns the options of the select property name.
func selectOptions(props notionapi.PropertyConfigs, name string) ([]model.SelectOption, error) {
	cfg, ok := props[name]
	if !ok {
		return nil, fmt.Errorf("property %q not found", name)
	}

	sel, ok := cfg.(*notionapi.SelectPropertyConfig)
	if !ok {
		return nil, fmt.Errorf("property %q is %s, not select", name, cfg.GetType())
	}

	opts := make([]model.SelectOption, len(sel.Select.Options))
	for i, o := range sel.Select.Options {
		opts[i] = model.SelectOption{ID: string(o.ID), Name: o.Name, Color: string(o.Color)}
	}
	return opts, nil
}

func optionIndex(opts []model.SelectOption) map[string]string {
	idx := make(map[string]string, len(opts))
	for _, o := range opts {
		idx[o.Name] = o.ID
	}
	return idx
}

// tagPropertyConfig builds the patch replacing a select property's options.
func tagPropertyConfig(opts []model.SelectOption) *notionapi.SelectPropertyConfig {
	options := make([]notionapi.Option, len(opts))
	for i, o := range opts {
		options[i] = notionapi.Option{
			ID:    notionapi.PropertyID(o.ID),
			Name:  o.Name,
			Color: notionapi.Color(o.Color),
		}
	}
	return &notionapi.SelectPropertyConfig{
		Type:   notionapi.PropertyConfigTypeSelect,
		Select: notionapi.Select{Options: options},
	}
}

// ExpenseToNotionProperties maps an expense onto the database properties.
// The tag is only set for classified expenses.
func ExpenseToNotionProperties(e model.Expense, names PropertyNames) notionapi.Properties {
	date := notionapi.Date(e.Date)

	props := notionapi.Properties{
		names.Name: notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{
					Type: notionapi.ObjectTypeText,
					Text: &notionapi.Text{Content: e.Name},
				},
			},
		},
		names.Amount: notionapi.NumberProperty{
			Number: e.Amount.InexactFloat64(),
		},
		names.Date: notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: &date},
		},
		names.Card: notionapi.SelectProperty{
			Select: notionapi.Option{Name: e.Institution},
		},
		names.Month: notionapi.SelectProperty{
			Select: notionapi.Option{Name: e.Month()},
		},
	}

	if e.Category.IsSet() {
		props[names.Tag] = notionapi.SelectProperty{
			Select: notionapi.Option{Name: string(e.Category)},
		}
	}

	return props
}

// expenseIcon returns the page icon for a classified expense, or nil.
func expenseIcon(e model.Expense) *notionapi.Icon {
	if e.Icon == "" {
		return nil
	}
	emoji := notionapi.Emoji(e.Icon)
	return &notionapi.Icon{
		Type:  "emoji",
		Emoji: &emoji,
	}
}
