package taxonomy

import (
	"context"
	"fmt"

	"github.com/caelum-dev/caelum/internal/logger"
	"github.com/caelum-dev/caelum/internal/model"
)

// DefaultTagColor is the color given to tag options created by Reconcile.
const DefaultTagColor = "gray"

// SchemaStore reads and updates the remote database schema.
type SchemaStore interface {
	RetrieveSchema(ctx context.Context) (model.Schema, error)
	// UpdateTags replaces the tag property's option list with options.
	UpdateTags(ctx context.Context, options []model.SelectOption) error
}

// RemoteSchemaError means the remote schema could not be read or updated.
// The session cannot continue without a complete taxonomy.
type RemoteSchemaError struct {
	Op  string
	Err error
}

func (e *RemoteSchemaError) Error() string {
	return fmt.Sprintf("remote schema %s: %v", e.Op, e.Err)
}

func (e *RemoteSchemaError) Unwrap() error { return e.Err }

// Missing returns the local categories whose label is not in remote, in local
// order. Labels are compared exactly.
func Missing(local []model.Category, remote []string) []string {
	have := make(map[string]bool, len(remote))
	for _, name := range remote {
		have[name] = true
	}
	var missing []string
	for _, c := range local {
		if !have[string(c)] {
			missing = append(missing, string(c))
		}
	}
	return missing
}

// AppendOptions returns existing followed by a new option per name.
// Existing options are copied unchanged.
func AppendOptions(existing []model.SelectOption, names []string, color string) []model.SelectOption {
	out := make([]model.SelectOption, 0, len(existing)+len(names))
	out = append(out, existing...)
	for _, name := range names {
		out = append(out, model.SelectOption{Name: name, Color: color})
	}
	return out
}

// Reconciler makes sure every local category exists as a remote tag option.
type Reconciler struct {
	store      SchemaStore
	categories []model.Category
	color      string
}

// NewReconciler creates a Reconciler for the categories of svc.
func NewReconciler(store SchemaStore, svc *Service, color string) *Reconciler {
	if color == "" {
		color = DefaultTagColor
	}
	return &Reconciler{store: store, categories: svc.Categories(), color: color}
}

// Reconcile appends any missing categories to the remote tag options and
// returns the resulting schema. Remote options are never removed or changed.
func (r *Reconciler) Reconcile(ctx context.Context) (model.Schema, error) {
	log := logger.FromContext(ctx)

	schema, err := r.store.RetrieveSchema(ctx)
	if err != nil {
		return model.Schema{}, &RemoteSchemaError{Op: "retrieve", Err: err}
	}

	missing := Missing(r.categories, schema.TagNames())
	if len(missing) == 0 {
		log.Debug().Int("tags", len(schema.Tags)).Msg("Remote taxonomy complete")
		return schema, nil
	}

	for _, name := range missing {
		log.Info().Str("category", name).Msg("Tag did not exist - creating")
	}

	options := AppendOptions(schema.Tags, missing, r.color)
	if err := r.store.UpdateTags(ctx, options); err != nil {
		return model.Schema{}, &RemoteSchemaError{Op: "update", Err: err}
	}

	schema.Tags = options
	return schema, nil
}
