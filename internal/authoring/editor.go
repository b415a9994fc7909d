package authoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"data-marketplace/internal/catalog"
)

var ErrDuplicateID = errors.New("product id already exists")

// Row is one grid row as edited: cell values keyed by wire field name. Tags
// travel as a single comma-separated cell.
type Row map[string]string

// Collection is the slice of the catalog store the editor needs.
type Collection interface {
	Products() []catalog.Product
	SetProducts(next []catalog.Product)
	Reload(ctx context.Context) error
}

// Editor reconciles grid edits with the catalog: optimistic local update
// first, whole-collection PUT second, reload to resync whenever optimism
// cannot be kept. Two near-simultaneous edits each replace the whole
// collection, so the later PUT wins; that weakness is inherited from the
// persistence contract, not a guarantee.
type Editor struct {
	store Collection
	api   catalog.API
	now   func() time.Time
	log   zerolog.Logger
}

func NewEditor(store Collection, api catalog.API, log zerolog.Logger) *Editor {
	return &Editor{
		store: store,
		api:   api,
		now:   time.Now,
		log:   log.With().Str("component", "authoring-editor").Logger(),
	}
}

// today stamps edits with the current calendar date, no time component.
func (e *Editor) today() string {
	return e.now().UTC().Format("2006-01-02")
}

// ApplyRowUpdate merges an edited row into the collection: only cells that
// differ from the previous row are copied onto the stored record (the id is
// immutable and never copied), tag cells are re-parsed from their
// comma-separated form, and last_updated_date is stamped with today on any
// edit. The update is applied locally before the PUT; on persist failure the
// whole collection is reloaded from the server, discarding the optimistic
// change.
func (e *Editor) ApplyRowUpdate(ctx context.Context, id string, row, previous Row) (catalog.Product, error) {
	products := e.store.Products()
	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return catalog.Product{}, catalog.ErrNotFound
	}

	updated := products[idx].Clone()
	for field, value := range row {
		if field == "id" || previous[field] == value {
			continue
		}
		if field == "tags" {
			updated.Tags = ParseTags(value)
			continue
		}
		updated.SetField(field, value)
	}
	updated.LastUpdatedDate = e.today()

	products[idx] = updated
	e.store.SetProducts(products)

	if err := e.api.Replace(ctx, products); err != nil {
		e.log.Error().Err(err).Str("id", id).Msg("persist failed, discarding optimistic edit")
		if rerr := e.store.Reload(ctx); rerr != nil {
			e.log.Error().Err(rerr).Msg("resync after failed edit also failed")
		}
		return catalog.Product{}, fmt.Errorf("persisting edit: %w", err)
	}
	// keep the optimistic local state; a reload here would clobber the
	// user's own in-flight edits
	e.log.Info().Str("id", id).Msg("product updated")
	return updated, nil
}

// Delete removes a record and persists the remaining collection. Unlike
// edits, a successful delete always reloads from the server; a failed PUT
// leaves the local state post-delete and does not reload, so it may diverge
// until the next reload.
func (e *Editor) Delete(ctx context.Context, id string) error {
	products := e.store.Products()
	next := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(products) {
		return catalog.ErrNotFound
	}

	e.store.SetProducts(next)
	if err := e.api.Replace(ctx, next); err != nil {
		e.log.Error().Err(err).Str("id", id).Msg("delete persist failed")
		return fmt.Errorf("persisting delete: %w", err)
	}
	if err := e.store.Reload(ctx); err != nil {
		return fmt.Errorf("reloading after delete: %w", err)
	}
	e.log.Info().Str("id", id).Msg("product deleted")
	return nil
}

// Add appends a new record and persists the grown collection. A blank id gets
// a generated one; publish and update dates default to today. Nothing is
// applied locally before the PUT — on success the store refreshes from the
// server, on failure the local state is untouched.
func (e *Editor) Add(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = "DP-" + uuid.NewString()
	}
	p.Normalize()
	if p.LastUpdatedDate == "" {
		p.LastUpdatedDate = e.today()
	}
	if p.FirstPublishDate == "" {
		p.FirstPublishDate = e.today()
	}

	products := e.store.Products()
	for _, existing := range products {
		if existing.ID == p.ID {
			return catalog.Product{}, ErrDuplicateID
		}
	}

	next := append(products, p)
	if err := e.api.Replace(ctx, next); err != nil {
		e.log.Error().Err(err).Str("id", p.ID).Msg("add persist failed")
		return catalog.Product{}, fmt.Errorf("persisting new product: %w", err)
	}
	if err := e.store.Reload(ctx); err != nil {
		return p, fmt.Errorf("reloading after add: %w", err)
	}
	e.log.Info().Str("id", p.ID).Msg("product added")
	return p, nil
}

// ParseTags turns a comma-separated tag cell back into a trimmed sequence
// with empty entries dropped.
func ParseTags(cell string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
