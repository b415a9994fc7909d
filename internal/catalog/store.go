package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

var (
	ErrNotFound = errors.New("product not found")
	// ErrSuperseded is returned by a load whose response arrived after a newer
	// load was issued; its result is discarded entirely.
	ErrSuperseded = errors.New("load superseded by a newer request")
)

// Store holds the authoritative in-memory product collection, the active
// filter/search state, and the memoized filtered derivation. Handlers run on
// multiple goroutines, so all state sits behind a single RWMutex.
//
// Consumers observing Loading() == false with Err() == nil may assume the
// collection reflects the last successful fetch or a locally applied
// optimistic mutation.
type Store struct {
	api API
	log zerolog.Logger

	mu       sync.RWMutex
	products []Product
	loading  bool
	loadErr  error
	view     ViewState

	// generation fences overlapping loads: only the latest issued load may
	// apply its outcome.
	generation uint64

	// version tracks the memo inputs (collection, filters, search term);
	// derived is recomputed only when it lags behind.
	version        uint64
	derivedVersion uint64
	derivedValid   bool
	derived        []Product
}

func NewStore(api API, log zerolog.Logger) *Store {
	return &Store{
		api:  api,
		log:  log.With().Str("component", "catalog-store").Logger(),
		view: ViewState{Filters: map[string]string{}},
	}
}

// Load fetches the full collection. Success replaces the products and clears
// the error; failure records the error and empties the collection so no stale
// partial data survives. The loading flag clears on every path. A load whose
// response is no longer the latest generation is dropped and reports
// ErrSuperseded.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	products, err := s.api.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// a newer load owns the state (and the loading flag) now
		s.log.Debug().Uint64("generation", gen).Msg("discarding stale load response")
		return ErrSuperseded
	}
	s.loading = false
	s.version++
	if err != nil {
		s.loadErr = err
		s.products = nil
		s.log.Error().Err(err).Msg("load failed, collection emptied")
		return err
	}
	s.loadErr = nil
	s.products = products
	s.log.Info().Int("count", len(products)).Msg("collection loaded")
	return nil
}

// Reload is Load under its error-recovery name.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// SetProducts replaces the collection directly; used by the editor for
// optimistic local updates ahead of server confirmation.
func (s *Store) SetProducts(next []Product) {
	out := make([]Product, len(next))
	copy(out, next)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = out
	s.version++
}

// Products returns a copy of the raw, unfiltered collection.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks a product up by id.
func (s *Store) Get(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// SetFilter selects a single value for one of the structured filter fields.
func (s *Store) SetFilter(field, value string) error {
	if !IsFilterField(field) {
		return ErrUnknownField
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Filters[field] = value
	s.version++
	return nil
}

// RemoveFilter clears one filter field.
func (s *Store) RemoveFilter(field string) error {
	if !IsFilterField(field) {
		return ErrUnknownField
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.view.Filters, field)
	s.version++
	return nil
}

// ClearFilters drops every structured filter, leaving the search term alone.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Filters = map[string]string{}
	s.version++
}

func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SearchTerm = term
	s.version++
}

// View returns a copy of the active filter/search state.
func (s *Store) View() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filters := make(map[string]string, len(s.view.Filters))
	for k, v := range s.view.Filters {
		filters[k] = v
	}
	return ViewState{Filters: filters, SearchTerm: s.view.SearchTerm}
}

// Filtered returns the derived filtered view. The derivation is memoized and
// recomputed only when the collection, filters, or search term changed since
// the last call.
func (s *Store) Filtered() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.derivedValid || s.derivedVersion != s.version {
		s.derived = Apply(s.products, s.view)
		s.derivedVersion = s.version
		s.derivedValid = true
	}
	out := make([]Product, len(s.derived))
	copy(out, s.derived)
	return out
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}
