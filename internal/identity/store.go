package identity

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Fetcher is the gateway surface the store needs.
type Fetcher interface {
	Fetch(ctx context.Context) (Identity, error)
}

// Store holds the identity fetched once per session. A fetch failure installs
// the anonymous, non-admin identity and records the error so the gate stays
// closed; Retry re-attempts on user request.
type Store struct {
	api Fetcher
	log zerolog.Logger

	mu       sync.RWMutex
	current  Identity
	loaded   bool
	loading  bool
	fetchErr error
}

func NewStore(api Fetcher, log zerolog.Logger) *Store {
	return &Store{
		api:     api,
		log:     log.With().Str("component", "identity-store").Logger(),
		current: Anonymous(),
	}
}

func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	id, err := s.api.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loaded = true
	if err != nil {
		s.fetchErr = err
		s.current = Anonymous()
		s.log.Error().Err(err).Msg("identity fetch failed, failing closed")
		return err
	}
	s.fetchErr = nil
	s.current = id
	s.log.Info().Str("user", id.DisplayName).Bool("is_admin", id.IsAdmin).Msg("identity loaded")
	return nil
}

// Retry re-attempts the fetch after a failure.
func (s *Store) Retry(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *Store) Current() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.current
	out.Groups = make([]string, len(s.current.Groups))
	copy(out.Groups, s.current.Groups)
	return out
}

// IsAdmin gates the authoring routes. It reports true only for a cleanly
// loaded admin identity.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded && s.fetchErr == nil && s.current.IsAdmin
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchErr
}
