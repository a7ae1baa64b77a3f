package client

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/pricing"
)

// DefaultDebounce is how long a burst of filter changes is allowed to
// settle before the URL is rewritten and a fetch fires. Trailing edge,
// last write wins.
const DefaultDebounce = 300 * time.Millisecond

// HistoryReplacer is the URL sink the session keeps in sync with its
// FilterState. Implementations replace the current history entry rather
// than pushing, so rapid filter changes don't pollute the back stack.
type HistoryReplacer interface {
	ReplaceQuery(values url.Values)
}

// SearchResult is one settled round of fetching: the resolved car washes
// for the current filters, or the error that stopped them. OffersDegraded
// is set when the offer fetch failed and prices fell back to base package
// prices; that is a degradation, not an error.
type SearchResult struct {
	CarWashes      []pricing.ResolvedCarWash
	FeaturedOffer  *models.Offer
	Count          int
	TotalPages     int
	CurrentPage    int
	OffersDegraded bool
	Err            error
}

// SearchSession owns a FilterState and keeps three things consistent with
// it: the URL (debounced), the fetched results (last request wins), and the
// subscriber callback. All methods are safe for concurrent use.
type SearchSession struct {
	client   *Client
	history  HistoryReplacer
	onResult func(SearchResult)

	mu         sync.Mutex
	state      models.FilterState
	debounce   time.Duration
	timer      *time.Timer
	generation uint64
	cancel     context.CancelFunc
	closed     bool
}

func NewSearchSession(c *Client, history HistoryReplacer, onResult func(SearchResult)) *SearchSession {
	return &SearchSession{
		client:   c,
		history:  history,
		onResult: onResult,
		state:    models.ParseFilterState(nil),
		debounce: DefaultDebounce,
	}
}

// State returns a copy of the current filters.
func (s *SearchSession) State() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies a filter mutation and schedules the debounced URL write
// and refetch. Calling it again inside the debounce window restarts the
// window; only the final state is written and fetched.
func (s *SearchSession) Update(mutate func(*models.FilterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	mutate(&s.state)

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

// flush runs on the debounce timer: write the URL, then fetch.
func (s *SearchSession) flush() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	state := s.state
	if s.history != nil {
		s.history.ReplaceQuery(state.Values())
	}
	gen, ctx := s.nextGenerationLocked()
	s.mu.Unlock()

	s.fetch(ctx, gen, state)
}

// Navigate adopts an externally-changed URL (back/forward, shared link).
// The state is replaced wholesale and the fetch fires immediately; the URL
// is not rewritten since it is already the source of the change.
func (s *SearchSession) Navigate(values url.Values) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = models.ParseFilterState(values)
	state := s.state
	gen, ctx := s.nextGenerationLocked()
	s.mu.Unlock()

	s.fetch(ctx, gen, state)
}

// Refresh refetches with the current filters without touching the URL.
func (s *SearchSession) Refresh() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	state := s.state
	gen, ctx := s.nextGenerationLocked()
	s.mu.Unlock()

	s.fetch(ctx, gen, state)
}

// nextGenerationLocked bumps the request generation and cancels the
// in-flight round. Callers must hold s.mu.
func (s *SearchSession) nextGenerationLocked() (uint64, context.Context) {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.generation++
	return s.generation, ctx
}

// fetch runs the carwash and offer requests concurrently, joins them, and
// delivers the result unless a newer round has started since.
func (s *SearchSession) fetch(ctx context.Context, gen uint64, state models.FilterState) {
	// Without a location there is nothing to search around yet. The URL
	// stays synced; results arrive once coordinates are set.
	if !state.HasLocation() {
		return
	}

	go func() {
		var (
			wg       sync.WaitGroup
			envelope *models.CarWashListEnvelope
			listErr  error
			offers   []models.Offer
			offerErr error
		)

		wg.Add(2)
		go func() {
			defer wg.Done()
			envelope, listErr = s.client.ListCarWashes(ctx, state)
		}()
		go func() {
			defer wg.Done()
			offers, offerErr = s.client.SearchOffers(ctx, state.UserLat, state.UserLng)
		}()
		wg.Wait()

		s.mu.Lock()
		stale := s.closed || gen != s.generation
		s.mu.Unlock()
		if stale {
			return
		}

		if listErr != nil {
			s.deliver(SearchResult{Err: listErr})
			return
		}

		if offerErr != nil {
			offers = nil
		}

		resolved := pricing.Resolve(envelope.Results, offers, time.Now().UTC())
		pricing.SortResolved(resolved, state.PrimarySort())

		s.deliver(SearchResult{
			CarWashes:      resolved,
			FeaturedOffer:  pricing.SelectFeaturedOffer(offers),
			Count:          envelope.Count,
			TotalPages:     envelope.Links.TotalPages,
			CurrentPage:    envelope.Links.CurrentPage,
			OffersDegraded: offerErr != nil,
		})
	}()
}

func (s *SearchSession) deliver(result SearchResult) {
	if s.onResult != nil {
		s.onResult(result)
	}
}

// Close stops the debounce timer and cancels any in-flight fetch. The
// session delivers no results after Close returns.
func (s *SearchSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
