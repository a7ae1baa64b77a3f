package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

type fakeHistory struct {
	mu     sync.Mutex
	writes []url.Values
}

func (h *fakeHistory) ReplaceQuery(values url.Values) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writes = append(h.writes, values)
}

func (h *fakeHistory) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.writes)
}

func (h *fakeHistory) last() url.Values {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writes[len(h.writes)-1]
}

func writeListResponse(w http.ResponseWriter, count int, washes []models.CarWash) {
	envelope := models.CarWashListEnvelope{
		Count:   count,
		Links:   models.PageLinks{TotalPages: 1, CurrentPage: 1},
		Results: washes,
	}
	_ = json.NewEncoder(w).Encode(envelope)
}

func TestSession_DebounceCoalescesBursts(t *testing.T) {
	history := &fakeHistory{}
	session := NewSearchSession(NewClient("http://unused"), history, nil)
	session.debounce = 30 * time.Millisecond
	defer session.Close()

	// a burst of ten changes inside one debounce window
	for i := 1; i <= 10; i++ {
		miles := float64(i)
		session.Update(func(f *models.FilterState) {
			f.Distance = miles
		})
	}

	time.Sleep(150 * time.Millisecond)

	require.Equal(t, 1, history.count(), "burst should settle into a single URL write")
	assert.Equal(t, "10", history.last().Get("distance"), "the final state of the burst wins")
	assert.Equal(t, float64(10), session.State().Distance)
}

func TestSession_LastRequestWins(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/carwash/list-car-wash", func(w http.ResponseWriter, r *http.Request) {
		distance := r.URL.Query().Get("distance")
		if distance == "1" {
			// the stale round: slow enough that the next round overtakes it
			select {
			case <-time.After(200 * time.Millisecond):
			case <-r.Context().Done():
				return
			}
			writeListResponse(w, 111, nil)
			return
		}
		writeListResponse(w, 222, nil)
	})
	mux.HandleFunc("/api/v1/carwash/offers/search", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Offer{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	results := make(chan SearchResult, 4)
	session := NewSearchSession(NewClient(server.URL), &fakeHistory{}, func(r SearchResult) {
		results <- r
	})
	session.debounce = 5 * time.Millisecond
	defer session.Close()

	session.Update(func(f *models.FilterState) {
		f.UserLat = 41.9
		f.UserLng = -87.6
		f.Distance = 1
	})
	time.Sleep(40 * time.Millisecond) // let the slow round start
	session.Update(func(f *models.FilterState) {
		f.Distance = 2
	})

	select {
	case result := <-results:
		require.NoError(t, result.Err)
		assert.Equal(t, 222, result.Count, "only the newest round may deliver")
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}

	select {
	case result := <-results:
		t.Fatalf("stale round delivered a result: count=%d", result.Count)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestSession_OfferFailureDegradesToBasePrices(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/carwash/list-car-wash", func(w http.ResponseWriter, r *http.Request) {
		writeListResponse(w, 1, []models.CarWash{
			{
				ID:          7,
				CarWashName: "Sparkle Auto Spa",
				Packages: []models.CarWashPackage{
					{ID: 1, CarWashID: 7, Name: "Basic", Category: models.CategoryAutomatic, Price: "10.00"},
				},
			},
		})
	})
	mux.HandleFunc("/api/v1/carwash/offers/search", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "offers unavailable", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	results := make(chan SearchResult, 1)
	session := NewSearchSession(NewClient(server.URL), &fakeHistory{}, func(r SearchResult) {
		results <- r
	})
	session.debounce = 5 * time.Millisecond
	defer session.Close()

	session.Update(func(f *models.FilterState) {
		f.UserLat = 41.9
		f.UserLng = -87.6
	})

	select {
	case result := <-results:
		require.NoError(t, result.Err, "a failed offer fetch degrades, it does not error")
		assert.True(t, result.OffersDegraded)
		require.Len(t, result.CarWashes, 1)
		require.Len(t, result.CarWashes[0].Packages, 1)
		pkg := result.CarWashes[0].Packages[0]
		assert.False(t, pkg.IsOffer)
		assert.Equal(t, 10.0, pkg.LowestPrice)
		assert.Nil(t, result.FeaturedOffer)
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
}

func TestSession_ListFailureSurfacesError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/carwash/list-car-wash", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/v1/carwash/offers/search", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Offer{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	results := make(chan SearchResult, 1)
	session := NewSearchSession(NewClient(server.URL), &fakeHistory{}, func(r SearchResult) {
		results <- r
	})
	session.debounce = 5 * time.Millisecond
	defer session.Close()

	session.Update(func(f *models.FilterState) {
		f.UserLat = 41.9
		f.UserLng = -87.6
	})

	select {
	case result := <-results:
		assert.Error(t, result.Err)
		assert.Empty(t, result.CarWashes)
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
}

func TestSession_NoFetchWithoutLocation(t *testing.T) {
	requests := make(chan string, 8)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requests <- r.URL.Path
		writeListResponse(w, 0, nil)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	history := &fakeHistory{}
	session := NewSearchSession(NewClient(server.URL), history, nil)
	session.debounce = 5 * time.Millisecond
	defer session.Close()

	session.Update(func(f *models.FilterState) {
		f.PriceRange = 20
	})
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 1, history.count(), "the URL still syncs without a location")
	select {
	case path := <-requests:
		t.Fatalf("unexpected request to %s before a location is known", path)
	default:
	}
}

func TestSession_NavigateAdoptsURLWithoutRewritingIt(t *testing.T) {
	history := &fakeHistory{}
	session := NewSearchSession(NewClient("http://unused"), history, nil)
	defer session.Close()

	values := url.Values{}
	values.Set("selfServiceCarWash", "true")
	values.Set("automaticCarWash", "false")
	values.Set("distance", strconv.Itoa(10))
	session.Navigate(values)

	state := session.State()
	assert.True(t, state.SelfServiceCarWash)
	assert.False(t, state.AutomaticCarWash)
	assert.Equal(t, float64(10), state.Distance)
	assert.Equal(t, []string{"price_low_to_high"}, state.SortBy)
	assert.Equal(t, 0, history.count(), "the URL is the source of a navigation, never rewritten by it")
}
