package eventservices

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

type fakeLivevol struct {
	mu         sync.Mutex
	tokenHits  int
	lastQuery  url.Values
	lastBearer string
}

func (f *fakeLivevol) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("x-monthly-points-used", "42")
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}

	mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "user" || pass != "secret" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		f.mu.Lock()
		f.tokenHits++
		f.mu.Unlock()

		writeJSON(w, map[string]interface{}{"access_token": "tok", "expires_in": 3600, "token_type": "Bearer"})
	})

	mux.HandleFunc("/market/option-and-underlying-quotes", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastQuery = r.URL.Query()
		f.lastBearer = r.Header.Get("Authorization")
		f.mu.Unlock()

		writeJSON(w, eventmodels.OptionChainResponseDTO{
			Symbol:               r.URL.Query().Get("symbol"),
			ImpliedUnderlyingMid: fp(450),
			Options: []eventmodels.OptionQuoteDTO{
				{Option: "SPY240621C00450000", OptionType: "C", Strike: 450, Expiry: "2024-06-21", OpenInterest: 10},
			},
		})
	})

	mux.HandleFunc("/market/all-option-trades", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.lastQuery = r.URL.Query()
		f.mu.Unlock()

		if r.URL.Query().Get("symbol") == "BAD" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, []eventmodels.OptionTradeDTO{
			newTradeDTO("SPY240621C00450000", "C", 450, eventmodels.OnAsk, 2.0, 1.9, 2.0, 500),
		})
	})

	return mux
}

func newTestLivevolClient(serverURL, authCache string) *LivevolClient {
	return NewLivevolClient(eventmodels.LivevolConfigYAML{
		TokenURL:  serverURL + "/connect/token",
		BaseURL:   serverURL + "/",
		AuthCache: authCache,
	}, "user", "secret")
}

func TestLivevolClient(t *testing.T) {
	fake := &fakeLivevol{}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	authCache := filepath.Join(t.TempDir(), "cboe_auth.json")
	client := newTestLivevolClient(server.URL, authCache)
	ctx := context.Background()

	t.Run("option chain for a stock", func(t *testing.T) {
		chain, err := client.FetchOptionChain(ctx, "SPY", asOf)
		require.NoError(t, err)

		assert.Equal(t, "SPY", chain.Symbol)
		assert.Equal(t, 450.0, chain.UnderlyingMid())
		require.Len(t, chain.Options, 1)
		assert.Equal(t, "Bearer tok", fake.lastBearer)
		assert.Equal(t, "2024-06-03", fake.lastQuery.Get("date"))
		assert.Equal(t, "SPY", fake.lastQuery.Get("root"))
	})

	t.Run("option chain for an index has no root", func(t *testing.T) {
		_, err := client.FetchOptionChain(ctx, "^SPX", asOf)
		require.NoError(t, err)

		assert.Equal(t, "^SPX", fake.lastQuery.Get("symbol"))
		assert.False(t, fake.lastQuery.Has("root"))
	})

	t.Run("trades", func(t *testing.T) {
		dtos, err := client.FetchTrades(ctx, "SPY", 10000)
		require.NoError(t, err)

		require.Len(t, dtos, 1)
		assert.Equal(t, 500, dtos[0].Size)
		assert.Equal(t, "SIZE_DESC", fake.lastQuery.Get("order_by"))
		assert.Equal(t, "10000", fake.lastQuery.Get("limit"))
	})

	t.Run("http error", func(t *testing.T) {
		_, err := client.FetchTrades(ctx, "BAD", 10)
		assert.Error(t, err)
	})

	t.Run("token requested once and persisted", func(t *testing.T) {
		assert.Equal(t, 1, fake.tokenHits)

		data, err := os.ReadFile(authCache)
		require.NoError(t, err)

		var token LivevolToken
		require.NoError(t, json.Unmarshal(data, &token))
		assert.Equal(t, "tok", token.AccessToken)
		assert.Greater(t, token.ExpiryTime, time.Now().Unix())
	})

	t.Run("new client reuses the auth cache file", func(t *testing.T) {
		other := newTestLivevolClient(server.URL, authCache)

		token, err := other.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, 1, fake.tokenHits)
	})

	t.Run("expired auth cache is refreshed", func(t *testing.T) {
		expired, err := json.Marshal(LivevolToken{AccessToken: "old", ExpiresIn: 3600, ExpiryTime: time.Now().Add(-time.Minute).Unix()})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(authCache, expired, 0600))

		other := newTestLivevolClient(server.URL, authCache)

		token, err := other.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, 2, fake.tokenHits)
	})

	t.Run("bad credentials", func(t *testing.T) {
		other := NewLivevolClient(eventmodels.LivevolConfigYAML{
			TokenURL: server.URL + "/connect/token",
			BaseURL:  server.URL,
		}, "user", "wrong")

		_, err := other.FetchTrades(ctx, "SPY", 10)
		assert.Error(t, err)
	})
}
