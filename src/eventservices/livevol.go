package eventservices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

const (
	livevolTokenKey     = "access_token"
	livevolPointsHeader = "x-monthly-points-used"
	livevolTimeout      = 30 * time.Second
)

// LivevolToken is the client credentials grant, as persisted to the auth cache file.
type LivevolToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in"`
	ExpiryTime  int64  `json:"expiry_time"`
}

func (t *LivevolToken) expired(now time.Time) bool {
	return t.AccessToken == "" || now.Unix() >= t.ExpiryTime
}

type LivevolClient struct {
	api       *resty.Client
	auth      *resty.Client
	tokenURL  string
	authCache string
	username  string
	password  string
	tokens    *cache.Cache
	now       func() time.Time
}

func NewLivevolClient(cfg eventmodels.LivevolConfigYAML, username, password string) *LivevolClient {
	return &LivevolClient{
		api:       resty.New().SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).SetTimeout(livevolTimeout),
		auth:      resty.New().SetTimeout(livevolTimeout),
		tokenURL:  cfg.TokenURL,
		authCache: cfg.AuthCache,
		username:  username,
		password:  password,
		tokens:    cache.New(cache.NoExpiration, 10*time.Minute),
		now:       time.Now,
	}
}

func (c *LivevolClient) readAuthCache() (*LivevolToken, error) {
	if c.authCache == "" {
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(c.authCache)
	if err != nil {
		return nil, err
	}

	var token LivevolToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("readAuthCache: %w", err)
	}

	return &token, nil
}

func (c *LivevolClient) writeAuthCache(token *LivevolToken) error {
	if c.authCache == "" {
		return nil
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("writeAuthCache: %w", err)
	}

	if err := os.WriteFile(c.authCache, data, 0600); err != nil {
		return fmt.Errorf("writeAuthCache: %w", err)
	}

	return nil
}

func (c *LivevolClient) remember(token *LivevolToken) {
	ttl := time.Unix(token.ExpiryTime, 0).Sub(c.now())
	if ttl > 0 {
		c.tokens.Set(livevolTokenKey, token.AccessToken, ttl)
	}
}

func (c *LivevolClient) requestToken(ctx context.Context) (*LivevolToken, error) {
	var token LivevolToken

	start := c.now()
	resp, err := c.auth.R().
		SetContext(ctx).
		SetBasicAuth(c.username, c.password).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody("grant_type=client_credentials").
		SetResult(&token).
		Post(c.tokenURL)
	if err != nil {
		return nil, fmt.Errorf("requestToken: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("requestToken: http code %d", resp.StatusCode())
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("requestToken: empty access token")
	}

	token.ExpiryTime = c.now().Add(time.Duration(token.ExpiresIn) * time.Second).Unix()

	log.Infof("Obtained auth token in %d ms", c.now().Sub(start).Milliseconds())

	return &token, nil
}

// Token returns a bearer token, reusing the in-memory copy or the auth cache
// file until it expires.
func (c *LivevolClient) Token(ctx context.Context) (string, error) {
	if v, found := c.tokens.Get(livevolTokenKey); found {
		return v.(string), nil
	}

	token, err := c.readAuthCache()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("LivevolClient: ignoring auth cache: %v", err)
	}

	if err != nil || token.expired(c.now()) {
		if token, err = c.requestToken(ctx); err != nil {
			return "", fmt.Errorf("LivevolClient.Token: %w", err)
		}

		if err := c.writeAuthCache(token); err != nil {
			log.Warnf("LivevolClient: %v", err)
		}
	}

	c.remember(token)

	return token.AccessToken, nil
}

func (c *LivevolClient) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	token, err := c.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.api.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(params).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	log.WithFields(log.Fields{
		"path":        path,
		"symbol":      params["symbol"],
		"status":      resp.StatusCode(),
		"points_used": resp.Header().Get(livevolPointsHeader),
	}).Debug("livevol request")

	if resp.IsError() {
		return fmt.Errorf("http code %d", resp.StatusCode())
	}

	return nil
}

// FetchOptionChain downloads the option and underlying quotes for symbol on date.
// Cash indices are requested without a root filter.
func (c *LivevolClient) FetchOptionChain(ctx context.Context, symbol string, date time.Time) (*eventmodels.OptionChainResponseDTO, error) {
	params := map[string]string{
		"symbol": symbol,
		"date":   date.Format(time.DateOnly),
	}

	if !strings.Contains(symbol, "^") {
		params["root"] = symbol
	}

	var dto eventmodels.OptionChainResponseDTO
	if err := c.get(ctx, "/market/option-and-underlying-quotes", params, &dto); err != nil {
		return nil, fmt.Errorf("FetchOptionChain: %s: %w", symbol, err)
	}

	return &dto, nil
}

// FetchTrades downloads the day's option prints for symbol, largest first.
func (c *LivevolClient) FetchTrades(ctx context.Context, symbol string, limit int) ([]eventmodels.OptionTradeDTO, error) {
	params := map[string]string{
		"symbol":   symbol,
		"order_by": "SIZE_DESC",
		"limit":    fmt.Sprintf("%d", limit),
	}

	var dtos []eventmodels.OptionTradeDTO
	if err := c.get(ctx, "/market/all-option-trades", params, &dtos); err != nil {
		return nil, fmt.Errorf("FetchTrades: %s: %w", symbol, err)
	}

	return dtos, nil
}
