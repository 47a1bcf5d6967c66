package riot

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	http_transport "github.com/opiscesdev/valorant-store-bot-checker/internal/transport/http"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/utils"
)

// Client is an authenticated session against the player-data API.
// One Client corresponds to one successful login handshake.
type Client interface {
	// PUUID returns the stable user id learned during the handshake.
	PUUID() string
	// FetchPlayerNames retrieves the game name and tag line for the logged-in player.
	FetchPlayerNames(ctx context.Context) ([]PlayerName, error)
	// FetchStorefront retrieves the player's daily store content.
	FetchStorefront(ctx context.Context) (*Storefront, error)
	// FetchCompetitiveUpdates retrieves the player's recent competitive matches.
	FetchCompetitiveUpdates(ctx context.Context) (*CompetitiveUpdates, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// puuid is the stable user id of the logged-in account.
	puuid string
	// headers carries Authorization, X-Riot-Entitlements-JWT and
	// X-Riot-ClientPlatform for every player-data request.
	headers http.Header
	// httpClient is the HTTP client for player-data requests.
	// It starts with an empty cookie jar; only the headers authenticate.
	httpClient *http.Client
}

// newClient creates the authenticated session handle returned by a
// successful handshake.
func newClient(cfg *config.Config, puuid string, headers http.Header) (*ClientImpl, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Jar:     jar,
		Timeout: http_transport.DefaultTimeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		puuid:      puuid,
		headers:    headers,
		httpClient: httpClient,
	}, nil
}

// PUUID returns the stable user id learned during the handshake.
func (c *ClientImpl) PUUID() string {
	return c.puuid
}

// FetchPlayerNames retrieves the game name and tag line for the logged-in player.
func (c *ClientImpl) FetchPlayerNames(ctx context.Context) ([]PlayerName, error) {
	requestURL, err := url.JoinPath(c.cfg.PlayerDataBaseURL, riotPlayerNamesURI)
	if err != nil {
		return nil, err
	}

	names, err := fetchPlayerDataJSON[[]PlayerName](c, ctx, http.MethodPut, requestURL, []string{c.puuid})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player names: %w", err)
	}

	return *names, nil
}

// FetchStorefront retrieves the player's daily store content.
func (c *ClientImpl) FetchStorefront(ctx context.Context) (*Storefront, error) {
	requestURL, err := url.JoinPath(c.cfg.PlayerDataBaseURL, riotStorefrontURI, c.puuid)
	if err != nil {
		return nil, err
	}

	storefront, err := fetchPlayerDataJSON[Storefront](c, ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch storefront: %w", err)
	}

	return storefront, nil
}

// FetchCompetitiveUpdates retrieves the player's recent competitive matches.
func (c *ClientImpl) FetchCompetitiveUpdates(ctx context.Context) (*CompetitiveUpdates, error) {
	requestURL, err := url.JoinPath(c.cfg.PlayerDataBaseURL, riotCompetitiveUpdatesURI, c.puuid, "competitiveupdates")
	if err != nil {
		return nil, err
	}

	updates, err := fetchPlayerDataJSON[CompetitiveUpdates](c, ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch competitive updates: %w", err)
	}

	return updates, nil
}

// CompetitiveTierName maps a tier number from the competitive update feed to
// its display name.
func CompetitiveTierName(tier int) (string, error) {
	if tier < 0 || tier >= len(competitiveTierNames) {
		return "", fmt.Errorf("%w: %d", ErrUnknownCompetitiveTier, tier)
	}

	return competitiveTierNames[tier], nil
}

//nolint:revive // Free function because Go doesn't allow struct methods to be generic.
func fetchPlayerDataJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	method, requestURL string,
	body any,
) (*T, error) {
	var requestBody *bytes.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}

		requestBody = bytes.NewReader(encoded)
	} else {
		requestBody = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return nil, err
	}

	for name, values := range c.headers {
		for _, value := range values {
			request.Header.Add(name, value)
		}
	}

	if body != nil {
		request.Header.Set(contentTypeHeader, contentTypeJSON)
	}

	return decodeJSONResponse[T](c.httpClient.Do(request))
}
