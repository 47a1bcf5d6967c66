package catalog

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	http_transport "github.com/opiscesdev/valorant-store-bot-checker/internal/transport/http"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/utils"
)

const skinLevelsURI = "v1/weapons/skinlevels"

// ErrUnexpectedHTTPStatus is returned when the catalog responds with a
// non-200 status.
var ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")

// SkinLevel is one weapon skin level entry from the public catalog.
type SkinLevel struct {
	// UUID is the skin level uuid, shared with storefront offers.
	UUID string `json:"uuid"`
	// DisplayName is the localized skin name.
	DisplayName string `json:"displayName"`
	// DisplayIcon is the icon URL.
	DisplayIcon string `json:"displayIcon"`
	// StreamedVideo is the preview video URL, empty when the skin has none.
	StreamedVideo string `json:"streamedVideo"`
}

type skinLevelResponse struct {
	Status int       `json:"status"`
	Data   SkinLevel `json:"data"`
}

// Client reads the public, unauthenticated game-content catalog.
type Client interface {
	// FetchSkinLevel retrieves one weapon skin level localized to the
	// given language tag.
	FetchSkinLevel(ctx context.Context, uuid, language string) (*SkinLevel, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// httpClient is the HTTP client used to interact with the catalog.
	httpClient *http.Client
}

// NewClient creates a catalog client.
func NewClient(cfg *config.Config) *ClientImpl {
	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: http_transport.DefaultTimeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// FetchSkinLevel implements the Client interface.
func (c *ClientImpl) FetchSkinLevel(ctx context.Context, uuid, language string) (*SkinLevel, error) {
	requestURL, err := url.JoinPath(c.cfg.CatalogBaseURL, skinLevelsURI, uuid)
	if err != nil {
		return nil, err
	}

	requestURL += "?language=" + url.QueryEscape(language)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skin level %s: %w", uuid, err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedHTTPStatus, response.Status)
	}

	var decoded skinLevelResponse
	if err = json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode skin level %s: %w", uuid, err)
	}

	return &decoded.Data, nil
}
