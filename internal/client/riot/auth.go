package riot

//go:generate $MOCKGEN -source=auth.go -destination=mocks/auth_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	http_transport "github.com/opiscesdev/valorant-store-bot-checker/internal/transport/http"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/utils"
)

// Authenticator performs the fixed web login handshake for one account.
type Authenticator interface {
	// Activate runs the handshake and returns an authenticated client on success.
	Activate(ctx context.Context) (Client, error)
}

// AuthSession is a single login attempt. It owns an HTTP client bound to the
// selected proxy endpoint and a fresh cookie jar; the auth service tracks the
// handshake state server-side against those cookies.
type AuthSession struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// credentials is the account's username/password pair.
	credentials Credentials
	// httpClient is the proxy-bound HTTP client shared by all handshake steps.
	httpClient *http.Client
}

// NewAuthSession creates a login attempt routed through the given proxy URL.
// The same proxy serves both HTTP and HTTPS traffic.
func NewAuthSession(cfg *config.Config, credentials Credentials, proxyURL *url.URL) (*AuthSession, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	transport := &http.Transport{
		Proxy: http.ProxyURL(proxyURL),
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(transport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Jar:     jar,
		Timeout: http_transport.DefaultTimeout,
	}

	return &AuthSession{
		cfg:         cfg,
		credentials: credentials,
		httpClient:  httpClient,
	}, nil
}

// Activate runs the three-request handshake and returns an authenticated
// client carrying the bearer token, the entitlements token and the stable
// user id. It fails with ErrRateLimited or ErrInvalidCredentials on the
// provider's typed rejections; anything else propagates as-is.
func (s *AuthSession) Activate(ctx context.Context) (Client, error) {
	if err := s.initAuthorization(ctx); err != nil {
		return nil, fmt.Errorf("authorization init failed: %w", err)
	}

	tokens, err := s.submitLogin(ctx)
	if err != nil {
		return nil, err
	}

	bearer := bearerTokenPrefix + tokens.AccessToken

	entitlementsToken, err := s.fetchEntitlementsToken(ctx, bearer)
	if err != nil {
		return nil, err
	}

	userID, err := s.fetchUserID(ctx, bearer)
	if err != nil {
		return nil, err
	}

	// The handshake client and its proxy are not needed past this point.
	s.httpClient.CloseIdleConnections()

	headers := http.Header{}
	headers.Set(headerAuthorization, bearer)
	headers.Set(headerEntitlementsJWT, entitlementsToken)
	headers.Set(headerClientPlatform, clientPlatform)

	return newClient(s.cfg, userID, headers)
}

// initAuthorization establishes the handshake cookies server-side.
// The response body carries nothing this step needs.
func (s *AuthSession) initAuthorization(ctx context.Context) error {
	requestURL, err := url.JoinPath(s.cfg.RiotAuthBaseURL, riotAuthorizationURI)
	if err != nil {
		return err
	}

	body := authInitRequest{
		ClientID:     authClientID,
		Nonce:        authNonce,
		RedirectURI:  authRedirectURI,
		ResponseType: authResponseType,
	}

	response, err := s.doJSONRequest(ctx, http.MethodPost, requestURL, body, nil)
	if err != nil {
		return err
	}

	return response.Body.Close()
}

// submitLogin submits the credentials and extracts the token triple from the
// redirect URI in the response.
func (s *AuthSession) submitLogin(ctx context.Context) (*redirectTokens, error) {
	requestURL, err := url.JoinPath(s.cfg.RiotAuthBaseURL, riotAuthorizationURI)
	if err != nil {
		return nil, err
	}

	body := loginRequest{
		Type:     "auth",
		Username: s.credentials.Username,
		Password: s.credentials.Password,
	}

	response, err := s.doJSONRequest(ctx, http.MethodPut, requestURL, body, nil)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	var result loginResponse
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	switch result.Error {
	case loginErrorRateLimited:
		return nil, ErrRateLimited
	case loginErrorAuthFailure:
		return nil, ErrInvalidCredentials
	}

	// A success-shaped response without a parseable redirect URI is treated
	// the same as bad credentials: the provider uses this shape for several
	// rejection reasons and does not distinguish them further.
	tokens, ok := extractRedirectTokens(result.Response.Parameters.URI)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return &tokens, nil
}

// fetchEntitlementsToken exchanges the access token for an entitlements token.
func (s *AuthSession) fetchEntitlementsToken(ctx context.Context, bearer string) (string, error) {
	requestURL, err := url.JoinPath(s.cfg.RiotEntitlementsBaseURL, riotEntitlementsURI)
	if err != nil {
		return "", err
	}

	header := http.Header{}
	header.Set(headerAuthorization, bearer)

	result, err := decodeJSONResponse[entitlementsResponse](s.doJSONRequest(
		ctx, http.MethodPost, requestURL, struct{}{}, header))
	if err != nil {
		return "", fmt.Errorf("failed to fetch entitlements token: %w", err)
	}

	if result.EntitlementsToken == "" {
		return "", ErrMissingEntitlementsToken
	}

	return result.EntitlementsToken, nil
}

// fetchUserID retrieves the stable user id (PUUID) for the logged-in account.
func (s *AuthSession) fetchUserID(ctx context.Context, bearer string) (string, error) {
	requestURL, err := url.JoinPath(s.cfg.RiotAuthBaseURL, riotUserInfoURI)
	if err != nil {
		return "", err
	}

	header := http.Header{}
	header.Set(headerAuthorization, bearer)

	result, err := decodeJSONResponse[userInfoResponse](s.doJSONRequest(
		ctx, http.MethodPost, requestURL, struct{}{}, header))
	if err != nil {
		return "", fmt.Errorf("failed to fetch user info: %w", err)
	}

	if result.Sub == "" {
		return "", ErrMissingUserID
	}

	return result.Sub, nil
}

// doJSONRequest sends a JSON request through the handshake client.
// The caller owns the response body.
func (s *AuthSession) doJSONRequest(
	ctx context.Context,
	method, requestURL string,
	body any,
	header http.Header,
) (*http.Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}

	for name, values := range header {
		for _, value := range values {
			request.Header.Add(name, value)
		}
	}

	request.Header.Set(contentTypeHeader, contentTypeJSON)

	return s.httpClient.Do(request)
}

// decodeJSONResponse decodes a JSON body into T, requiring a 200 status.
//
//nolint:revive // Free function because Go doesn't allow struct methods to be generic.
func decodeJSONResponse[T any](response *http.Response, requestErr error) (*T, error) {
	if requestErr != nil {
		return nil, requestErr
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, response.Body)

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result T
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
