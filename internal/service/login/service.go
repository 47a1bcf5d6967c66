package login

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/client/riot"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/proxy"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/storage"
)

// Outcome classifies the result of a login attempt for the command layer.
type Outcome uint8

const (
	// OutcomeSuccess means the handshake completed and the session is usable.
	OutcomeSuccess Outcome = iota
	// OutcomeRateLimited means Riot throttled the attempt. Never retried here.
	OutcomeRateLimited
	// OutcomeInvalidCredentials means Riot rejected the username/password.
	// Stored credentials are kept so the user can re-register at their pace.
	OutcomeInvalidCredentials
	// OutcomeUnknownError covers every other failure, logged with context.
	OutcomeUnknownError
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRateLimited:
		return "rate limited"
	case OutcomeInvalidCredentials:
		return "invalid credentials"
	case OutcomeUnknownError:
		return "unknown error"
	default:
		return "unexpected outcome"
	}
}

// AuthenticatorFactory builds an authenticator for one login attempt.
type AuthenticatorFactory func(
	cfg *config.Config,
	credentials riot.Credentials,
	proxyURL *url.URL,
) (riot.Authenticator, error)

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go -package=mocks

// Service logs a stored account into Riot and seeds its identity fields.
type Service interface {
	// Login performs a full handshake for the account through a proxy of the
	// given tier. Every call repeats the whole handshake from scratch; no
	// state from a previous attempt is reused.
	Login(ctx context.Context, account *storage.Account, tier proxy.Tier) (riot.Client, Outcome)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	cfg              *config.Config
	pool             *proxy.Pool
	store            storage.Store
	newAuthenticator AuthenticatorFactory
}

// NewService creates a login service using real handshake sessions.
func NewService(cfg *config.Config, pool *proxy.Pool, store storage.Store) *ServiceImpl {
	factory := func(
		cfg *config.Config,
		credentials riot.Credentials,
		proxyURL *url.URL,
	) (riot.Authenticator, error) {
		return riot.NewAuthSession(cfg, credentials, proxyURL)
	}

	return NewServiceWithAuthenticatorFactory(cfg, pool, store, factory)
}

// NewServiceWithAuthenticatorFactory creates a login service with a custom
// authenticator factory.
func NewServiceWithAuthenticatorFactory(
	cfg *config.Config,
	pool *proxy.Pool,
	store storage.Store,
	factory AuthenticatorFactory,
) *ServiceImpl {
	return &ServiceImpl{
		cfg:              cfg,
		pool:             pool,
		store:            store,
		newAuthenticator: factory,
	}
}

// TierForUser returns the proxy tier for the user's plan at the given time.
func TierForUser(user *storage.User, now time.Time) proxy.Tier {
	if user.IsPremium(now) {
		return proxy.TierPremium
	}

	return proxy.TierStandard
}

// Login implements the Service interface.
func (s *ServiceImpl) Login(
	ctx context.Context,
	account *storage.Account,
	tier proxy.Tier,
) (riot.Client, Outcome) {
	endpoint, err := s.pool.Select(tier)
	if err != nil {
		logger.Errorf(ctx, "failed to select a %s proxy for account %s: %v", tier, account.ID, err)

		return nil, OutcomeUnknownError
	}

	credentials := riot.Credentials{
		Username: account.Username,
		Password: account.Password,
	}

	authenticator, err := s.newAuthenticator(s.cfg, credentials, endpoint.URL())
	if err != nil {
		logger.Errorf(ctx, "failed to build a session for account %s: %v", account.ID, err)

		return nil, OutcomeUnknownError
	}

	client, err := s.activate(ctx, authenticator)

	switch {
	case err == nil:
	case errors.Is(err, riot.ErrRateLimited):
		logger.Warnf(ctx, "login for account %s was rate limited", account.ID)

		return nil, OutcomeRateLimited
	case errors.Is(err, riot.ErrInvalidCredentials):
		s.markInvalid(ctx, account)

		return nil, OutcomeInvalidCredentials
	default:
		logger.Errorf(ctx, "login for account %s failed: %v", account.ID, err)

		return nil, OutcomeUnknownError
	}

	if outcome := s.seedIdentity(ctx, account, client); outcome != OutcomeSuccess {
		return nil, outcome
	}

	return client, OutcomeSuccess
}

// activate runs the blocking handshake on its own goroutine so the caller
// can honor context cancellation while it is in flight.
func (s *ServiceImpl) activate(ctx context.Context, authenticator riot.Authenticator) (riot.Client, error) {
	type activationResult struct {
		client riot.Client
		err    error
	}

	resultCh := make(chan activationResult, 1)

	go func() {
		client, err := authenticator.Activate(ctx)
		resultCh <- activationResult{client: client, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultCh:
		return result.client, result.err
	}
}

// seedIdentity records the stable user id and, when the display name is not
// known yet, performs exactly one name lookup through the fresh session.
// A failed lookup fails the whole login; there is no partial success.
func (s *ServiceImpl) seedIdentity(
	ctx context.Context,
	account *storage.Account,
	client riot.Client,
) Outcome {
	account.Invalid = false
	account.SetPUUID(client.PUUID())

	if _, err := account.GameName(); err != nil {
		names, namesErr := client.FetchPlayerNames(ctx)
		if namesErr != nil {
			logger.Errorf(ctx, "failed to look up the name of account %s: %v", account.ID, namesErr)

			return OutcomeUnknownError
		}

		if len(names) == 0 {
			logger.Errorf(ctx, "name lookup for account %s returned no players", account.ID)

			return OutcomeUnknownError
		}

		account.SetGameName(names[0].GameName + "#" + names[0].TagLine)
	}

	if err := s.store.PutAccount(ctx, account); err != nil {
		logger.Errorf(ctx, "failed to save account %s: %v", account.ID, err)

		return OutcomeUnknownError
	}

	return OutcomeSuccess
}

func (s *ServiceImpl) markInvalid(ctx context.Context, account *storage.Account) {
	account.Invalid = true

	if err := s.store.PutAccount(ctx, account); err != nil {
		logger.Errorf(ctx, "failed to flag account %s as invalid: %v", account.ID, err)
	}
}
