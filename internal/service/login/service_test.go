package login

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/client/riot"
	riotmocks "github.com/opiscesdev/valorant-store-bot-checker/internal/client/riot/mocks"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/proxy"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/storage"
)

const testPUUID = "4e9a62f0-8a3d-44e2-8f6b-0d5a2f7d9b11"

type serviceFixture struct {
	service  *ServiceImpl
	store    storage.Store
	captured []*url.URL
}

// newServiceFixture wires the service to a miniredis-backed store, a pool of
// four endpoints (one premium, one standard) and a factory returning the
// given authenticators in order, recording every proxy URL it sees.
func newServiceFixture(t *testing.T, authenticators ...riot.Authenticator) *serviceFixture {
	t.Helper()

	server := miniredis.RunT(t)
	store := storage.NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}))

	pool := proxy.NewPool([]*proxy.Endpoint{
		{Host: "premium.example.com", Port: "8080", Username: "u1", Password: "p1"},
		{Host: "unused-a.example.com", Port: "8080", Username: "u2", Password: "p2"},
		{Host: "unused-b.example.com", Port: "8080", Username: "u3", Password: "p3"},
		{Host: "standard.example.com", Port: "8080", Username: "u4", Password: "p4"},
	}, config.DefaultPremiumProxyShare)

	fixture := &serviceFixture{store: store}

	remaining := authenticators
	factory := func(
		_ *config.Config,
		_ riot.Credentials,
		proxyURL *url.URL,
	) (riot.Authenticator, error) {
		fixture.captured = append(fixture.captured, proxyURL)

		require.NotEmpty(t, remaining, "factory called more times than authenticators provided")

		next := remaining[0]
		remaining = remaining[1:]

		return next, nil
	}

	fixture.service = NewServiceWithAuthenticatorFactory(&config.Config{}, pool, store, factory)

	return fixture
}

func newTestAccount() *storage.Account {
	return &storage.Account{
		ID:       "account-1",
		UserID:   "user-1",
		Username: "rito_player",
		Password: "hunter2",
		Region:   "ap",
	}
}

func TestLogin_SeedsIdentity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	client := riotmocks.NewMockClient(ctrl)
	client.EXPECT().PUUID().Return(testPUUID)
	client.EXPECT().FetchPlayerNames(gomock.Any()).
		Return([]riot.PlayerName{{Subject: testPUUID, GameName: "SomePlayer", TagLine: "JP1"}}, nil).
		Times(1)

	authenticator := riotmocks.NewMockAuthenticator(ctrl)
	authenticator.EXPECT().Activate(gomock.Any()).Return(client, nil)

	fixture := newServiceFixture(t, authenticator)
	account := newTestAccount()

	session, outcome := fixture.service.Login(context.Background(), account, proxy.TierStandard)
	require.Equal(t, OutcomeSuccess, outcome)
	assert.Same(t, client, session)

	saved, err := fixture.store.GetAccount(context.Background(), account.ID)
	require.NoError(t, err)

	puuid, err := saved.PUUID()
	require.NoError(t, err)
	assert.Equal(t, testPUUID, puuid)

	gameName, err := saved.GameName()
	require.NoError(t, err)
	assert.Equal(t, "SomePlayer#JP1", gameName)
}

func TestLogin_KnownNameSkipsLookup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	client := riotmocks.NewMockClient(ctrl)
	client.EXPECT().PUUID().Return(testPUUID)

	authenticator := riotmocks.NewMockAuthenticator(ctrl)
	authenticator.EXPECT().Activate(gomock.Any()).Return(client, nil)

	fixture := newServiceFixture(t, authenticator)

	account := newTestAccount()
	account.SetGameName("AlreadyKnown#JP1")

	_, outcome := fixture.service.Login(context.Background(), account, proxy.TierStandard)
	require.Equal(t, OutcomeSuccess, outcome)

	saved, err := fixture.store.GetAccount(context.Background(), account.ID)
	require.NoError(t, err)

	gameName, err := saved.GameName()
	require.NoError(t, err)
	assert.Equal(t, "AlreadyKnown#JP1", gameName)
}

func TestLogin_FailureOutcomes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		activationErr   error
		expected        Outcome
		expectedInvalid bool
	}{
		{
			name:          "rate limited",
			activationErr: riot.ErrRateLimited,
			expected:      OutcomeRateLimited,
		},
		{
			name:            "invalid credentials flag the account",
			activationErr:   riot.ErrInvalidCredentials,
			expected:        OutcomeInvalidCredentials,
			expectedInvalid: true,
		},
		{
			name:          "transport failure",
			activationErr: errors.New("connection reset by peer"),
			expected:      OutcomeUnknownError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			authenticator := riotmocks.NewMockAuthenticator(ctrl)
			authenticator.EXPECT().Activate(gomock.Any()).Return(nil, tc.activationErr)

			fixture := newServiceFixture(t, authenticator)
			account := newTestAccount()

			session, outcome := fixture.service.Login(context.Background(), account, proxy.TierStandard)
			assert.Nil(t, session)
			assert.Equal(t, tc.expected, outcome)
			assert.Equal(t, tc.expectedInvalid, account.Invalid)
		})
	}
}

func TestLogin_NameLookupFailureFailsWholeLogin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	client := riotmocks.NewMockClient(ctrl)
	client.EXPECT().PUUID().Return(testPUUID)
	client.EXPECT().FetchPlayerNames(gomock.Any()).Return(nil, errors.New("boom"))

	authenticator := riotmocks.NewMockAuthenticator(ctrl)
	authenticator.EXPECT().Activate(gomock.Any()).Return(client, nil)

	fixture := newServiceFixture(t, authenticator)

	session, outcome := fixture.service.Login(context.Background(), newTestAccount(), proxy.TierStandard)
	assert.Nil(t, session)
	assert.Equal(t, OutcomeUnknownError, outcome)
}

func TestLogin_SequentialAttemptsUseFreshSessions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	firstClient := riotmocks.NewMockClient(ctrl)
	firstClient.EXPECT().PUUID().Return(testPUUID)
	firstClient.EXPECT().FetchPlayerNames(gomock.Any()).
		Return([]riot.PlayerName{{GameName: "SomePlayer", TagLine: "JP1"}}, nil)

	secondClient := riotmocks.NewMockClient(ctrl)
	secondClient.EXPECT().PUUID().Return(testPUUID)

	firstAuthenticator := riotmocks.NewMockAuthenticator(ctrl)
	firstAuthenticator.EXPECT().Activate(gomock.Any()).Return(firstClient, nil)

	secondAuthenticator := riotmocks.NewMockAuthenticator(ctrl)
	secondAuthenticator.EXPECT().Activate(gomock.Any()).Return(secondClient, nil)

	fixture := newServiceFixture(t, firstAuthenticator, secondAuthenticator)
	account := newTestAccount()

	firstSession, outcome := fixture.service.Login(context.Background(), account, proxy.TierPremium)
	require.Equal(t, OutcomeSuccess, outcome)

	secondSession, outcome := fixture.service.Login(context.Background(), account, proxy.TierStandard)
	require.Equal(t, OutcomeSuccess, outcome)

	assert.NotSame(t, firstSession, secondSession)

	// Each attempt drew its own endpoint from its own tier.
	require.Len(t, fixture.captured, 2)
	assert.Equal(t, "premium.example.com:8080", fixture.captured[0].Host)
	assert.Equal(t, "standard.example.com:8080", fixture.captured[1].Host)
}

func TestLogin_NoProxyAvailable(t *testing.T) {
	t.Parallel()

	server := miniredis.RunT(t)
	store := storage.NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}))

	// Three endpoints leave the premium quarter empty.
	pool := proxy.NewPool([]*proxy.Endpoint{
		{Host: "a.example.com", Port: "8080"},
		{Host: "b.example.com", Port: "8080"},
		{Host: "c.example.com", Port: "8080"},
	}, config.DefaultPremiumProxyShare)

	factory := func(*config.Config, riot.Credentials, *url.URL) (riot.Authenticator, error) {
		t.Fatal("factory must not be called without a proxy")

		return nil, nil
	}

	service := NewServiceWithAuthenticatorFactory(&config.Config{}, pool, store, factory)

	session, outcome := service.Login(context.Background(), newTestAccount(), proxy.TierPremium)
	assert.Nil(t, session)
	assert.Equal(t, OutcomeUnknownError, outcome)
}

func TestTierForUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		user     *storage.User
		expected proxy.Tier
	}{
		{
			name:     "free user",
			user:     &storage.User{ID: "u1"},
			expected: proxy.TierStandard,
		},
		{
			name: "active premium",
			user: &storage.User{
				ID:           "u2",
				Premium:      true,
				PremiumUntil: now.Add(24 * time.Hour),
			},
			expected: proxy.TierPremium,
		},
		{
			name: "expired premium",
			user: &storage.User{
				ID:           "u3",
				Premium:      true,
				PremiumUntil: now.Add(-time.Hour),
			},
			expected: proxy.TierStandard,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, TierForUser(tc.user, now))
		})
	}
}
