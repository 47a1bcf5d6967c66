package app

import (
	"context"
	"time"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/client/catalog"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/client/riot"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/proxy"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/service/login"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/service/store"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/storage"
)

//nolint:gochecknoglobals // Swapped out by tests that need a fixed clock.
var timeNow = time.Now

// components holds the wired application services shared by the commands.
type components struct {
	store        storage.Store
	pool         *proxy.Pool
	loginService login.Service
	storeService store.Service
}

// buildComponents connects to Redis, loads the proxy list and wires the
// services. The caller must close the returned components.
func buildComponents(ctx context.Context, cfg *config.Config) (*components, error) {
	redisStore := storage.NewRedisStore(cfg)

	if err := redisStore.Ping(ctx); err != nil {
		_ = redisStore.Close()

		return nil, err
	}

	pool, err := proxy.LoadPool(cfg.ProxiesPath, cfg.PremiumProxyShare)
	if err != nil {
		_ = redisStore.Close()

		return nil, err
	}

	storeService, err := store.NewService(cfg, redisStore, catalog.NewClient(cfg))
	if err != nil {
		_ = redisStore.Close()

		return nil, err
	}

	return &components{
		store:        redisStore,
		pool:         pool,
		loginService: login.NewService(cfg, pool, redisStore),
		storeService: storeService,
	}, nil
}

func (c *components) close() {
	if closer, ok := c.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

// loginAccount loads the user and account and performs a full login,
// translating the outcome into logs. A nil client means the login failed.
func (c *components) loginAccount(
	ctx context.Context,
	userID, accountID string,
) (riot.Client, *storage.User, *storage.Account) {
	user, err := c.store.GetUser(ctx, userID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load user %s: %v", userID, err)
		return nil, nil, nil
	}

	account, err := c.resolveAccount(ctx, user, accountID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load an account of user %s: %v", userID, err)
		return nil, nil, nil
	}

	client, outcome := c.loginService.Login(ctx, account, login.TierForUser(user, timeNow()))
	if outcome != login.OutcomeSuccess {
		logger.Fatalf(ctx, "Login for account %s finished with outcome: %s", account.ID, outcome)
		return nil, nil, nil
	}

	return client, user, account
}

// resolveAccount returns the requested account, or the user's first one when
// no id was given.
func (c *components) resolveAccount(
	ctx context.Context,
	user *storage.User,
	accountID string,
) (*storage.Account, error) {
	if accountID == "" {
		if len(user.AccountIDs) == 0 {
			return nil, storage.ErrNotFound
		}

		accountID = user.AccountIDs[0]
	}

	return c.store.GetAccount(ctx, accountID)
}
