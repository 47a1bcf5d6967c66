package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/storage"
)

// ExecuteRegisterCommand stores Riot credentials as a new account for the
// user, creating the user record on first registration.
func ExecuteRegisterCommand(ctx context.Context, cfg *config.Config, userID, username, password string) {
	components, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
		return
	}

	defer components.close()

	user, err := components.store.GetUser(ctx, userID)

	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		user = &storage.User{
			ID:       userID,
			Language: cfg.DefaultLanguage,
		}
	default:
		logger.Fatalf(ctx, "Failed to load user %s: %v", userID, err)
		return
	}

	account := &storage.Account{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Username: username,
		Password: password,
		Region:   cfg.Region,
	}

	if err = components.store.PutAccount(ctx, account); err != nil {
		logger.Fatalf(ctx, "Failed to save the account: %v", err)
		return
	}

	user.AccountIDs = append(user.AccountIDs, account.ID)

	if err = components.store.PutUser(ctx, user); err != nil {
		logger.Fatalf(ctx, "Failed to save user %s: %v", user.ID, err)
		return
	}

	logger.Infof(ctx, "Registered account %s for user %s", account.ID, user.ID)
}
