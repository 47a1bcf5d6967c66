package app

import (
	"context"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
)

// ExecuteLoginCommand performs a full handshake for one of the user's
// accounts and reports the learned identity.
func ExecuteLoginCommand(ctx context.Context, cfg *config.Config, userID, accountID string) {
	components, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
		return
	}

	defer components.close()

	client, _, account := components.loginAccount(ctx, userID, accountID)
	if client == nil {
		return
	}

	gameName, err := account.GameName()
	if err != nil {
		logger.Fatalf(ctx, "Failed to read the game name of account %s: %v", account.ID, err)
		return
	}

	logger.Infof(ctx, "Logged in as %s (player id %s)", gameName, client.PUUID())
}
