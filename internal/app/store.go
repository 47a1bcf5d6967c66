package app

import (
	"context"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
)

// ExecuteStoreCommand logs an account in and prints its daily store offers.
func ExecuteStoreCommand(ctx context.Context, cfg *config.Config, userID, accountID string) {
	components, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
		return
	}

	defer components.close()

	client, user, _ := components.loginAccount(ctx, userID, accountID)
	if client == nil {
		return
	}

	skins, err := components.storeService.DailySkins(ctx, client, user.Language, timeNow())
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch the daily store: %v", err)
		return
	}

	for _, skin := range skins {
		logger.Infof(ctx, "%s", skin.DisplayName)

		if skin.DisplayIcon != "" {
			logger.Infof(ctx, "  icon:  %s", skin.DisplayIcon)
		}

		if skin.StreamedVideo != "" {
			logger.Infof(ctx, "  video: %s", skin.StreamedVideo)
		}
	}
}

// ExecuteRankCommand logs an account in and prints its competitive tier.
func ExecuteRankCommand(ctx context.Context, cfg *config.Config, userID, accountID string) {
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

	rank, err := components.storeService.Rank(ctx, client)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch the rank of account %s: %v", account.ID, err)
		return
	}

	logger.Infof(ctx, "Current rank: %s", rank)
}
