package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/client/catalog"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/client/riot"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/storage"
)

// skinLogDateLayout formats the day a skin log belongs to.
const skinLogDateLayout = "2006-01-02"

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go -package=mocks

// Service reads a player's daily store and rank through an authenticated
// session.
type Service interface {
	// DailySkins returns the player's single-item offers for the given day,
	// resolved into displayable skins in the given language. The offer list
	// is fetched from Riot at most once per player per day; later calls are
	// answered from the stored log.
	DailySkins(ctx context.Context, client riot.Client, language string, now time.Time) ([]*storage.Skin, error)
	// Rank returns the display name of the player's current competitive tier.
	Rank(ctx context.Context, client riot.Client) (string, error)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	cfg     *config.Config
	store   storage.Store
	catalog catalog.Client
	// skinCache keeps hot catalog entries in memory, keyed by uuid and
	// language. Misses fall through to Redis and then to the catalog API.
	skinCache *lru.Cache[skinCacheKey, *storage.Skin]
}

type skinCacheKey struct {
	uuid     string
	language string
}

// NewService creates a store service.
func NewService(cfg *config.Config, store storage.Store, catalogClient catalog.Client) (*ServiceImpl, error) {
	skinCache, err := lru.New[skinCacheKey, *storage.Skin](cfg.SkinCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create skin cache: %w", err)
	}

	return &ServiceImpl{
		cfg:       cfg,
		store:     store,
		catalog:   catalogClient,
		skinCache: skinCache,
	}, nil
}

// DailySkins implements the Service interface.
func (s *ServiceImpl) DailySkins(
	ctx context.Context,
	client riot.Client,
	language string,
	now time.Time,
) ([]*storage.Skin, error) {
	offers, err := s.dailyOffers(ctx, client, now)
	if err != nil {
		return nil, err
	}

	skins := make([]*storage.Skin, 0, len(offers))

	for _, uuid := range offers {
		skin, resolveErr := s.resolveSkin(ctx, uuid, language)
		if resolveErr != nil {
			return nil, resolveErr
		}

		skins = append(skins, skin)
	}

	return skins, nil
}

// dailyOffers returns the offer uuids for the player's store on the given
// day, fetching from Riot only when no log exists yet.
func (s *ServiceImpl) dailyOffers(ctx context.Context, client riot.Client, now time.Time) ([]string, error) {
	puuid := client.PUUID()
	date := now.Format(skinLogDateLayout)

	skinLog, err := s.store.GetSkinLog(ctx, puuid, date)

	switch {
	case err == nil:
		return skinLog.SkinUUIDs, nil
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to read the skin log: %w", err)
	}

	storefront, err := client.FetchStorefront(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the storefront: %w", err)
	}

	offers := storefront.SkinsPanelLayout.SingleItemOffers

	err = s.store.PutSkinLog(ctx, &storage.SkinLog{
		PUUID:     puuid,
		Date:      date,
		SkinUUIDs: offers,
	})
	if err != nil {
		// The offers are already in hand, so a failed log write only costs
		// an extra storefront fetch on the next call.
		logger.Warnf(ctx, "failed to save the skin log for player %s: %v", puuid, err)
	}

	return offers, nil
}

// resolveSkin turns an offer uuid into a displayable skin, checking the
// in-memory cache, then Redis, then the catalog API.
func (s *ServiceImpl) resolveSkin(ctx context.Context, uuid, language string) (*storage.Skin, error) {
	key := skinCacheKey{uuid: uuid, language: language}

	if skin, ok := s.skinCache.Get(key); ok {
		return skin, nil
	}

	skin, err := s.store.GetSkin(ctx, uuid, language)

	switch {
	case err == nil:
		s.skinCache.Add(key, skin)

		return skin, nil
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to read skin %s from storage: %w", uuid, err)
	}

	level, err := s.catalog.FetchSkinLevel(ctx, uuid, language)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve skin %s: %w", uuid, err)
	}

	skin = &storage.Skin{
		UUID:          uuid,
		Language:      language,
		DisplayName:   level.DisplayName,
		DisplayIcon:   level.DisplayIcon,
		StreamedVideo: level.StreamedVideo,
	}

	if err = s.store.PutSkin(ctx, skin); err != nil {
		logger.Warnf(ctx, "failed to cache skin %s: %v", uuid, err)
	}

	s.skinCache.Add(key, skin)

	return skin, nil
}

// Rank implements the Service interface.
func (s *ServiceImpl) Rank(ctx context.Context, client riot.Client) (string, error) {
	updates, err := client.FetchCompetitiveUpdates(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch competitive updates: %w", err)
	}

	if len(updates.Matches) == 0 {
		return "", riot.ErrNoRecentMatches
	}

	return riot.CompetitiveTierName(updates.Matches[0].TierAfterUpdate)
}
