package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
)

// Store is the key-value persistence boundary for users, accounts and the
// skin catalog cache. Access is synchronous, last write wins per record.
type Store interface {
	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, id string) (*User, error)
	// PutUser stores a user record.
	PutUser(ctx context.Context, user *User) error
	// DeleteUser removes a user record.
	DeleteUser(ctx context.Context, id string) error
	// ListNotifyUsers returns every user with a notify timezone configured.
	ListNotifyUsers(ctx context.Context) ([]*User, error)
	// GetAccount retrieves an account by id.
	GetAccount(ctx context.Context, id string) (*Account, error)
	// PutAccount stores an account record.
	PutAccount(ctx context.Context, account *Account) error
	// DeleteAccount removes an account record.
	DeleteAccount(ctx context.Context, id string) error
	// GetSkin retrieves a cached catalog entry for the uuid and language.
	GetSkin(ctx context.Context, uuid, language string) (*Skin, error)
	// PutSkin stores a catalog entry.
	PutSkin(ctx context.Context, skin *Skin) error
	// GetSkinLog retrieves the skin log for a player and day.
	GetSkinLog(ctx context.Context, puuid, date string) (*SkinLog, error)
	// PutSkinLog stores a skin log entry.
	PutSkinLog(ctx context.Context, log *SkinLog) error
}

// RedisStore implements Store on a Redis instance.
type RedisStore struct {
	client *redis.Client
}

// Key prefixes for the stored record kinds.
const (
	userKeyPrefix    = "user:"
	accountKeyPrefix = "account:"
	skinKeyPrefix    = "skin:"
	skinLogKeyPrefix = "skinlog:"

	// notifyUsersKey is the set of user ids with notifications configured.
	notifyUsersKey = "notify_users"
)

// ErrNotFound indicates that no record exists under the requested key.
var ErrNotFound = errors.New("record not found")

// NewRedisStore connects to the configured Redis instance.
func NewRedisStore(cfg *config.Config) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisStore{client: client}
}

// NewRedisStoreWithClient wraps an existing Redis client. Used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping verifies the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// GetUser retrieves a user by id.
func (s *RedisStore) GetUser(ctx context.Context, id string) (*User, error) {
	return getJSON[User](s, ctx, userKeyPrefix+id)
}

// PutUser stores a user record and keeps the notify index in sync.
func (s *RedisStore) PutUser(ctx context.Context, user *User) error {
	if err := putJSON(s, ctx, userKeyPrefix+user.ID, user); err != nil {
		return err
	}

	if user.NotifyTimezone != "" {
		return s.client.SAdd(ctx, notifyUsersKey, user.ID).Err()
	}

	return s.client.SRem(ctx, notifyUsersKey, user.ID).Err()
}

// DeleteUser removes a user record.
func (s *RedisStore) DeleteUser(ctx context.Context, id string) error {
	if err := s.client.SRem(ctx, notifyUsersKey, id).Err(); err != nil {
		return err
	}

	return s.client.Del(ctx, userKeyPrefix+id).Err()
}

// ListNotifyUsers returns every user with a notify timezone configured.
func (s *RedisStore) ListNotifyUsers(ctx context.Context) ([]*User, error) {
	ids, err := s.client.SMembers(ctx, notifyUsersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notify users: %w", err)
	}

	users := make([]*User, 0, len(ids))

	for _, id := range ids {
		user, getErr := s.GetUser(ctx, id)
		if getErr != nil {
			// A dangling index entry is not fatal; skip it.
			if errors.Is(getErr, ErrNotFound) {
				continue
			}

			return nil, getErr
		}

		users = append(users, user)
	}

	return users, nil
}

// GetAccount retrieves an account by id.
func (s *RedisStore) GetAccount(ctx context.Context, id string) (*Account, error) {
	return getJSON[Account](s, ctx, accountKeyPrefix+id)
}

// PutAccount stores an account record.
func (s *RedisStore) PutAccount(ctx context.Context, account *Account) error {
	return putJSON(s, ctx, accountKeyPrefix+account.ID, account)
}

// DeleteAccount removes an account record.
func (s *RedisStore) DeleteAccount(ctx context.Context, id string) error {
	return s.client.Del(ctx, accountKeyPrefix+id).Err()
}

// GetSkin retrieves a cached catalog entry for the uuid and language.
func (s *RedisStore) GetSkin(ctx context.Context, uuid, language string) (*Skin, error) {
	return getJSON[Skin](s, ctx, skinKeyPrefix+uuid+":"+language)
}

// PutSkin stores a catalog entry.
func (s *RedisStore) PutSkin(ctx context.Context, skin *Skin) error {
	return putJSON(s, ctx, skinKeyPrefix+skin.UUID+":"+skin.Language, skin)
}

// GetSkinLog retrieves the skin log for a player and day.
func (s *RedisStore) GetSkinLog(ctx context.Context, puuid, date string) (*SkinLog, error) {
	return getJSON[SkinLog](s, ctx, skinLogKeyPrefix+puuid+":"+date)
}

// PutSkinLog stores a skin log entry.
func (s *RedisStore) PutSkinLog(ctx context.Context, log *SkinLog) error {
	return putJSON(s, ctx, skinLogKeyPrefix+log.PUUID+":"+log.Date, log)
}

//nolint:revive // Free function because Go doesn't allow struct methods to be generic.
func getJSON[T any](s *RedisStore, ctx context.Context, key string) (*T, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}

		return nil, fmt.Errorf("failed to read '%s': %w", key, err)
	}

	var record T
	if err = json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to decode '%s': %w", key, err)
	}

	return &record, nil
}

//nolint:revive // Free function because Go doesn't allow struct methods to be generic.
func putJSON(s *RedisStore, ctx context.Context, key string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode '%s': %w", key, err)
	}

	if err = s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write '%s': %w", key, err)
	}

	return nil
}
