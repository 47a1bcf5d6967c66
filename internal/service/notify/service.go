package notify

import (
	"context"
	"strings"
	"time"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/locale"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/service/login"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/service/store"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/storage"
)

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go -package=mocks

// Messenger delivers a notification text to a user. Implementations adapt
// whatever chat surface the bot runs on.
type Messenger interface {
	Send(ctx context.Context, userID, text string) error
}

// Service periodically delivers each subscribed user's daily store.
type Service interface {
	// Run sweeps subscribed users at the configured interval until the
	// context is canceled.
	Run(ctx context.Context) error
	// Sweep delivers to every user whose local hour matches their
	// configured notify hour and resets delivery flags once it has passed.
	Sweep(ctx context.Context, now time.Time)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	cfg          *config.Config
	store        storage.Store
	loginService login.Service
	storeService store.Service
	messages     *locale.Catalog
	messenger    Messenger
}

// NewService creates a notify service.
func NewService(
	cfg *config.Config,
	storageStore storage.Store,
	loginService login.Service,
	storeService store.Service,
	messages *locale.Catalog,
	messenger Messenger,
) *ServiceImpl {
	return &ServiceImpl{
		cfg:          cfg,
		store:        storageStore,
		loginService: loginService,
		storeService: storeService,
		messages:     messages,
		messenger:    messenger,
	}
}

// Run implements the Service interface.
func (s *ServiceImpl) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.ParsedNotifyPollInterval)
	defer ticker.Stop()

	logger.Infof(ctx, "store notifications are running, sweeping every %s", s.cfg.ParsedNotifyPollInterval)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Sweep(ctx, now)
		}
	}
}

// Sweep implements the Service interface.
func (s *ServiceImpl) Sweep(ctx context.Context, now time.Time) {
	users, err := s.store.ListNotifyUsers(ctx)
	if err != nil {
		logger.Errorf(ctx, "failed to list subscribed users: %v", err)

		return
	}

	for _, user := range users {
		s.sweepUser(ctx, user, now)
	}
}

// sweepUser delivers to one user when their hour has arrived and rearms the
// delivery flag once it has passed. The flag makes delivery at-most-once per
// day even though sweeps run many times per hour.
func (s *ServiceImpl) sweepUser(ctx context.Context, user *storage.User, now time.Time) {
	location, err := time.LoadLocation(user.NotifyTimezone)
	if err != nil {
		logger.Errorf(ctx, "user %s has a broken timezone %q: %v", user.ID, user.NotifyTimezone, err)

		return
	}

	inHour := now.In(location).Hour() == user.NotifyHour

	switch {
	case inHour && !user.NotifySent:
		s.deliver(ctx, user, now)

		user.NotifySent = true
	case !inHour && user.NotifySent:
		user.NotifySent = false
	default:
		return
	}

	if err = s.store.PutUser(ctx, user); err != nil {
		logger.Errorf(ctx, "failed to save user %s after a sweep: %v", user.ID, err)
	}
}

// deliver logs the user's notify account in and sends today's store.
// Failures are sent to the user as localized messages, not retried.
func (s *ServiceImpl) deliver(ctx context.Context, user *storage.User, now time.Time) {
	account, err := s.store.GetAccount(ctx, user.NotifyAccountID)
	if err != nil {
		logger.Errorf(ctx, "failed to load notify account %s of user %s: %v", user.NotifyAccountID, user.ID, err)
		s.send(ctx, user, s.messages.Text(user.Language, locale.KeyLoginUnknownError))

		return
	}

	client, outcome := s.loginService.Login(ctx, account, login.TierForUser(user, now))

	switch outcome {
	case login.OutcomeSuccess:
	case login.OutcomeRateLimited:
		s.send(ctx, user, s.messages.Text(user.Language, locale.KeyLoginRateLimited))

		return
	case login.OutcomeInvalidCredentials:
		s.send(ctx, user, s.messages.Text(user.Language, locale.KeyLoginInvalidCredential))

		return
	default:
		s.send(ctx, user, s.messages.Text(user.Language, locale.KeyLoginUnknownError))

		return
	}

	skins, err := s.storeService.DailySkins(ctx, client, user.Language, now)
	if err != nil {
		logger.Errorf(ctx, "failed to fetch the daily store of user %s: %v", user.ID, err)
		s.send(ctx, user, s.messages.Text(user.Language, locale.KeyLoginUnknownError))

		return
	}

	s.send(ctx, user, s.composeStoreMessage(user.Language, skins))
}

// composeStoreMessage renders the daily offers as one message.
func (s *ServiceImpl) composeStoreMessage(language string, skins []*storage.Skin) string {
	var builder strings.Builder

	builder.WriteString(s.messages.Text(language, locale.KeyStoreToday))

	for _, skin := range skins {
		builder.WriteString("\n\n")
		builder.WriteString(skin.DisplayName)

		if skin.DisplayIcon != "" {
			builder.WriteString("\n")
			builder.WriteString(skin.DisplayIcon)
		}

		if skin.StreamedVideo != "" {
			builder.WriteString("\n")
			builder.WriteString(skin.StreamedVideo)
			builder.WriteString("\n")
			builder.WriteString(s.messages.Text(language, locale.KeyStoreVideoHint))
		}
	}

	return builder.String()
}

func (s *ServiceImpl) send(ctx context.Context, user *storage.User, text string) {
	if err := s.messenger.Send(ctx, user.ID, text); err != nil {
		logger.Errorf(ctx, "failed to message user %s: %v", user.ID, err)
	}
}
