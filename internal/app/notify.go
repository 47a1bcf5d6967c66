package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/locale"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/service/notify"
)

var (
	// ErrUnknownTimezone indicates that the timezone is not a known IANA name.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrInvalidNotifyHour indicates that the notification hour is outside 0-23.
	ErrInvalidNotifyHour = errors.New("notification hour must be between 0 and 23")
)

// validateNotifySubscription rejects broken subscription input up front so
// a bad timezone or hour never reaches the stored user record. Without it
// the mistake would only surface as a per-sweep error in the delivery loop.
func validateNotifySubscription(timezone string, hour int) error {
	// LoadLocation reads "" as UTC, but an empty timezone means
	// "not subscribed" in the user record, so reject it explicitly.
	if timezone == "" {
		return fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}

	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}

	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w, got %d", ErrInvalidNotifyHour, hour)
	}

	return nil
}

// logMessenger writes notifications to the application log. Chat-platform
// adapters replace it when the bot fronts a real messenger.
type logMessenger struct{}

func (logMessenger) Send(ctx context.Context, userID, text string) error {
	logger.Infof(ctx, "Notification for user %s:\n%s", userID, text)

	return nil
}

// ExecuteNotifySubscribeCommand subscribes a user to daily store
// notifications at the given local hour.
func ExecuteNotifySubscribeCommand(
	ctx context.Context,
	cfg *config.Config,
	userID, accountID, timezone string,
	hour int,
) {
	if err := validateNotifySubscription(timezone, hour); err != nil {
		logger.Fatalf(ctx, "Invalid subscription: %v", err)
		return
	}

	components, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
		return
	}

	defer components.close()

	user, err := components.store.GetUser(ctx, userID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load user %s: %v", userID, err)
		return
	}

	account, err := components.resolveAccount(ctx, user, accountID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load an account of user %s: %v", userID, err)
		return
	}

	user.NotifyTimezone = timezone
	user.NotifyHour = hour
	user.NotifySent = false
	user.NotifyAccountID = account.ID

	if err = components.store.PutUser(ctx, user); err != nil {
		logger.Fatalf(ctx, "Failed to save user %s: %v", user.ID, err)
		return
	}

	logger.Infof(ctx, "User %s will get the store of account %s daily at %02d:00 (%s)",
		user.ID, account.ID, hour, timezone)
}

// ExecuteNotifyRunCommand runs the notification loop until the context is
// canceled.
func ExecuteNotifyRunCommand(ctx context.Context, cfg *config.Config) {
	components, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize: %v", err)
		return
	}

	defer components.close()

	messages, err := locale.LoadCatalog(cfg.MessagesPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load the message catalog: %v", err)
		return
	}

	service := notify.NewService(
		cfg,
		components.store,
		components.loginService,
		components.storeService,
		messages,
		logMessenger{})

	if err = service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(ctx, "The notification loop stopped: %v", err)
	}
}
