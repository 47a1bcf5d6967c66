package storage

import (
	"fmt"
	"time"
)

// Identity field names used in refresh signals.
const (
	// FieldPUUID is the stable user id field.
	FieldPUUID = "puuid"
	// FieldGameName is the display name field.
	FieldGameName = "game_name"
)

// ProfileRefreshRequiredError signals that a lazily-populated identity field
// has not been learned yet. It is an expected, recoverable-by-retry signal:
// the caller is supposed to run a login for the account and read again.
// Downstream code must never see a placeholder value instead.
type ProfileRefreshRequiredError struct {
	// Field is the identity field that needs refreshing.
	Field string
	// AccountID identifies the account whose profile is incomplete.
	AccountID string
}

// Error implements the error interface.
func (e *ProfileRefreshRequiredError) Error() string {
	return fmt.Sprintf("profile refresh required: field '%s' of account '%s' is not known yet",
		e.Field, e.AccountID)
}

// Account is one stored Riot account. The identity fields puuid and
// game_name start unknown and are populated as a side effect of logins;
// read them through PUUID and GameName, which raise the refresh signal
// while the value is missing.
type Account struct {
	// ID is the internal account record id.
	ID string `json:"id"`
	// UserID is the owning user's id.
	UserID string `json:"user_id"`
	// Username is the Riot login name.
	Username string `json:"username"`
	// Password is the Riot login password.
	Password string `json:"password"`
	// Region is the Riot shard this account plays on.
	Region string `json:"region"`
	// Invalid marks accounts whose credentials are known to be rejected.
	Invalid bool `json:"invalid,omitempty"`
	// RawPUUID is the stored stable user id. Empty means not learned yet.
	RawPUUID string `json:"puuid,omitempty"`
	// RawGameName is the stored display name. Empty means not learned yet.
	RawGameName string `json:"game_name,omitempty"`
}

// PUUID returns the stable user id, or a ProfileRefreshRequiredError while
// it has not been learned.
func (a *Account) PUUID() (string, error) {
	if a.RawPUUID == "" {
		return "", &ProfileRefreshRequiredError{Field: FieldPUUID, AccountID: a.ID}
	}

	return a.RawPUUID, nil
}

// SetPUUID records the stable user id. The id is immutable once learned,
// so later calls with a different value are ignored.
func (a *Account) SetPUUID(puuid string) {
	if a.RawPUUID == "" {
		a.RawPUUID = puuid
	}
}

// GameName returns the display name, or a ProfileRefreshRequiredError while
// it has not been learned.
func (a *Account) GameName() (string, error) {
	if a.RawGameName == "" {
		return "", &ProfileRefreshRequiredError{Field: FieldGameName, AccountID: a.ID}
	}

	return a.RawGameName, nil
}

// SetGameName records the display name. Unlike the puuid, the name may be
// refreshed again later: players can rename themselves.
func (a *Account) SetGameName(gameName string) {
	a.RawGameName = gameName
}

// User is one stored end user of the checker.
type User struct {
	// ID is the user's id.
	ID string `json:"id"`
	// Language selects the message catalog language (e.g. "ja-JP", "en-US").
	Language string `json:"language"`
	// Premium marks a paid plan. Only effective while PremiumUntil has not passed.
	Premium bool `json:"premium,omitempty"`
	// PremiumUntil is the paid plan's expiry.
	PremiumUntil time.Time `json:"premium_until,omitzero"`
	// AccountIDs lists the user's registered account record ids.
	AccountIDs []string `json:"account_ids,omitempty"`
	// NotifyTimezone is the IANA timezone for daily store notifications.
	// Empty disables notifications for this user.
	NotifyTimezone string `json:"notify_timezone,omitempty"`
	// NotifyHour is the local hour (0-23) at which to notify.
	NotifyHour int `json:"notify_hour,omitempty"`
	// NotifySent guards against double delivery within the notify hour.
	// It is set on delivery and cleared once the hour has passed.
	NotifySent bool `json:"notify_sent,omitempty"`
	// NotifyAccountID is the account whose store is delivered.
	NotifyAccountID string `json:"notify_account_id,omitempty"`
}

// IsPremium reports whether the user's paid plan is active at the given time.
func (u *User) IsPremium(now time.Time) bool {
	return u.Premium && !u.PremiumUntil.Before(now)
}

// Skin is a cached catalog entry for one weapon skin level, localized per
// language.
type Skin struct {
	// UUID is the skin level uuid from the storefront offer.
	UUID string `json:"uuid"`
	// Language is the catalog language this entry was fetched for.
	Language string `json:"language"`
	// DisplayName is the localized skin name.
	DisplayName string `json:"display_name"`
	// DisplayIcon is the icon URL.
	DisplayIcon string `json:"display_icon"`
	// StreamedVideo is the preview video URL, if any.
	StreamedVideo string `json:"streamed_video,omitempty"`
}

// SkinLog records the skin offers seen for one player on one day.
type SkinLog struct {
	// PUUID is the player's stable user id.
	PUUID string `json:"puuid"`
	// Date is the day the offers were fetched, formatted as 2006-01-02.
	Date string `json:"date"`
	// SkinUUIDs are the day's single-item offer uuids.
	SkinUUIDs []string `json:"skin_uuids"`
}
