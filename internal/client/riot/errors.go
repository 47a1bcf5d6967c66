package riot

import "errors"

var (
	// ErrRateLimited indicates that the auth service throttled the login attempt.
	ErrRateLimited = errors.New("rate limited by auth service")
	// ErrInvalidCredentials indicates rejected credentials. The provider uses
	// the same response shape for several rejection reasons, so an unparseable
	// success-shaped response collapses into this error as well.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrMissingEntitlementsToken indicates the entitlements response carried no token.
	ErrMissingEntitlementsToken = errors.New("entitlements token missing from response")
	// ErrMissingUserID indicates the userinfo response carried no subject.
	ErrMissingUserID = errors.New("user id missing from userinfo response")
	// ErrNoRecentMatches indicates the account has no competitive matches to rank from.
	ErrNoRecentMatches = errors.New("no recent competitive matches")
	// ErrUnknownCompetitiveTier indicates a tier number outside the known table.
	ErrUnknownCompetitiveTier = errors.New("unknown competitive tier")
)
