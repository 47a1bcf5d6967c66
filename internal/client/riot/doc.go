// Package riot implements the Riot web login handshake and the authenticated
// player-data API client built on top of it. A login attempt is an
// AuthSession bound to one proxy endpoint; a successful handshake yields a
// Client carrying the bearer token, the entitlements token and the player's
// stable user id.
package riot
