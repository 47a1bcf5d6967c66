// Package proxy manages the pool of outbound proxy endpoints used for Riot
// logins. The pool is loaded once at startup from a flat list and split into
// a premium and a standard tier; each login attempt draws a random endpoint
// from the tier matching the user's plan.
package proxy
