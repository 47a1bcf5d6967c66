// Package login orchestrates Riot logins: it picks a proxy for the caller's
// plan, runs the handshake off the caller's goroutine, classifies failures
// into user-facing outcomes, and seeds account identity fields on success.
package login
