// Package notify delivers each subscribed user's daily store content at
// their configured local hour.
package notify
