// Package store resolves a player's daily storefront offers into
// displayable skins and reads competitive rank through an authenticated
// session.
package store
