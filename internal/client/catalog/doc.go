// Package catalog reads the public game-content catalog used to resolve
// storefront offer uuids into displayable weapon skins.
package catalog
