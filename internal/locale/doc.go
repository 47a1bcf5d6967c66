// Package locale provides the localized user-facing message catalog.
package locale
