package riot

import "regexp"

// redirectTokens holds the values extracted from the login redirect URI.
type redirectTokens struct {
	AccessToken string
	IDToken     string
	ExpiresIn   string
}

// tokenPattern matches the token triple embedded in the login redirect URI.
// Token values are letters, digits, '.', '-' and '_'; expires_in is digits.
//
//nolint:gochecknoglobals // Immutable, pre-compiled regex pattern used as a constant.
var tokenPattern = regexp.MustCompile(
	`access_token=((?:[a-zA-Z]|\d|\.|-|_)*).*id_token=((?:[a-zA-Z]|\d|\.|-|_)*).*expires_in=(\d*)`)

// extractRedirectTokens pulls the token triple out of the redirect URI.
// Only the first match is used; any later occurrences in the string are
// ignored. Returns false if the URI does not match at all.
func extractRedirectTokens(uri string) (redirectTokens, bool) {
	match := tokenPattern.FindStringSubmatch(uri)
	if match == nil {
		return redirectTokens{}, false
	}

	return redirectTokens{
		AccessToken: match[1],
		IDToken:     match[2],
		ExpiresIn:   match[3],
	}, true
}
