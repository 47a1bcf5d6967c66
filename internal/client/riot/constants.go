package riot

const (
	// riotAuthorizationURI is the URI path for the authorization endpoint.
	// The same path serves both the init POST and the login PUT.
	riotAuthorizationURI = "api/v1/authorization"
	// riotEntitlementsURI is the URI path for the entitlements token endpoint.
	riotEntitlementsURI = "api/token/v1"
	// riotUserInfoURI is the URI path for the user info endpoint.
	riotUserInfoURI = "userinfo"
	// riotPlayerNamesURI is the URI path for the name service endpoint.
	riotPlayerNamesURI = "name-service/v2/players"
	// riotStorefrontURI is the URI path prefix for the storefront endpoint.
	riotStorefrontURI = "store/v2/storefront"
	// riotCompetitiveUpdatesURI is the URI path prefix for the competitive updates endpoint.
	riotCompetitiveUpdatesURI = "mmr/player"
)

const (
	// authClientID identifies the web player client to the auth service.
	authClientID = "play-valorant-web-prod"
	// authRedirectURI is the redirect target registered for the web client.
	authRedirectURI = "https://playvalorant.com/opt_in"
	// authResponseType requests both tokens in the redirect fragment.
	authResponseType = "token id_token"
	// authNonce is the fixed nonce sent with the authorization init request.
	authNonce = "1"

	// loginErrorRateLimited is the provider's error code for throttled logins.
	loginErrorRateLimited = "rate_limited"
	// loginErrorAuthFailure is the provider's error code for rejected credentials.
	loginErrorAuthFailure = "auth_failure"
)

// Session header names expected by the player-data API.
const (
	headerAuthorization   = "Authorization"
	headerEntitlementsJWT = "X-Riot-Entitlements-JWT"
	headerClientPlatform  = "X-Riot-ClientPlatform"
	bearerTokenPrefix     = "Bearer "
	contentTypeHeader     = "Content-Type"
	contentTypeJSON       = "application/json"
)

// clientPlatform is the static platform descriptor the player-data API
// requires. The provider validates this value verbatim, so it must be
// reproduced byte-for-byte.
//
//nolint:lll // Opaque base64 blob defined by the provider.
const clientPlatform = "ew0KCSJwbGF0Zm9ybVR5cGUiOiAiUEMiLA0KCSJwbGF0Zm9ybU9TIjogIldpbmRvd3MiLA0KCSJwbGF0Zm9ybU9TVmVyc2lvbiI6ICIxMC4wLjE5MDQyLjEuMjU2LjY0Yml0IiwNCgkicGxhdGZvcm1DaGlwc2V0IjogIlVua25vd24iDQp9"

// competitiveTierNames maps a competitive tier number to its display name.
//
//nolint:gochecknoglobals // This is an immutable table used as a constant.
var competitiveTierNames = []string{
	"UNRANKED", "Unused1", "Unused2",
	"IRON 1", "IRON 2", "IRON 3",
	"BRONZE 1", "BRONZE 2", "BRONZE 3",
	"SILVER 1", "SILVER 2", "SILVER 3",
	"GOLD 1", "GOLD 2", "GOLD 3",
	"PLATINUM 1", "PLATINUM 2", "PLATINUM 3",
	"DIAMOND 1", "DIAMOND 2", "DIAMOND 3",
	"IMMORTAL 1", "IMMORTAL 2", "IMMORTAL 3",
	"RADIANT",
}
