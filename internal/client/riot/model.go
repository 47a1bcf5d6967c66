package riot

// Credentials is the username/password pair for one Riot account.
type Credentials struct {
	Username string
	Password string
}

// authInitRequest is the body of the authorization-init POST.
type authInitRequest struct {
	ClientID     string `json:"client_id"`
	Nonce        string `json:"nonce"`
	RedirectURI  string `json:"redirect_uri"`
	ResponseType string `json:"response_type"`
}

// loginRequest is the body of the login-submission PUT.
type loginRequest struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the login-submission response. On success the redirect URI
// carrying the tokens is at response.parameters.uri; on rejection only the
// error field is populated.
type loginResponse struct {
	Error    string `json:"error"`
	Response struct {
		Parameters struct {
			URI string `json:"uri"`
		} `json:"parameters"`
	} `json:"response"`
}

// entitlementsResponse is the entitlements token response.
type entitlementsResponse struct {
	EntitlementsToken string `json:"entitlements_token"`
}

// userInfoResponse is the userinfo response. Sub is the stable user id (PUUID).
type userInfoResponse struct {
	Sub string `json:"sub"`
}

// PlayerName is one entry of the name service response.
type PlayerName struct {
	Subject  string `json:"Subject"`
	GameName string `json:"GameName"`
	TagLine  string `json:"TagLine"`
}

// Storefront is the daily store content for one player.
type Storefront struct {
	SkinsPanelLayout SkinsPanelLayout `json:"SkinsPanelLayout"`
}

// SkinsPanelLayout holds the rotating single-item skin offers.
type SkinsPanelLayout struct {
	SingleItemOffers []string `json:"SingleItemOffers"`
}

// CompetitiveUpdates is the recent competitive match history for one player.
type CompetitiveUpdates struct {
	Matches []CompetitiveMatch `json:"Matches"`
}

// CompetitiveMatch is a single entry of the competitive update feed.
type CompetitiveMatch struct {
	TierAfterUpdate int `json:"TierAfterUpdate"`
}
