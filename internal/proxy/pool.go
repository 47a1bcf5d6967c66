package proxy

import (
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/utils"
)

// Tier is the quality class of an outbound proxy.
// Premium endpoints are reserved for paying users.
type Tier uint8

// Proxy tiers.
const (
	TierStandard Tier = iota
	TierPremium
)

// String returns the human-readable tier name.
func (t Tier) String() string {
	if t == TierPremium {
		return "premium"
	}

	return "standard"
}

// Endpoint is a single outbound proxy with credentials.
// Endpoints are immutable once loaded.
type Endpoint struct {
	Host     string
	Port     string
	Username string
	Password string
}

// URL builds the proxy URL. The same endpoint serves both HTTP and HTTPS traffic.
func (e *Endpoint) URL() *url.URL {
	return &url.URL{
		Scheme: "http",
		User:   url.UserPassword(e.Username, e.Password),
		Host:   e.Host + ":" + e.Port,
	}
}

// Pool holds the two disjoint endpoint pools.
// It is constructed once at startup and read-only afterwards,
// so concurrent selection needs no locking.
type Pool struct {
	premium  []*Endpoint
	standard []*Endpoint
}

// endpointPartsCount is the number of colon-separated fields in a proxy line.
const endpointPartsCount = 4

// Static error definitions for better error handling.
var (
	// ErrNoProxyAvailable indicates that the requested tier has no endpoints.
	ErrNoProxyAvailable = errors.New("no proxy available")
	// ErrMalformedProxyLine indicates that a proxy list line could not be parsed.
	ErrMalformedProxyLine = errors.New("malformed proxy line")
)

// LoadPool reads the flat proxy list from path and splits it into tiers.
// The first premiumShare fraction of the list forms the premium pool and the
// last premiumShare fraction forms the standard pool. With the default share
// of 0.25 the middle half of the list belongs to neither tier; the share is a
// parameter so that policy is decided by configuration, not buried here.
func LoadPool(path string, premiumShare float64) (*Pool, error) {
	lines, err := utils.ReadUniqueLinesFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read proxy list: %w", err)
	}

	endpoints := make([]*Endpoint, 0, len(lines))

	for _, line := range lines {
		endpoint, parseErr := parseEndpoint(line)
		if parseErr != nil {
			return nil, parseErr
		}

		endpoints = append(endpoints, endpoint)
	}

	return NewPool(endpoints, premiumShare), nil
}

// NewPool splits the ordered endpoint list into the premium and standard tiers.
func NewPool(endpoints []*Endpoint, premiumShare float64) *Pool {
	count := len(endpoints)
	cut := int(float64(count) * premiumShare)

	return &Pool{
		premium:  endpoints[:cut],
		standard: endpoints[count-cut:],
	}
}

// Select draws one endpoint uniformly at random from the tier's pool.
// Selection is non-exclusive: the same endpoint may be handed to multiple
// concurrent sessions.
func (p *Pool) Select(tier Tier) (*Endpoint, error) {
	pool := p.standard
	if tier == TierPremium {
		pool = p.premium
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: tier '%s'", ErrNoProxyAvailable, tier)
	}

	//nolint:gosec // Uniform selection, not a security decision.
	return pool[rand.Intn(len(pool))], nil
}

// Size returns the number of endpoints in the tier's pool.
func (p *Pool) Size(tier Tier) int {
	if tier == TierPremium {
		return len(p.premium)
	}

	return len(p.standard)
}

func parseEndpoint(line string) (*Endpoint, error) {
	parts := strings.Split(line, ":")
	if len(parts) != endpointPartsCount {
		return nil, fmt.Errorf("%w: '%s'", ErrMalformedProxyLine, line)
	}

	return &Endpoint{
		Host:     parts[0],
		Port:     parts[1],
		Username: parts[2],
		Password: parts[3],
	}, nil
}
