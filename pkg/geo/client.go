package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"time"
)

// Defaults for a missing response field.
const (
	UnknownCountry  = "Unknown"
	UnknownCode     = "XX"
	UnknownCity     = "Unknown"
	DefaultTimezone = "UTC"

	DefaultEndpoint = "https://ipapi.co/{ip}/json/"
)

// Config holds lookup settings, parsed with caarlos0/env.
type Config struct {
	Endpoint string        `env:"GEO_ENDPOINT" envDefault:"https://ipapi.co/{ip}/json/"`
	Timeout  time.Duration `env:"GEO_TIMEOUT" envDefault:"5s"`
	CacheTTL time.Duration `env:"GEO_CACHE_TTL" envDefault:"24h"`
}

// Client resolves IPs through an ipapi.co compatible endpoint.
type Client struct {
	http     *http.Client
	endpoint string
}

// NewClient creates a Client. The endpoint's "{ip}" placeholder is
// replaced with the address being looked up.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{http: httpClient, endpoint: endpoint}
}

type ipapiResponse struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	CountryName string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Timezone    string  `json:"timezone"`
	Reason      string  `json:"reason"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Error       bool    `json:"error"`
}

// Lookup resolves ip. Private, loopback and link-local addresses return
// ErrPrivateIP without a network call.
func (c *Client) Lookup(ctx context.Context, ip string) (*Location, error) {
	addr, err := PublicAddr(ip)
	if err != nil {
		return nil, err
	}

	url := strings.ReplaceAll(c.endpoint, "{ip}", addr.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "folio/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var body ipapiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}
	if body.Error {
		return nil, fmt.Errorf("%w: %s", ErrLookupFailed, body.Reason)
	}

	return &Location{
		IP:          addr.String(),
		City:        orDefault(body.City, UnknownCity),
		Country:     orDefault(body.CountryName, UnknownCountry),
		CountryCode: orDefault(strings.ToUpper(body.CountryCode), UnknownCode),
		Timezone:    orDefault(body.Timezone, DefaultTimezone),
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
	}, nil
}

// PublicAddr parses ip and rejects addresses that cannot be geolocated.
func PublicAddr(ip string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return netip.Addr{}, errors.Join(ErrInvalidIP, err)
	}
	addr = addr.Unmap()
	if addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() ||
		addr.IsUnspecified() || addr.IsMulticast() {
		return netip.Addr{}, ErrPrivateIP
	}
	return addr, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
