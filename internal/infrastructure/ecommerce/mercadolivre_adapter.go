package ecommerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/precify/backend/internal/domain/marketplace"
	"github.com/precify/backend/internal/domain/shared/valueobject"
	"github.com/precify/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
)

// maxResponseSize is the maximum allowed response size from the Mercado Livre API (1MB)
const maxResponseSize = 1 * 1024 * 1024

// tokenExpiryMargin renews the OAuth token this long before it actually expires
const tokenExpiryMargin = 60 * time.Second

var (
	// ErrMercadoLivreNotConfigured indicates missing client credentials
	ErrMercadoLivreNotConfigured = errors.New("mercadolivre: client credentials not configured")
	// ErrMercadoLivreInvalidListing indicates an empty or malformed listing ID
	ErrMercadoLivreInvalidListing = errors.New("mercadolivre: invalid listing ID")
	// ErrMercadoLivreListingNotFound indicates the listing does not exist on the platform
	ErrMercadoLivreListingNotFound = errors.New("mercadolivre: listing not found")
	// ErrMercadoLivreUnavailable indicates a transport-level failure
	ErrMercadoLivreUnavailable = errors.New("mercadolivre: platform unavailable")
	// ErrMercadoLivreRequestFailed indicates the platform rejected the request
	ErrMercadoLivreRequestFailed = errors.New("mercadolivre: request failed")
	// ErrMercadoLivreInvalidResponse indicates an unparseable platform response
	ErrMercadoLivreInvalidResponse = errors.New("mercadolivre: invalid response")
)

// MercadoLivreAdapter implements marketplace.FeeProvider against the
// Mercado Livre open API. It authenticates with OAuth client credentials
// and resolves the fee structure of a listing from the site's listing
// price table.
type MercadoLivreAdapter struct {
	cfg        config.MercadoLivreConfig
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewMercadoLivreAdapter creates a new Mercado Livre adapter
func NewMercadoLivreAdapter(cfg config.MercadoLivreConfig) (*MercadoLivreAdapter, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMercadoLivreNotConfigured
	}
	if cfg.BaseURL == "" || cfg.SiteID == "" {
		return nil, fmt.Errorf("%w: base URL and site ID are required", ErrMercadoLivreNotConfigured)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &MercadoLivreAdapter{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Platform returns the platform this adapter serves
func (a *MercadoLivreAdapter) Platform() marketplace.Platform {
	return marketplace.PlatformMercadoLivre
}

// ListingFees fetches the current fee structure for a listing. The
// reference price selects the fee bracket; Mercado Livre charges a
// higher fixed amount below certain price thresholds.
func (a *MercadoLivreAdapter) ListingFees(ctx context.Context, listingID string, referencePrice decimal.Decimal) (*marketplace.ListingFees, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return nil, ErrMercadoLivreInvalidListing
	}
	if !referencePrice.IsPositive() {
		return nil, fmt.Errorf("%w: reference price must be positive", ErrMercadoLivreInvalidListing)
	}

	item, err := a.getItem(ctx, listingID)
	if err != nil {
		return nil, err
	}

	return a.listingPriceFees(ctx, item, referencePrice)
}

// getItem fetches the listing to learn its category and listing type
func (a *MercadoLivreAdapter) getItem(ctx context.Context, listingID string) (*mlItemResponse, error) {
	body, status, err := a.doRequest(ctx, "/items/"+url.PathEscape(listingID), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrMercadoLivreListingNotFound, listingID)
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	var item mlItemResponse
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMercadoLivreInvalidResponse, err)
	}
	if item.ListingTypeID == "" {
		return nil, fmt.Errorf("%w: listing has no listing type", ErrMercadoLivreInvalidResponse)
	}

	return &item, nil
}

// listingPriceFees resolves the fee bracket for the item at the given price
func (a *MercadoLivreAdapter) listingPriceFees(ctx context.Context, item *mlItemResponse, price decimal.Decimal) (*marketplace.ListingFees, error) {
	query := url.Values{}
	query.Set("price", price.String())
	query.Set("listing_type_id", item.ListingTypeID)
	if item.CategoryID != "" {
		query.Set("category_id", item.CategoryID)
	}

	body, status, err := a.doRequest(ctx, "/sites/"+url.PathEscape(a.cfg.SiteID)+"/listing_prices", query)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	var bracket mlListingPriceResponse
	if err := json.Unmarshal(body, &bracket); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMercadoLivreInvalidResponse, err)
	}

	commission, err := parseFeeNumber(bracket.SaleFeeDetails.PercentageFee)
	if err != nil {
		return nil, fmt.Errorf("%w: bad percentage fee: %v", ErrMercadoLivreInvalidResponse, err)
	}
	fixedFee, err := parseFeeNumber(bracket.SaleFeeDetails.FixedFee)
	if err != nil {
		return nil, fmt.Errorf("%w: bad fixed fee: %v", ErrMercadoLivreInvalidResponse, err)
	}

	return &marketplace.ListingFees{
		CommissionPercent: commission,
		FixedFee:          valueobject.NewMoneyBRL(fixedFee),
	}, nil
}

// doRequest performs an authenticated GET against the Mercado Livre API
func (a *MercadoLivreAdapter) doRequest(ctx context.Context, path string, query url.Values) ([]byte, int, error) {
	token, err := a.ensureToken(ctx)
	if err != nil {
		return nil, 0, err
	}

	endpoint := strings.TrimRight(a.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("mercadolivre: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMercadoLivreUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, fmt.Errorf("mercadolivre: failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// ensureToken returns a valid OAuth token, requesting a new one when
// the cached token is absent or about to expire
func (a *MercadoLivreAdapter) ensureToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && time.Now().Before(a.tokenExpiry.Add(-tokenExpiryMargin)) {
		return a.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.cfg.ClientID)
	form.Set("client_secret", a.cfg.ClientSecret)

	endpoint := strings.TrimRight(a.cfg.BaseURL, "/") + "/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("mercadolivre: failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMercadoLivreUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("mercadolivre: failed to read token response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", apiError(resp.StatusCode, body)
	}

	var token mlTokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMercadoLivreInvalidResponse, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrMercadoLivreInvalidResponse)
	}

	a.accessToken = token.AccessToken
	a.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return a.accessToken, nil
}

// apiError converts a platform error payload into a typed error
func apiError(status int, body []byte) error {
	var payload mlErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("%w: HTTP %d: %s", ErrMercadoLivreRequestFailed, status, payload.Message)
	}
	return fmt.Errorf("%w: HTTP %d", ErrMercadoLivreRequestFailed, status)
}

// parseFeeNumber converts a JSON number (or numeric string) to a decimal.
// Absent fields come through as empty and mean zero.
func parseFeeNumber(n json.Number) (decimal.Decimal, error) {
	if n.String() == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}

// Ensure MercadoLivreAdapter implements marketplace.FeeProvider
var _ marketplace.FeeProvider = (*MercadoLivreAdapter)(nil)
