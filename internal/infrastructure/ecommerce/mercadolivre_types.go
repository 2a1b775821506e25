package ecommerce

import "encoding/json"

// mlTokenResponse is the OAuth client-credentials token payload
type mlTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// mlItemResponse is the subset of GET /items/{id} the adapter needs
type mlItemResponse struct {
	ID            string      `json:"id"`
	SiteID        string      `json:"site_id"`
	CategoryID    string      `json:"category_id"`
	ListingTypeID string      `json:"listing_type_id"`
	Price         json.Number `json:"price"`
	Status        string      `json:"status"`
}

// mlSaleFeeDetails breaks the sale fee into its components.
// percentage_fee is the commission over the sale price, fixed_fee the
// flat per-unit amount.
type mlSaleFeeDetails struct {
	PercentageFee json.Number `json:"percentage_fee"`
	FixedFee      json.Number `json:"fixed_fee"`
	GrossAmount   json.Number `json:"gross_amount"`
}

// mlListingPriceResponse is the subset of GET /sites/{site}/listing_prices
// the adapter needs
type mlListingPriceResponse struct {
	ListingTypeID  string           `json:"listing_type_id"`
	SaleFeeAmount  json.Number      `json:"sale_fee_amount"`
	SaleFeeDetails mlSaleFeeDetails `json:"sale_fee_details"`
}

// mlErrorResponse is the error envelope Mercado Livre returns on failures
type mlErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}
