package marketplace

import (
	"context"

	"github.com/precify/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ListingFees is the fee structure an external platform reports for a
// listing. The fixed fee carries its currency; platforms report it in
// the site's local currency.
type ListingFees struct {
	CommissionPercent decimal.Decimal
	FixedFee          valueobject.Money
}

// FeeProvider fetches the current fee structure for a platform listing.
// Implementations live in the infrastructure layer.
type FeeProvider interface {
	Platform() Platform
	ListingFees(ctx context.Context, listingID string, referencePrice decimal.Decimal) (*ListingFees, error)
}
