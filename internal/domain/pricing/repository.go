package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/precify/backend/internal/domain/shared"
)

// SettingsRepository defines the persistence contract for pricing settings.
// There is at most one settings record per tenant.
type SettingsRepository interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}

// CustomChargeRepository defines the persistence contract for custom charges
type CustomChargeRepository interface {
	shared.TenantRepository[CustomCharge]
	// FindAllByTenant returns every charge of the tenant without pagination;
	// the quote snapshot needs the complete list.
	FindAllByTenant(ctx context.Context, tenantID uuid.UUID) ([]CustomCharge, error)
}
