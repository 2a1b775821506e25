package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract shared by every aggregate.
// Save is an upsert keyed on the aggregate ID.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter Filter) (int64, error)
}

// TenantRepository adds tenant-scoped lookups. Application services use
// only the ForTenant variants; the unscoped reads exist for system-level
// work such as the fee sync scheduler.
type TenantRepository[T any] interface {
	Repository[T]
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter Filter) ([]T, error)
}

// Filter carries pagination, ordering and search for list queries.
// OrderBy is validated against a per-repository whitelist before it
// reaches SQL; Filters holds field-specific equality matches.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}
