package identity

import (
	"context"

	"github.com/precify/backend/internal/domain/shared"
)

// UserRepository defines the persistence contract for users. Usernames
// are the login identifier and unique across tenants, so the username
// lookups are global.
type UserRepository interface {
	shared.TenantRepository[User]
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
