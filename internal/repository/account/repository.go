package account

import (
	"context"

	"bankingapp/internal/domain"
)

// Patch holds the fields of a partial account update. Nil fields are left
// untouched.
type Patch struct {
	AccountName *string
	Status      *domain.AccountStatus
}

// Repository fetches and mutates accounts. There is no Create: accounts come
// into existence only through the customer creation flow.
type Repository interface {
	GetAll(ctx context.Context) ([]domain.AccountOutput, error)
	GetByGUID(ctx context.Context, guid string) ([]domain.AccountOutput, error)
	ExistsByGUID(ctx context.Context, guid string) (bool, error)
	Update(ctx context.Context, guid string, p Patch) ([]domain.AccountOutput, error)
	Delete(ctx context.Context, guid string) error
}
