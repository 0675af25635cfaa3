package customer

import (
	"context"

	"bankingapp/internal/domain"
)

// NewCustomer carries the validated fields for a customer insert.
type NewCustomer struct {
	GUID         string
	FirstName    string
	MiddleNames  *string
	LastName     string
	DateOfBirth  string
	PhoneNumber  string
	EmailAddress *string
	Address      string
}

// NewAccount carries the fields for the account created alongside a
// customer. Customers are never created without one.
type NewAccount struct {
	GUID        string
	AccountName string
	Status      domain.AccountStatus
}

// Patch holds the fields of a partial customer update. Nil fields are left
// untouched.
type Patch struct {
	FirstName    *string
	MiddleNames  *string
	LastName     *string
	PhoneNumber  *string
	EmailAddress *string
	Address      *string
}

// Repository persists and fetches customers together with their linked
// accounts.
type Repository interface {
	GetAll(ctx context.Context) ([]domain.CustomerOutput, error)
	GetByGUID(ctx context.Context, guid string) ([]domain.CustomerOutput, error)
	ExistsByGUID(ctx context.Context, guid string) (bool, error)
	Create(ctx context.Context, c NewCustomer, a NewAccount) ([]domain.CustomerOutput, error)
	Update(ctx context.Context, guid string, p Patch) ([]domain.CustomerOutput, error)
	Delete(ctx context.Context, guid string) error
}
