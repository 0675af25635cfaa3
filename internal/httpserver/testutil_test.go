package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"bankingapp/internal/domain"
	acctrepo "bankingapp/internal/repository/account"
	custrepo "bankingapp/internal/repository/customer"
	accountsvc "bankingapp/internal/service/account"
	customersvc "bankingapp/internal/service/customer"
	"github.com/gin-gonic/gin"
)

var errTest = errors.New("test failure")

type stubCustomerRepo struct {
	customers []domain.CustomerOutput
	exists    bool
	deleteErr error

	gotCustomer custrepo.NewCustomer
	gotAccount  custrepo.NewAccount
	gotPatch    custrepo.Patch
}

func (s *stubCustomerRepo) GetAll(_ context.Context) ([]domain.CustomerOutput, error) {
	return s.customers, nil
}

func (s *stubCustomerRepo) GetByGUID(_ context.Context, _ string) ([]domain.CustomerOutput, error) {
	return s.customers, nil
}

func (s *stubCustomerRepo) ExistsByGUID(_ context.Context, _ string) (bool, error) {
	return s.exists, nil
}

func (s *stubCustomerRepo) Create(_ context.Context, c custrepo.NewCustomer, a custrepo.NewAccount) ([]domain.CustomerOutput, error) {
	s.gotCustomer = c
	s.gotAccount = a
	return []domain.CustomerOutput{{
		GUID:         c.GUID,
		FirstName:    c.FirstName,
		MiddleNames:  c.MiddleNames,
		LastName:     c.LastName,
		DateOfBirth:  c.DateOfBirth,
		PhoneNumber:  c.PhoneNumber,
		EmailAddress: c.EmailAddress,
		Address:      c.Address,
		Accounts: []domain.AccountSummary{
			{GUID: a.GUID, AccountName: a.AccountName, Status: a.Status},
		},
	}}, nil
}

func (s *stubCustomerRepo) Update(_ context.Context, guid string, p custrepo.Patch) ([]domain.CustomerOutput, error) {
	s.gotPatch = p
	return s.customers, nil
}

func (s *stubCustomerRepo) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

type stubAccountRepo struct {
	accounts  []domain.AccountOutput
	exists    bool
	deleteErr error

	gotPatch acctrepo.Patch
}

func (s *stubAccountRepo) GetAll(_ context.Context) ([]domain.AccountOutput, error) {
	return s.accounts, nil
}

func (s *stubAccountRepo) GetByGUID(_ context.Context, _ string) ([]domain.AccountOutput, error) {
	return s.accounts, nil
}

func (s *stubAccountRepo) ExistsByGUID(_ context.Context, _ string) (bool, error) {
	return s.exists, nil
}

func (s *stubAccountRepo) Update(_ context.Context, _ string, p acctrepo.Patch) ([]domain.AccountOutput, error) {
	s.gotPatch = p
	return s.accounts, nil
}

func (s *stubAccountRepo) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func newTestRouter(t *testing.T, customers custrepo.Repository, accounts acctrepo.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)

	router, err := buildRouter(logger, nil, Deps{
		CustomerSvc: customersvc.New(customers, logger),
		AccountSvc:  accountsvc.New(accounts, logger),
	}, "v1")
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}
