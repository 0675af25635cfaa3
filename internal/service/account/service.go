package account

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"bankingapp/internal/domain"
	acctrepo "bankingapp/internal/repository/account"
	"bankingapp/internal/respond"
)

const (
	msgDataFound = "Available account data returned"
	msgUpdated   = "Account record updated"
	msgDeleted   = "Account record deleted"
)

// Service orchestrates account operations. Accounts have no standalone
// create path; they are born with their customer.
type Service struct {
	repo   acctrepo.Repository
	logger *log.Logger
}

// New creates a Service.
func New(repo acctrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// GetAll returns every account with its linked customers.
func (s *Service) GetAll(ctx context.Context) (*respond.Envelope, error) {
	accounts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := respond.EncodeRecords(accounts)
	if err != nil {
		return nil, err
	}
	return &respond.Envelope{
		Success:    respond.SuccessTrue,
		Message:    msgDataFound,
		Data:       data,
		StatusCode: http.StatusOK,
	}, nil
}

// Get returns the account with the given guid, or a NotFoundError.
func (s *Service) Get(ctx context.Context, guid string) (*respond.Envelope, error) {
	exists, err := s.repo.ExistsByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Entity: "Account", GUID: guid}
	}

	accounts, err := s.repo.GetByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}

	data, err := respond.EncodeRecords(accounts)
	if err != nil {
		return nil, err
	}
	return &respond.Envelope{
		Success:    respond.SuccessTrue,
		Message:    msgDataFound,
		Data:       data,
		StatusCode: http.StatusOK,
	}, nil
}

// Update applies a partial patch to the account with the given guid.
func (s *Service) Update(ctx context.Context, guid string, p acctrepo.Patch) (*respond.Envelope, error) {
	exists, err := s.repo.ExistsByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Entity: "Account", GUID: guid}
	}

	updated, err := s.repo.Update(ctx, guid, p)
	if err != nil {
		return nil, err
	}

	data, err := respond.EncodeRecords(updated)
	if err != nil {
		return nil, err
	}
	return &respond.Envelope{
		Success:    respond.SuccessTrue,
		Message:    msgUpdated,
		Data:       data,
		StatusCode: http.StatusOK,
	}, nil
}

// Delete hard-deletes the account with the given guid. Storage failures
// after a passing existence check are logged and reported as a
// success=false envelope with status 500.
func (s *Service) Delete(ctx context.Context, guid string) (*respond.Envelope, error) {
	exists, err := s.repo.ExistsByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Entity: "Account", GUID: guid}
	}

	if err := s.repo.Delete(ctx, guid); err != nil {
		s.logger.Printf("account service: delete guid=%s: %v", guid, err)
		return &respond.Envelope{
			Success:    respond.SuccessFalse,
			Message:    fmt.Sprintf("Account record not deleted: %s", guid),
			Data:       []string{},
			StatusCode: http.StatusInternalServerError,
		}, nil
	}

	return &respond.Envelope{
		Success:    respond.SuccessTrue,
		Message:    msgDeleted,
		Data:       []string{},
		StatusCode: http.StatusOK,
	}, nil
}
