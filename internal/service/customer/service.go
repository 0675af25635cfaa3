package customer

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"bankingapp/internal/domain"
	custrepo "bankingapp/internal/repository/customer"
	"bankingapp/internal/respond"
	"github.com/google/uuid"
)

const (
	msgCreated   = "Customer record created"
	msgDataFound = "Available customer data returned"
	msgUpdated   = "Customer record updated"
	msgDeleted   = "Customer record deleted"
)

// Service orchestrates customer operations: existence checks, repository
// calls, and envelope construction.
type Service struct {
	repo   custrepo.Repository
	logger *log.Logger
}

// New creates a Service.
func New(repo custrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// CreateInput captures the fields of a create-customer request. Empty GUIDs
// are filled in at creation time.
type CreateInput struct {
	CustomerGUID  string
	FirstName     string
	MiddleNames   *string
	LastName      string
	DateOfBirth   string
	PhoneNumber   string
	EmailAddress  *string
	Address       string
	AccountGUID   string
	AccountName   string
	AccountStatus domain.AccountStatus
}

// Create persists a new customer with exactly one linked account. There is
// no pre-existence check; guid collisions surface as storage errors.
func (s *Service) Create(ctx context.Context, in CreateInput) (*respond.Envelope, error) {
	if in.CustomerGUID == "" {
		in.CustomerGUID = uuid.NewString()
	}
	if in.AccountGUID == "" {
		in.AccountGUID = uuid.NewString()
	}
	if in.AccountStatus == "" {
		in.AccountStatus = domain.AccountStatusActive
	}

	created, err := s.repo.Create(ctx,
		custrepo.NewCustomer{
			GUID:         in.CustomerGUID,
			FirstName:    in.FirstName,
			MiddleNames:  in.MiddleNames,
			LastName:     in.LastName,
			DateOfBirth:  in.DateOfBirth,
			PhoneNumber:  in.PhoneNumber,
			EmailAddress: in.EmailAddress,
			Address:      in.Address,
		},
		custrepo.NewAccount{
			GUID:        in.AccountGUID,
			AccountName: in.AccountName,
			Status:      in.AccountStatus,
		},
	)
	if err != nil {
		return nil, err
	}

	data, err := respond.EncodeRecords(created)
	if err != nil {
		return nil, err
	}
	return &respond.Envelope{
		Success:    respond.SuccessTrue,
		Message:    msgCreated,
		Data:       data,
		StatusCode: http.StatusCreated,
	}, nil
}

// GetAll returns every customer. An empty database yields an empty data
// list, not an error.
func (s *Service) GetAll(ctx context.Context) (*respond.Envelope, error) {
	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := respond.EncodeRecords(customers)
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

// Get returns the customer with the given guid, or a NotFoundError.
func (s *Service) Get(ctx context.Context, guid string) (*respond.Envelope, error) {
	exists, err := s.repo.ExistsByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Entity: "Customer", GUID: guid}
	}

	customers, err := s.repo.GetByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}

	data, err := respond.EncodeRecords(customers)
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

// Update applies a partial patch to the customer with the given guid. The
// existence probe runs first; the repository is never asked to update a
// missing record.
func (s *Service) Update(ctx context.Context, guid string, p custrepo.Patch) (*respond.Envelope, error) {
	exists, err := s.repo.ExistsByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Entity: "Customer", GUID: guid}
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

// Delete hard-deletes the customer with the given guid. A storage failure
// after a passing existence check is absorbed: it is logged and reported as
// a success=false envelope with status 500 instead of an error.
func (s *Service) Delete(ctx context.Context, guid string) (*respond.Envelope, error) {
	exists, err := s.repo.ExistsByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Entity: "Customer", GUID: guid}
	}

	if err := s.repo.Delete(ctx, guid); err != nil {
		s.logger.Printf("customer service: delete guid=%s: %v", guid, err)
		return &respond.Envelope{
			Success:    respond.SuccessFalse,
			Message:    fmt.Sprintf("Customer record not deleted: %s", guid),
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
