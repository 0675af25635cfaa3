package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankingapp/internal/domain"
	"bankingapp/internal/respond"
)

func TestListAccounts_ExpandsCustomers(t *testing.T) {
	accounts := &stubAccountRepo{accounts: []domain.AccountOutput{{
		GUID:        "254e6eb6-78a5-4481-ac7a-b551de0e1b48",
		AccountName: "Doe FlexAccount",
		Status:      domain.AccountStatusActive,
		Customers: []domain.CustomerSummary{
			{GUID: "bf2a60a6-6322-40b3-88df-79a6631f4996", FirstName: "Joe", LastName: "Bloggs"},
		},
	}}}
	router := newTestRouter(t, &stubCustomerRepo{}, accounts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Message != "Available account data returned" || len(env.Data) != 1 {
		t.Fatalf("unexpected envelope %+v", env)
	}

	var acct domain.AccountOutput
	if err := json.Unmarshal([]byte(env.Data[0]), &acct); err != nil {
		t.Fatalf("decode data element: %v", err)
	}
	if len(acct.Customers) != 1 || acct.Customers[0].GUID != "bf2a60a6-6322-40b3-88df-79a6631f4996" {
		t.Fatalf("unexpected customers %+v", acct.Customers)
	}
}

func TestGetAccount_NotFound(t *testing.T) {
	router := newTestRouter(t, &stubCustomerRepo{}, &stubAccountRepo{exists: false})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/254e6eb6-78a5-4481-ac7a-b551de0e1b48", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Detail != "Account not found: 254e6eb6-78a5-4481-ac7a-b551de0e1b48" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
}

func TestDeleteAccount_Existing(t *testing.T) {
	router := newTestRouter(t, &stubCustomerRepo{}, &stubAccountRepo{exists: true})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/254e6eb6-78a5-4481-ac7a-b551de0e1b48", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Success != "true" || env.Message != "Account record deleted" || len(env.Data) != 0 {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestDeleteAccount_RepositoryFailure(t *testing.T) {
	router := newTestRouter(t, &stubCustomerRepo{}, &stubAccountRepo{exists: true, deleteErr: errTest})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/254e6eb6-78a5-4481-ac7a-b551de0e1b48", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Success != "false" || len(env.Data) != 0 {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestUpdateAccount_PartialPatch(t *testing.T) {
	accounts := &stubAccountRepo{exists: true, accounts: []domain.AccountOutput{{GUID: "x", Customers: []domain.CustomerSummary{}}}}
	router := newTestRouter(t, &stubCustomerRepo{}, accounts)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/accounts/254e6eb6-78a5-4481-ac7a-b551de0e1b48",
		strings.NewReader(`{"status": "Inactive"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if accounts.gotPatch.Status == nil || *accounts.gotPatch.Status != domain.AccountStatusInactive {
		t.Fatalf("status not patched: %+v", accounts.gotPatch)
	}
	if accounts.gotPatch.AccountName != nil {
		t.Fatalf("omitted fields must stay nil: %+v", accounts.gotPatch)
	}
}

func TestUpdateAccount_InvalidStatusRejected(t *testing.T) {
	router := newTestRouter(t, &stubCustomerRepo{}, &stubAccountRepo{exists: true})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/accounts/254e6eb6-78a5-4481-ac7a-b551de0e1b48",
		strings.NewReader(`{"status": "Frozen"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
}

func TestPostAccounts_NoRoute(t *testing.T) {
	router := newTestRouter(t, &stubCustomerRepo{}, &stubAccountRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts",
		strings.NewReader(`{"account_name": "New Account", "status": "Active"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("accounts must not be creatable directly, got status %d", rec.Code)
	}
}
