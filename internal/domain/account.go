package domain

import "time"

// AccountStatus enumerates the states a bank account can be in.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "Active"
	AccountStatusInactive AccountStatus = "Inactive"
)

// Valid reports whether the status is one of the known values.
func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusInactive
}

// Account represents a bank account.
type Account struct {
	GUID          string        `json:"guid"`
	AccountName   string        `json:"account_name"`
	Status        AccountStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	LastUpdatedAt time.Time     `json:"last_updated_at"`
	IsDeleted     bool          `json:"is_deleted"`
}

// AccountSummary is the one-level-deep view of an account embedded in
// customer output.
type AccountSummary struct {
	GUID        string        `json:"guid"`
	AccountName string        `json:"account_name"`
	Status      AccountStatus `json:"status"`
}

// AccountOutput is the account record returned to clients, with its
// linked customers expanded exactly one level.
type AccountOutput struct {
	GUID        string            `json:"guid"`
	AccountName string            `json:"account_name"`
	Status      AccountStatus     `json:"status"`
	Customers   []CustomerSummary `json:"customers"`
}

// CustomerAccountLink is one row of the customer/account join table,
// keyed by the (customer, account) pair.
type CustomerAccountLink struct {
	CustomerGUID  string    `json:"customer_guid"`
	AccountGUID   string    `json:"account_guid"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	IsDeleted     bool      `json:"is_deleted"`
}
