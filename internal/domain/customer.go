package domain

import "time"

// Customer represents a party holding at least one banking product.
type Customer struct {
	GUID          string    `json:"guid"`
	FirstName     string    `json:"first_name"`
	MiddleNames   *string   `json:"middle_names,omitempty"`
	LastName      string    `json:"last_name"`
	DateOfBirth   string    `json:"date_of_birth"`
	PhoneNumber   string    `json:"phone_number"`
	EmailAddress  *string   `json:"email_address,omitempty"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	IsDeleted     bool      `json:"is_deleted"`
}

// CustomerSummary is the one-level-deep view of a customer embedded in
// account output. It carries no accounts list, so expansion never recurses.
type CustomerSummary struct {
	GUID         string  `json:"guid"`
	FirstName    string  `json:"first_name"`
	MiddleNames  *string `json:"middle_names"`
	LastName     string  `json:"last_name"`
	DateOfBirth  string  `json:"date_of_birth"`
	PhoneNumber  string  `json:"phone_number"`
	EmailAddress *string `json:"email_address"`
	Address      string  `json:"address"`
}

// CustomerOutput is the customer record returned to clients, with its
// linked accounts expanded exactly one level.
type CustomerOutput struct {
	GUID         string           `json:"guid"`
	FirstName    string           `json:"first_name"`
	MiddleNames  *string          `json:"middle_names"`
	LastName     string           `json:"last_name"`
	DateOfBirth  string           `json:"date_of_birth"`
	PhoneNumber  string           `json:"phone_number"`
	EmailAddress *string          `json:"email_address"`
	Address      string           `json:"address"`
	Accounts     []AccountSummary `json:"accounts"`
}
