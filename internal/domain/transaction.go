package domain

import "time"

// CurrencyCode enumerates supported transaction currencies.
type CurrencyCode string

const (
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyUSD CurrencyCode = "USD"
)

// TransactionType categorises a transaction.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "Credit"
	TransactionTypeDebit  TransactionType = "Debit"
)

// TransactionStatus tracks a transaction's progress towards completion.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusDeclined  TransactionStatus = "Declined"
	TransactionStatusCancelled TransactionStatus = "Cancelled"
)

// Transaction captures financial activity between two accounts. It is
// persisted but has no API surface yet; no endpoint reads or writes it.
type Transaction struct {
	GUID            string            `json:"guid"`
	TransactionType TransactionType   `json:"transaction_type"`
	CreditorAccount string            `json:"creditor_account"`
	DebtorAccount   string            `json:"debtor_account"`
	Amount          int64             `json:"amount"`
	Currency        CurrencyCode      `json:"currency"`
	TransactionDate time.Time         `json:"transaction_date"`
	Status          TransactionStatus `json:"transaction_status"`
	CreatedAt       time.Time         `json:"created_at"`
	LastUpdatedAt   time.Time         `json:"last_updated_at"`
	IsDeleted       bool              `json:"is_deleted"`
}
