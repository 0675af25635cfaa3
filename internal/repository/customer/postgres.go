package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"bankingapp/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `guid::text, first_name, middle_names, last_name, to_char(date_of_birth, 'YYYY-MM-DD'), phone_number, email_address, address`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.CustomerOutput, error) {
	q := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		r.logger.Printf("customer repo: scan all: %v", err)
		return nil, err
	}
	if err := r.attachAccounts(ctx, customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresRepo) GetByGUID(ctx context.Context, guid string) ([]domain.CustomerOutput, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE guid = $1`

	rows, err := r.pool.Query(ctx, q, guid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers, err := scanCustomers(rows)
	if err != nil {
		r.logger.Printf("customer repo: scan guid=%s: %v", guid, err)
		return nil, err
	}
	if err := r.attachAccounts(ctx, customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresRepo) ExistsByGUID(ctx context.Context, guid string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM customers WHERE guid = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, q, guid).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts the customer, its single account, and the link row in one
// transaction. Either all three land or none do.
func (r *postgresRepo) Create(ctx context.Context, c NewCustomer, a NewAccount) ([]domain.CustomerOutput, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertCustomer = `
INSERT INTO customers (guid, first_name, middle_names, last_name, date_of_birth, phone_number, email_address, address)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING guid::text, first_name, middle_names, last_name, to_char(date_of_birth, 'YYYY-MM-DD'), phone_number, email_address, address
`
	var out domain.CustomerOutput
	err = tx.QueryRow(ctx, insertCustomer,
		c.GUID, c.FirstName, c.MiddleNames, c.LastName, c.DateOfBirth, c.PhoneNumber, c.EmailAddress, c.Address,
	).Scan(&out.GUID, &out.FirstName, &out.MiddleNames, &out.LastName, &out.DateOfBirth, &out.PhoneNumber, &out.EmailAddress, &out.Address)
	if err != nil {
		return nil, err
	}

	const insertAccount = `
INSERT INTO accounts (guid, account_name, status)
VALUES ($1, $2, $3)
RETURNING guid::text, account_name, status
`
	var acct domain.AccountSummary
	err = tx.QueryRow(ctx, insertAccount, a.GUID, a.AccountName, a.Status).
		Scan(&acct.GUID, &acct.AccountName, &acct.Status)
	if err != nil {
		return nil, err
	}

	const insertLink = `INSERT INTO customer_accounts (customer_guid, account_guid) VALUES ($1, $2)`
	if _, err := tx.Exec(ctx, insertLink, out.GUID, acct.GUID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	out.Accounts = []domain.AccountSummary{acct}
	return []domain.CustomerOutput{out}, nil
}

func (r *postgresRepo) Update(ctx context.Context, guid string, p Patch) ([]domain.CustomerOutput, error) {
	const q = `
UPDATE customers
SET first_name = COALESCE($2, first_name),
    middle_names = COALESCE($3, middle_names),
    last_name = COALESCE($4, last_name),
    phone_number = COALESCE($5, phone_number),
    email_address = COALESCE($6, email_address),
    address = COALESCE($7, address),
    last_updated_at = now()
WHERE guid = $1
RETURNING guid::text, first_name, middle_names, last_name, to_char(date_of_birth, 'YYYY-MM-DD'), phone_number, email_address, address
`
	var out domain.CustomerOutput
	err := r.pool.QueryRow(ctx, q,
		guid, p.FirstName, p.MiddleNames, p.LastName, p.PhoneNumber, p.EmailAddress, p.Address,
	).Scan(&out.GUID, &out.FirstName, &out.MiddleNames, &out.LastName, &out.DateOfBirth, &out.PhoneNumber, &out.EmailAddress, &out.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: update guid=%s: %v", guid, err)
		return nil, err
	}

	customers := []domain.CustomerOutput{out}
	if err := r.attachAccounts(ctx, customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresRepo) Delete(ctx context.Context, guid string) error {
	// Link rows go with the customer via ON DELETE CASCADE.
	_, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE guid = $1`, guid)
	return err
}

// attachAccounts expands each customer's linked accounts one level deep.
func (r *postgresRepo) attachAccounts(ctx context.Context, customers []domain.CustomerOutput) error {
	if len(customers) == 0 {
		return nil
	}

	guids := make([]string, 0, len(customers))
	for _, c := range customers {
		guids = append(guids, c.GUID)
	}

	const q = `
SELECT l.customer_guid::text, a.guid::text, a.account_name, a.status
FROM customer_accounts l
JOIN accounts a ON a.guid = l.account_guid
WHERE l.customer_guid::text = ANY($1)
ORDER BY a.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, guids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byCustomer := make(map[string][]domain.AccountSummary)
	for rows.Next() {
		var customerGUID string
		var a domain.AccountSummary
		if err := rows.Scan(&customerGUID, &a.GUID, &a.AccountName, &a.Status); err != nil {
			r.logger.Printf("customer repo: scan linked account: %v", err)
			return err
		}
		byCustomer[customerGUID] = append(byCustomer[customerGUID], a)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range customers {
		accounts := byCustomer[customers[i].GUID]
		if accounts == nil {
			accounts = []domain.AccountSummary{}
		}
		customers[i].Accounts = accounts
	}
	return nil
}

func scanCustomers(rows pgx.Rows) ([]domain.CustomerOutput, error) {
	result := []domain.CustomerOutput{}
	for rows.Next() {
		var c domain.CustomerOutput
		if err := rows.Scan(&c.GUID, &c.FirstName, &c.MiddleNames, &c.LastName, &c.DateOfBirth, &c.PhoneNumber, &c.EmailAddress, &c.Address); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
