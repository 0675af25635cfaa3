package account

import (
	"context"
	"errors"
	"io"
	"log"

	"bankingapp/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.AccountOutput, error) {
	const q = `SELECT guid::text, account_name, status FROM accounts ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts, err := scanAccounts(rows)
	if err != nil {
		r.logger.Printf("account repo: scan all: %v", err)
		return nil, err
	}
	if err := r.attachCustomers(ctx, accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *postgresRepo) GetByGUID(ctx context.Context, guid string) ([]domain.AccountOutput, error) {
	const q = `SELECT guid::text, account_name, status FROM accounts WHERE guid = $1`

	rows, err := r.pool.Query(ctx, q, guid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts, err := scanAccounts(rows)
	if err != nil {
		r.logger.Printf("account repo: scan guid=%s: %v", guid, err)
		return nil, err
	}
	if err := r.attachCustomers(ctx, accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *postgresRepo) ExistsByGUID(ctx context.Context, guid string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM accounts WHERE guid = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, q, guid).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresRepo) Update(ctx context.Context, guid string, p Patch) ([]domain.AccountOutput, error) {
	const q = `
UPDATE accounts
SET account_name = COALESCE($2, account_name),
    status = COALESCE($3, status),
    last_updated_at = now()
WHERE guid = $1
RETURNING guid::text, account_name, status
`
	var out domain.AccountOutput
	err := r.pool.QueryRow(ctx, q, guid, p.AccountName, p.Status).
		Scan(&out.GUID, &out.AccountName, &out.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("account repo: update guid=%s: %v", guid, err)
		return nil, err
	}

	accounts := []domain.AccountOutput{out}
	if err := r.attachCustomers(ctx, accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *postgresRepo) Delete(ctx context.Context, guid string) error {
	// Link rows go with the account via ON DELETE CASCADE.
	_, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE guid = $1`, guid)
	return err
}

// attachCustomers expands each account's linked customers one level deep.
func (r *postgresRepo) attachCustomers(ctx context.Context, accounts []domain.AccountOutput) error {
	if len(accounts) == 0 {
		return nil
	}

	guids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		guids = append(guids, a.GUID)
	}

	const q = `
SELECT l.account_guid::text, c.guid::text, c.first_name, c.middle_names, c.last_name,
       to_char(c.date_of_birth, 'YYYY-MM-DD'), c.phone_number, c.email_address, c.address
FROM customer_accounts l
JOIN customers c ON c.guid = l.customer_guid
WHERE l.account_guid::text = ANY($1)
ORDER BY c.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, guids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byAccount := make(map[string][]domain.CustomerSummary)
	for rows.Next() {
		var accountGUID string
		var c domain.CustomerSummary
		if err := rows.Scan(&accountGUID, &c.GUID, &c.FirstName, &c.MiddleNames, &c.LastName, &c.DateOfBirth, &c.PhoneNumber, &c.EmailAddress, &c.Address); err != nil {
			r.logger.Printf("account repo: scan linked customer: %v", err)
			return err
		}
		byAccount[accountGUID] = append(byAccount[accountGUID], c)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range accounts {
		customers := byAccount[accounts[i].GUID]
		if customers == nil {
			customers = []domain.CustomerSummary{}
		}
		accounts[i].Customers = customers
	}
	return nil
}

func scanAccounts(rows pgx.Rows) ([]domain.AccountOutput, error) {
	result := []domain.AccountOutput{}
	for rows.Next() {
		var a domain.AccountOutput
		if err := rows.Scan(&a.GUID, &a.AccountName, &a.Status); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
