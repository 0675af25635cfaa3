package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	demoCustomerGUID = "bf2a60a6-6322-40b3-88df-79a6631f4996"
	demoAccountGUID  = "254e6eb6-78a5-4481-ac7a-b551de0e1b48"
)

// Apply inserts a demo customer with one linked account for manual testing.
// It is idempotent via ON CONFLICT DO NOTHING.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	const insertCustomer = `
INSERT INTO customers (guid, first_name, middle_names, last_name, date_of_birth, phone_number, email_address, address)
VALUES ($1, 'Joe', NULL, 'Bloggs', '1997-08-21', '07123456789', 'joe.bloggs@gmails.com', '123 Baker Street, London, E12 345')
ON CONFLICT (guid) DO NOTHING
`
	if _, err := pool.Exec(ctx, insertCustomer, demoCustomerGUID); err != nil {
		return fmt.Errorf("insert demo customer: %w", err)
	}

	const insertAccount = `
INSERT INTO accounts (guid, account_name, status)
VALUES ($1, 'Bloggs FlexAccount', 'Active')
ON CONFLICT (guid) DO NOTHING
`
	if _, err := pool.Exec(ctx, insertAccount, demoAccountGUID); err != nil {
		return fmt.Errorf("insert demo account: %w", err)
	}

	const insertLink = `
INSERT INTO customer_accounts (customer_guid, account_guid)
VALUES ($1, $2)
ON CONFLICT (customer_guid, account_guid) DO NOTHING
`
	if _, err := pool.Exec(ctx, insertLink, demoCustomerGUID, demoAccountGUID); err != nil {
		return fmt.Errorf("insert demo link: %w", err)
	}

	return nil
}
