//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResetDB empties the customer tables and restarts the insertion sequence.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE customer_tickets, customers RESTART IDENTITY")
	return err
}

func CountCustomerRows(t *testing.T, db DBLike, customerID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM customers WHERE id = $1", customerID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountTicketRows(t *testing.T, db DBLike, customerID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
SELECT COUNT(*)
FROM customer_tickets t
JOIN customers c ON c.seq = t.customer_seq
WHERE c.id = $1`, customerID).Scan(&n)
	require.NoError(t, err)
	return n
}
