package pgstore

import (
	"context"
	"log/slog"

	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/infra"
	"racing-ticket-desk/internal/infra/converter"
	"racing-ticket-desk/internal/infra/uow"

	"github.com/jackc/pgx/v5"
)

const (
	insertCustomerSQL = `
INSERT INTO customers (id, name, email, phone)
VALUES ($1, $2, $3, $4)
RETURNING seq`

	insertTicketSQL = `
INSERT INTO customer_tickets (customer_seq, position, ticket_id, variant, price, seat, valid)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectCustomersSQL = `
SELECT seq, id, name, email, phone
FROM customers
ORDER BY seq`

	selectTicketsSQL = `
SELECT customer_seq, ticket_id, variant, price, seat, valid
FROM customer_tickets
ORDER BY customer_seq, position`

	resetSQL = `TRUNCATE customer_tickets, customers RESTART IDENTITY`
)

const backend = "postgres"

// Store appends customers as rows ordered by an insertion sequence, so the
// same id may appear more than once just as in the file backend.
type Store struct {
	uow    *uow.PostgresUoW
	logger *slog.Logger
}

func New(u *uow.PostgresUoW, logger *slog.Logger) *Store {
	return &Store{
		uow:    u,
		logger: logger,
	}
}

func (s *Store) Append(ctx context.Context, c *customer.Customer) error {
	rec := converter.CustomerToRecord(c)

	err := s.uow.Within(ctx, func(ctx context.Context, tx uow.DBTX) error {
		var seq int64
		if err := tx.QueryRow(ctx, insertCustomerSQL, rec.ID, rec.Name, rec.Email, rec.Phone).Scan(&seq); err != nil {
			return err
		}
		for i, t := range rec.Tickets {
			if _, err := tx.Exec(ctx, insertTicketSQL, seq, i, t.ID, t.Variant, t.Price, t.Seat, t.Valid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return infra.WrapStoreErr(s.logger, backend, infra.KindDBFailure, "append customer", err)
	}
	return nil
}

func (s *Store) LoadAll(ctx context.Context) ([]*customer.Customer, error) {
	var recs []converter.CustomerRecord

	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx uow.DBTX) error {
		var err error
		recs, err = loadRecords(ctx, tx)
		return err
	})
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, backend, infra.KindDBFailure, "load customers", err)
	}

	customers, err := converter.RecordsToCustomers(recs)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, backend, infra.KindDecodeFailure, "convert stored customers", err)
	}
	return customers, nil
}

func (s *Store) Reset(ctx context.Context) error {
	err := s.uow.WithDB(ctx, func(ctx context.Context, db uow.DBTX) error {
		_, err := db.Exec(ctx, resetSQL)
		return err
	})
	if err != nil {
		return infra.WrapStoreErr(s.logger, backend, infra.KindDBFailure, "reset customers", err)
	}
	return nil
}

type customerRow struct {
	seq int64
	rec converter.CustomerRecord
}

func loadRecords(ctx context.Context, tx uow.DBTX) ([]converter.CustomerRecord, error) {
	rows, err := tx.Query(ctx, selectCustomersSQL)
	if err != nil {
		return nil, err
	}
	customerRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (customerRow, error) {
		var r customerRow
		err := row.Scan(&r.seq, &r.rec.ID, &r.rec.Name, &r.rec.Email, &r.rec.Phone)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	bySeq := make(map[int64]int, len(customerRows))
	recs := make([]converter.CustomerRecord, len(customerRows))
	for i, r := range customerRows {
		bySeq[r.seq] = i
		recs[i] = r.rec
	}

	rows, err = tx.Query(ctx, selectTicketsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			seq int64
			t   converter.TicketRecord
		)
		if err := rows.Scan(&seq, &t.ID, &t.Variant, &t.Price, &t.Seat, &t.Valid); err != nil {
			return nil, err
		}
		if i, ok := bySeq[seq]; ok {
			recs[i].Tickets = append(recs[i].Tickets, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
