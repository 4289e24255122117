package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPayment(s scanner) (*payment.Payment, error) {
	var p payment.Payment

	if err := s.Scan(
		&p.ID, &p.TenantID, &p.ApartmentID, &p.Amount, &p.DueDate, &p.PaidDate,
		&p.Status, &p.PaymentMethod, &p.Notes, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

const selectColumns = `
	id, tenant_id, apartment_id, amount, due_date, paid_date,
	status, payment_method, notes, created_at
`

func where(filter payment.ListFilter) (string, []any) {
	clause := " WHERE 1=1"

	var args []any

	argIdx := 1

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))

		for i, st := range filter.Statuses {
			placeholders[i] = fmt.Sprintf("$%d", argIdx)

			args = append(args, string(st))
			argIdx++
		}

		clause += " AND status IN (" + strings.Join(placeholders, ", ") + ")"
	}

	if filter.TenantID != nil {
		clause += fmt.Sprintf(" AND tenant_id = $%d", argIdx)

		args = append(args, *filter.TenantID)
		argIdx++
	}

	if filter.ApartmentID != nil {
		clause += fmt.Sprintf(" AND apartment_id = $%d", argIdx)

		args = append(args, *filter.ApartmentID)
		argIdx++
	}

	if filter.PaidFrom != nil {
		clause += fmt.Sprintf(" AND paid_date >= $%d", argIdx)

		args = append(args, *filter.PaidFrom)
		argIdx++
	}

	if filter.PaidBefore != nil {
		clause += fmt.Sprintf(" AND paid_date < $%d", argIdx)

		args = append(args, *filter.PaidBefore)
		argIdx++
	}

	if filter.DueBefore != nil {
		clause += fmt.Sprintf(" AND due_date < $%d", argIdx)

		args = append(args, *filter.DueBefore)
	}

	return clause, args
}

func orderBy(o payment.Order) string {
	if o == payment.OrderDueDate {
		return " ORDER BY due_date ASC, id ASC"
	}

	return " ORDER BY created_at DESC, id ASC"
}

func (s *Store) CreatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO rent_payments (tenant_id, apartment_id, amount, due_date, paid_date, status, payment_method, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.TenantID,
		p.ApartmentID,
		p.Amount,
		p.DueDate,
		p.PaidDate,
		string(p.Status),
		p.PaymentMethod,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", database.Classify(err))
	}

	return nil
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + selectColumns + ` FROM rent_payments WHERE id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", database.Classify(err))
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	clause, args := where(filter)
	query := `SELECT ` + selectColumns + ` FROM rent_payments` + clause + orderBy(filter.Order)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", database.Classify(err))
	}
	defer rows.Close()

	var payments []*payment.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", database.Classify(err))
	}

	return payments, nil
}

func (s *Store) CountPayments(ctx context.Context, filter payment.ListFilter) (int, error) {
	clause, args := where(filter)

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rent_payments`+clause, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting payments: %w", database.Classify(err))
	}

	return n, nil
}

// SumPayments totals the amount of every payment matching the filter.
func (s *Store) SumPayments(ctx context.Context, filter payment.ListFilter) (int64, error) {
	clause, args := where(filter)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM rent_payments`+clause, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing payments: %w", database.Classify(err))
	}

	return total, nil
}

func (s *Store) UpdatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		UPDATE rent_payments
		SET tenant_id = $1, apartment_id = $2, amount = $3, due_date = $4, paid_date = $5,
			status = $6, payment_method = $7, notes = $8
		WHERE id = $9
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.TenantID,
		p.ApartmentID,
		p.Amount,
		p.DueDate,
		p.PaidDate,
		string(p.Status),
		p.PaymentMethod,
		p.Notes,
		p.ID,
	).Scan(&p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return payment.ErrNotFound
		}

		return fmt.Errorf("updating payment: %w", database.Classify(err))
	}

	return nil
}
