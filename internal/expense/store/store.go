package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/expense"
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

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	if err := s.Scan(
		&e.ID, &e.ApartmentID, &e.Type, &e.Amount, &e.Description, &e.Date,
		&e.Vendor, &e.ReceiptURL, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

const selectColumns = `
	id, apartment_id, expense_type, amount, description, date,
	vendor, receipt_url, created_at
`

func where(filter expense.ListFilter) (string, []any) {
	clause := " WHERE 1=1"

	var args []any

	argIdx := 1

	if filter.Type != nil {
		clause += fmt.Sprintf(" AND expense_type = $%d", argIdx)

		args = append(args, string(*filter.Type))
		argIdx++
	}

	if filter.ApartmentID != nil {
		clause += fmt.Sprintf(" AND apartment_id = $%d", argIdx)

		args = append(args, *filter.ApartmentID)
		argIdx++
	}

	if filter.From != nil {
		clause += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.Before != nil {
		clause += fmt.Sprintf(" AND date < $%d", argIdx)

		args = append(args, *filter.Before)
	}

	return clause, args
}

func orderBy(o expense.Order) string {
	if o == expense.OrderDateDesc {
		return " ORDER BY date DESC, id ASC"
	}

	return " ORDER BY created_at DESC, id ASC"
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (apartment_id, expense_type, amount, description, date, vendor, receipt_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.ApartmentID,
		string(e.Type),
		e.Amount,
		e.Description,
		e.Date,
		e.Vendor,
		e.ReceiptURL,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", database.Classify(err))
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", database.Classify(err))
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	clause, args := where(filter)
	query := `SELECT ` + selectColumns + ` FROM expenses` + clause + orderBy(filter.Order)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", database.Classify(err))
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", database.Classify(err))
	}

	return expenses, nil
}

func (s *Store) SumExpenses(ctx context.Context, filter expense.ListFilter) (int64, error) {
	clause, args := where(filter)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`+clause, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing expenses: %w", database.Classify(err))
	}

	return total, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET apartment_id = $1, expense_type = $2, amount = $3, description = $4, date = $5,
			vendor = $6, receipt_url = $7
		WHERE id = $8
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.ApartmentID,
		string(e.Type),
		e.Amount,
		e.Description,
		e.Date,
		e.Vendor,
		e.ReceiptURL,
		e.ID,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return expense.ErrNotFound
		}

		return fmt.Errorf("updating expense: %w", database.Classify(err))
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", database.Classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if n == 0 {
		return expense.ErrNotFound
	}

	return nil
}
