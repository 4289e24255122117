package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/apartment"
	"github.com/MrJamesThe3rd/rentroll/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order matches selectColumns.
func scanApartment(s scanner) (*apartment.Apartment, error) {
	var a apartment.Apartment

	if err := s.Scan(
		&a.ID, &a.UnitNumber, &a.Address, &a.Bedrooms, &a.Bathrooms, &a.SquareFeet,
		&a.MonthlyRent, &a.Deposit, &a.Description, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &a, nil
}

const selectColumns = `
	id, unit_number, address, bedrooms, bathrooms, square_feet,
	monthly_rent, deposit, description, created_at
`

func (s *Store) CreateApartment(ctx context.Context, a *apartment.Apartment) error {
	query := `
		INSERT INTO apartments (unit_number, address, bedrooms, bathrooms, square_feet, monthly_rent, deposit, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.UnitNumber,
		a.Address,
		a.Bedrooms,
		a.Bathrooms,
		a.SquareFeet,
		a.MonthlyRent,
		a.Deposit,
		a.Description,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating apartment: %w", database.Classify(err))
	}

	return nil
}

func (s *Store) GetApartment(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	query := `SELECT ` + selectColumns + ` FROM apartments WHERE id = $1`

	a, err := scanApartment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apartment.ErrNotFound
		}

		return nil, fmt.Errorf("getting apartment: %w", database.Classify(err))
	}

	return a, nil
}

func (s *Store) ListApartments(ctx context.Context, filter apartment.ListFilter) ([]*apartment.Apartment, error) {
	query := `SELECT ` + selectColumns + ` FROM apartments ORDER BY created_at DESC, id ASC`

	var args []any

	if filter.Limit > 0 {
		query += " LIMIT $1"

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing apartments: %w", database.Classify(err))
	}
	defer rows.Close()

	var apartments []*apartment.Apartment

	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning apartment: %w", err)
		}

		apartments = append(apartments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating apartment rows: %w", database.Classify(err))
	}

	return apartments, nil
}

func (s *Store) CountApartments(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM apartments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting apartments: %w", database.Classify(err))
	}

	return n, nil
}

func (s *Store) UpdateApartment(ctx context.Context, a *apartment.Apartment) error {
	query := `
		UPDATE apartments
		SET unit_number = $1, address = $2, bedrooms = $3, bathrooms = $4, square_feet = $5,
			monthly_rent = $6, deposit = $7, description = $8
		WHERE id = $9
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.UnitNumber,
		a.Address,
		a.Bedrooms,
		a.Bathrooms,
		a.SquareFeet,
		a.MonthlyRent,
		a.Deposit,
		a.Description,
		a.ID,
	).Scan(&a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apartment.ErrNotFound
		}

		return fmt.Errorf("updating apartment: %w", database.Classify(err))
	}

	return nil
}

func (s *Store) DeleteApartment(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM apartments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting apartment: %w", database.Classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting apartment: %w", err)
	}

	if n == 0 {
		return apartment.ErrNotFound
	}

	return nil
}
