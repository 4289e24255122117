package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
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

func scanTenant(s scanner) (*tenant.Tenant, error) {
	var t tenant.Tenant

	if err := s.Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.ApartmentID,
		&t.LeaseStart, &t.LeaseEnd, &t.MonthlyRent, &t.DepositPaid,
		&t.EmergencyContactName, &t.EmergencyContactPhone, &t.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &t, nil
}

const selectColumns = `
	id, first_name, last_name, email, phone, apartment_id,
	lease_start, lease_end, monthly_rent, deposit_paid,
	emergency_contact_name, emergency_contact_phone, created_at
`

// where renders the filter as a WHERE clause with positional arguments.
func where(filter tenant.ListFilter) (string, []any) {
	clause := " WHERE 1=1"

	var args []any

	argIdx := 1

	if filter.ApartmentID != nil {
		clause += fmt.Sprintf(" AND apartment_id = $%d", argIdx)

		args = append(args, *filter.ApartmentID)
		argIdx++
	}

	if filter.ActiveFrom != nil || filter.ActiveUntil != nil {
		clause += " AND lease_start <= lease_end"
	}

	if filter.ActiveUntil != nil {
		clause += fmt.Sprintf(" AND lease_start <= $%d", argIdx)

		args = append(args, *filter.ActiveUntil)
		argIdx++
	}

	if filter.ActiveFrom != nil {
		clause += fmt.Sprintf(" AND lease_end >= $%d", argIdx)

		args = append(args, *filter.ActiveFrom)
	}

	return clause, args
}

func (s *Store) CreateTenant(ctx context.Context, t *tenant.Tenant) error {
	query := `
		INSERT INTO tenants (first_name, last_name, email, phone, apartment_id, lease_start, lease_end,
			monthly_rent, deposit_paid, emergency_contact_name, emergency_contact_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.FirstName,
		t.LastName,
		t.Email,
		t.Phone,
		t.ApartmentID,
		t.LeaseStart,
		t.LeaseEnd,
		t.MonthlyRent,
		t.DepositPaid,
		t.EmergencyContactName,
		t.EmergencyContactPhone,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating tenant: %w", database.Classify(err))
	}

	return nil
}

func (s *Store) GetTenant(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	query := `SELECT ` + selectColumns + ` FROM tenants WHERE id = $1`

	t, err := scanTenant(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tenant.ErrNotFound
		}

		return nil, fmt.Errorf("getting tenant: %w", database.Classify(err))
	}

	return t, nil
}

func (s *Store) ListTenants(ctx context.Context, filter tenant.ListFilter) ([]*tenant.Tenant, error) {
	clause, args := where(filter)
	query := `SELECT ` + selectColumns + ` FROM tenants` + clause + ` ORDER BY created_at DESC, id ASC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", database.Classify(err))
	}
	defer rows.Close()

	var tenants []*tenant.Tenant

	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tenant: %w", err)
		}

		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tenant rows: %w", database.Classify(err))
	}

	return tenants, nil
}

func (s *Store) CountTenants(ctx context.Context, filter tenant.ListFilter) (int, error) {
	clause, args := where(filter)

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tenants`+clause, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting tenants: %w", database.Classify(err))
	}

	return n, nil
}

func (s *Store) UpdateTenant(ctx context.Context, t *tenant.Tenant) error {
	query := `
		UPDATE tenants
		SET first_name = $1, last_name = $2, email = $3, phone = $4, apartment_id = $5,
			lease_start = $6, lease_end = $7, monthly_rent = $8, deposit_paid = $9,
			emergency_contact_name = $10, emergency_contact_phone = $11
		WHERE id = $12
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.FirstName,
		t.LastName,
		t.Email,
		t.Phone,
		t.ApartmentID,
		t.LeaseStart,
		t.LeaseEnd,
		t.MonthlyRent,
		t.DepositPaid,
		t.EmergencyContactName,
		t.EmergencyContactPhone,
		t.ID,
	).Scan(&t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tenant.ErrNotFound
		}

		return fmt.Errorf("updating tenant: %w", database.Classify(err))
	}

	return nil
}

func (s *Store) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting tenant: %w", database.Classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}

	if n == 0 {
		return tenant.ErrNotFound
	}

	return nil
}
