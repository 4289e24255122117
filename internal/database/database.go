package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", Classify(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Classify tags connectivity failures with apperror.ErrStoreUnavailable and
// constraint or data-format violations with apperror.ErrInvalidArgument.
// Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", apperror.ErrStoreUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 22: data exception, class 23: integrity constraint violation.
		if len(pgErr.Code) == 5 && (pgErr.Code[:2] == "22" || pgErr.Code[:2] == "23") {
			return fmt.Errorf("%w: %w", apperror.ErrInvalidArgument, err)
		}
	}

	return err
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	if pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// Ping reports whether the database answers within the context deadline.
func Ping(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return Classify(err)
	}

	return nil
}
