package dberr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	apperr "github.com/acmecollege/registrar/internal/pkg/errors"
)

// MapError maps driver and gorm failures into the application error codes.
// Errors that already carry a code pass through untouched.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var coded *apperr.Error
	if errors.As(err, &coded) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.CodeNotFound, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Wrap(apperr.CodeConstraintViolation, op, err)
	case errors.Is(err, gorm.ErrMissingWhereClause), errors.Is(err, gorm.ErrPrimaryKeyRequired):
		return apperr.Wrap(apperr.CodeInvalidArgument, op, err)
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone):
		return apperr.Wrap(apperr.CodeStoreUnavailable, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := strings.TrimSpace(pgErr.Code)
		switch {
		case strings.HasPrefix(code, "23"): // integrity_constraint_violation class
			return apperr.Wrap(apperr.CodeConstraintViolation, op, err)
		case strings.HasPrefix(code, "08"), code == "57P01", code == "57P02", code == "57P03":
			return apperr.Wrap(apperr.CodeStoreUnavailable, op, err)
		}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return apperr.Wrap(apperr.CodeStoreUnavailable, op, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrConstraint:
			return apperr.Wrap(apperr.CodeConstraintViolation, op, err)
		case sqlite3.ErrCantOpen, sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrIoErr:
			return apperr.Wrap(apperr.CodeStoreUnavailable, op, err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperr.Wrap(apperr.CodeStoreUnavailable, op, err)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "constraint failed"),
		strings.Contains(msg, "violates"),
		strings.Contains(msg, "duplicate key"):
		return apperr.Wrap(apperr.CodeConstraintViolation, op, err)
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "database is closed"):
		return apperr.Wrap(apperr.CodeStoreUnavailable, op, err)
	default:
		return apperr.Wrap(apperr.CodeInternal, op, err)
	}
}
