package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	CodeNoRows            = "PGRST116"
	CodePermissionDenied  = "PGRST301"
	CodeUndefinedTable    = "42P01"
	CodeUniqueViolation   = "23505"
	CodeConnectionFailure = "08006"
	CodeInternal          = "XX000"

	CodeInvalidCredentials = "invalid_credentials"
	CodeUserAlreadyExists  = "user_already_exists"
	CodeEmailNotConfirmed  = "email_not_confirmed"
	CodeBadJWT             = "bad_jwt"
	CodeSessionMissing     = "session_not_found"
	CodeUserNotFound       = "user_not_found"
	CodeNotAdmin           = "not_admin"
	CodeInvalidAPIKey      = "invalid_api_key"
	CodeWeakPassword       = "weak_password"
	CodeValidationFailed   = "validation_failed"
)

// Error is the error object returned by every provider call.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func newError(status int, code string, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// AsError unwraps err into a provider error if it is one.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

func IsCode(err error, code string) bool {
	perr, ok := AsError(err)
	return ok && perr.Code == code
}

// Classify converts a database error into a provider error. Errors that are
// already provider errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{
			Status:  http.StatusNotAcceptable,
			Code:    CodeNoRows,
			Message: "JSON object requested, multiple (or no) rows returned",
			Details: "The result contains 0 rows",
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromSQLState(pgErr.Code, pgErr.Message, pgErr.Detail)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062:
			return fromSQLState(CodeUniqueViolation, myErr.Message, "")
		case 1146:
			return fromSQLState(CodeUndefinedTable, myErr.Message, "")
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateMessage(err.Error()) {
		return fromSQLState(CodeUniqueViolation, "duplicate key value violates unique constraint", err.Error())
	}

	if isMissingTable(err.Error()) {
		return fromSQLState(CodeUndefinedTable, err.Error(), "")
	}

	if isConnectionFailure(err) {
		return &Error{
			Status:  http.StatusServiceUnavailable,
			Code:    CodeConnectionFailure,
			Message: "could not connect to the database",
			Details: err.Error(),
		}
	}

	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: err.Error()}
}

func fromSQLState(code string, message string, details string) *Error {
	status := http.StatusBadRequest
	switch {
	case code == CodeUniqueViolation:
		status = http.StatusConflict
	case code == CodeUndefinedTable:
		status = http.StatusNotFound
	case code == "42501":
		status = http.StatusForbidden
	case strings.HasPrefix(code, "08"):
		status = http.StatusServiceUnavailable
	}
	return &Error{Status: status, Code: code, Message: message, Details: details}
}

func isDuplicateMessage(msg string) bool {
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "Duplicate entry")
}

func isMissingTable(msg string) bool {
	return strings.Contains(msg, "no such table") ||
		(strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist")) ||
		(strings.Contains(msg, "Table") && strings.Contains(msg, "doesn't exist"))
}

func isConnectionFailure(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	var connErr *pgconn.ConnectError
	switch {
	case errors.As(err, &opErr), errors.As(err, &dnsErr), errors.As(err, &connErr):
		return true
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, context.DeadlineExceeded):
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "failed to connect") ||
		strings.Contains(msg, "dial tcp")
}
