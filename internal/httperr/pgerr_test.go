package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "fk_city_department"}
	if !IsForeignKeyViolation(err) {
		t.Fatal("expected foreign key violation to match")
	}
	if IsUniqueViolation(err) {
		t.Fatal("foreign key violation should not match unique check")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if !IsUniqueViolation(err) {
		t.Fatal("expected unique violation to match")
	}
	if IsForeignKeyViolation(err) {
		t.Fatal("unique violation should not match foreign key check")
	}
}

func TestViolationMatchersUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"})
	if !IsUniqueViolation(wrapped) {
		t.Fatal("expected matcher to unwrap the error chain")
	}
}

func TestViolationMatchersRejectOtherErrors(t *testing.T) {
	cases := []error{
		nil,
		errors.New("connection refused"),
		&pgconn.PgError{Code: "42703"},
	}
	for _, err := range cases {
		if IsForeignKeyViolation(err) || IsUniqueViolation(err) {
			t.Fatalf("error %v should not match any violation", err)
		}
	}
}
