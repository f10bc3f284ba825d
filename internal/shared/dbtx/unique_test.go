package dbtx_test

import (
	"errors"
	"fmt"
	"testing"

	"hr-portal/internal/shared/dbtx"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"nil", nil, "", false},
		{"matching constraint", pgErr, "uq_employee_email", true},
		{"wrapped", fmt.Errorf("insert: %w", pgErr), "uq_employee_email", true},
		{"any constraint", pgErr, "", true},
		{"other constraint", pgErr, "uq_hr_email", false},
		{"other code", &pgconn.PgError{Code: "23503"}, "", false},
		{"message only", errors.New(`ERROR: duplicate key value violates unique constraint "uq_hr_email"`), "uq_hr_email", true},
		{"plain error", errors.New("boom"), "uq_hr_email", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dbtx.IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}
