package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/localehub/catalog-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"fk violation", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"unknown pg error", &pgconn.PgError{Code: "57P01"}, domain.ErrStoreUnavailable},
		{"plain error", errors.New("broken pipe"), domain.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.in, "translation", 42)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%v) = %v, want wrapping %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, in := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(fmt.Errorf("query: %w", in), "tag", "mobile")
		if !errors.Is(got, in) {
			t.Errorf("expected %v to pass through, got %v", in, got)
		}
		if errors.Is(got, domain.ErrStoreUnavailable) {
			t.Errorf("context error must not map to ErrStoreUnavailable: %v", got)
		}
	}
}
