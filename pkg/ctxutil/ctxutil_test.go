package ctxutil

import (
	"context"
	"testing"
)

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), 42)

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for a valid id")
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestUserIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := UserIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for an empty context")
	}
	if got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestUserIDFromCtx_ZeroID(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), 0)

	if _, ok := UserIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for a zero id")
	}
}

func TestUserRole_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithUserRole(context.Background(), "admin")
	if got := UserRoleFromCtx(ctx); got != "admin" {
		t.Fatalf("expected admin, got %q", got)
	}
	if got := UserRoleFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty role, got %q", got)
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}
