package middleware

import (
	"context"

	"github.com/localehub/catalog-backend/internal/domain"
	"github.com/localehub/catalog-backend/pkg/ctxutil"
)

// RequireUser returns domain.ErrUnauthorized if no authenticated user is
// in the context. Use in handlers, not as HTTP middleware.
func RequireUser(ctx context.Context) (int64, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return id, nil
}

// RequireAdmin returns domain.ErrForbidden if the context user is not an
// admin, domain.ErrUnauthorized if there is no user at all.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if ctxutil.UserRoleFromCtx(ctx) != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
