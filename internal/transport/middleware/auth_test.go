package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/localehub/catalog-backend/internal/domain"
	"github.com/localehub/catalog-backend/pkg/ctxutil"
)

type tokenValidatorMock struct {
	ValidateAccessTokenFunc func(token string) (int64, string, error)
}

func (m *tokenValidatorMock) ValidateAccessToken(token string) (int64, string, error) {
	return m.ValidateAccessTokenFunc(token)
}

func TestAuth_ValidTokenPopulatesContext(t *testing.T) {
	t.Parallel()

	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (int64, string, error) {
			if token != "good" {
				t.Errorf("token passed: %q", token)
			}
			return 42, domain.RoleAdmin, nil
		},
	}

	var gotID int64
	var gotRole string
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = ctxutil.UserIDFromCtx(r.Context())
		gotRole = ctxutil.UserRoleFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotID != 42 || gotRole != domain.RoleAdmin {
		t.Errorf("context identity: id=%d role=%q", gotID, gotRole)
	}
}

func TestAuth_NoTokenPassesAnonymously(t *testing.T) {
	t.Parallel()

	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (int64, string, error) {
			t.Error("validator must not run without a token")
			return 0, "", nil
		},
	}

	var anonymous bool
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := ctxutil.UserIDFromCtx(r.Context())
		anonymous = !ok
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !anonymous {
		t.Error("request without a token should stay anonymous")
	}
}

func TestAuth_BadTokenRejected(t *testing.T) {
	t.Parallel()

	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (int64, string, error) {
			return 0, "", errors.New("bad signature")
		},
	}

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a bad token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	if err := RequireAdmin(ctx); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: got %v, want ErrUnauthorized", err)
	}

	userCtx := ctxutil.WithUserRole(ctxutil.WithUserID(ctx, 1), domain.RoleUser)
	if err := RequireAdmin(userCtx); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("plain user: got %v, want ErrForbidden", err)
	}

	adminCtx := ctxutil.WithUserRole(ctxutil.WithUserID(ctx, 1), domain.RoleAdmin)
	if err := RequireAdmin(adminCtx); err != nil {
		t.Errorf("admin: got %v, want nil", err)
	}
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	if _, err := RequireUser(ctx); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: got %v, want ErrUnauthorized", err)
	}

	id, err := RequireUser(ctxutil.WithUserID(ctx, 7))
	if err != nil || id != 7 {
		t.Errorf("authenticated: got id=%d err=%v", id, err)
	}
}
