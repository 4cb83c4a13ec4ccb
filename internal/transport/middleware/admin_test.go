package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name     string
		ctx      func(context.Context) context.Context
		wantCode int
		wantKind string
	}{
		{"anonymous", func(ctx context.Context) context.Context { return ctx }, http.StatusUnauthorized, `"kind":"unauthorized"`},
		{"signed in", func(ctx context.Context) context.Context {
			return ctxutil.WithUserID(ctx, "uid-user")
		}, http.StatusForbidden, `"kind":"forbidden"`},
		{"admin", func(ctx context.Context) context.Context {
			return ctxutil.WithAdmin(ctxutil.WithUserID(ctx, "uid-admin"), true)
		}, http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/admin/records", nil)
			req = req.WithContext(tc.ctx(req.Context()))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Errorf("expected status %d, got %d", tc.wantCode, rec.Code)
			}
			if tc.wantKind != "" && !strings.Contains(rec.Body.String(), tc.wantKind) {
				t.Errorf("expected body to contain %s, got %q", tc.wantKind, rec.Body.String())
			}
		})
	}
}

func TestRequireUser(t *testing.T) {
	handler := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/records", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	req = req.WithContext(ctxutil.WithUserID(req.Context(), "uid-user"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("signed in: expected %d, got %d", http.StatusOK, rec.Code)
	}
}
