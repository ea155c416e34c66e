package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGateway(&Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, zap.NewNop())
}

func TestValidateReturnsRoleClaim(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/users/me" {
			t.Errorf("path = %q, want /auth/users/me", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userRole": "manager"}`))
	})

	role, err := gw.Validate(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if role != RoleManager {
		t.Errorf("role = %q, want manager", role)
	}
}

func TestValidatePassesThroughIdentityStatus(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	_, err := gw.Validate(context.Background(), "expired")
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want AppError", err)
	}
	if appErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 passed through", appErr.Status)
	}
}

func TestValidateUnreachableIdentityService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	gw := NewGateway(&Config{BaseURL: srv.URL, Timeout: time.Second}, zap.NewNop())

	_, err := gw.Validate(context.Background(), "tok")
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want AppError", err)
	}
	if appErr.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", appErr.Status)
	}
}
