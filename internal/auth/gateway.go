package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
)

// Roles known to the identity service.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleCashier = "cashier"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// RoleValidator resolves a bearer token to a role claim.
type RoleValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// Gateway validates bearer tokens against the external identity service.
// Failures are passed through, never retried.
type Gateway struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewGateway(cfg *Config, log *zap.Logger) *Gateway {
	return &Gateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		logger:  log,
	}
}

// Validate calls the identity service's introspection endpoint and returns
// the role claim. A non-2xx identity response surfaces with the same status;
// an unreachable identity service surfaces as 503.
func (g *Gateway) Validate(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/auth/users/me", nil)
	if err != nil {
		return "", apperrors.Internal("failed to build identity request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("identity service unreachable", zap.Error(err))
		return "", apperrors.Unavailable("auth service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		detail := fmt.Sprintf("auth service error: %d - %s", resp.StatusCode, string(body))
		g.logger.Error("identity service rejected token",
			zap.Int("status", resp.StatusCode), zap.String("detail", detail))
		return "", apperrors.New(resp.StatusCode, detail)
	}

	var claims struct {
		UserRole string `json:"userRole"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return "", apperrors.Unavailable("auth service returned malformed response", err)
	}
	return claims.UserRole, nil
}
