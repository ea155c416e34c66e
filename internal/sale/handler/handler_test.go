package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
	"github.com/bleu-pos/ingredient-service/internal/auth"
	"github.com/bleu-pos/ingredient-service/internal/middleware"
	"github.com/bleu-pos/ingredient-service/internal/sale/dto"
)

type fakeValidator struct {
	role string
	err  error
}

func (f *fakeValidator) Validate(context.Context, string) (string, error) {
	return f.role, f.err
}

type fakeSaleUC struct {
	items []dto.CartItem
	err   error
}

func (f *fakeSaleUC) DeductFromSale(_ context.Context, items []dto.CartItem) error {
	f.items = items
	return f.err
}

func newApp(uc *fakeSaleUC, validator auth.RoleValidator) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(zap.NewNop())})
	h := NewSaleHandler(uc, zap.NewNop())
	app.Post("/deduct-from-sale",
		auth.RequireRoles(validator, auth.RoleAdmin, auth.RoleCashier, auth.RoleManager),
		h.Deduct)
	return app
}

func doRequest(t *testing.T, app *fiber.App, body, token string) (*http.Response, middleware.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/deduct-from-sale", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var errResp middleware.ErrorResponse
	json.Unmarshal(raw, &errResp)
	return resp, errResp
}

func TestDeductHappyPath(t *testing.T) {
	uc := &fakeSaleUC{}
	app := newApp(uc, &fakeValidator{role: auth.RoleCashier})

	body := `{"cartItems": [{"name": "Latte", "quantity": 2}, {"name": "Espresso", "quantity": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/deduct-from-sale", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer tok")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "Inventory deducted successfully." {
		t.Errorf("message = %q", out.Message)
	}
	if len(uc.items) != 2 || uc.items[0].Name != "Latte" || uc.items[0].Quantity != 2 {
		t.Errorf("usecase received items %+v", uc.items)
	}
}

func TestDeductValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed body", `{"cartItems": `},
		{"missing item name", `{"cartItems": [{"name": "", "quantity": 1}]}`},
		{"zero quantity", `{"cartItems": [{"name": "Latte", "quantity": 0}]}`},
		{"negative quantity", `{"cartItems": [{"name": "Latte", "quantity": -3}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeSaleUC{}
			app := newApp(uc, &fakeValidator{role: auth.RoleAdmin})

			resp, errResp := doRequest(t, app, tt.body, "tok")
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if errResp.StatusCode != http.StatusBadRequest {
				t.Errorf("body statusCode = %d, want 400", errResp.StatusCode)
			}
			if uc.items != nil {
				t.Errorf("usecase called with %+v, want untouched", uc.items)
			}
		})
	}
}

func TestDeductMissingToken(t *testing.T) {
	app := newApp(&fakeSaleUC{}, &fakeValidator{role: auth.RoleAdmin})

	resp, errResp := doRequest(t, app, `{"cartItems": []}`, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if errResp.Message == "" {
		t.Error("expected error message in body")
	}
}

func TestDeductRoleNotAllowed(t *testing.T) {
	uc := &fakeSaleUC{}
	app := newApp(uc, &fakeValidator{role: auth.RoleStaff})

	resp, errResp := doRequest(t, app, `{"cartItems": [{"name": "Latte", "quantity": 1}]}`, "tok")
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
	if errResp.Message != "access denied" {
		t.Errorf("message = %q, want access denied", errResp.Message)
	}
	if uc.items != nil {
		t.Error("usecase must not run for forbidden role")
	}
}

func TestDeductStoreFailureIsOpaque(t *testing.T) {
	uc := &fakeSaleUC{err: apperrors.Internal("failed to update inventory", io.ErrUnexpectedEOF)}
	app := newApp(uc, &fakeValidator{role: auth.RoleManager})

	resp, errResp := doRequest(t, app, `{"cartItems": [{"name": "Latte", "quantity": 1}]}`, "tok")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if errResp.Message != "failed to update inventory" {
		t.Errorf("message = %q, want generic failure message", errResp.Message)
	}
	if strings.Contains(errResp.Message, io.ErrUnexpectedEOF.Error()) {
		t.Error("underlying cause must not leak into the response")
	}
}
