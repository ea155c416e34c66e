package status

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bleu-pos/ingredient-service/internal/model"
)

func TestForQuantityThresholdRule(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		unit   string
		want   string
	}{
		{"zero amount is not available", 0, "g", model.StatusNotAvailable},
		{"negative amount is not available", -3.5, "kg", model.StatusNotAvailable},
		{"negative amount with unknown unit", -1, "bag", model.StatusNotAvailable},
		{"grams at threshold", 50, "g", model.StatusLowStock},
		{"grams below threshold", 10, "g", model.StatusLowStock},
		{"grams above threshold", 50.01, "g", model.StatusAvailable},
		{"kilograms at threshold", 0.5, "kg", model.StatusLowStock},
		{"kilograms above threshold", 0.6, "kg", model.StatusAvailable},
		{"milliliters at threshold", 100, "ml", model.StatusLowStock},
		{"milliliters above threshold", 150, "ml", model.StatusAvailable},
		{"liters at threshold", 0.5, "l", model.StatusLowStock},
		{"liters above threshold", 2, "l", model.StatusAvailable},
		{"unknown unit falls back to one", 1, "pcs", model.StatusLowStock},
		{"unknown unit above fallback", 1.5, "pcs", model.StatusAvailable},
		{"empty unit falls back to one", 0.8, "", model.StatusLowStock},
		{"uppercase unit matches", 40, "G", model.StatusLowStock},
		{"mixed case unit matches", 0.4, "Kg", model.StatusLowStock},
		{"whitespace around unit ignored", 90, " ml ", model.StatusLowStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForQuantity(decimal.NewFromFloat(tt.amount), tt.unit)
			if got != tt.want {
				t.Errorf("ForQuantity(%v, %q) = %q, want %q", tt.amount, tt.unit, got, tt.want)
			}
		})
	}
}

func TestForBatchLifecycleRule(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name       string
		quantity   float64
		expiration time.Time
		want       string
	}{
		{"expired yesterday", 5, now.Add(-day), model.StatusExpired},
		{"expires today counts as expired", 5, now, model.StatusExpired},
		{"expired and empty is still expired", 0, now.Add(-day), model.StatusExpired},
		{"empty but fresh is used", 0, now.Add(day), model.StatusUsed},
		{"stocked and fresh is available", 12, now.Add(30 * day), model.StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForBatch(decimal.NewFromFloat(tt.quantity), tt.expiration, now)
			if got != tt.want {
				t.Errorf("ForBatch(%v, %v) = %q, want %q", tt.quantity, tt.expiration, got, tt.want)
			}
		})
	}
}

func TestForBatchExpirationTimeOfDayIgnored(t *testing.T) {
	// Expiration at 23:59 on the current date still expires, regardless of
	// the wall-clock hour.
	now := time.Date(2026, time.March, 10, 1, 0, 0, 0, time.UTC)
	exp := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)

	if got := ForBatch(decimal.NewFromInt(3), exp, now); got != model.StatusExpired {
		t.Errorf("ForBatch same-day expiration = %q, want %q", got, model.StatusExpired)
	}
}

func TestResolveBatchReportsChange(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	fresh := now.AddDate(0, 1, 0)

	got, changed := ResolveBatch(model.StatusAvailable, decimal.Zero, fresh, now)
	if got != model.StatusUsed || !changed {
		t.Errorf("ResolveBatch(stale) = (%q, %v), want (%q, true)", got, changed, model.StatusUsed)
	}

	// Recomputing an already-correct record must report no change, so lazy
	// readers skip the write.
	got, changed = ResolveBatch(model.StatusUsed, decimal.Zero, fresh, now)
	if got != model.StatusUsed || changed {
		t.Errorf("ResolveBatch(correct) = (%q, %v), want (%q, false)", got, changed, model.StatusUsed)
	}
}

func TestThresholdLookup(t *testing.T) {
	if got := Threshold("KG"); !got.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("Threshold(KG) = %v, want 0.5", got)
	}
	if got := Threshold("crate"); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Threshold(crate) = %v, want fallback 1", got)
	}
}
