package status

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bleu-pos/ingredient-service/internal/model"
)

// Per-unit low-stock cutoffs. Units not listed here (or empty units) fall
// back to a cutoff of 1. Keep this table in sync with the bulk CASE update
// in the ingredient repository: both must classify identically.
var thresholds = map[string]decimal.Decimal{
	"g":  decimal.NewFromInt(50),
	"kg": decimal.NewFromFloat(0.5),
	"ml": decimal.NewFromInt(100),
	"l":  decimal.NewFromFloat(0.5),
}

var fallbackThreshold = decimal.NewFromInt(1)

// Threshold returns the low-stock cutoff for a unit of measure. The lookup
// is case-insensitive and ignores surrounding whitespace.
func Threshold(unit string) decimal.Decimal {
	if t, ok := thresholds[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return t
	}
	return fallbackThreshold
}

// ForQuantity applies the threshold rule: non-positive amounts are
// "Not Available", amounts at or below the unit's cutoff are "Low Stock",
// anything else is "Available".
func ForQuantity(amount decimal.Decimal, unit string) string {
	if amount.Sign() <= 0 {
		return model.StatusNotAvailable
	}
	if amount.LessThanOrEqual(Threshold(unit)) {
		return model.StatusLowStock
	}
	return model.StatusAvailable
}

// ForBatch applies the lifecycle rule: a batch whose expiration date has
// passed (or is today) is "Expired" even when quantity remains, an empty
// unexpired batch is "Used", everything else is "Available".
func ForBatch(quantity decimal.Decimal, expiration time.Time, now time.Time) string {
	if !toDate(expiration).After(toDate(now)) {
		return model.StatusExpired
	}
	if quantity.IsZero() {
		return model.StatusUsed
	}
	return model.StatusAvailable
}

// ResolveBatch recomputes a batch's lifecycle status against its stored
// value. changed reports whether the stored status is stale; callers persist
// the correction only when it is, so resolving a correct record stays a
// read-only operation.
func ResolveBatch(stored string, quantity decimal.Decimal, expiration time.Time, now time.Time) (string, bool) {
	computed := ForBatch(quantity, expiration, now)
	return computed, computed != stored
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
