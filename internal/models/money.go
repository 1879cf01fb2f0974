package models

import (
	"bytes"
	"errors"
	"math"
	"math/big"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// AmountScale is the number of fractional digits every persisted amount and
	// balance is rounded to.
	AmountScale = 2

	// MaxIntegerDigits is how many integer digits fit the decimal(16,2) columns.
	MaxIntegerDigits = 14
)

var (
	// MaxAmount is the exclusive magnitude bound of the decimal(16,2) columns.
	MaxAmount = decimal.New(1, 14)

	ErrAmountOverflow = errors.New("amount exceeds storage range")
)

// RoundAmount rounds an amount half away from zero to AmountScale digits.
// Amounts too large to store are returned unchanged for CheckAmount to reject.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	switch m := magnitude(amount); {
	case m > MaxIntegerDigits:
		return amount
	case m < -AmountScale:
		return decimal.New(0, -AmountScale)
	}
	return amount.Round(AmountScale)
}

// CheckAmount reports ErrAmountOverflow when the amount cannot be stored.
func CheckAmount(amount decimal.Decimal) error {
	if magnitude(amount) > MaxIntegerDigits {
		return ErrAmountOverflow
	}
	return nil
}

// magnitude returns m such that 10^(m-1) <= |amount| < 10^m. It reads the
// coefficient and exponent only, so a value like 1e2000000000 is never
// expanded. Zero has the smallest magnitude.
func magnitude(amount decimal.Decimal) int64 {
	if amount.IsZero() {
		return math.MinInt64
	}
	digits := len(new(big.Int).Abs(amount.Coefficient()).String())
	return int64(digits) + int64(amount.Exponent())
}

// BalanceDelta is a signed change applied to one account balance.
type BalanceDelta struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal
}

// LedgerRecord is a persisted record whose existence is reflected in account
// balances. Effects returns the deltas applied when the record is created;
// deleting the record applies their negation.
type LedgerRecord interface {
	RecordID() uuid.UUID
	Effects() []BalanceDelta
}

// ReverseDeltas negates every delta.
func ReverseDeltas(deltas []BalanceDelta) []BalanceDelta {
	reversed := make([]BalanceDelta, len(deltas))
	for i, d := range deltas {
		reversed[i] = BalanceDelta{AccountID: d.AccountID, Amount: d.Amount.Neg()}
	}
	return reversed
}

// AggregateDeltas folds deltas into one per account, ordered by account ID.
// Balances are always locked in this order.
func AggregateDeltas(deltas []BalanceDelta) []BalanceDelta {
	sums := make(map[uuid.UUID]decimal.Decimal, len(deltas))
	for _, d := range deltas {
		sums[d.AccountID] = sums[d.AccountID].Add(d.Amount)
	}

	result := make([]BalanceDelta, 0, len(sums))
	for id, amount := range sums {
		result = append(result, BalanceDelta{AccountID: id, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		return CompareIDs(result[i].AccountID, result[j].AccountID) < 0
	})
	return result
}

// CompareIDs orders UUIDs bytewise, which matches their canonical string order.
func CompareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// SortedIDs returns the distinct IDs in lock order.
func SortedIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return CompareIDs(result[i], result[j]) < 0
	})
	return result
}
