package services

import (
	"fmt"
	"regexp"
	"strings"

	ledgererrors "ledger-bot/internal/errors"

	"github.com/shopspring/decimal"
)

// multiplierLetters are the Latin "k" and its Cyrillic look-alike. Each
// occurrence multiplies the amount by 1000.
var multiplierLetters = []string{"k", "к"}

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// ParseAmount turns a raw amount token such as "-0,5k" or "1кк" into a
// decimal. Letters are counted and stripped before the number is read, so
// they may appear anywhere in the token. No magnitude limit is applied here.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.ToLower(raw)

	thousands := 0
	for _, letter := range multiplierLetters {
		thousands += strings.Count(s, letter)
		s = strings.ReplaceAll(s, letter, "")
	}
	s = strings.ReplaceAll(s, ",", ".")

	value, err := parseDecimal(s)
	if err != nil {
		return decimal.Zero, ledgererrors.NewLedgerError(ledgererrors.CantRecognizeAmount, ledgererrors.WithCause(err))
	}

	return value.Shift(int32(3 * thousands)), nil
}

// parseDecimal accepts an optional sign and digits with at most one point,
// surrounded by optional whitespace
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("not a decimal number: %q", s)
	}

	sign := ""
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")

	return decimal.NewFromString(sign + s)
}
