package services

import (
	"strings"
	"testing"

	ledgererrors "ledger-bot/internal/errors"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "500", "500"},
		{"comma separator", "-0,5k", "-500"},
		{"point separator", "12.34", "12.34"},
		{"explicit plus", "+1.5К", "1500"},
		{"cyrillic and latin together", "1кk", "1000000"},
		{"uppercase latin", "2K", "2000"},
		{"leading letter", "k1", "1000"},
		{"interleaved letter", "1k5", "15000"},
		{"leading point", ".5k", "500"},
		{"trailing point", "5.", "5"},
		{"zero", "0", "0"},
		{"eleven letters", "100kkkkkkkkkkk", "100" + strings.Repeat("000", 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseAmount_Unrecognized(t *testing.T) {
	for _, input := range []string{"", "k", "abc", "1,2,3", "--1", "1 000", "½", "NaN", "1_000", "1e2", "1E-2k", "1e2000000000"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input)
			assert.True(t, ledgererrors.HasCode(err, ledgererrors.CantRecognizeAmount), "input %q: %v", input, err)
		})
	}
}

// Every multiplier letter scales by exactly 1000 and a comma reads as a point
func TestParseAmount_MultiplierProperty(t *testing.T) {
	gofakeit.Seed(42)
	letters := []string{"k", "K", "к", "К"}

	for i := 0; i < 200; i++ {
		value := decimal.NewFromFloat(gofakeit.Float64Range(-1e6, 1e6)).Round(2)
		n := gofakeit.Number(0, 4)

		token := strings.Replace(value.String(), ".", ",", 1)
		for j := 0; j < n; j++ {
			token += letters[gofakeit.Number(0, len(letters)-1)]
		}

		got, err := ParseAmount(token)
		require.NoError(t, err, token)
		assert.True(t, value.Shift(int32(3*n)).Equal(got), "token %q parsed as %s", token, got)
	}
}
