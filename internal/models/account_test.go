package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name:    "valid account",
			account: Account{UserID: validUserID, Title: "Сбербанк", Currency: "RUB", Balance: decimal.NewFromFloat(1000.50)},
		},
		{
			name:    "negative balance is allowed",
			account: Account{UserID: validUserID, Title: "Кредитка", Currency: "RUB", Balance: decimal.NewFromInt(-3000)},
		},
		{
			name:    "missing title",
			account: Account{UserID: validUserID, Currency: "RUB"},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "title too long",
			account: Account{UserID: validUserID, Title: strings.Repeat("a", MaxTitleLength+1), Currency: "RUB"},
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "missing currency",
			account: Account{UserID: validUserID, Title: "Наличные"},
			wantErr: ErrCurrencyRequired,
		},
		{
			name:    "currency too long",
			account: Account{UserID: validUserID, Title: "Наличные", Currency: strings.Repeat("R", MaxCurrencyLength+1)},
			wantErr: ErrCurrencyTooLong,
		},
		{
			name:    "balance overflow",
			account: Account{UserID: validUserID, Title: "Наличные", Currency: "RUB", Balance: MaxAmount},
			wantErr: ErrAmountOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.Error(t, (&Account{Title: "Наличные", Currency: "RUB"}).Validate(), "user ID is required")
}

func TestAccount_BeforeCreate(t *testing.T) {
	account := &Account{
		UserID:   uuid.New(),
		Title:    "  Тинькофф Блэк ",
		Currency: "RUB",
		Balance:  decimal.RequireFromString("10.005"),
	}

	require.NoError(t, account.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "тинькофф блэк", account.TitleKey)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("10.01")))
}

func TestTitleKey(t *testing.T) {
	assert.Equal(t, "еда", TitleKey("ЕДА"))
	assert.Equal(t, "сбер банк", TitleKey(" Сбер Банк "))
}

func TestAlias_Validate(t *testing.T) {
	userID := uuid.New()

	alias := &Alias{UserID: userID, Alias: " СБЕР ", Target: "Сбербанк"}
	require.NoError(t, alias.BeforeCreate(nil))
	assert.Equal(t, "сбер", alias.Alias)

	assert.ErrorIs(t, (&Alias{UserID: userID, Target: "Сбербанк"}).Validate(), ErrAliasRequired)
	assert.ErrorIs(t, (&Alias{UserID: userID, Alias: "две части", Target: "Сбербанк"}).Validate(), ErrAliasSingleToken)
	assert.ErrorIs(t, (&Alias{UserID: userID, Alias: strings.Repeat("а", MaxAliasLength), Target: "Сбербанк"}).Validate(), ErrAliasTooLong)
	assert.ErrorIs(t, (&Alias{UserID: userID, Alias: "сбер"}).Validate(), ErrTitleRequired)
}
