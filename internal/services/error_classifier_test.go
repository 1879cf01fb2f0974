package services

import (
	"errors"
	"fmt"
	"testing"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	assert.NoError(t, ClassifyError(nil))

	original := ledgererrors.NewLedgerError(ledgererrors.CantFindAccount)
	assert.Same(t, original, ClassifyError(fmt.Errorf("wrapped: %w", original)))

	overflow := ClassifyError(fmt.Errorf("failed to apply: %w", models.ErrAmountOverflow))
	assert.True(t, ledgererrors.HasCode(overflow, ledgererrors.TooBigAmount))
	assert.ErrorIs(t, overflow, models.ErrAmountOverflow)

	taken := ClassifyError(repositories.ErrUserAlreadyExists)
	assert.True(t, ledgererrors.HasCode(taken, ledgererrors.UserAlreadyExists))

	outage := errors.New("dial tcp: connection refused")
	assert.Same(t, outage, ClassifyError(outage))

	vanished := ClassifyError(fmt.Errorf("failed to lock: %w", repositories.ErrAccountNotFound))
	assert.True(t, ledgererrors.HasCode(vanished, ledgererrors.CantFindAccount), "got %v", vanished)

	// Other resource failures are not command errors
	assert.Equal(t, repositories.ErrCategoryNotFound, ClassifyError(repositories.ErrCategoryNotFound))
}

func TestClassifyManagementError(t *testing.T) {
	tests := []struct {
		err  error
		code ledgererrors.ErrorCode
	}{
		{repositories.ErrAccountNotFound, ledgererrors.AccountNotFound},
		{repositories.ErrAccountTitleTaken, ledgererrors.AccountTitleTaken},
		{repositories.ErrSubcategoryTitleTaken, ledgererrors.CategoryTitleTaken},
		{repositories.ErrAliasTaken, ledgererrors.AliasTaken},
		{fmt.Errorf("failed to load: %w", repositories.ErrTransferNotFound), ledgererrors.TransferNotFound},
		{models.ErrAmountOverflow, ledgererrors.TooBigAmount},
		{models.ErrTitleTooLong, ledgererrors.ValidationInvalidFormat},
		{models.ErrAliasSingleToken, ledgererrors.ValidationInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			err := classifyManagementError(tt.err)
			assert.True(t, ledgererrors.HasCode(err, tt.code), "got %v", err)
		})
	}

	outage := errors.New("disk full")
	assert.Same(t, outage, classifyManagementError(outage))
}
