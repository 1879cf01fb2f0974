package services

import (
	"errors"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"
)

type causeMapping struct {
	cause error
	code  ledgererrors.ErrorCode
}

var commandCauses = []causeMapping{
	{models.ErrAmountOverflow, ledgererrors.TooBigAmount},
	{repositories.ErrUserAlreadyExists, ledgererrors.UserAlreadyExists},
	// an account removed after the command resolved it
	{repositories.ErrAccountNotFound, ledgererrors.CantFindAccount},
}

var resourceCauses = []causeMapping{
	{repositories.ErrAccountNotFound, ledgererrors.AccountNotFound},
	{repositories.ErrAccountTitleTaken, ledgererrors.AccountTitleTaken},
	{repositories.ErrCategoryNotFound, ledgererrors.CategoryNotFound},
	{repositories.ErrCategoryTitleTaken, ledgererrors.CategoryTitleTaken},
	{repositories.ErrSubcategoryNotFound, ledgererrors.SubcategoryNotFound},
	{repositories.ErrSubcategoryTitleTaken, ledgererrors.CategoryTitleTaken},
	{repositories.ErrAliasNotFound, ledgererrors.AliasNotFound},
	{repositories.ErrAliasTaken, ledgererrors.AliasTaken},
	{repositories.ErrEntryNotFound, ledgererrors.EntryNotFound},
	{repositories.ErrTransferNotFound, ledgererrors.TransferNotFound},
	{repositories.ErrUserNotFound, ledgererrors.UserNotFound},
}

var validationCauses = []error{
	models.ErrTitleRequired,
	models.ErrTitleTooLong,
	models.ErrCurrencyRequired,
	models.ErrCurrencyTooLong,
	models.ErrAliasRequired,
	models.ErrAliasTooLong,
	models.ErrAliasSingleToken,
}

// ClassifyError translates a command failure into a *LedgerError carrying
// one of the command codes. LedgerErrors pass through unchanged. Anything it
// does not recognise is returned as is, so infrastructure failures keep
// propagating.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if le, ok := ledgererrors.AsLedgerError(err); ok {
		return le
	}
	if le, ok := classify(err, commandCauses); ok {
		return le
	}
	return err
}

// classifyManagementError maps the resource and validation failures of the
// management operations, then falls back to the command codes
func classifyManagementError(err error) error {
	if err == nil {
		return nil
	}
	if le, ok := ledgererrors.AsLedgerError(err); ok {
		return le
	}
	for _, cause := range validationCauses {
		if errors.Is(err, cause) {
			return ledgererrors.NewLedgerError(ledgererrors.ValidationInvalidFormat,
				ledgererrors.WithUserMessage(cause.Error()), ledgererrors.WithCause(err))
		}
	}
	if le, ok := classify(err, resourceCauses); ok {
		return le
	}
	return ClassifyError(err)
}

func classify(err error, mappings []causeMapping) (*ledgererrors.LedgerError, bool) {
	for _, m := range mappings {
		if errors.Is(err, m.cause) {
			return ledgererrors.NewLedgerError(m.code, ledgererrors.WithCause(err)), true
		}
	}
	return nil, false
}
