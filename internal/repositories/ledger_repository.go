package repositories

import (
	"context"
	"errors"
	"fmt"

	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrLedgerRecordNotFound = errors.New("ledger record not found")

	// errCascadeConflict means records were added to a parent while it was
	// being removed; the transaction is rolled back and retried.
	errCascadeConflict = errors.New("ledger records changed during cascade")
)

const maxCascadeAttempts = 3

// ledgerRepository implements LedgerRepositoryInterface.
//
// Lock order inside every transaction: ledger record rows in ID order, then
// account rows in ID order. Creates lock accounts only.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates the repository that owns all balance changes
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{db: db}
}

// Create persists a new entry or transfer and applies its effects
func (r *ledgerRepository) Create(ctx context.Context, record models.LedgerRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		effects := record.Effects()
		if err := checkEffects(effects); err != nil {
			return err
		}
		locked, err := lockAccounts(tx, deltaAccountIDs(effects))
		if err != nil {
			return err
		}
		if err := requireLocked(locked, effects); err != nil {
			return err
		}
		if err := applyDeltas(tx, locked, effects); err != nil {
			return err
		}

		if err := tx.Create(record).Error; err != nil {
			if errors.Is(err, models.ErrAmountOverflow) || isNumericOverflowError(err) {
				return models.ErrAmountOverflow
			}
			return fmt.Errorf("failed to create ledger record: %w", err)
		}
		return nil
	})
}

// Delete reloads the record, reverses its effects using the accounts as
// they are now, and removes it. A record that no longer exists changes
// nothing and yields ErrLedgerRecordNotFound.
func (r *ledgerRepository) Delete(ctx context.Context, record models.LedgerRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLedgerRecordNotFound
			}
			return fmt.Errorf("failed to load ledger record: %w", err)
		}

		reversal := models.ReverseDeltas(record.Effects())
		locked, err := lockAccounts(tx, deltaAccountIDs(reversal))
		if err != nil {
			return err
		}
		if err := requireLocked(locked, reversal); err != nil {
			return err
		}
		if err := applyDeltas(tx, locked, reversal); err != nil {
			return err
		}

		return deleteRecord(tx, record)
	})
}

// DeleteAccount reverses and removes every entry and transfer touching the
// account, then removes the account. Counterpart balances of transfers are
// restored; the doomed account's own balance is not touched.
func (r *ledgerRepository) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	return r.cascade(ctx, cascadePlan{
		doomed: func(tx *gorm.DB) ([]uuid.UUID, error) {
			var account models.Account
			if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrAccountNotFound
				}
				return nil, fmt.Errorf("failed to load account: %w", err)
			}
			return []uuid.UUID{accountID}, nil
		},
		entries: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("account_id = ?", accountID)
		},
		transfers: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("account_from_id = ? OR account_to_id = ?", accountID, accountID)
		},
		finalize: func(tx *gorm.DB) error {
			if err := tx.Delete(&models.Account{}, "id = ?", accountID).Error; err != nil {
				return fmt.Errorf("failed to delete account: %w", err)
			}
			return nil
		},
	})
}

// DeleteCategory reverses and removes the category's entries, then removes
// its subcategories and the category itself.
func (r *ledgerRepository) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return r.cascade(ctx, cascadePlan{
		doomed: func(tx *gorm.DB) ([]uuid.UUID, error) {
			var category models.Category
			if err := tx.First(&category, "id = ?", categoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrCategoryNotFound
				}
				return nil, fmt.Errorf("failed to load category: %w", err)
			}
			return nil, nil
		},
		entries: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("category_id = ?", categoryID)
		},
		finalize: func(tx *gorm.DB) error {
			if err := tx.Delete(&models.Subcategory{}, "category_id = ?", categoryID).Error; err != nil {
				return fmt.Errorf("failed to delete subcategories: %w", err)
			}
			if err := tx.Delete(&models.Category{}, "id = ?", categoryID).Error; err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}
			return nil
		},
	})
}

// DeleteSubcategory reverses and removes the subcategory's entries, then
// removes the subcategory.
func (r *ledgerRepository) DeleteSubcategory(ctx context.Context, subcategoryID uuid.UUID) error {
	return r.cascade(ctx, cascadePlan{
		doomed: func(tx *gorm.DB) ([]uuid.UUID, error) {
			var subcategory models.Subcategory
			if err := tx.First(&subcategory, "id = ?", subcategoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrSubcategoryNotFound
				}
				return nil, fmt.Errorf("failed to load subcategory: %w", err)
			}
			return nil, nil
		},
		entries: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("subcategory_id = ?", subcategoryID)
		},
		finalize: func(tx *gorm.DB) error {
			if err := tx.Delete(&models.Subcategory{}, "id = ?", subcategoryID).Error; err != nil {
				return fmt.Errorf("failed to delete subcategory: %w", err)
			}
			return nil
		},
	})
}

// PurgeUser removes everything the user owns. Transfers to accounts of other
// users are reversed on the surviving side.
func (r *ledgerRepository) PurgeUser(ctx context.Context, userID uuid.UUID) error {
	userAccounts := func(tx *gorm.DB) *gorm.DB {
		return tx.Session(&gorm.Session{NewDB: true}).Model(&models.Account{}).Select("id").Where("user_id = ?", userID)
	}
	userCategories := func(tx *gorm.DB) *gorm.DB {
		return tx.Session(&gorm.Session{NewDB: true}).Model(&models.Category{}).Select("id").Where("user_id = ?", userID)
	}

	return r.cascade(ctx, cascadePlan{
		doomed: func(tx *gorm.DB) ([]uuid.UUID, error) {
			var user models.User
			if err := tx.First(&user, "id = ?", userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrUserNotFound
				}
				return nil, fmt.Errorf("failed to load user: %w", err)
			}

			var ids []uuid.UUID
			if err := tx.Model(&models.Account{}).Where("user_id = ?", userID).Pluck("id", &ids).Error; err != nil {
				return nil, fmt.Errorf("failed to list user accounts: %w", err)
			}
			return ids, nil
		},
		entries: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("account_id IN (?) OR category_id IN (?)", userAccounts(tx), userCategories(tx))
		},
		transfers: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("account_from_id IN (?) OR account_to_id IN (?)", userAccounts(tx), userAccounts(tx))
		},
		finalize: func(tx *gorm.DB) error {
			steps := []struct {
				name  string
				model interface{}
				query string
				arg   interface{}
			}{
				{"aliases", &models.Alias{}, "user_id = ?", userID},
				{"subcategories", &models.Subcategory{}, "category_id IN (?)", userCategories(tx)},
				{"categories", &models.Category{}, "user_id = ?", userID},
				{"accounts", &models.Account{}, "user_id = ?", userID},
				{"user", &models.User{}, "id = ?", userID},
			}
			for _, step := range steps {
				if err := tx.Delete(step.model, step.query, step.arg).Error; err != nil {
					return fmt.Errorf("failed to delete %s: %w", step.name, err)
				}
			}
			return nil
		},
	})
}

// cascadePlan describes the removal of a parent row together with the
// ledger records that reference it.
type cascadePlan struct {
	// doomed checks the parent exists and returns the accounts that are
	// removed with it; their balances are locked but not adjusted.
	doomed func(tx *gorm.DB) ([]uuid.UUID, error)
	// entries and transfers scope the dependent records; nil means none.
	entries   func(tx *gorm.DB) *gorm.DB
	transfers func(tx *gorm.DB) *gorm.DB
	finalize  func(tx *gorm.DB) error
}

func (r *ledgerRepository) cascade(ctx context.Context, plan cascadePlan) error {
	var err error
	for attempt := 0; attempt < maxCascadeAttempts; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return runCascade(tx, plan)
		})
		if !errors.Is(err, errCascadeConflict) {
			return err
		}
	}
	return fmt.Errorf("cascade delete gave up after %d attempts: %w", maxCascadeAttempts, err)
}

func runCascade(tx *gorm.DB, plan cascadePlan) error {
	doomedIDs, err := plan.doomed(tx)
	if err != nil {
		return err
	}
	doomed := make(map[uuid.UUID]struct{}, len(doomedIDs))
	for _, id := range doomedIDs {
		doomed[id] = struct{}{}
	}

	records, err := lockRecords(tx, plan)
	if err != nil {
		return err
	}

	var reversal []models.BalanceDelta
	for _, record := range records {
		for _, d := range models.ReverseDeltas(record.Effects()) {
			if _, gone := doomed[d.AccountID]; !gone {
				reversal = append(reversal, d)
			}
		}
	}

	// Locking the doomed accounts blocks new records on them until commit.
	locked, err := lockAccounts(tx, append(deltaAccountIDs(reversal), doomedIDs...))
	if err != nil {
		return err
	}
	// A counterpart account that vanished has nothing left to restore.
	surviving := reversal[:0]
	for _, d := range reversal {
		if _, ok := locked[d.AccountID]; ok {
			surviving = append(surviving, d)
		}
	}
	if err := applyDeltas(tx, locked, surviving); err != nil {
		return err
	}

	for _, record := range records {
		if err := deleteRecord(tx, record); err != nil {
			if errors.Is(err, ErrLedgerRecordNotFound) {
				return errCascadeConflict
			}
			return err
		}
	}

	if remaining, err := countRecords(tx, plan); err != nil {
		return err
	} else if remaining > 0 {
		return errCascadeConflict
	}

	return plan.finalize(tx)
}

func lockRecords(tx *gorm.DB, plan cascadePlan) ([]models.LedgerRecord, error) {
	var records []models.LedgerRecord

	if plan.entries != nil {
		var entries []models.Entry
		err := plan.entries(tx.Clauses(clause.Locking{Strength: "UPDATE"})).
			Order("id").Find(&entries).Error
		if err != nil {
			return nil, fmt.Errorf("failed to lock entries: %w", err)
		}
		for i := range entries {
			records = append(records, &entries[i])
		}
	}

	if plan.transfers != nil {
		var transfers []models.Transfer
		err := plan.transfers(tx.Clauses(clause.Locking{Strength: "UPDATE"})).
			Order("id").Find(&transfers).Error
		if err != nil {
			return nil, fmt.Errorf("failed to lock transfers: %w", err)
		}
		for i := range transfers {
			records = append(records, &transfers[i])
		}
	}

	return records, nil
}

func countRecords(tx *gorm.DB, plan cascadePlan) (int64, error) {
	var total int64
	if plan.entries != nil {
		var n int64
		if err := plan.entries(tx.Model(&models.Entry{})).Count(&n).Error; err != nil {
			return 0, fmt.Errorf("failed to count entries: %w", err)
		}
		total += n
	}
	if plan.transfers != nil {
		var n int64
		if err := plan.transfers(tx.Model(&models.Transfer{})).Count(&n).Error; err != nil {
			return 0, fmt.Errorf("failed to count transfers: %w", err)
		}
		total += n
	}
	return total, nil
}

func deleteRecord(tx *gorm.DB, record models.LedgerRecord) error {
	result := tx.Delete(record)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ledger record: %w", result.Error)
	}
	if result.RowsAffected != 1 {
		return ErrLedgerRecordNotFound
	}
	return nil
}

// lockAccounts takes row locks on the given accounts in ID order and returns
// the ones that exist.
func lockAccounts(tx *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]*models.Account, error) {
	locked := make(map[uuid.UUID]*models.Account, len(ids))
	for _, id := range models.SortedIDs(ids) {
		var account models.Account
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to lock account %s: %w", id, err)
		}
		locked[id] = &account
	}
	return locked, nil
}

func requireLocked(locked map[uuid.UUID]*models.Account, deltas []models.BalanceDelta) error {
	for _, d := range deltas {
		if _, ok := locked[d.AccountID]; !ok {
			return ErrAccountNotFound
		}
	}
	return nil
}

// checkEffects rejects amounts that could never be stored before any of them
// is added to a balance
func checkEffects(deltas []models.BalanceDelta) error {
	for _, d := range deltas {
		if err := models.CheckAmount(d.Amount); err != nil {
			return err
		}
	}
	return nil
}

// applyDeltas adds the aggregated deltas to the locked balances. Any
// resulting balance outside the storage range aborts the transaction.
func applyDeltas(tx *gorm.DB, locked map[uuid.UUID]*models.Account, deltas []models.BalanceDelta) error {
	for _, d := range models.AggregateDeltas(deltas) {
		account := locked[d.AccountID]
		balance := models.RoundAmount(account.Balance.Add(d.Amount))
		if err := models.CheckAmount(balance); err != nil {
			return err
		}

		if err := tx.Model(account).Update("balance", balance).Error; err != nil {
			if isNumericOverflowError(err) {
				return models.ErrAmountOverflow
			}
			return fmt.Errorf("failed to update balance of account %s: %w", d.AccountID, err)
		}
		account.Balance = balance
	}
	return nil
}

func deltaAccountIDs(deltas []models.BalanceDelta) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(deltas))
	for _, d := range deltas {
		ids = append(ids, d.AccountID)
	}
	return ids
}
