package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"

	"github.com/google/uuid"
)

// TargetKind tags the entity a Target holds
type TargetKind int

const (
	TargetCategory TargetKind = iota + 1
	TargetSubcategory
	TargetAccount
)

func (k TargetKind) String() string {
	switch k {
	case TargetCategory:
		return "category"
	case TargetSubcategory:
		return "subcategory"
	case TargetAccount:
		return "account"
	default:
		return "unknown"
	}
}

// Target is the entity an alias or title resolved to. Exactly one of the
// pointers matching Kind is set.
type Target struct {
	Kind        TargetKind
	Category    *models.Category
	Subcategory *models.Subcategory
	Account     *models.Account
}

// EntryCategory returns the category and optional subcategory an entry
// described by this target is filed under
func (t *Target) EntryCategory() (*models.Category, *models.Subcategory, bool) {
	switch t.Kind {
	case TargetCategory:
		return t.Category, nil, true
	case TargetSubcategory:
		return t.Subcategory.Category, t.Subcategory, t.Subcategory.Category != nil
	default:
		return nil, nil, false
	}
}

// targetLookup finds one kind of entity by title. A nil target with a nil
// error means no match.
type targetLookup func(ctx context.Context, userID uuid.UUID, title string) (*Target, error)

type aliasResolver struct {
	aliasRepo    repositories.AliasRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewAliasResolver creates the resolver used by the command pipeline
func NewAliasResolver(
	aliasRepo repositories.AliasRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) AliasResolverInterface {
	return &aliasResolver{
		aliasRepo:    aliasRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ResolveAccount follows an alias to an account title, or matches the token
// against account titles when no alias exists. An alias whose target is not
// an account does not fall back to the title match.
func (r *aliasResolver) ResolveAccount(ctx context.Context, userID uuid.UUID, token string) (*models.Account, error) {
	title := token
	alias, err := r.aliasRepo.FindByAlias(ctx, userID, token)
	switch {
	case err == nil:
		title = alias.Target
	case !errors.Is(err, repositories.ErrAliasNotFound):
		return nil, fmt.Errorf("failed to look up alias: %w", err)
	}

	target, err := r.lookupAccount(ctx, userID, title)
	if err != nil {
		return nil, err
	}
	if target == nil {
		r.logger.DebugContext(ctx, "account not resolved", slog.String("token", token))
		return nil, ledgererrors.NewLedgerError(ledgererrors.CantFindAccount)
	}
	return target.Account, nil
}

// ResolveDescription resolves the description token of an entry. An alias
// target is tried as a category, then a subcategory, then an account; a bare
// token is tried as a category, then a subcategory. Only categories and
// subcategories can describe an entry.
func (r *aliasResolver) ResolveDescription(ctx context.Context, userID uuid.UUID, token string) (*Target, error) {
	var (
		target *Target
		err    error
	)

	alias, err := r.aliasRepo.FindByAlias(ctx, userID, token)
	switch {
	case err == nil:
		target, err = r.firstMatch(ctx, userID, alias.Target, r.aliasLookups())
	case errors.Is(err, repositories.ErrAliasNotFound):
		target, err = r.firstMatch(ctx, userID, token, r.titleLookups())
	default:
		return nil, fmt.Errorf("failed to look up alias: %w", err)
	}
	if err != nil {
		return nil, err
	}

	if target == nil {
		r.logger.DebugContext(ctx, "description not resolved", slog.String("token", token))
		return nil, ledgererrors.NewLedgerError(ledgererrors.CantFindCategory)
	}
	if _, _, ok := target.EntryCategory(); !ok {
		r.logger.DebugContext(ctx, "description alias points at an account", slog.String("token", token))
		return nil, ledgererrors.NewLedgerError(ledgererrors.CantFindCategory)
	}
	return target, nil
}

// ResolveTitle finds the entity an alias target title names, using the same
// precedence as alias resolution
func (r *aliasResolver) ResolveTitle(ctx context.Context, userID uuid.UUID, title string) (*Target, error) {
	return r.firstMatch(ctx, userID, title, r.aliasLookups())
}

func (r *aliasResolver) aliasLookups() []targetLookup {
	return []targetLookup{r.lookupCategory, r.lookupSubcategory, r.lookupAccount}
}

func (r *aliasResolver) titleLookups() []targetLookup {
	return []targetLookup{r.lookupCategory, r.lookupSubcategory}
}

func (r *aliasResolver) firstMatch(ctx context.Context, userID uuid.UUID, title string, lookups []targetLookup) (*Target, error) {
	for _, lookup := range lookups {
		target, err := lookup(ctx, userID, title)
		if err != nil {
			return nil, err
		}
		if target != nil {
			return target, nil
		}
	}
	return nil, nil
}

func (r *aliasResolver) lookupCategory(ctx context.Context, userID uuid.UUID, title string) (*Target, error) {
	category, err := r.categoryRepo.FindByTitle(ctx, userID, title)
	if errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	return &Target{Kind: TargetCategory, Category: category}, nil
}

func (r *aliasResolver) lookupSubcategory(ctx context.Context, userID uuid.UUID, title string) (*Target, error) {
	subcategory, err := r.categoryRepo.FindSubcategoryByTitle(ctx, userID, title)
	if errors.Is(err, repositories.ErrSubcategoryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up subcategory: %w", err)
	}
	return &Target{Kind: TargetSubcategory, Subcategory: subcategory}, nil
}

func (r *aliasResolver) lookupAccount(ctx context.Context, userID uuid.UUID, title string) (*Target, error) {
	account, err := r.accountRepo.FindByTitle(ctx, userID, title)
	if errors.Is(err, repositories.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	return &Target{Kind: TargetAccount, Account: account}, nil
}
