package services

import (
	"context"
	"fmt"
	"log/slog"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"

	"github.com/google/uuid"
)

type aliasService struct {
	aliasRepo repositories.AliasRepositoryInterface
	resolver  AliasResolverInterface
	logger    *slog.Logger
}

func NewAliasService(
	aliasRepo repositories.AliasRepositoryInterface,
	resolver AliasResolverInterface,
	logger *slog.Logger,
) AliasServiceInterface {
	return &aliasService{
		aliasRepo: aliasRepo,
		resolver:  resolver,
		logger:    logger,
	}
}

// CreateAlias binds a token to the title of one of the user's accounts,
// categories or subcategories. The target is stored with the spelling of the
// entity it names.
func (s *aliasService) CreateAlias(ctx context.Context, userID uuid.UUID, alias, target string) (*models.Alias, error) {
	resolved, err := s.resolver.ResolveTitle(ctx, userID, target)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, ledgererrors.NewLedgerError(ledgererrors.AliasNotFound,
			ledgererrors.WithUserMessage(fmt.Sprintf("Nothing is titled %q", target)))
	}

	record := &models.Alias{
		UserID: userID,
		Alias:  alias,
		Target: targetTitle(resolved),
	}
	if err := s.aliasRepo.Create(ctx, record); err != nil {
		return nil, classifyManagementError(err)
	}

	s.logger.InfoContext(ctx, "alias created",
		slog.String("alias", record.Alias),
		slog.String("target_kind", resolved.Kind.String()),
		slog.String("user_id", userID.String()),
	)
	return record, nil
}

func (s *aliasService) ListAliases(ctx context.Context, userID uuid.UUID) ([]models.Alias, error) {
	aliases, err := s.aliasRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list aliases: %w", err)
	}
	return aliases, nil
}

func (s *aliasService) DeleteAlias(ctx context.Context, userID, aliasID uuid.UUID) error {
	alias, err := s.aliasRepo.GetByID(ctx, aliasID)
	if err != nil {
		return classifyManagementError(err)
	}
	if alias.UserID != userID {
		return ledgererrors.NewLedgerError(ledgererrors.AliasNotFound)
	}

	if err := s.aliasRepo.Delete(ctx, aliasID); err != nil {
		return classifyManagementError(err)
	}
	return nil
}

func targetTitle(t *Target) string {
	switch t.Kind {
	case TargetCategory:
		return t.Category.Title
	case TargetSubcategory:
		return t.Subcategory.Title
	default:
		return t.Account.Title
	}
}
