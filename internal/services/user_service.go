package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"

	"github.com/google/uuid"
)

type userService struct {
	userRepo    repositories.UserRepositoryInterface
	ledgerRepo  repositories.LedgerRepositoryInterface
	auditLogger AuditLoggerInterface
	logger      *slog.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	auditLogger AuditLoggerInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &userService{
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// EnsureUser returns the user registered for a chat id, registering it on
// first contact. A username held by a different chat id fails with
// UserAlreadyExists.
func (s *userService) EnsureUser(ctx context.Context, externalID int64, username string) (*models.User, error) {
	user, err := s.userRepo.GetByExternalID(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	username = strings.TrimSpace(username)
	if username != "" {
		owner, err := s.userRepo.GetByUsername(ctx, username)
		switch {
		case err == nil && owner.ExternalID != externalID:
			return nil, ledgererrors.NewLedgerError(ledgererrors.UserAlreadyExists)
		case err != nil && !errors.Is(err, repositories.ErrUserNotFound):
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
	}

	user = &models.User{ExternalID: externalID}
	if username != "" {
		user.Username = &username
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			// Lost a race with a concurrent first message from the same chat id
			if existing, getErr := s.userRepo.GetByExternalID(ctx, externalID); getErr == nil {
				return existing, nil
			}
		}
		return nil, ClassifyError(err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.Int64("external_id", externalID),
	)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, classifyManagementError(err)
	}
	return user, nil
}

// PurgeUser deletes the user together with everything the user owns
func (s *userService) PurgeUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.ledgerRepo.PurgeUser(ctx, userID); err != nil {
		return classifyManagementError(err)
	}
	s.auditLogger.LogUserPurged(ctx, userID)
	return nil
}
