package services

import (
	"context"
	"testing"

	"ledger-bot/internal/database"
	"ledger-bot/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		offset, limit         int
		wantOffset, wantLimit int
	}{
		{0, 10, 0, 10},
		{-5, 10, 0, 10},
		{20, 0, 20, MaxHistoryLimit},
		{0, MaxHistoryLimit + 1, 0, MaxHistoryLimit},
	}

	for _, tt := range tests {
		offset, limit := clampPage(tt.offset, tt.limit)
		assert.Equal(t, tt.wantOffset, offset)
		assert.Equal(t, tt.wantLimit, limit)
	}
}

func TestHistoryService_ClampsBeforeQuerying(t *testing.T) {
	ctrl := gomock.NewController(t)
	entryRepo := repository_mocks.NewMockEntryRepositoryInterface(ctrl)
	transferRepo := repository_mocks.NewMockTransferRepositoryInterface(ctrl)
	service := NewHistoryService(entryRepo, transferRepo)
	userID := uuid.New()

	entryRepo.EXPECT().GetByUserID(gomock.Any(), userID, 0, MaxHistoryLimit).Return(nil, int64(0), nil)
	transferRepo.EXPECT().GetByUserID(gomock.Any(), userID, 5, 20).Return(nil, int64(0), nil)

	_, _, err := service.ListEntries(context.Background(), userID, -1, 1000)
	require.NoError(t, err)
	_, _, err = service.ListTransfers(context.Background(), userID, 5, 20)
	require.NoError(t, err)
}

func TestHistoryService_NewestFirst(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	user := database.CreateTestUser(t, stack.db, 7)
	database.CreateTestAccount(t, stack.db, user.ID, "Карта", "0")
	database.CreateTestAccount(t, stack.db, user.ID, "Наличные", "0")
	database.CreateTestCategory(t, stack.db, user.ID, "Еда")

	for _, text := range []string{"+1 карта еда", "+2 карта еда", "+3 карта еда", "1 карта наличные", "2 наличные карта"} {
		_, err := stack.commands.HandleCommand(ctx, user.ID, text)
		require.NoError(t, err)
	}

	entries, total, err := stack.history.ListEntries(ctx, user.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, entries, 2)
	assert.True(t, decimal.NewFromInt(3).Equal(entries[0].Amount))

	transfers, total, err := stack.history.ListTransfers(ctx, user.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, transfers, 1)
	assert.True(t, decimal.NewFromInt(1).Equal(transfers[0].AmountFrom))
}
