package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"ledger-bot/internal/database"
	"ledger-bot/internal/events"
	"ledger-bot/internal/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingPublisher keeps published events for assertions
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]events.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

// testStack wires the real services over an in-memory database
type testStack struct {
	db         *database.DB
	publisher  *recordingPublisher
	resolver   AliasResolverInterface
	ledger     LedgerServiceInterface
	commands   CommandServiceInterface
	users      UserServiceInterface
	accounts   AccountServiceInterface
	categories CategoryServiceInterface
	aliases    AliasServiceInterface
	history    HistoryServiceInterface
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	db := database.SetupTestDB(t)
	logger := discardLogger()
	publisher := &recordingPublisher{}
	audit := NewAuditLogger(logger)
	metrics := NoopMetrics{}

	userRepo := repositories.NewUserRepository(db.DB)
	accountRepo := repositories.NewAccountRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	aliasRepo := repositories.NewAliasRepository(db.DB)
	entryRepo := repositories.NewEntryRepository(db.DB)
	transferRepo := repositories.NewTransferRepository(db.DB)
	ledgerRepo := repositories.NewLedgerRepository(db.DB)

	resolver := NewAliasResolver(aliasRepo, accountRepo, categoryRepo, logger)
	ledger := NewLedgerService(ledgerRepo, accountRepo, categoryRepo, entryRepo, transferRepo, publisher, audit, metrics, logger)

	return &testStack{
		db:         db,
		publisher:  publisher,
		resolver:   resolver,
		ledger:     ledger,
		commands:   NewCommandService(resolver, ledger, metrics, logger),
		users:      NewUserService(userRepo, ledgerRepo, audit, logger),
		accounts:   NewAccountService(accountRepo, ledgerRepo, audit, logger),
		categories: NewCategoryService(categoryRepo, ledgerRepo, logger),
		aliases:    NewAliasService(aliasRepo, resolver, logger),
		history:    NewHistoryService(entryRepo, transferRepo),
	}
}
