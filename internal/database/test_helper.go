package database

import (
	"fmt"
	"testing"

	"ledger-bot/internal/config"
	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, externalID int64) *models.User {
	t.Helper()

	username := fmt.Sprintf("user%d", externalID)
	user := &models.User{
		ExternalID: externalID,
		Username:   &username,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestAccount(t *testing.T, db *DB, userID uuid.UUID, title string, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Title:    title,
		Currency: "RUB",
		Balance:  decimal.RequireFromString(balance),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCategory(t *testing.T, db *DB, userID uuid.UUID, title string, subcategories ...string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Title:  title,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	for _, subTitle := range subcategories {
		sub := models.Subcategory{CategoryID: category.ID, Title: subTitle}
		if err := db.Create(&sub).Error; err != nil {
			t.Fatalf("failed to create test subcategory: %v", err)
		}
		category.Subcategories = append(category.Subcategories, sub)
	}

	return category
}

func CreateTestAlias(t *testing.T, db *DB, userID uuid.UUID, alias, target string) *models.Alias {
	t.Helper()

	a := &models.Alias{
		UserID: userID,
		Alias:  alias,
		Target: target,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("failed to create test alias: %v", err)
	}

	return a
}

// AccountBalance reloads an account balance straight from the table
func AccountBalance(t *testing.T, db *DB, accountID uuid.UUID) decimal.Decimal {
	t.Helper()

	var account models.Account
	if err := db.First(&account, "id = ?", accountID).Error; err != nil {
		t.Fatalf("failed to load account: %v", err)
	}
	return account.Balance
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transfers",
		"entries",
		"aliases",
		"subcategories",
		"categories",
		"accounts",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
