package database

import (
	"fmt"
	"testing"

	"statement-ledger/internal/config"
	"statement-ledger/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ledgerTables = []string{
	"transactions",
	"income",
	"goals",
	"categories",
}

// SetupTestDB opens a migrated in-memory sqlite ledger.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	testDB := openTestDB(t)
	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func openTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Each pooled connection would otherwise get its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })

	return &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}
}

// SeedTestCategories inserts the fixed categories.
func SeedTestCategories(t *testing.T, db *DB) {
	t.Helper()

	for _, category := range models.DefaultCategories() {
		category := category
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("failed to seed category %s: %v", category.Name, err)
		}
	}
}

// CreateTestGoal inserts a goal with the given allocation and no savings.
func CreateTestGoal(t *testing.T, db *DB, goal *models.Goal) *models.Goal {
	t.Helper()

	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}

	return goal
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range ledgerTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
