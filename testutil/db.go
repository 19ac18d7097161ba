package testutil

import (
	"testing"

	"gorm.io/gorm"

	"github.com/studieren/compliments/config"
	"github.com/studieren/compliments/database"
)

// NewTestDB 创建已迁移的内存 SQLite 数据库，测试结束时关闭连接
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}, "silent")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	// :memory: 的每个新连接都是一个空库
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	return db
}
