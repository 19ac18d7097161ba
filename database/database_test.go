package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studieren/compliments/config"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "compliments.db?_foreign_keys=on", SQLiteDSN("compliments.db"))
	assert.Equal(t, ":memory:?cache=shared&_foreign_keys=on", SQLiteDSN(":memory:?cache=shared"))
	assert.Equal(t, "x.db?_fk=1", SQLiteDSN("x.db?_fk=1"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"}, "silent")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrate_CreatesTables(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}, "silent")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))
	assert.True(t, db.Config.TranslateError)

	for _, table := range []string{"users", "tags", "compliments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestConnectRedis(t *testing.T) {
	rdb, err := ConnectRedis(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, rdb)

	mr := miniredis.RunT(t)
	rdb, err = ConnectRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	defer rdb.Close()
}
