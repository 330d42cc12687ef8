package database

import (
	"context"
	"crm/config"
	"crm/internal/logger"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewSQL_Success(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := NewSQL(testConfig)
	require.NoError(t, err)
	require.NotNil(t, db.SQL)

	assert.FileExists(t, testConfig.DatabaseDbPath)

	assert.NoError(t, db.Close())
}

func TestNewSQL_EmptyPath(t *testing.T) {
	_, err := NewSQL(config.Config{DatabaseDbPath: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path is empty")
}

func TestNew_RequiresCache(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	// The full constructor needs a cache address; only NewSQL runs
	// without one.
	_, err := New(testConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache address or port is empty")
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(t *testing.T, dsn string)
	}{
		{
			name: "file path gets WAL and busy timeout",
			path: "data/crm.db",
			expect: func(t *testing.T, dsn string) {
				assert.True(t, strings.HasPrefix(dsn, "data/crm.db?"))
				assert.Contains(t, dsn, "_journal_mode=WAL")
				assert.Contains(t, dsn, "_busy_timeout=10000")
				assert.Contains(t, dsn, "_foreign_keys=on")
			},
		},
		{
			name: "in-memory path passes through",
			path: ":memory:",
			expect: func(t *testing.T, dsn string) {
				assert.Equal(t, ":memory:", dsn)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect(t, dsn(tt.path))
		})
	}
}

func TestMigrate(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := NewSQL(testConfig)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	applied, err := db.Migrate()
	require.NoError(t, err)
	assert.Greater(t, applied, 0)

	// All domain tables exist afterwards.
	for _, table := range []string{"recruits", "communications", "message_templates", "mentors", "meetings", "goals"} {
		var count int64
		err := db.SQL.Table(table).Count(&count).Error
		assert.NoError(t, err, "table %s should exist", table)
	}

	// Re-running is a no-op.
	applied, err = db.Migrate()
	require.NoError(t, err)
	assert.Equal(t, 0, applied)
}

func TestClose_WithNilSQL(t *testing.T) {
	db := &DB{log: logger.New("test")}
	assert.NoError(t, db.Close())
}

func TestSQLWithContext(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := NewSQL(testConfig)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	gormDB := db.SQLWithContext(context.Background())
	assert.NotNil(t, gormDB)
	assert.NotEqual(t, db.SQL, gormDB)
}

func TestTXDefer_Success(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := NewSQL(testConfig)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.SQL.Exec("CREATE TABLE tx_test (id INTEGER PRIMARY KEY, name TEXT)").Error)

	tx := db.SQL.Begin()
	require.NoError(t, tx.Error)
	require.NoError(t, tx.Exec("INSERT INTO tx_test (name) VALUES (?)", "committed").Error)

	TXDefer(tx, logger.New("test"))

	var count int64
	require.NoError(t, db.SQL.Table("tx_test").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTXDefer_RollsBackOnError(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := NewSQL(testConfig)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.SQL.Exec("CREATE TABLE tx_test (id INTEGER PRIMARY KEY, name TEXT)").Error)

	tx := db.SQL.Begin()
	require.NoError(t, tx.Error)
	require.NoError(t, tx.Exec("INSERT INTO tx_test (name) VALUES (?)", "abandoned").Error)

	tx.Error = gorm.ErrInvalidTransaction
	TXDefer(tx, logger.New("test"))

	var count int64
	require.NoError(t, db.SQL.Table("tx_test").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFlushAllCaches_NoClients(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := NewSQL(testConfig)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Without cache clients there is nothing to flush; the dev-boot
	// flush must not fail a cacheless setup.
	assert.NoError(t, db.FlushAllCaches())
}

func TestCacheBuilder_NilClient(t *testing.T) {
	builder := NewCacheBuilder(nil, "some-key")

	var dest string
	found, err := builder.Get(&dest)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrNilCacheClient)

	assert.ErrorIs(t, builder.WithStruct("value").Set(), ErrNilCacheClient)
	assert.ErrorIs(t, builder.Delete(), ErrNilCacheClient)
}
