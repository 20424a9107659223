package testutil

import (
	"path/filepath"
	"testing"

	"learnhub/db"
	"learnhub/logger"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a bootstrapped sqlite database in a temp dir. A file is used
// rather than :memory: so every pooled connection sees the same schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := gorm.Open(db.DialectSQLite, db.SQLiteDSN(path))
	require.NoError(t, err)

	db.Configure(database, db.DialectSQLite, "prod", logger.NewNop())
	require.NoError(t, db.EnsureSchema(database, db.DialectSQLite))

	t.Cleanup(func() {
		database.Close()
	})
	return database
}
