package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"futsalcourt/internal/domain"
)

func TestConnectSQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err, "the sqlite driver must be registered")
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&domain.Student{RollNo: "2021CS001"}).Error)

	var count int64
	require.NoError(t, db.Model(&domain.Student{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestConnectSQLiteFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "futsal.db")

	db, err := Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&domain.Student{RollNo: "2021CS002"}).Error)
}
