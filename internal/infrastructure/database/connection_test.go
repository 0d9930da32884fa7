package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/back-informatica/chamados/internal/shared/config"
)

func TestOpen_SQLiteMemory(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{Driver: config.DriverSQLite, Database: ":memory:"})
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	assert.NoError(t, Close(db))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: config.DriverMongo})
	assert.ErrorContains(t, err, "unsupported sql driver")
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
