package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm/logger"

	"github.com/javajoker/product-api/internal/config"
)

var testConfig = config.DatabaseConfig{
	MaxOpenConns: 4,
	MaxIdleConns: 2,
	MaxLifetime:  60,
	LogLevel:     "silent",
}

func TestOpenPingsAndCloses(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	// gorm pings on open, then Open pings again with a deadline.
	mock.ExpectPing()
	mock.ExpectPing()
	mock.ExpectClose()

	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}), testConfig)
	require.NoError(t, err)

	stats := sqlDB.Stats()
	assert.Equal(t, 4, stats.MaxOpenConnections)

	Close(db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenFailsWhenDatabaseUnreachable(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}), testConfig)
	assert.Nil(t, db)
	assert.ErrorContains(t, err, "connection refused")
}

func TestInitializeRejectsEmptyURL(t *testing.T) {
	db, err := Initialize(config.DatabaseConfig{})
	assert.Nil(t, db)
	assert.Error(t, err)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLogLevel("silent"))
	assert.Equal(t, logger.Error, gormLogLevel("error"))
	assert.Equal(t, logger.Warn, gormLogLevel("warn"))
	assert.Equal(t, logger.Info, gormLogLevel("info"))
	assert.Equal(t, logger.Silent, gormLogLevel(""))
}
