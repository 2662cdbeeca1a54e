package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel slog.Level
	}{
		{name: "debug", level: "debug", wantLevel: slog.LevelDebug},
		{name: "warn", level: "warn", wantLevel: slog.LevelWarn},
		{name: "unknown falls back to info", level: "verbose", wantLevel: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.level)
			logger := slog.Default()
			assert.True(t, logger.Enabled(context.Background(), tt.wantLevel))
			assert.False(t, logger.Enabled(context.Background(), tt.wantLevel-1))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server:\n  port: 9090\n"), 0644))
	t.Setenv("ARTIKEL_CONFIG", cfgPath)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "artikel", cfg.Database.Database)
}

func TestPing(t *testing.T) {
	oldDelay := pingDelay
	pingDelay = time.Millisecond
	t.Cleanup(func() { pingDelay = oldDelay })

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "ready after a retry",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(errors.New("connection refused"))
				mock.ExpectPing()
			},
		},
		{
			name: "never ready",
			setup: func(mock sqlmock.Sqlmock) {
				for range pingAttempts {
					mock.ExpectPing().WillReturnError(errors.New("connection refused"))
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer mockDB.Close()
			tt.setup(mock)

			err = ping(context.Background(), sqlx.NewDb(mockDB, "sqlmock"))
			if tt.wantErr {
				assert.ErrorContains(t, err, "connection refused")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
