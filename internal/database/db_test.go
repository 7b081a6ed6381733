package database

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/fancyword/internal/config"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "default port",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "wordnet",
				Username: "reader",
				Password: "secret",
			},
		},
		{
			name: "custom host and port",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3307,
				Database: "wordnet31",
				Username: "admin",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := mysql.ParseDSN(DSN(tt.cfg))
			require.NoError(t, err)

			assert.Equal(t, tt.cfg.Username, parsed.User)
			assert.Equal(t, tt.cfg.Password, parsed.Passwd)
			assert.Equal(t, "tcp", parsed.Net)
			assert.Equal(t, tt.cfg.Database, parsed.DBName)
			assert.True(t, parsed.ParseTime)
		})
	}
}

func TestOpen_Unreachable(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		Database: "wordnet",
		Username: "reader",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping database wordnet")
}
