package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/back-informatica/chamados/internal/shared/config"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.Equal(t, 60, cfg.Platform.TokenTTLMinutes)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "chamados", cfg.Telemetry.ServiceName)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CHAMADOS_SERVER_PORT", "9090")
	t.Setenv("CHAMADOS_DATABASE_DRIVER", "mongo")
	t.Setenv("CHAMADOS_PLATFORM_SERVICE_ACCOUNT", `{"project_id":"demo"}`)

	cfg, err := load(viper.New(), "release")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, sharedConfig.DriverMongo, cfg.Database.Driver)
	assert.False(t, cfg.Database.IsSQL())

	blob, err := cfg.Platform.CredentialJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"project_id":"demo"}`, string(blob))
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      sharedConfig.DatabaseConfig
		expected string
	}{
		{
			name:     "mysql",
			cfg:      sharedConfig.DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Username: "u", Password: "p", Database: "chamados"},
			expected: "u:p@tcp(db:3306)/chamados?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name:     "postgres",
			cfg:      sharedConfig.DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, Username: "u", Password: "p", Database: "chamados"},
			expected: "host=db port=5432 user=u password=p dbname=chamados sslmode=disable TimeZone=UTC",
		},
		{
			name:     "sqlite memory",
			cfg:      sharedConfig.DatabaseConfig{Driver: "sqlite", Database: ":memory:"},
			expected: ":memory:",
		},
		{
			name:     "sqlite bare name",
			cfg:      sharedConfig.DatabaseConfig{Driver: "sqlite", Database: "chamados"},
			expected: "chamados.db",
		},
		{
			name:     "sqlite path",
			cfg:      sharedConfig.DatabaseConfig{Driver: "sqlite", Database: "/var/lib/chamados/data.sqlite"},
			expected: "/var/lib/chamados/data.sqlite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.GetDSN())
		})
	}
}

func TestPlatformConfig_CredentialJSON_Empty(t *testing.T) {
	p := sharedConfig.PlatformConfig{}
	blob, err := p.CredentialJSON()
	assert.NoError(t, err)
	assert.Nil(t, blob)
}
