package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	URI             string `mapstructure:"uri"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the connection string for the configured SQL driver.
// For sqlite the database field is the file path; a bare name gets a ".db"
// extension and ":memory:" is passed through.
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database)
	case DriverSQLite:
		if strings.ContainsAny(d.Database, ".:/") {
			return d.Database
		}
		return d.Database + ".db"
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

// GetMongoURI returns the explicit uri or one assembled from host and port.
func (d *DatabaseConfig) GetMongoURI() string {
	if d.URI != "" {
		return d.URI
	}
	if d.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d", d.Username, d.Password, d.Host, d.Port)
	}
	return fmt.Sprintf("mongodb://%s:%d", d.Host, d.Port)
}

func (d *DatabaseConfig) IsSQL() bool {
	return d.Driver != DriverMongo
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// PlatformConfig describes the identity/storage platform credential.
type PlatformConfig struct {
	// ServiceAccount is the raw JSON credential blob.
	ServiceAccount     string `mapstructure:"service_account"`
	ServiceAccountFile string `mapstructure:"service_account_file"`
	// ProjectID overrides the project_id found in the credential.
	ProjectID       string `mapstructure:"project_id"`
	TokenIssuer     string `mapstructure:"token_issuer"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
}

// CredentialJSON returns the credential blob, reading the file when the
// inline value is empty. An empty result with nil error means no credential
// was configured.
func (p *PlatformConfig) CredentialJSON() ([]byte, error) {
	if blob := strings.TrimSpace(p.ServiceAccount); blob != "" {
		return []byte(blob), nil
	}
	if p.ServiceAccountFile == "" {
		return nil, nil
	}
	data, err := os.ReadFile(p.ServiceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return data, nil
}

func (p *PlatformConfig) TokenTTL() time.Duration {
	if p.TokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(p.TokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	Insecure     bool   `mapstructure:"insecure"`
	ServiceName  string `mapstructure:"service_name"`
}
