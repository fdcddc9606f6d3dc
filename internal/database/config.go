package database

import (
	"fmt"
	"net/url"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is a full PostgreSQL connection URL. When set it takes precedence
	// over the individual PostgreSQL fields.
	URL string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, MaskURL(c.URL), c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return sqliteDSN(c.Path)
	default:
		return ""
	}
}

// sqliteDSN turns foreign key enforcement on, which SQLite leaves off by default
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// ConfigFromURL builds a DatabaseConfig from a storage connection string.
// Supported forms are sqlite://relative.db, sqlite:///absolute/path.db,
// sqlite://:memory: and postgres:// or postgresql:// URLs.
func ConfigFromURL(raw string) (DatabaseConfig, error) {
	switch {
	case raw == "":
		return DatabaseConfig{}, fmt.Errorf("empty database url")
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return DatabaseConfig{}, fmt.Errorf("sqlite url %q has no path", raw)
		}
		return DatabaseConfig{Driver: "sqlite", Path: path}, nil
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		parsed, err := url.Parse(raw)
		if err != nil {
			return DatabaseConfig{}, fmt.Errorf("invalid postgres url: %w", err)
		}
		cfg := DatabaseConfig{
			Driver:  "postgres",
			URL:     raw,
			Host:    parsed.Hostname(),
			Port:    parsed.Port(),
			Name:    strings.TrimPrefix(parsed.Path, "/"),
			SSLMode: parsed.Query().Get("sslmode"),
		}
		if parsed.User != nil {
			cfg.User = parsed.User.Username()
			cfg.Password, _ = parsed.User.Password()
		}
		return cfg, nil
	default:
		return DatabaseConfig{}, fmt.Errorf("unsupported database url %q (supported: sqlite://, postgres://)", MaskURL(raw))
	}
}

// MaskURL masks the password in a connection URL
func MaskURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}
