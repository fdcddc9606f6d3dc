package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			assert.Equal(t, tt.expected, GetEnvWithDefault(tt.key, tt.defaultValue))
		})
	}
}

// clearEnv blanks every variable LoadConfig reads for the duration of the test
func clearEnv(t *testing.T) {
	for _, v := range []string{"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "DB_URI"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("APP_ENV", "production")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DB_URI", "postgres://pizza:s3cret@db:5432/pizzas?sslmode=disable")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "production", config.Environment)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "0.0.0.0:9000", config.Address())

		dbConfig, err := config.Database()
		require.NoError(t, err)
		assert.Equal(t, "postgres", dbConfig.Driver)
		assert.Equal(t, "pizzas", dbConfig.Name)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with unsupported database url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_URI", "mysql://localhost/pizzas")

		config, err := LoadConfig()
		assert.ErrorContains(t, err, "DB_URI")
		assert.Nil(t, config)
	})

	t.Run("should fail with unknown log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_LEVEL", "loud")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "development", config.Environment)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "sqlite://app.db", config.DatabaseURL)

		dbConfig, err := config.Database()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", dbConfig.Driver)
		assert.Equal(t, "app.db", dbConfig.Path)
	})
}

func TestConfigStringMasksPassword(t *testing.T) {
	config := &Config{Port: 8080, Host: "localhost", DatabaseURL: "postgres://pizza:s3cret@db:5432/pizzas"}

	s := config.String()
	assert.NotContains(t, s, "s3cret")
	assert.Contains(t, s, "pizza:REDACTED@db:5432")
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nDB_URI=sqlite://:memory:\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("DB_URI")
	})

	LoadDotenv(path)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7070, config.Port)
	assert.Equal(t, "sqlite://:memory:", config.DatabaseURL)
}

func TestLoadDotenvMissingFile(t *testing.T) {
	assert.NotPanics(t, func() {
		LoadDotenv(filepath.Join(t.TempDir(), "missing.env"))
	})
}

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LevelForEnvironment("development"))
	assert.Equal(t, logrus.ErrorLevel, LevelForEnvironment("production"))
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	b.Setenv("BENCH_KEY", "test_value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
