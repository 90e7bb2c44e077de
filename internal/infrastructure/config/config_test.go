package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"BIZ_APP_NAME",
	"BIZ_APP_ENV",
	"BIZ_APP_PORT",
	"BIZ_DATABASE_DRIVER",
	"BIZ_DATABASE_HOST",
	"BIZ_DATABASE_PORT",
	"BIZ_DATABASE_USER",
	"BIZ_DATABASE_PASSWORD",
	"BIZ_DATABASE_DBNAME",
	"BIZ_DATABASE_SSLMODE",
	"BIZ_DATABASE_SQLITE_PATH",
	"BIZ_DATABASE_MAX_OPEN_CONNS",
	"BIZ_DATABASE_MAX_IDLE_CONNS",
	"BIZ_REDIS_ENABLED",
	"BIZ_JWT_SECRET",
	"BIZ_LEDGER_SHIFT_STORE",
	"BIZ_REPORT_CURRENCY",
	"BIZ_REPORT_LOCALE",
	"BIZ_TELEMETRY_SAMPLING_RATIO",
	"BIZ_TELEMETRY_METRICS_ENABLED",
	"BIZ_TELEMETRY_PROFILING_ENABLED",
	"BIZ_TELEMETRY_PROFILING_SERVER_ADDRESS",
	"BIZ_HTTP_CORS_ALLOW_ORIGINS",
}

// clearEnv blanks every config variable for the duration of the test.
// Viper ignores empty environment values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "bizdash-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "bizdash", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "memory", cfg.Ledger.ShiftStore)
		assert.Equal(t, "ILS", cfg.Report.Currency)
		assert.Equal(t, "he-IL", cfg.Report.Locale)
		assert.True(t, cfg.Telemetry.MetricsEnabled)
		assert.Equal(t, "/metrics", cfg.Telemetry.MetricsPath)
		assert.False(t, cfg.Telemetry.ProfilingEnabled)
		assert.Equal(t, "http://localhost:4040", cfg.Telemetry.ProfilingServerAddress)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	})

	t.Run("loads values from environment variables with BIZ prefix", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_APP_NAME", "test-app")
		t.Setenv("BIZ_APP_ENV", "testing")
		t.Setenv("BIZ_APP_PORT", "9000")
		t.Setenv("BIZ_DATABASE_HOST", "testdb.local")
		t.Setenv("BIZ_DATABASE_PORT", "5433")
		t.Setenv("BIZ_DATABASE_USER", "testuser")
		t.Setenv("BIZ_DATABASE_PASSWORD", "testpass")
		t.Setenv("BIZ_DATABASE_DBNAME", "testdb")
		t.Setenv("BIZ_DATABASE_SSLMODE", "require")
		t.Setenv("BIZ_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("BIZ_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("BIZ_REPORT_CURRENCY", "USD")
		t.Setenv("BIZ_REPORT_LOCALE", "en-US")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, "USD", cfg.Report.Currency)
		assert.Equal(t, "en-US", cfg.Report.Locale)
	})

	t.Run("selects sqlite driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_DATABASE_DRIVER", "sqlite")
		t.Setenv("BIZ_DATABASE_SQLITE_PATH", "/tmp/biz.db")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "/tmp/biz.db", cfg.Database.SQLitePath)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("BIZ_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})

	t.Run("redis shift store requires redis", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_LEDGER_SHIFT_STORE", "redis")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires redis.enabled")

		t.Setenv("BIZ_REDIS_ENABLED", "true")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "redis", cfg.Ledger.ShiftStore)
	})

	t.Run("rejects unknown shift store", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_LEDGER_SHIFT_STORE", "disk")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger.shift_store")
	})

	t.Run("rejects malformed currency code", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_REPORT_CURRENCY", "SHEKEL")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "report.currency")
	})

	t.Run("metrics can be disabled", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_TELEMETRY_METRICS_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.Telemetry.MetricsEnabled)
	})

	t.Run("profiling reads its server address", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_TELEMETRY_PROFILING_ENABLED", "true")
		t.Setenv("BIZ_TELEMETRY_PROFILING_SERVER_ADDRESS", "http://pyroscope:4040")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Telemetry.ProfilingEnabled)
		assert.Equal(t, "http://pyroscope:4040", cfg.Telemetry.ProfilingServerAddress)
	})

	t.Run("rejects relative profiling address", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_TELEMETRY_PROFILING_ENABLED", "true")
		t.Setenv("BIZ_TELEMETRY_PROFILING_SERVER_ADDRESS", "pyroscope:4040")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.profiling_server_address")
	})

	t.Run("rejects sampling ratio above one", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BIZ_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		t.Setenv("BIZ_APP_ENV", "production")
		t.Setenv("BIZ_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		t.Setenv("BIZ_DATABASE_PASSWORD", "secure-password")
		t.Setenv("BIZ_DATABASE_SSLMODE", "require")
	}

	t.Run("requires jwt.secret at least 32 characters in production", func(t *testing.T) {
		clearEnv(t)
		setValidProductionBase(t)
		t.Setenv("BIZ_JWT_SECRET", "short-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be at least 32 characters")
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv(t)
		setValidProductionBase(t)
		t.Setenv("BIZ_DATABASE_PASSWORD", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv(t)
		setValidProductionBase(t)
		t.Setenv("BIZ_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("sqlite skips postgres credential checks", func(t *testing.T) {
		clearEnv(t)
		setValidProductionBase(t)
		t.Setenv("BIZ_DATABASE_DRIVER", "sqlite")
		t.Setenv("BIZ_DATABASE_PASSWORD", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("rejects wildcard CORS origin in production", func(t *testing.T) {
		clearEnv(t)
		setValidProductionBase(t)
		t.Setenv("BIZ_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv(t)
		setValidProductionBase(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "cache:6380", RedisConfig{Host: "cache", Port: 6380}.Addr())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/.env", []byte("BIZ_REPORT_CURRENCY=EUR\n"), 0o600))
	t.Chdir(dir)
	// godotenv sets the variable process-wide; blank it again on cleanup
	t.Cleanup(func() { os.Unsetenv("BIZ_REPORT_CURRENCY") })
	os.Unsetenv("BIZ_REPORT_CURRENCY")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Report.Currency)
}
