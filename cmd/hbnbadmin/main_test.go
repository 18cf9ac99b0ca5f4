package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
)

func sqliteConfig(t *testing.T) (configFile, dsn string) {
	t.Helper()
	t.Setenv("HBNB_JWT_SECRET", "")
	dir := t.TempDir()
	dsn = "file:" + filepath.Join(dir, "admin.db")
	configFile = filepath.Join(dir, "config.yaml")
	body := "database:\n  driver: sqlite\n  url: \"" + dsn + "\"\n  auto_migrate: false\n"
	require.NoError(t, os.WriteFile(configFile, []byte(body), 0o600))
	return configFile, dsn
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func countRows(t *testing.T, dsn, query string) int {
	t.Helper()
	db, _, err := repositories.Open(context.Background(), "sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow(query).Scan(&n))
	return n
}

func TestMigrateWithoutJWTSecret(t *testing.T) {
	configFile, dsn := sqliteConfig(t)

	require.NoError(t, execute(t, "migrate", "--config", configFile))
	assert.Equal(t, 1, countRows(t, dsn, `SELECT COUNT(*) FROM schema_migrations`))

	// a second run finds nothing to apply
	require.NoError(t, execute(t, "migrate", "--config", configFile))
	assert.Equal(t, 1, countRows(t, dsn, `SELECT COUNT(*) FROM schema_migrations`))
}

func TestCreateAdmin(t *testing.T) {
	configFile, dsn := sqliteConfig(t)
	require.NoError(t, execute(t, "migrate", "--config", configFile))

	require.NoError(t, execute(t, "create-admin", "--config", configFile,
		"--email", "ops@hbnb.io", "--password", "s3cret-pass"))
	require.NoError(t, execute(t, "create-admin", "--config", configFile,
		"--email", "ops@hbnb.io", "--password", "s3cret-pass"))

	assert.Equal(t, 1, countRows(t, dsn, `SELECT COUNT(*) FROM users WHERE email = 'ops@hbnb.io' AND is_admin = 1`))
}

func TestCreateAdminRejectsMemoryStorage(t *testing.T) {
	t.Setenv("HBNB_JWT_SECRET", "")
	t.Setenv("HBNB_DB_DRIVER", "memory")
	err := execute(t, "create-admin", "--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--email", "ops@hbnb.io", "--password", "s3cret-pass")
	assert.Error(t, err)
}
