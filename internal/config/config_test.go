package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "memory", cfg.Lock.Backend)
	assert.False(t, cfg.Import.CatalogFallback)
	assert.False(t, cfg.Import.OverwriteClientFields)
	assert.Equal(t, 30*time.Second, cfg.Import.LockTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
database:
  driver: postgres
  dsn: postgres://localhost/proposals
import:
  catalog_fallback: true
lock:
  backend: dynamodb
  ttl: 45s
`), 0o600))

	t.Setenv("IMPORT_OVERWRITE_CLIENT_FIELDS", "true")
	t.Setenv("LOCK_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load(NewViper(), file)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/proposals", cfg.Database.DSN)
	assert.True(t, cfg.Import.CatalogFallback)
	assert.True(t, cfg.Import.OverwriteClientFields)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "dynamodb", cfg.Lock.Backend)
	assert.Equal(t, 45*time.Second, cfg.Lock.TTL)
	assert.Equal(t, "http://dynamodb:8000", cfg.Lock.Endpoint)
	assert.Empty(t, cfg.Lock.Region)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mysql")
		_, err := Load(NewViper(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("unknown lock backend", func(t *testing.T) {
		t.Setenv("LOCK_BACKEND", "redis")
		_, err := Load(NewViper(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lock.backend")
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestLoad_NotificationAndSeed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
notification:
  webhook_url: http://localhost:3000/send
  recipients:
    pendente_simulacao: ["5511911110000", "5511922220000"]
    PENDENTE_COTACAO: ["5511933330000"]
seed:
  carriers: ["Transportes Rápido", "Braspress"]
  boxes:
    - name: Caixa P
      length_cm: 40
      width_cm: 30
      height_cm: 20
  sellers:
    - id: 1
      name: Ana
      phone: "5511999990000"
`), 0o600))

	cfg, err := Load(NewViper(), file)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/send", cfg.Notification.WebhookURL)
	assert.Equal(t, []string{"5511911110000", "5511922220000"}, cfg.Notification.Recipients["pendente_simulacao"])
	assert.Equal(t, []string{"5511933330000"}, cfg.Notification.Recipients["pendente_cotacao"])
	assert.Equal(t, []string{"Transportes Rápido", "Braspress"}, cfg.Seed.Carriers)
	require.Len(t, cfg.Seed.Boxes, 1)
	assert.Equal(t, BoxSeed{Name: "Caixa P", LengthCm: 40, WidthCm: 30, HeightCm: 20}, cfg.Seed.Boxes[0])
	assert.Equal(t, []SellerSeed{{ID: 1, Name: "Ana", Phone: "5511999990000"}}, cfg.Seed.Sellers)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
