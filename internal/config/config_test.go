package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("STORAGE_ROOT", "/tmp/evrak")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Auth.Disabled)
	assert.Equal(t, "/tmp/evrak", cfg.Storage.Root)
}

func TestLoad_StorageDefaults(t *testing.T) {
	os.Unsetenv("STORAGE_ROOT")
	os.Unsetenv("STORAGE_MAX_UPLOAD_BYTES")
	os.Unsetenv("STORAGE_ALLOWED_MIME_TYPES")

	cfg := Load()

	assert.Equal(t, "./uploads", cfg.Storage.Root)
	assert.Equal(t, "/uploads", cfg.Storage.PublicMount)
	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxUploadBytes)
	assert.ElementsMatch(t, DefaultAllowedMIMETypes, cfg.Storage.AllowedMIMETypes)
	assert.Equal(t, 4, cfg.Storage.CleanupConcurrency)
	assert.Equal(t, "logidocs", cfg.Database.ApplicationName)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvInt64(t *testing.T) {
	key := "TEST_INT64_VAR"

	t.Setenv(key, "15728640")
	assert.Equal(t, int64(15728640), getEnvInt64(key, 0))

	t.Setenv(key, "nope")
	assert.Equal(t, int64(7), getEnvInt64(key, 7))
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"

	t.Setenv(key, "image/png, application/pdf ,,")
	assert.Equal(t, []string{"image/png", "application/pdf"}, getEnvList(key, nil))

	t.Setenv(key, " , ")
	assert.Equal(t, []string{"a"}, getEnvList(key, []string{"a"}))
}
