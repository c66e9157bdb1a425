package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: dev\n"))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "twitter_clone", cfg.DB.Name)
	assert.Equal(t, "twclone_session", cfg.Session.Cookie)
	assert.Equal(t, "twitter-clone", cfg.Session.Issuer)
	assert.Equal(t, "dev-secret", cfg.Session.Secret)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 720*time.Hour, cfg.Session.RememberTTL)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
env: dev
http:
  port: 9000
db:
  host: db.internal
  name: clone
session:
  secret: s3cret
  ttl_min: 5
  remember_ttl_hours: 24
media:
  bucket: avatars
  region: eu-west-1
  access_key: ak
  secret_key: sk
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "clone", cfg.DB.Name)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 24*time.Hour, cfg.Session.RememberTTL)
	assert.Equal(t, "avatars", cfg.Media.Bucket)
}

func TestLoadProdRequiresSecret(t *testing.T) {
	_, err := Load(writeConfig(t, "env: prod\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.secret")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
