package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func baseEnv() map[string]string {
	return map[string]string{
		"SOLARI_INTERNAL_KEY": "internal-key",
		"JWT_SECRET":          "jwt-secret",
		"SESSION_SECRET":      "session-secret",
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookup(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, DriverMemory, cfg.DocstoreDriver)
	assert.Equal(t, FailOpen, cfg.AccessFailPolicy)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.False(t, cfg.LoginEnabled())
}

func TestFromLookup_MissingInternalKey(t *testing.T) {
	env := baseEnv()
	delete(env, "SOLARI_INTERNAL_KEY")

	_, err := FromLookup(lookup(env))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOLARI_INTERNAL_KEY")
}

func TestFromLookup_MissingSecrets(t *testing.T) {
	for _, key := range []string{"JWT_SECRET", "SESSION_SECRET"} {
		env := baseEnv()
		delete(env, key)

		_, err := FromLookup(lookup(env))
		require.Error(t, err, key)
		assert.Contains(t, err.Error(), key)
	}
}

func TestFromLookup_BackendURLTrailingSlash(t *testing.T) {
	env := baseEnv()
	env["SOLARI_BACKEND_URL"] = "https://api.solari.dev/"

	cfg, err := FromLookup(lookup(env))
	require.NoError(t, err)
	assert.Equal(t, "https://api.solari.dev", cfg.BackendURL)
}

func TestFromLookup_DriverRequirements(t *testing.T) {
	env := baseEnv()
	env["DOCSTORE_DRIVER"] = "redis"

	_, err := FromLookup(lookup(env))
	require.Error(t, err)

	env["REDIS_URL"] = "redis://localhost:6379/0"
	cfg, err := FromLookup(lookup(env))
	require.NoError(t, err)
	assert.Equal(t, DriverRedis, cfg.DocstoreDriver)

	env["DOCSTORE_DRIVER"] = "postgres"
	_, err = FromLookup(lookup(env))
	require.Error(t, err)

	env["DOCSTORE_DRIVER"] = "firestore"
	_, err = FromLookup(lookup(env))
	require.Error(t, err)
}

func TestFromLookup_Options(t *testing.T) {
	env := baseEnv()
	env["ACCESS_FAIL_POLICY"] = "CLOSED"
	env["BACKEND_TIMEOUT"] = "5s"
	env["CORS_ALLOWED_ORIGINS"] = "https://app.solari.dev, http://localhost:3000,"
	env["GOOGLE_CLIENT_ID"] = "id"
	env["GOOGLE_CLIENT_SECRET"] = "secret"

	cfg, err := FromLookup(lookup(env))
	require.NoError(t, err)

	assert.Equal(t, FailClosed, cfg.AccessFailPolicy)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.Equal(t, []string{"https://app.solari.dev", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.LoginEnabled())

	env["BACKEND_TIMEOUT"] = "soon"
	_, err = FromLookup(lookup(env))
	require.Error(t, err)

	env["BACKEND_TIMEOUT"] = "5s"
	env["ACCESS_FAIL_POLICY"] = "maybe"
	_, err = FromLookup(lookup(env))
	require.Error(t, err)
}
