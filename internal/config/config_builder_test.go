package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that mergo only fills zero fields, so
// the first source that sets a field keeps it.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyMissingFields(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{Server: Server{HTTPAddress: "0.0.0.0:9000"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, defaultAdapterBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, SessionStorageSQLite, cfg.Storage.Session.Kind)
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("ADAPTER_BASE_URL", "http://jobs.local")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.layers, 1)
	assert.Equal(t, "env-version", b.layers[0].App.Version)
	assert.Equal(t, "http://jobs.local", b.layers[0].Adapter.BaseURL)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileBeforeEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_ISSUER=from-dotenv\n"), 0o600))
	t.Setenv("DOTENV", p)
	// t.Setenv restores the previous value; godotenv only sets unset keys.
	t.Setenv("APP_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_ISSUER"))

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 1)
	assert.Equal(t, "from-dotenv", b.layers[0].App.TokenIssuer)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

func TestWithDotEnv_DoesNotOverrideEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_VERSION=from-file\n"), 0o600))
	t.Setenv("DOTENV", p)
	t.Setenv("APP_VERSION", "from-env")

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.layers[0].App.Version)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.layers, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{Version: "json-version"}
	payload.Auth.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 2)
	assert.Equal(t, "json-version", b.layers[1].App.Version)
	assert.Equal(t, "json-issuer", b.layers[1].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.layers = append(b.layers, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, StructuredJSONConfig{Version: "first"})
	second := writeTempJSONConfig(t, StructuredJSONConfig{Version: "second"})

	b := newConfigBuilder()
	b.layers = append(b.layers,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.layers, 4)
	assert.Equal(t, "first", b.layers[3].App.Version)
}
