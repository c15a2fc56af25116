package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8000", cfg.Server.Addr)
	require.Equal(t, "data/users.db", cfg.Database.Path)
	require.Equal(t, "HS256", cfg.Auth.Algorithm)
	require.Equal(t, 30, cfg.Auth.TokenTTLMinutes)
	require.Equal(t, "/api/v1", cfg.API.Prefix)
	require.Equal(t, "Full Stack App", cfg.API.ProjectName)
	require.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORS.Origins)
	require.Empty(t, cfg.Auth.SecretKey)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("USERMGR_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("USERMGR_DATABASE_PATH", "/tmp/test.db")
	t.Setenv("USERMGR_AUTH_SECRETKEY", "supersecret")
	t.Setenv("USERMGR_API_PREFIX", "/api/v2")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Equal(t, "/tmp/test.db", cfg.Database.Path)
	require.Equal(t, "supersecret", cfg.Auth.SecretKey)
	require.Equal(t, "/api/v2", cfg.API.Prefix)
}

func TestLoad_OriginListFromEnv(t *testing.T) {
	t.Setenv("USERMGR_CORS_ORIGINS", "http://a.example.com, http://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, cfg.CORS.Origins)
}
