package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, CatalogSourceEmbedded, cfg.Catalog.Source)
	assert.Equal(t, 260*time.Millisecond, cfg.Swipe.ExitDuration)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, []string{"*"}, cfg.Server.Origins())
	assert.False(t, cfg.ImagesEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SWIPE_EXIT_DURATION", "400ms")
	t.Setenv("CATALOG_SOURCE", "DynamoDB")
	t.Setenv("CATALOG_TABLE", "HeartwaveProfiles")
	t.Setenv("S3_BUCKET_NAME", "heartwave-images")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://heartwave.app")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 400*time.Millisecond, cfg.Swipe.ExitDuration)
	assert.Equal(t, CatalogSourceDynamoDB, cfg.Catalog.Source)
	assert.Equal(t, "HeartwaveProfiles", cfg.Catalog.Table)
	assert.True(t, cfg.ImagesEnabled())
	assert.Equal(t, []string{"http://localhost:3000", "https://heartwave.app"}, cfg.Server.Origins())
}

func TestLoad_YAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(`
server:
  port: 7070
logging:
  level: debug
  format: json
session:
  idle_ttl: 5m
`)))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "unknown catalog source", env: map[string]string{"CATALOG_SOURCE": "postgres"}},
		{name: "zero exit duration", env: map[string]string{"SWIPE_EXIT_DURATION": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromViper(viper.New())
			assert.Error(t, err)
		})
	}
}
