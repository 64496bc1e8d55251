package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: rlconnector
  log_level: debug
mysql:
  dsn: "magento:secret@tcp(127.0.0.1:3306)/magento?parseTime=true"
store:
  base_url: "https://shop.example.com/"
  media_url: "https://shop.example.com/media/"
returnless:
  separate_bundle: true
  ean_attribute_code: ean
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, ".html", cfg.Store.ProductURLSuffix)
	assert.Equal(t, "Returnless_Connector", cfg.Returnless.ModuleName)
	assert.Equal(t, ConfigSourceFile, cfg.Returnless.ConfigSource)
	assert.True(t, cfg.Returnless.SeparateBundle)
	assert.Equal(t, "ean", cfg.Returnless.EanAttributeCode)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MYSQL_DSN", "env:dsn@tcp(db:3306)/magento")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "env:dsn@tcp(db:3306)/magento", cfg.MySQL.DSN)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			MySQL:      MySQLConfig{DSN: "dsn"},
			Store:      StoreConfig{BaseURL: "https://a/", MediaURL: "https://a/media/"},
			Returnless: ReturnlessConfig{ConfigSource: ConfigSourceDatabase},
		}
	}
	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.MySQL.DSN = ""
	assert.ErrorContains(t, cfg.Validate(), "mysql dsn")

	cfg = valid()
	cfg.Store.MediaURL = ""
	assert.ErrorContains(t, cfg.Validate(), "media_url")

	cfg = valid()
	cfg.Returnless.ConfigSource = "consul"
	assert.ErrorContains(t, cfg.Validate(), "config_source")
}
