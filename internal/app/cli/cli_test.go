package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rlconnector/internal/app/bootstrap"
	"rlconnector/internal/app/config"
	"rlconnector/internal/app/domains/services/svorderinfo"
	"rlconnector/internal/app/pkg/logger"
	"rlconnector/internal/app/pkg/testsuit"
)

const testConfigYAML = `
mysql:
  dsn: "unused"
store:
  base_url: "https://shop.example.com/"
  media_url: "https://shop.example.com/media/"
returnless:
  module_name: Returnless_Connector
  separate_bundle: true
`

func writeConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))
	return path
}

func sqliteFactory(t *testing.T) serviceFactory {
	db := testsuit.InitSQLite(t)
	testsuit.SeedFixtures(t, db)
	return func(cfg *config.Config, log logger.Logger) (*svorderinfo.OrderInfoService, func(), error) {
		return bootstrap.NewOrderInfoService(&bootstrap.Infra{DB: db}, cfg, log, nil), func() {}, nil
	}
}

func run(t *testing.T, factory serviceFactory, args ...string) (string, string, error) {
	cmd := newRootCmd(factory)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGetCmd_Found(t *testing.T) {
	stdout, _, err := run(t, sqliteFactory(t), "get", "--config", writeConfig(t), "--compact", testsuit.BundleOrderIncrementID)
	require.NoError(t, err)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &snapshot))
	assert.Equal(t, float64(0), snapshot["return_code"])
	assert.Equal(t, testsuit.ModuleVersion, snapshot["installed_module_version"])

	products := snapshot["result"].(map[string]interface{})["order_products"]
	assert.IsType(t, map[string]interface{}{}, products, "separated bundle leaves gaps in positions")
}

func TestGetCmd_NotFound(t *testing.T) {
	stdout, _, err := run(t, sqliteFactory(t), "get", "--config", writeConfig(t), "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order 999 not processed")
	assert.Contains(t, stdout, `"return_code": 112`)
}

func TestGetCmd_DebugLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := run(t, sqliteFactory(t), "get", "--config", writeConfig(t), "--log-level", "debug", testsuit.SimpleOrderIncrementID)
	require.NoError(t, err)
	assert.Contains(t, stderr, "[RET_ORDER_INFO] Increment Id "+testsuit.SimpleOrderIncrementID)
	assert.NotContains(t, stdout, "RET_ORDER_INFO")
}

func TestGetCmd_Args(t *testing.T) {
	_, _, err := run(t, sqliteFactory(t), "get")
	assert.Error(t, err)

	_, _, err = run(t, sqliteFactory(t), "get", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "1")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "orderinfo dev (none)\n", stdout)
}
