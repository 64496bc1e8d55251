package bootstrap

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rlconnector/common/entity"
	"rlconnector/internal/app/config"
	"rlconnector/internal/app/domains/modules/mdsettings"
	"rlconnector/internal/app/pkg/errorx"
	"rlconnector/internal/app/pkg/logger"
	"rlconnector/internal/app/pkg/testsuit"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			BaseURL:  "https://shop.example.com/",
			MediaURL: "https://shop.example.com/media/",
		},
		Returnless: config.ReturnlessConfig{
			ModuleName:   testsuit.ModuleName,
			ConfigSource: config.ConfigSourceFile,
		},
	}
}

func TestNewOrderInfoService_FileSettings(t *testing.T) {
	db := testsuit.InitSQLite(t)
	testsuit.SeedFixtures(t, db)

	svc := NewOrderInfoService(&Infra{DB: db}, testConfig(), logger.NewNop(), nil)
	snapshot := svc.Snapshot(context.Background(), testsuit.BundleOrderIncrementID)

	require.Equal(t, errorx.ReturnCodeOK, snapshot.ReturnCode)
	assert.True(t, snapshot.Result.OrderProducts.IsList())
}

func TestNewOrderInfoService_DatabaseSettings(t *testing.T) {
	db := testsuit.InitSQLite(t)
	testsuit.SeedFixtures(t, db)
	flag := "1"
	require.NoError(t, db.Create(&entity.CoreConfigData{
		Scope: entity.ScopeDefault, ScopeID: 0, Path: mdsettings.PathSeparateBundle, Value: &flag,
	}).Error)

	cfg := testConfig()
	cfg.Returnless.ConfigSource = config.ConfigSourceDatabase

	svc := NewOrderInfoService(&Infra{DB: db}, cfg, logger.NewNop(), prometheus.NewRegistry())
	snapshot := svc.Snapshot(context.Background(), testsuit.BundleOrderIncrementID)

	require.Equal(t, errorx.ReturnCodeOK, snapshot.ReturnCode)
	assert.False(t, snapshot.Result.OrderProducts.IsList(), "separate_bundle read from core_config_data")
}

func TestNewOrderInfoService_ReadsCatalogPerRequest(t *testing.T) {
	db := testsuit.InitSQLite(t)
	testsuit.SeedFixtures(t, db)
	svc := NewOrderInfoService(&Infra{DB: db}, testConfig(), logger.NewNop(), nil)
	ctx := context.Background()

	first, err := svc.GetOrderInfo(ctx, testsuit.SimpleOrderIncrementID)
	require.NoError(t, err)
	sneaker, _ := first.OrderProducts.Get(0)
	require.NotNil(t, sneaker.CatalogInfo)

	require.NoError(t, db.Delete(&entity.CatalogProduct{}, testsuit.ProductSneaker).Error)

	second, err := svc.GetOrderInfo(ctx, testsuit.SimpleOrderIncrementID)
	require.NoError(t, err)
	sneaker, _ = second.OrderProducts.Get(0)
	assert.Nil(t, sneaker.CatalogInfo, "product removed from the catalog resolves as deleted on the next request")
	assert.Equal(t, "Canvas Sneaker (ordered)", sneaker.Name)
}
