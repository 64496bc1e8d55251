package testsuit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rlconnector/common/entity"
)

// InitSQLite 创建内存数据库并建表，每个测试独立
func InitSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: 每个连接是独立的库
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.SalesOrder{},
		&entity.SalesOrderAddress{},
		&entity.SalesOrderItem{},
		&entity.CatalogProduct{},
		&entity.CatalogProductGallery{},
		&entity.CatalogCategoryProduct{},
		&entity.SetupModule{},
		&entity.CoreConfigData{},
	))

	return db
}
