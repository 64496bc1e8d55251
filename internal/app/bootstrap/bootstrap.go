package bootstrap

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"rlconnector/internal/app/config"
	"rlconnector/internal/app/domains/modules/mdcatalog"
	"rlconnector/internal/app/domains/modules/mdorder"
	"rlconnector/internal/app/domains/modules/mdsettings"
	"rlconnector/internal/app/domains/repo/rpcatalog"
	"rlconnector/internal/app/domains/repo/rpmodule"
	"rlconnector/internal/app/domains/repo/rporder"
	"rlconnector/internal/app/domains/repo/rpsetting"
	"rlconnector/internal/app/domains/services/svorderinfo"
	"rlconnector/internal/app/infra/persistence/mysql"
	"rlconnector/internal/app/pkg/logger"
	"rlconnector/internal/app/pkg/metrics"
)

// Infra 外部连接
type Infra struct {
	DB *gorm.DB
}

// OpenInfra 连接 MySQL，返回的 cleanup 负责关闭连接
func OpenInfra(ctx context.Context, cfg *config.Config, log logger.Logger) (*Infra, func(), error) {
	db, err := mysql.Open(cfg.MySQL, log)
	if err != nil {
		return nil, nil, err
	}
	log.Infof(ctx, "connected to mysql, config_source=%s", cfg.Returnless.ConfigSource)

	cleanup := func() {
		if err := mysql.Close(db); err != nil {
			log.Warnf(context.Background(), "close mysql failed: %v", err)
		}
	}
	return &Infra{DB: db}, cleanup, nil
}

// NewOrderInfoService 按配置组装订单快照服务，reg 为 nil 时不采集指标
func NewOrderInfoService(infra *Infra, cfg *config.Config, log logger.Logger, reg prometheus.Registerer) *svorderinfo.OrderInfoService {
	// Repo 层
	orderRepo := rporder.NewOrderRepository(infra.DB)
	moduleRepo := rpmodule.NewModuleRepository(infra.DB)
	productRepo := rpcatalog.NewProductRepository(infra.DB)

	// Module 层
	orderModule := mdorder.NewOrderModule(orderRepo, moduleRepo, cfg.Returnless.ModuleName)
	catalogModule := mdcatalog.NewCatalogModule(productRepo, mdcatalog.NewImageResolver(mdcatalog.URLConfig{
		BaseURL:          cfg.Store.BaseURL,
		MediaURL:         cfg.Store.MediaURL,
		ProductURLSuffix: cfg.Store.ProductURLSuffix,
		PlaceholderImage: cfg.Store.PlaceholderImage,
	}))
	settings := newSettings(infra.DB, cfg.Returnless)

	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg)
	}

	// Service 层
	return svorderinfo.NewOrderInfoService(orderModule, catalogModule, settings, log, m)
}

func newSettings(db *gorm.DB, cfg config.ReturnlessConfig) mdsettings.Settings {
	values := mdsettings.Values{
		SeparateBundle:   cfg.SeparateBundle,
		EanAttributeCode: cfg.EanAttributeCode,
	}
	if cfg.ConfigSource == config.ConfigSourceDatabase {
		return mdsettings.NewDatabaseSettings(rpsetting.NewSettingRepository(db), values)
	}
	return mdsettings.NewStaticSettings(values)
}
