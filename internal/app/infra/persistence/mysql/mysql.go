package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rlconnector/internal/app/config"
	"rlconnector/internal/app/pkg/logger"
)

// connectDelay 连接重试间隔
const connectDelay = 2 * time.Second

// Open 连接 Magento 数据库，启动时数据库可能尚未就绪，按 connect_attempts 重试
func Open(cfg config.MySQLConfig, log logger.Logger) (*gorm.DB, error) {
	return open(mysql.Open(cfg.DSN), cfg, log, connectDelay)
}

func open(dialector gorm.Dialector, cfg config.MySQLConfig, log logger.Logger, delay time.Duration) (*gorm.DB, error) {
	attempts := cfg.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}

	var db *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = connect(dialector, cfg)
			return err
		},
		retry.Attempts(attempts),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf(context.Background(), "[MYSQL] connect attempt %d/%d failed: %v", n+1, attempts, err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func connect(dialector gorm.Dialector, cfg config.MySQLConfig) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Close 关闭连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
