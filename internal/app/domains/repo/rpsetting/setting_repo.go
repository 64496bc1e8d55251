package rpsetting

import (
	"context"
	"errors"
	"fmt"

	"rlconnector/common/entity"

	"gorm.io/gorm"
)

// SettingRepository 配置项仓储（core_config_data，默认作用域）
type SettingRepository interface {
	// GetValue 读取配置项，found=false 表示未配置
	GetValue(ctx context.Context, path string) (value string, found bool, err error)
}

// SettingRepositoryImpl 配置项仓储实现
type SettingRepositoryImpl struct {
	db *gorm.DB
}

// NewSettingRepository 创建配置项仓储实例
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

// GetValue 读取默认作用域下的配置项，值为 NULL 视为未配置
func (r *SettingRepositoryImpl) GetValue(ctx context.Context, path string) (string, bool, error) {
	var po entity.CoreConfigData
	err := r.db.WithContext(ctx).
		Where("scope = ? AND scope_id = ? AND path = ?", entity.ScopeDefault, 0, path).
		First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query core_config_data failed: path=%s: %w", path, err)
	}
	if po.Value == nil {
		return "", false, nil
	}
	return *po.Value, true, nil
}
