package rpmodule

import (
	"context"
	"errors"
	"fmt"

	"rlconnector/common/entity"

	"gorm.io/gorm"
)

// ModuleRepository 模块注册表
type ModuleRepository interface {
	// InstalledVersion 返回模块的 schema 版本，未安装时返回空串
	InstalledVersion(ctx context.Context, moduleName string) (string, error)
}

// ModuleRepositoryImpl 模块注册表实现（setup_module）
type ModuleRepositoryImpl struct {
	db *gorm.DB
}

// NewModuleRepository 创建模块注册表实例
func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &ModuleRepositoryImpl{db: db}
}

// InstalledVersion 查询模块版本
func (r *ModuleRepositoryImpl) InstalledVersion(ctx context.Context, moduleName string) (string, error) {
	var po entity.SetupModule
	err := r.db.WithContext(ctx).Where("module = ?", moduleName).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("query setup_module failed: %w", err)
	}
	return po.SchemaVersion, nil
}
