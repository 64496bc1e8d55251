package mdsettings

import (
	"context"
	"strconv"
	"strings"

	"rlconnector/internal/app/domains/repo/rpsetting"
)

// 配置项路径
const (
	PathSeparateBundle   = "returnless_connector/general/separate_bundle"
	PathEanAttributeCode = "returnless_connector/general/ean_attribute_code"
)

// Settings 连接器开关
type Settings interface {
	// SeparateBundleEnabled 是否拆分展示组合商品
	SeparateBundleEnabled(ctx context.Context) (bool, error)
	// EanAttributeCode 作为 EAN/UPC 的商品属性编码，为空表示未配置
	EanAttributeCode(ctx context.Context) (string, error)
}

// Values 静态配置值
type Values struct {
	SeparateBundle   bool
	EanAttributeCode string
}

// StaticSettings 使用配置文件中的值
type StaticSettings struct {
	values Values
}

// NewStaticSettings 创建静态配置
func NewStaticSettings(values Values) *StaticSettings {
	return &StaticSettings{values: values}
}

func (s *StaticSettings) SeparateBundleEnabled(ctx context.Context) (bool, error) {
	return s.values.SeparateBundle, nil
}

func (s *StaticSettings) EanAttributeCode(ctx context.Context) (string, error) {
	return strings.TrimSpace(s.values.EanAttributeCode), nil
}

// DatabaseSettings 从 core_config_data 读取，未配置时回退到 fallback
type DatabaseSettings struct {
	repo     rpsetting.SettingRepository
	fallback Values
}

// NewDatabaseSettings 创建数据库配置
func NewDatabaseSettings(repo rpsetting.SettingRepository, fallback Values) *DatabaseSettings {
	return &DatabaseSettings{repo: repo, fallback: fallback}
}

func (s *DatabaseSettings) SeparateBundleEnabled(ctx context.Context) (bool, error) {
	value, found, err := s.repo.GetValue(ctx, PathSeparateBundle)
	if err != nil {
		return false, err
	}
	if !found {
		return s.fallback.SeparateBundle, nil
	}
	return parseFlag(value), nil
}

func (s *DatabaseSettings) EanAttributeCode(ctx context.Context) (string, error) {
	value, found, err := s.repo.GetValue(ctx, PathEanAttributeCode)
	if err != nil {
		return "", err
	}
	if !found {
		return strings.TrimSpace(s.fallback.EanAttributeCode), nil
	}
	return strings.TrimSpace(value), nil
}

// parseFlag 兼容 "1"/"0" 以及 "true"/"false"
func parseFlag(value string) bool {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return n != 0
	}
	b, err := strconv.ParseBool(value)
	return err == nil && b
}
