package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	MySQL      MySQLConfig      `mapstructure:"mysql"`
	Store      StoreConfig      `mapstructure:"store"`
	Returnless ReturnlessConfig `mapstructure:"returnless"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type MySQLConfig struct {
	DSN             string `mapstructure:"dsn"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnectAttempts uint   `mapstructure:"connect_attempts"`
}

// StoreConfig 店铺 URL 配置，用于拼接商品链接和图片地址
type StoreConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	MediaURL         string `mapstructure:"media_url"`
	ProductURLSuffix string `mapstructure:"product_url_suffix"`
	PlaceholderImage string `mapstructure:"placeholder_image"`
}

// ReturnlessConfig 连接器配置
type ReturnlessConfig struct {
	ModuleName string `mapstructure:"module_name"`
	// ConfigSource file | database
	ConfigSource     string `mapstructure:"config_source"`
	SeparateBundle   bool   `mapstructure:"separate_bundle"`
	EanAttributeCode string `mapstructure:"ean_attribute_code"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// 配置来源
const (
	ConfigSourceFile     = "file"
	ConfigSourceDatabase = "database"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "rlconnector")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.max_idle_conns", 5)
	v.SetDefault("mysql.connect_attempts", 5)
	v.SetDefault("store.product_url_suffix", ".html")
	v.SetDefault("returnless.module_name", "Returnless_Connector")
	v.SetDefault("returnless.config_source", ConfigSourceFile)
}

// Load 从配置文件加载配置，环境变量（如 MYSQL_DSN）优先
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	if c.Store.BaseURL == "" {
		return fmt.Errorf("store base_url is required")
	}
	if c.Store.MediaURL == "" {
		return fmt.Errorf("store media_url is required")
	}
	switch c.Returnless.ConfigSource {
	case ConfigSourceFile, ConfigSourceDatabase:
	default:
		return fmt.Errorf("returnless config_source must be %q or %q, got %q",
			ConfigSourceFile, ConfigSourceDatabase, c.Returnless.ConfigSource)
	}
	return nil
}
