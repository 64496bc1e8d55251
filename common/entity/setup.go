package entity

// SetupModule 模块注册表（setup_module）
type SetupModule struct {
	Module        string `gorm:"column:module;primaryKey;type:varchar(50)"`
	SchemaVersion string `gorm:"column:schema_version;type:varchar(50)"`
	DataVersion   string `gorm:"column:data_version;type:varchar(50)"`
}

// TableName 指定表名
func (SetupModule) TableName() string {
	return "setup_module"
}

// CoreConfigData 配置项（core_config_data）
type CoreConfigData struct {
	ConfigID int64   `gorm:"column:config_id;primaryKey;autoIncrement"`
	Scope    string  `gorm:"column:scope;type:varchar(8);not null;default:'default';uniqueIndex:uk_scope_path"`
	ScopeID  int64   `gorm:"column:scope_id;not null;default:0;uniqueIndex:uk_scope_path"`
	Path     string  `gorm:"column:path;type:varchar(255);not null;uniqueIndex:uk_scope_path"`
	Value    *string `gorm:"column:value;type:text"`
}

// TableName 指定表名
func (CoreConfigData) TableName() string {
	return "core_config_data"
}

// ScopeDefault 默认作用域
const ScopeDefault = "default"
