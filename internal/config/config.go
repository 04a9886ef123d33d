// Package config 提供配置加载和管理功能
package config

import (
	"time"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	Database      DatabaseConfig      `yaml:"database" mapstructure:"database"`
	Cache         CacheConfig         `yaml:"cache" mapstructure:"cache"`
	Gemini        GeminiConfig        `yaml:"gemini" mapstructure:"gemini"`
	Quota         QuotaConfig         `yaml:"quota" mapstructure:"quota"`
	Worker        WorkerConfig        `yaml:"worker" mapstructure:"worker"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP 服务器配置
type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
}

// PostgresConfig PostgreSQL 配置
type PostgresConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	User            string        `yaml:"user" mapstructure:"user"`
	Password        string        `yaml:"password" mapstructure:"password"`
	Database        string        `yaml:"database" mapstructure:"database"`
	SSLMode         string        `yaml:"ssl_mode" mapstructure:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" mapstructure:"conn_max_idle_time"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
	// InsightTTL 行业洞察缓存有效期
	InsightTTL time.Duration `yaml:"insight_ttl" mapstructure:"insight_ttl"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	Password     string        `yaml:"password" mapstructure:"password"`
	DB           int           `yaml:"db" mapstructure:"db"`
	PoolSize     int           `yaml:"pool_size" mapstructure:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// GeminiConfig 生成式模型后端配置
type GeminiConfig struct {
	// APIKey 后端 API 密钥
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL 后端基础地址
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// PrimaryModel 首选模型
	PrimaryModel string `yaml:"primary_model" mapstructure:"primary_model"`
	// FallbackModel 限流时的备用模型
	FallbackModel string `yaml:"fallback_model" mapstructure:"fallback_model"`
	// Timeout 单次调用超时
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// Temperature 生成温度
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	// MaxOutputTokens 最大输出 token 数
	MaxOutputTokens int `yaml:"max_output_tokens" mapstructure:"max_output_tokens"`
}

// QuotaConfig 用量配额配置
type QuotaConfig struct {
	// Enabled 是否启用配额
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// DailyCallLimit 每用户每日生成调用上限
	DailyCallLimit int `yaml:"daily_call_limit" mapstructure:"daily_call_limit"`
}

// WorkerConfig 后台任务配置
type WorkerConfig struct {
	// Stream 洞察刷新任务流
	Stream string `yaml:"stream" mapstructure:"stream"`
	// Group 消费者组
	Group string `yaml:"group" mapstructure:"group"`
	// ConsumerName 消费者名称
	ConsumerName string `yaml:"consumer_name" mapstructure:"consumer_name"`
	// ScanInterval 调度器扫描到期行业的间隔
	ScanInterval time.Duration `yaml:"scan_interval" mapstructure:"scan_interval"`
	// RefreshCadence 洞察刷新周期
	RefreshCadence time.Duration `yaml:"refresh_cadence" mapstructure:"refresh_cadence"`
	// RetryLimit 消息处理重试上限
	RetryLimit int `yaml:"retry_limit" mapstructure:"retry_limit"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	JWT       JWTConfig       `yaml:"jwt" mapstructure:"jwt"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors" mapstructure:"cors"`
}

// JWTConfig JWT 配置
type JWTConfig struct {
	Secret     string        `yaml:"secret" mapstructure:"secret"`
	Issuer     string        `yaml:"issuer" mapstructure:"issuer"`
	AccessTTL  time.Duration `yaml:"access_ttl" mapstructure:"access_ttl"`
	RefreshTTL time.Duration `yaml:"refresh_ttl" mapstructure:"refresh_ttl"`
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
}

// RateLimitConfig 接口限流配置
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Limit   int           `yaml:"limit" mapstructure:"limit"`
	Window  time.Duration `yaml:"window" mapstructure:"window"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
}
