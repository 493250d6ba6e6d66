package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 是一个全局变量，用于存储所有应用程序的配置
var Cfg *Config

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	App      AppConfig      `mapstructure:"app"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Address     string     `mapstructure:"address"`
	Cors        CorsConfig `mapstructure:"cors"`
	AdminSecret string     `mapstructure:"adminSecret"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了关系型数据库的配置。
// Driver 可以是 "sqlite" 或 "postgres"，DSN随驱动不同而不同。
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig 定义了Redis的配置。
// Enabled 为 false 时应用不连接Redis，所有读取直接落到数据库。
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AppConfig 定义了业务层面的配置。
// UserTimezones 是用户名到IANA时区标识符的静态映射，
// 未映射的用户名回退到 DefaultTimezone。
type AppConfig struct {
	WindowDays      int               `mapstructure:"windowDays"`
	DefaultTimezone string            `mapstructure:"defaultTimezone"`
	UserTimezones   map[string]string `mapstructure:"userTimezones"`
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 它会在指定的路径中查找名为 config.yaml 的文件
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. 设置配置文件名和类型
	v.SetConfigName("config") // 文件名 (不带扩展名)
	v.SetConfigType("yaml")   // 文件类型

	// 2. 添加配置文件搜索路径
	v.AddConfigPath("./config") // `config/config.yaml`
	v.AddConfigPath(".")        // `./config.yaml` (如果在根目录)

	// 3. 所有配置项都有合理的默认值，配置文件缺失时也能启动
	setDefaults(v)

	// 4. 设置环境变量支持
	// 允许通过环境变量覆盖配置，例如 SERVER_ADDRESS=:9090
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 5. 读取配置文件；文件不存在不是错误，走默认值
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// 6. 将配置反序列化到结构体中
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 7. 将加载的配置赋值给全局变量
	Cfg = &cfg

	return Cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("server.adminSecret", "")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "jap-tracker.db")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("app.windowDays", 7)
	// "Local" 表示回退到宿主机的本地时区
	v.SetDefault("app.defaultTimezone", "Local")
	v.SetDefault("app.userTimezones", map[string]string{
		"manna": "Asia/Kolkata",    // IST - UTC+5:30
		"ak":    "America/Toronto", // EST/EDT
	})
}
