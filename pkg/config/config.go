package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	Board  BoardConfig
}

type ServerConfig struct {
	Address         string
	Mode            string
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DBConfig 描述留言資料庫的位置。Driver 為 sqlite 時只使用 Path。
type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	User     string
	Password string
	Name     string
	Port     int
	LogLevel string `mapstructure:"log_level"`
}

type LogConfig struct {
	Level  string
	Format string
}

// BoardConfig 控制各頁面隨機抽樣的數量
type BoardConfig struct {
	HomeSample int `mapstructure:"home_sample"`
	ViewSample int `mapstructure:"view_sample"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load 讀取配置。path 為空時依序在 ./pkg/config 與當前目錄尋找 config.yaml，
// 找不到配置文件時使用預設值。任何鍵都可以用 BOARD_ 前綴的環境變數覆蓋。
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("board")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./pkg/config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "messages_db.sqlite")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.log_level", "silent")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("board.home_sample", 3)
	v.SetDefault("board.view_sample", 5)
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server.mode %q", c.Server.Mode)
	}

	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			return errors.New("db.path is required for the sqlite driver")
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("unknown db.driver %q", c.DB.Driver)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}

	if c.Board.HomeSample < 0 || c.Board.ViewSample < 0 {
		return errors.New("board sample sizes must not be negative")
	}
	return nil
}
