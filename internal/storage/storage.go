// Package storage 負責開啟留言資料庫的連接。
//
// 每一次邏輯操作都透過 Opener 取得一個獨立的連接，用完立即關閉，
// 請求之間不共享任何連接。
package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"message_board/pkg/config"
)

// DB 包裝一個只屬於單次操作的 gorm 連接
type DB struct {
	*gorm.DB
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate 自動遷移資料庫結構
func (db *DB) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}

// Opener 開啟新的資料庫連接，呼叫者負責 Close
type Opener interface {
	Open(ctx context.Context) (*DB, error)
}

// Dialer 依照配置選擇 sqlite 或 postgres 驅動
type Dialer struct {
	cfg  config.DBConfig
	gorm *gorm.Config
}

func NewDialer(cfg config.DBConfig) (*Dialer, error) {
	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	return &Dialer{
		cfg:  cfg,
		gorm: &gorm.Config{Logger: logger.Default.LogMode(parseLogLevel(cfg.LogLevel))},
	}, nil
}

func (d *Dialer) Open(ctx context.Context) (*DB, error) {
	var (
		db  *DB
		err error
	)
	switch d.cfg.Driver {
	case config.DriverPostgres:
		db, err = NewPostgresDB(d.cfg.Host, d.cfg.User, d.cfg.Password, d.cfg.Name, d.cfg.Port, d.gorm)
	default:
		db, err = NewSQLiteDB(d.cfg.Path, d.gorm)
	}
	if err != nil {
		return nil, err
	}
	return &DB{DB: db.WithContext(ctx)}, nil
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Silent
	}
}
