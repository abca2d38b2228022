package storage

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteDB 開啟位於 path 的 SQLite 文件資料庫，文件不存在時自動建立
func NewSQLiteDB(path string, cfg *gorm.Config) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// 每個連接只服務一次操作
	sqlDB.SetMaxOpenConns(1)

	return &DB{DB: db}, nil
}

// 併發請求各自開啟連接，寫入時等待鎖而不是立刻失敗
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}
