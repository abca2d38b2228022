package repository

import "errors"

var (
	// ErrStorageUnavailable 表示資料庫無法開啟、建表或查詢
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidSampleSize  = errors.New("sample size must not be negative")
)
