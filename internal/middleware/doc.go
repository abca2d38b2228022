// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含請求日誌與統一的錯誤回應。處理器不在本地恢復錯誤，
// 而是交給 ErrorHandler 轉換成通用的錯誤頁面。
package middleware
