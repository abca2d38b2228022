// Package api 處理 HTTP 請求路由和處理。
//
// 這個包負責建立 gin 路由、載入頁面模板，並把每個路徑交給 handlers 處理。
package api
