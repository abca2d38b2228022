package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"message_board/internal/api/handlers"
	"message_board/internal/middleware"
	"message_board/internal/service"
)

// NewRouter 建立帶有日誌與錯誤處理中間件的 gin 路由器
func NewRouter(logger *slog.Logger, services *service.Services) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery(), middleware.ErrorHandler(logger))
	SetupRoutes(r, services)
	return r
}

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 模板必須在註冊路由之前設置
	r.SetHTMLTemplate(parseTemplates())
	r.HandleMethodNotAllowed = true

	boardHandler := handlers.NewBoardHandler(services.MessageService)

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.GET("/", boardHandler.Home)
	r.GET("/submit", boardHandler.SubmitForm)
	r.POST("/submit", boardHandler.Submit)
	r.GET("/message", boardHandler.AllMessages)
	r.GET("/view_messages", boardHandler.RandomMessages)

	// 基本的健康檢查，不會碰觸資料庫
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}
