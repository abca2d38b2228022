package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"message_board/internal/service"
)

// ErrMissingField 表示送出的表單缺少必要欄位
var ErrMissingField = errors.New("missing form field")

const (
	handleField  = "nm"
	messageField = "message"
)

// BoardHandler 處理留言板的頁面請求
type BoardHandler struct {
	messageService *service.MessageService
}

func NewBoardHandler(messageService *service.MessageService) *BoardHandler {
	return &BoardHandler{messageService: messageService}
}

// Home 顯示首頁與幾則隨機留言
func (h *BoardHandler) Home(c *gin.Context) {
	messages, err := h.messageService.HomeMessages(c.Request.Context())
	if err != nil {
		abort(c, err, gin.ErrorTypePrivate)
		return
	}
	c.HTML(http.StatusOK, "base.html", gin.H{"messages": messages})
}

func (h *BoardHandler) SubmitForm(c *gin.Context) {
	c.HTML(http.StatusOK, "submit.html", nil)
}

// Submit 儲存表單中的留言，然後重新顯示空白表單
func (h *BoardHandler) Submit(c *gin.Context) {
	handle, ok := c.GetPostForm(handleField)
	if !ok {
		abort(c, fmt.Errorf("%w: %s", ErrMissingField, handleField), gin.ErrorTypeBind)
		return
	}
	body, ok := c.GetPostForm(messageField)
	if !ok {
		abort(c, fmt.Errorf("%w: %s", ErrMissingField, messageField), gin.ErrorTypeBind)
		return
	}

	if _, err := h.messageService.Submit(c.Request.Context(), handle, body); err != nil {
		abort(c, err, gin.ErrorTypePrivate)
		return
	}
	c.HTML(http.StatusOK, "submit.html", nil)
}

// AllMessages 列出所有留言
func (h *BoardHandler) AllMessages(c *gin.Context) {
	messages, err := h.messageService.AllMessages(c.Request.Context())
	if err != nil {
		abort(c, err, gin.ErrorTypePrivate)
		return
	}
	c.HTML(http.StatusOK, "view.html", gin.H{"title": "All messages", "messages": messages})
}

// RandomMessages 列出幾則隨機留言
func (h *BoardHandler) RandomMessages(c *gin.Context) {
	messages, err := h.messageService.RandomMessages(c.Request.Context())
	if err != nil {
		abort(c, err, gin.ErrorTypePrivate)
		return
	}
	c.HTML(http.StatusOK, "view.html", gin.H{"title": "Random messages", "messages": messages})
}

// abort 把錯誤交給錯誤處理中間件，由它決定回應內容
func abort(c *gin.Context, err error, typ gin.ErrorType) {
	_ = c.Error(err).SetType(typ)
	c.Abort()
}
