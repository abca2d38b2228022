package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(buf *bytes.Buffer, handler gin.HandlerFunc) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	r := gin.New()
	r.Use(RequestLogger(logger), ErrorHandler(logger))
	r.GET("/", handler)
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestErrorHandler_Private_Is_500(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	r := newEngine(&buf, func(c *gin.Context) {
		_ = c.Error(errors.New("storage unavailable: boom")).SetType(gin.ErrorTypePrivate)
		c.Abort()
	})

	w := serve(r)
	req.Equal(http.StatusInternalServerError, w.Code)
	req.Equal(http.StatusText(http.StatusInternalServerError), w.Body.String())
	req.NotContains(w.Body.String(), "boom")
	req.Contains(buf.String(), "request failed")
	req.Contains(buf.String(), "boom")
}

func TestErrorHandler_Bind_Is_400(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	r := newEngine(&buf, func(c *gin.Context) {
		_ = c.Error(errors.New("missing form field: message")).SetType(gin.ErrorTypeBind)
		c.Abort()
	})

	w := serve(r)
	req.Equal(http.StatusBadRequest, w.Code)
	req.Equal(http.StatusText(http.StatusBadRequest), w.Body.String())
}

func TestErrorHandler_No_Errors_Passes_Through(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	r := newEngine(&buf, func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})

	w := serve(r)
	req.Equal(http.StatusOK, w.Code)
	req.Equal("fine", w.Body.String())
	req.NotContains(buf.String(), "request failed")
	req.Contains(buf.String(), "status=200")
}
