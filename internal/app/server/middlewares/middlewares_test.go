package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rlconnector/internal/app/domains/apimodel/response"
	"rlconnector/internal/app/pkg/errorx"
	"rlconnector/internal/app/pkg/logger"
)

func newEngine(log logger.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(log), Recovery(log, nil))
	return r
}

func TestRequestID_GeneratedAndPropagated(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newEngine(logger.New(zap.New(core)))

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = logger.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	rid := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, rid)
	assert.Equal(t, rid, seen)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Contains(t, entry.Message, "GET /ping?x=1 status=204")
	assert.Equal(t, rid, entry.ContextMap()["request_id"])
}

func TestRequestID_FromHeader(t *testing.T) {
	r := newEngine(logger.NewNop())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "upstream-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-42", w.Header().Get(HeaderRequestID))
}

func TestRecovery_RendersSnapshot(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := newEngine(logger.New(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("nil catalog") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var snapshot response.OrderSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, errorx.ReturnCodeNotProcessed, snapshot.ReturnCode)
	assert.Equal(t, "internal error", snapshot.ReturnMessage)
	assert.Nil(t, snapshot.Result)

	require.GreaterOrEqual(t, logs.Len(), 1)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	assert.Contains(t, logs.All()[0].Message, "[PANIC] nil catalog")
}

func TestRecovery_CustomRender(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(logger.NewNop(), func(c *gin.Context, err error) {
		c.JSON(http.StatusOK, response.NewOrderSnapshot("9.9.9").Fail(err))
	}))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.JSONEq(t, `{"return_code":112,"return_message":"internal error","installed_module_version":"9.9.9"}`, w.Body.String())
}
