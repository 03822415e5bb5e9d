package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/bedrock-contentgen/common/graceful"
	"github.com/Laisky/bedrock-contentgen/common/helper"
	"github.com/Laisky/bedrock-contentgen/common/logger"
	"github.com/Laisky/bedrock-contentgen/monitor"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRequestId(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestId())
	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = c.GetString(helper.RequestIdKey)
		c.String(http.StatusOK, "pong")
	})

	w := serve(engine, http.MethodGet, "/ping")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, seen, 32)
	require.Equal(t, seen, w.Header().Get(helper.RequestIdKey))

	w2 := serve(engine, http.MethodGet, "/ping")
	require.NotEqual(t, w.Header().Get(helper.RequestIdKey), w2.Header().Get(helper.RequestIdKey))
}

func TestRelayPanicRecover(t *testing.T) {
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		gmw.SetLogger(c, logger.Logger)
		c.Next()
	}, RequestId(), RelayPanicRecover())
	engine.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := serve(engine, http.MethodGet, "/boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "kaboom")
	require.Contains(t, w.Body.String(), "contentgen_panic")
}

func TestMetrics(t *testing.T) {
	m, err := monitor.New(prometheus.NewRegistry())
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(Metrics(m))
	engine.GET("/api/models", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	serve(engine, http.MethodGet, "/api/models")
	serve(engine, http.MethodGet, "/nowhere")

	require.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/models", "200")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")), 0)
	require.InDelta(t, 0, testutil.ToFloat64(m.InFlightRequests), 0)
}

func TestInFlight(t *testing.T) {
	d := graceful.NewDrainer()
	engine := gin.New()
	engine.Use(InFlight(d))
	var during int64
	engine.GET("/work", func(c *gin.Context) {
		during = d.InFlight()
		c.Status(http.StatusNoContent)
	})

	serve(engine, http.MethodGet, "/work")
	require.EqualValues(t, 1, during)
	require.EqualValues(t, 0, d.InFlight())
}
