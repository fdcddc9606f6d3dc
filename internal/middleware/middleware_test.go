package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(logger logrus.FieldLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
	})
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	logger, _ := test.NewNullLogger()
	router := setupRouter(logger)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Contains(t, w.Body.String(), id)
}

func TestRequestIDPropagated(t *testing.T) {
	logger, _ := test.NewNullLogger()
	router := setupRouter(logger)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}

func TestRequestIDReplacesMalformed(t *testing.T) {
	logger, _ := test.NewNullLogger()
	router := setupRouter(logger)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "not-a-uuid", id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestLoggerLevels(t *testing.T) {
	tests := []struct {
		path    string
		status  int
		level   logrus.Level
		message string
	}{
		{"/ok", http.StatusOK, logrus.InfoLevel, "Request handled"},
		{"/missing", http.StatusNotFound, logrus.WarnLevel, "Request rejected"},
		{"/boom", http.StatusInternalServerError, logrus.ErrorLevel, "Request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			router := setupRouter(logger)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, w.Code)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, tt.path, entry.Data["path"])
			assert.Equal(t, tt.status, entry.Data["status"])
			assert.Equal(t, http.MethodGet, entry.Data["method"])
			assert.Equal(t, w.Header().Get(RequestIDHeader), entry.Data["request_id"])
		})
	}
}
