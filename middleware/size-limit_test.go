package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"profileinator/common/config"
)

func setupSizeLimitRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestId(), UploadSizeLimit())
	router.POST("/upload", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestUploadSizeLimit(t *testing.T) {
	router := setupSizeLimitRouter()

	tests := []struct {
		name       string
		bodySize   int64
		wantStatus int
	}{
		{"small body passes", 1024, http.StatusOK},
		{"body at image cap passes", config.MaxUploadBytes, http.StatusOK},
		{"oversized body rejected", config.MaxUploadBytes + 128<<10, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := bytes.NewReader(make([]byte, tt.bodySize))
			req := httptest.NewRequest(http.MethodPost, "/upload", body)
			req.Header.Set("Content-Type", "application/octet-stream")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusBadRequest &&
				!strings.Contains(recorder.Body.String(), "detail") {
				t.Errorf("body = %s, want a detail field", recorder.Body.String())
			}
		})
	}
}
