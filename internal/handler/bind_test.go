package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shortener-go/internal/apperrors"
	"shortener-go/internal/dto"
)

func bindBody(t *testing.T, body string, target any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(target)
}

func TestBindError(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		target func() any
		want   string
	}{
		{"missing url", `{}`, func() any { return &dto.CreateUrlRequest{} }, apperrors.MsgInvalidURL},
		{"not a url", `{"full_url":"nope"}`, func() any { return &dto.CreateUrlRequest{} }, apperrors.MsgInvalidURL},
		{"malformed json", `{"full_url":`, func() any { return &dto.CreateUrlRequest{} }, apperrors.MsgInvalidRequest},
		{"batch item", `[{"full_url":"https://example.com"},{"full_url":""}]`, func() any { return &[]dto.CreateUrlRequest{} }, apperrors.MsgInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.target()
			err := bindBody(t, tt.body, target)
			if err == nil {
				t.Fatal("binding succeeded")
			}
			appErr := bindError(err, target)
			if appErr.Code != http.StatusBadRequest || appErr.MessageID != tt.want {
				t.Errorf("bindError = %d %q, want 400 %q", appErr.Code, appErr.MessageID, tt.want)
			}
		})
	}
}
