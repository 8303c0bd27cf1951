package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shortener-go/internal/i18n"
	"shortener-go/internal/service"
	"shortener-go/response"
)

func PingHandler(svc *service.UrlService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Ping(c.Request.Context()); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.NewDetail(i18n.T(c.Request.Context(), "ping.ok", "Database is available", nil)))
	}
}
