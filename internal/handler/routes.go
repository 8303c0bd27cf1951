package handler

import (
	"github.com/gin-gonic/gin"

	"shortener-go/internal/service"
)

// SetupRoutes registers the /api/v1 routes on r.
func SetupRoutes(r gin.IRouter, svc *service.UrlService) {
	api := r.Group("/api/v1")
	{
		api.GET("/ping", PingHandler(svc))

		urls := api.Group("/urls")
		urls.POST("", CreateUrlHandler(svc))
		urls.POST("/", CreateUrlHandler(svc))
		urls.POST("/batch", CreateUrlsHandler(svc))
		urls.GET("/:key", RedirectHandler(svc))
		urls.GET("/:key/status", StatusHandler(svc))
		urls.DELETE("/:id", DeleteUrlHandler(svc))

		// legacy alias of GET /urls/:key
		api.GET("/:key", RedirectHandler(svc))
	}
}
