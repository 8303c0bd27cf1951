package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shortener-go/internal/apperrors"
	"shortener-go/internal/dto"
	"shortener-go/internal/service"
	"shortener-go/pkg/utils"
)

// CreateUrlHandler answers 201 with a new url or 302 with the url already stored for full_url.
func CreateUrlHandler(svc *service.UrlService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateUrlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			zap.L().Warn("Request body binding failed",
				zap.Error(err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			_ = c.Error(bindError(err, &req))
			return
		}

		url, created, err := svc.CreateUrl(c.Request.Context(), req.FullURL)
		if err != nil {
			_ = c.Error(err)
			return
		}

		status := http.StatusFound
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, url)
	}
}

// CreateUrlsHandler creates a batch and returns the urls in request order.
func CreateUrlsHandler(svc *service.UrlService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req []dto.CreateUrlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			zap.L().Warn("Batch body binding failed", zap.Error(err))
			_ = c.Error(bindError(err, &req))
			return
		}

		fullURLs := make([]string, len(req))
		for i, item := range req {
			fullURLs[i] = item.FullURL
		}

		urls, err := svc.CreateUrls(c.Request.Context(), fullURLs)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, urls)
	}
}

// RedirectHandler answers 307 to the full url of :key, a short code or an id.
func RedirectHandler(svc *service.UrlService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		url, err := svc.Redirect(c.Request.Context(), key, c.Request.RemoteAddr)
		if err != nil {
			zap.L().Debug("Redirect refused", zap.String("key", key), zap.Error(err))
			_ = c.Error(err)
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, url.FullURL)
	}
}

// StatusHandler returns the url with id :key, plus its click history when full_info is set.
func StatusHandler(svc *service.UrlService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ParseID(c.Param("key"))
		if !ok {
			_ = c.Error(apperrors.InvalidRequestError(apperrors.MsgInvalidID, "Id must be a positive integer"))
			return
		}

		var query dto.StatusQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			_ = c.Error(bindError(err, &query))
			return
		}
		skip, limit := query.Page()

		url, history, err := svc.Status(c.Request.Context(), id, query.FullInfo, skip, limit)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if !query.FullInfo {
			c.JSON(http.StatusOK, url)
			return
		}
		c.JSON(http.StatusOK, dto.UrlStatusResponse{Url: url, History: history})
	}
}

// DeleteUrlHandler soft-deletes the url with id :id.
func DeleteUrlHandler(svc *service.UrlService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ParseID(c.Param("id"))
		if !ok {
			_ = c.Error(apperrors.InvalidRequestError(apperrors.MsgInvalidID, "Id must be a positive integer"))
			return
		}

		url, err := svc.Deactivate(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, url)
	}
}
