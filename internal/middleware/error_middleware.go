package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shortener-go/internal/apperrors"
	"shortener-go/internal/i18n"
	"shortener-go/pkg/logging"
	"shortener-go/response"
)

// GlobalErrorMiddleware renders the first error pushed with c.Error as {"detail": ...}
// in the language chosen by I18nMiddleware.
func GlobalErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, err := range c.Errors {
			var appErr *apperrors.AppError
			if errors.As(err.Err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logging.Logger.Error("Request failed",
						zap.String("path", c.Request.URL.Path),
						zap.Int("status", appErr.Code),
						zap.Error(appErr))
				}
				msg := i18n.T(c.Request.Context(), appErr.MessageID, appErr.Message, nil)
				c.AbortWithStatusJSON(appErr.Code, response.NewDetail(msg))
				return
			}
		}

		logging.Logger.Error("Unhandled request error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(c.Errors.Last().Err))
		fallback := apperrors.SystemErrorDefault()
		msg := i18n.T(c.Request.Context(), fallback.MessageID, fallback.Message, nil)
		c.AbortWithStatusJSON(fallback.Code, response.NewDetail(msg))
	}
}
