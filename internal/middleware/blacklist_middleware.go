package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shortener-go/internal/apperrors"
	"shortener-go/pkg/logging"
)

// BlacklistMiddleware rejects requests whose remote host is listed, on every route.
// Matching is exact on the socket address; forwarding headers are ignored.
func BlacklistMiddleware(hosts []string) gin.HandlerFunc {
	blocked := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		blocked[h] = struct{}{}
	}

	return func(c *gin.Context) {
		if len(blocked) == 0 {
			c.Next()
			return
		}

		host := c.RemoteIP()
		if _, ok := blocked[host]; ok {
			logging.Logger.Warn("Blacklisted client rejected",
				zap.String("client", host),
				zap.String("path", c.Request.URL.Path))
			_ = c.Error(apperrors.ForbiddenError())
			c.Abort()
			return
		}
		c.Next()
	}
}
