package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"
	thirdPartyI18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"shortener-go/internal/i18n"
)

// I18nMiddleware picks the first supported language of Accept-Language, English otherwise.
func I18nMiddleware(bundle *thirdPartyI18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, _, _ := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
		lang := "en"
		for _, tag := range tags {
			base, _ := tag.Base()
			if slices.Contains(i18n.SupportedLanguages, base.String()) {
				lang = base.String()
				break
			}
		}

		localizer := thirdPartyI18n.NewLocalizer(bundle, lang)
		c.Request = c.Request.WithContext(i18n.WithLocalizer(c.Request.Context(), localizer))
		c.Next()
	}
}
