// internal/middleware/i18n.go
package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-api/internal/i18n"
	"github.com/javajoker/product-api/internal/utils"
)

var languageAliases = map[string]string{
	"zh_Hant": "zh_TW",
}

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.LangKey, parseLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// parseLanguage handles values like "zh-TW,zh;q=0.9,en;q=0.8" by looking at
// the first preference only. A tag with no locale file falls back to its base
// language, then to the default.
func parseLanguage(header string) string {
	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	if first == "" {
		return i18n.DefaultLang
	}

	lang := strings.ReplaceAll(first, "-", "_")
	if alias, ok := languageAliases[lang]; ok {
		lang = alias
	}

	supported := i18n.GetSupportedLanguages()
	if slices.Contains(supported, lang) {
		return lang
	}
	if base, _, found := strings.Cut(lang, "_"); found && slices.Contains(supported, base) {
		return base
	}
	return i18n.DefaultLang
}
