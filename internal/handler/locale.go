package handler

import (
	"net/http"
	"strings"

	"github.com/buttonicons/internal/locale"
	"github.com/gin-gonic/gin"
)

const (
	localeContextKey     = "__request_locale"
	languageCookieName   = "bi_lang"
	languageCookieMaxAge = 365 * 24 * 60 * 60
)

// LocaleMiddleware resolves request language and sets headers for downstream caching.
func (a *API) LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		pref := a.requestLocale(c)
		c.Header("Content-Language", pref.HTMLLang)
		c.Header("Vary", "Accept-Language, Cookie")
		c.Next()
	}
}

func (a *API) requestLocale(c *gin.Context) locale.Preference {
	if cached, exists := c.Get(localeContextKey); exists {
		if pref, ok := cached.(locale.Preference); ok {
			return pref
		}
	}

	explicit := locale.NormalizeLanguage(c.Query("lang"))
	if explicit == "" {
		explicit = readLanguageCookie(c)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(languageCookieName, explicit, languageCookieMaxAge, "/", "", false, false)
	}

	language := locale.Resolve(explicit, c.GetHeader("Accept-Language"), a.defaultLanguage)
	pref := locale.PreferenceForLanguage(language)
	c.Set(localeContextKey, pref)
	return pref
}

func (a *API) requestLanguage(c *gin.Context) string {
	return a.requestLocale(c).Language
}

func readLanguageCookie(c *gin.Context) string {
	value, err := c.Cookie(languageCookieName)
	if err != nil {
		return ""
	}
	return locale.NormalizeLanguage(strings.TrimSpace(value))
}
