package view

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	flashCookie    = "flash"
	returnToCookie = "return_to"
	flashKey       = "flashes"
)

// SetFlash stores a message to show on the next page the client renders.
func SetFlash(c echo.Context, kind, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FlashNow shows a message on the page rendered by this request only.
func FlashNow(c echo.Context, kind, message string) {
	c.Set(flashKey, append(Flashes(c), Flash{Kind: kind, Message: message}))
}

// Flashes returns the messages for the page being rendered.
func Flashes(c echo.Context) []Flash {
	flashes, _ := c.Get(flashKey).([]Flash)
	return flashes
}

// FlashMiddleware moves a pending flash from its cookie into the request
// context and expires the cookie so it is shown once.
func FlashMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(flashCookie); err == nil && cookie.Value != "" {
				if raw, err := url.QueryUnescape(cookie.Value); err == nil {
					if kind, msg, ok := strings.Cut(raw, "|"); ok {
						FlashNow(c, kind, msg)
					}
				}
				expireCookie(c, flashCookie)
			}
			return next(c)
		}
	}
}

// StoreLocation remembers a URL to return to after signing in.
func StoreLocation(c echo.Context, uri string) {
	c.SetCookie(&http.Cookie{
		Name:     returnToCookie,
		Value:    url.QueryEscape(uri),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopLocation returns the remembered URL, or def when there is none.
func PopLocation(c echo.Context, def string) string {
	cookie, err := c.Cookie(returnToCookie)
	if err != nil || cookie.Value == "" {
		return def
	}
	expireCookie(c, returnToCookie)
	uri, err := url.QueryUnescape(cookie.Value)
	// Only local paths are honoured.
	if err != nil || !strings.HasPrefix(uri, "/") || strings.HasPrefix(uri, "//") {
		return def
	}
	return uri
}

func expireCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
}
