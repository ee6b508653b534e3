package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sampleapp/internal/errors"
	"sampleapp/internal/service"
	"sampleapp/internal/view"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// SessionCookies writes and clears the session cookie.
type SessionCookies struct {
	Secure bool
}

// Set stores the session token in the client.
func (s SessionCookies) Set(c echo.Context, session *service.Session) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the session cookie from the client.
func (s SessionCookies) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionHandler handles sign-in and sign-out.
type SessionHandler struct {
	sessions service.SessionService
	cookies  SessionCookies
	log      *slog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions service.SessionService, cookies SessionCookies, log *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, cookies: cookies, log: log}
}

// LoadCurrentAccount resolves the session claims left by the token
// middleware into the signed-in account. Stale sessions are cleared.
func (h *SessionHandler) LoadCurrentAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := SessionClaims(c)
		if claims == nil {
			return next(c)
		}
		account, err := h.sessions.Current(c.Request().Context(), claims)
		if err != nil {
			h.log.Error("resolve session", "error", err)
		}
		if account == nil {
			h.cookies.Clear(c)
			return next(c)
		}
		c.Set(accountKey, account)
		return next(c)
	}
}

// New godoc
// @Summary Sign-in form
// @Tags sessions
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /signin [get]
func (h *SessionHandler) New(c echo.Context) error {
	return c.Render(http.StatusOK, "sessions/new", signinPage{Page: newPage(c, "Sign in")})
}

// Create godoc
// @Summary Sign in
// @Tags sessions
// @Accept x-www-form-urlencoded
// @Produce html
// @Param session[email] formData string true "Email"
// @Param session[password] formData string true "Password"
// @Success 303 {string} string "Redirect to profile or remembered page"
// @Failure 422 {string} string "Sign-in form with error"
// @Router /signin [post]
func (h *SessionHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	params := Permit(h.log, values, "session", "email", "password")
	email, password := derefParam(params["email"]), derefParam(params["password"])

	session, err := h.sessions.SignIn(c.Request().Context(), email, password)
	if err != nil {
		if err == errors.ErrInvalidCredentials {
			view.FlashNow(c, "error", "Invalid email/password combination")
			return c.Render(http.StatusUnprocessableEntity, "sessions/new", signinPage{
				Page:  newPage(c, "Sign in"),
				Email: email,
			})
		}
		return err
	}

	h.cookies.Set(c, session)
	return c.Redirect(http.StatusSeeOther, view.PopLocation(c, userPath(session.Account.ID)))
}

// Destroy godoc
// @Summary Sign out
// @Tags sessions
// @Produce html
// @Success 303 {string} string "Redirect to home"
// @Router /signout [delete]
func (h *SessionHandler) Destroy(c echo.Context) error {
	if err := h.sessions.SignOut(c.Request().Context(), SessionClaims(c)); err != nil {
		h.log.Warn("revoke session", "error", err)
	}
	h.cookies.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

func derefParam(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
