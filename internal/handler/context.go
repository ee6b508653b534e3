package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sampleapp/internal/auth"
	"sampleapp/internal/model"
	"sampleapp/internal/view"
)

const (
	// ClaimsContextKey is where the session middleware leaves parsed *auth.Claims.
	ClaimsContextKey = "session_claims"
	accountKey       = "current_account"
)

// CurrentAccount returns the signed-in account, or nil for anonymous requests.
func CurrentAccount(c echo.Context) *model.Account {
	account, _ := c.Get(accountKey).(*model.Account)
	return account
}

// SessionClaims returns the parsed session token, if any.
func SessionClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsContextKey).(*auth.Claims)
	return claims
}

// RequireSignIn redirects anonymous requests to the sign-in page. GET
// requests remember their URL so sign-in can return to it.
func RequireSignIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentAccount(c) != nil {
			return next(c)
		}
		if c.Request().Method == http.MethodGet {
			view.StoreLocation(c, c.Request().URL.RequestURI())
		}
		view.SetFlash(c, "notice", "Please sign in.")
		return c.Redirect(http.StatusSeeOther, "/signin")
	}
}

func newPage(c echo.Context, title string) view.Page {
	return view.Page{
		Title:   title,
		Current: CurrentAccount(c),
		Flashes: view.Flashes(c),
	}
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseID reads a UUID path parameter. Malformed IDs cannot match any row,
// so they are reported as notFound.
func parseID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

func userPath(id uuid.UUID) string {
	return "/users/" + id.String()
}
