package handler

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sampleapp/internal/errors"
)

// HTTPErrorHandler renders failed requests. API routes and JSON clients
// get an ErrorResponse body; browsers get the error page. A missing
// session sends the visitor to the sign-in form.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if stderrors.Is(err, errors.ErrNotSignedIn) {
			if rerr := c.Redirect(http.StatusSeeOther, "/signin"); rerr != nil {
				log.Error("redirect to sign-in", "error", rerr)
			}
			return
		}

		status, body := resolveError(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", status,
				"error", err,
			)
		}

		var rerr error
		switch {
		case c.Request().Method == http.MethodHead:
			rerr = c.NoContent(status)
		case wantsJSON(c):
			rerr = c.JSON(status, body)
		default:
			rerr = c.Render(status, "errors/show", errorPage{
				Page:    newPage(c, http.StatusText(status)),
				Status:  status,
				Message: errorMessage(status),
			})
		}
		if rerr != nil {
			log.Error("write error response", "error", rerr)
		}
	}
}

func resolveError(err error) (int, errors.ErrorResponse) {
	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		switch msg := he.Message.(type) {
		case errors.ErrorResponse:
			return he.Code, msg
		case string:
			return he.Code, errors.ErrorResponse{Error: msg, Code: statusCode(he.Code)}
		default:
			return he.Code, errors.ErrorResponse{Error: fmt.Sprint(msg), Code: statusCode(he.Code)}
		}
	}
	httpErr := errors.MapErrorToHTTP(err)
	return httpErr.StatusCode, httpErr.ToErrorResponse()
}

func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you were looking for doesn't exist."
	case http.StatusForbidden:
		return "You are not allowed to do that."
	case http.StatusUnprocessableEntity, http.StatusConflict:
		return "The change you wanted was rejected."
	default:
		if status >= http.StatusInternalServerError {
			return "We're sorry, but something went wrong."
		}
		return http.StatusText(status)
	}
}

func wantsJSON(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
