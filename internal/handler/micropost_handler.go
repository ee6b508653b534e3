package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sampleapp/internal/errors"
	"sampleapp/internal/service"
	"sampleapp/internal/view"
)

// MicropostHandler handles creating and deleting microposts.
type MicropostHandler struct {
	posts service.PostService
	home  *StaticHandler
	log   *slog.Logger
}

// NewMicropostHandler creates a new micropost handler. Failed posts re-render
// the home page through home.
func NewMicropostHandler(posts service.PostService, home *StaticHandler, log *slog.Logger) *MicropostHandler {
	return &MicropostHandler{posts: posts, home: home, log: log}
}

// Create godoc
// @Summary Publish a micropost
// @Tags microposts
// @Accept x-www-form-urlencoded
// @Produce html
// @Param micropost[content] formData string true "Content (max 140 characters)"
// @Success 303 {string} string "Redirect to home"
// @Failure 422 {string} string "Home page with errors"
// @Router /microposts [post]
func (h *MicropostHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	content := derefParam(Permit(h.log, values, "micropost", "content")["content"])

	if _, err := h.posts.Create(c.Request().Context(), CurrentAccount(c), content); err != nil {
		if msgs, ok := errors.AsValidation(err); ok {
			return h.home.renderHome(c, http.StatusUnprocessableEntity, msgs, content)
		}
		return err
	}

	view.SetFlash(c, "success", "Micropost created!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Destroy godoc
// @Summary Delete one of your microposts
// @Tags microposts
// @Produce html
// @Param id path string true "Micropost ID"
// @Success 303 {string} string "Redirect to home"
// @Failure 403 {string} string "Forbidden page"
// @Failure 404 {string} string "Not found page"
// @Router /microposts/{id} [delete]
func (h *MicropostHandler) Destroy(c echo.Context) error {
	id, err := parseID(c, "id", errors.ErrPostNotFound)
	if err != nil {
		return err
	}
	if _, err := h.posts.Delete(c.Request().Context(), CurrentAccount(c), id); err != nil {
		return err
	}
	view.SetFlash(c, "success", "Micropost deleted")
	return c.Redirect(http.StatusSeeOther, "/")
}
