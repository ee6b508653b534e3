package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sampleapp/internal/errors"
	"sampleapp/internal/service"
)

// RelationshipHandler handles follow and unfollow.
type RelationshipHandler struct {
	follows service.FollowService
	log     *slog.Logger
}

// NewRelationshipHandler creates a new relationship handler.
func NewRelationshipHandler(follows service.FollowService, log *slog.Logger) *RelationshipHandler {
	return &RelationshipHandler{follows: follows, log: log}
}

// Create godoc
// @Summary Follow an account
// @Tags relationships
// @Accept x-www-form-urlencoded
// @Produce html
// @Param relationship[followed_id] formData string true "Account to follow"
// @Success 303 {string} string "Redirect to the followed profile"
// @Failure 404 {string} string "Not found page"
// @Router /relationships [post]
func (h *RelationshipHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	params := Permit(h.log, values, "relationship", "followed_id")
	targetID, err := uuid.Parse(derefParam(params["followed_id"]))
	if err != nil {
		return errors.ErrAccountNotFound
	}

	if _, err := h.follows.Follow(c.Request().Context(), CurrentAccount(c), targetID); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, userPath(targetID))
}

// Destroy godoc
// @Summary Unfollow an account
// @Tags relationships
// @Produce html
// @Param id path string true "Relationship ID"
// @Success 303 {string} string "Redirect to the unfollowed profile"
// @Failure 403 {string} string "Forbidden page"
// @Failure 404 {string} string "Not found page"
// @Router /relationships/{id} [delete]
func (h *RelationshipHandler) Destroy(c echo.Context) error {
	id, err := parseID(c, "id", errors.ErrRelationshipNotFound)
	if err != nil {
		return err
	}
	rel, err := h.follows.Unfollow(c.Request().Context(), CurrentAccount(c), id)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, userPath(rel.FollowedID))
}
