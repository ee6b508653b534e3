package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sampleapp/internal/errors"
	"sampleapp/internal/service"
	"sampleapp/internal/view"
)

// AccountHandler serves the read-only JSON profile API.
type AccountHandler struct {
	accountService service.AccountService
	followService  service.FollowService
	postService    service.PostService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountService service.AccountService, followService service.FollowService, postService service.PostService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		followService:  followService,
		postService:    postService,
	}
}

// ProfileResponse represents a public account profile.
type ProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Gravatar   string    `json:"gravatar"`
	Admin      bool      `json:"admin"`
	Following  int64     `json:"following"`
	Followers  int64     `json:"followers"`
	Microposts int64     `json:"microposts"`
	CreatedAt  time.Time `json:"created_at"`

	// ViewerFollows is set only when the request carries a session.
	ViewerFollows *bool `json:"viewer_follows,omitempty"`
}

// GetProfile godoc
// @Summary Get a public account profile
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users/{id} [get]
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid account ID",
			Code:  "INVALID_UUID",
		})
	}

	ctx := c.Request().Context()
	account, err := h.accountService.GetAccount(ctx, accountID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	stats, err := h.followService.Stats(ctx, accountID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	_, posts, err := h.postService.ListByAccount(ctx, accountID, 1, 1)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := ProfileResponse{
		ID:         account.ID,
		Name:       account.Name,
		Gravatar:   view.GravatarURL(account.Email, 80),
		Admin:      account.Admin,
		Following:  stats.Following,
		Followers:  stats.Followers,
		Microposts: posts,
		CreatedAt:  account.CreatedAt,
	}
	if viewer := CurrentAccount(c); viewer != nil && !viewer.Is(account) {
		follows, err := h.followService.Follows(ctx, viewer.ID, account.ID)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		resp.ViewerFollows = &follows
	}
	return c.JSON(http.StatusOK, resp)
}
