package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sampleapp/internal/service"
	"sampleapp/internal/view"
)

// StaticHandler serves the home and about pages.
type StaticHandler struct {
	posts    service.PostService
	follows  service.FollowService
	pageSize int
}

// NewStaticHandler creates a new static page handler.
func NewStaticHandler(posts service.PostService, follows service.FollowService, pageSize int) *StaticHandler {
	return &StaticHandler{posts: posts, follows: follows, pageSize: pageSize}
}

// Home godoc
// @Summary Home page with the feed when signed in
// @Tags static
// @Produce html
// @Param page query int false "Feed page"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *StaticHandler) Home(c echo.Context) error {
	return h.renderHome(c, http.StatusOK, nil, "")
}

// About renders the about page.
func (h *StaticHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "static/about", aboutPage{Page: newPage(c, "About")})
}

// renderHome draws the home page. For signed-in visitors it includes the
// composer, with errors and content echoed back after a failed post.
func (h *StaticHandler) renderHome(c echo.Context, status int, errs []string, content string) error {
	current := CurrentAccount(c)
	data := homePage{Page: newPage(c, ""), Content: content}
	data.Errors = errs
	if current == nil {
		return c.Render(status, "static/home", data)
	}

	ctx := c.Request().Context()
	stats, err := h.follows.Stats(ctx, current.ID)
	if err != nil {
		return err
	}
	page := pageParam(c)
	feed, total, err := h.posts.Feed(ctx, current.ID, page, h.pageSize)
	if err != nil {
		return err
	}

	data.User = current
	data.Stats = stats
	data.Pagination = view.NewPagination(page, h.pageSize, total, "/")
	for _, p := range feed {
		data.Feed = append(data.Feed, postRow{Post: p, ShowAuthor: true, CanDelete: p.UserID == current.ID})
	}
	return c.Render(status, "static/home", data)
}
