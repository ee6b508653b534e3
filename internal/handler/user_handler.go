package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sampleapp/internal/errors"
	"sampleapp/internal/model"
	"sampleapp/internal/service"
	"sampleapp/internal/view"
)

// UserHandler serves signup, the users index, profiles and profile editing.
type UserHandler struct {
	accounts service.AccountService
	sessions service.SessionService
	follows  service.FollowService
	posts    service.PostService
	cookies  SessionCookies
	pageSize int
	log      *slog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(
	accounts service.AccountService,
	sessions service.SessionService,
	follows service.FollowService,
	posts service.PostService,
	cookies SessionCookies,
	pageSize int,
	log *slog.Logger,
) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		sessions: sessions,
		follows:  follows,
		posts:    posts,
		cookies:  cookies,
		pageSize: pageSize,
		log:      log,
	}
}

func (h *UserHandler) accountAttrs(c echo.Context) (service.AccountAttrs, error) {
	values, err := c.FormParams()
	if err != nil {
		return service.AccountAttrs{}, echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	p := Permit(h.log, values, "user", "name", "email", "password", "password_confirmation")
	return service.AccountAttrs{
		Name:                 p["name"],
		Email:                p["email"],
		Password:             p["password"],
		PasswordConfirmation: p["password_confirmation"],
	}, nil
}

// New godoc
// @Summary Signup form
// @Tags users
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /signup [get]
func (h *UserHandler) New(c echo.Context) error {
	return c.Render(http.StatusOK, "users/new", signupPage{Page: newPage(c, "Sign up")})
}

// Create godoc
// @Summary Sign up
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce html
// @Param user[name] formData string true "Name"
// @Param user[email] formData string true "Email"
// @Param user[password] formData string true "Password"
// @Param user[password_confirmation] formData string false "Password confirmation"
// @Success 303 {string} string "Redirect to the new profile"
// @Failure 422 {string} string "Signup form with errors"
// @Router /signup [post]
func (h *UserHandler) Create(c echo.Context) error {
	attrs, err := h.accountAttrs(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.Create(c.Request().Context(), attrs)
	if err != nil {
		if msgs, ok := errors.AsValidation(err); ok {
			page := newPage(c, "Sign up")
			page.Errors = msgs
			return c.Render(http.StatusUnprocessableEntity, "users/new", signupPage{
				Page: page,
				Form: accountForm{Name: derefParam(attrs.Name), Email: derefParam(attrs.Email)},
			})
		}
		return err
	}

	session, err := h.sessions.Start(c.Request().Context(), account)
	if err != nil {
		return err
	}
	h.cookies.Set(c, session)
	view.SetFlash(c, "success", "Welcome to the Sample App!")
	return c.Redirect(http.StatusSeeOther, userPath(account.ID))
}

// Index godoc
// @Summary List users
// @Tags users
// @Produce html
// @Param page query int false "Page number"
// @Success 200 {string} string "HTML page"
// @Success 303 {string} string "Redirect to sign in"
// @Router /users [get]
func (h *UserHandler) Index(c echo.Context) error {
	current := CurrentAccount(c)
	if err := service.CanViewIndex(current); err != nil {
		return err
	}

	page := pageParam(c)
	accounts, total, err := h.accounts.List(c.Request().Context(), page, h.pageSize)
	if err != nil {
		return err
	}

	rows := make([]userRow, len(accounts))
	for i := range accounts {
		rows[i] = userRow{Account: &accounts[i], CanDelete: service.ShowDeleteLink(current, &accounts[i])}
	}
	return c.Render(http.StatusOK, "users/index", indexPage{
		Page:       newPage(c, "All users"),
		Users:      rows,
		Pagination: view.NewPagination(page, h.pageSize, total, "/users"),
	})
}

// Show godoc
// @Summary User profile
// @Tags users
// @Produce html
// @Param id path string true "Account ID"
// @Param page query int false "Micropost page"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "Not found page"
// @Router /users/{id} [get]
func (h *UserHandler) Show(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c, "id", errors.ErrAccountNotFound)
	if err != nil {
		return err
	}
	user, err := h.accounts.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	stats, err := h.follows.Stats(ctx, user.ID)
	if err != nil {
		return err
	}
	page := pageParam(c)
	posts, postCount, err := h.posts.ListByAccount(ctx, user.ID, page, h.pageSize)
	if err != nil {
		return err
	}

	current := CurrentAccount(c)
	data := profilePage{
		Page:           newPage(c, user.Name),
		User:           user,
		Stats:          stats,
		ShowFollowForm: current != nil && !current.Is(user),
		PostCount:      postCount,
		Pagination:     view.NewPagination(page, h.pageSize, postCount, userPath(user.ID)),
	}
	if data.ShowFollowForm {
		if data.Relationship, err = h.follows.Relationship(ctx, current.ID, user.ID); err != nil {
			return err
		}
	}
	for _, p := range posts {
		data.Posts = append(data.Posts, postRow{Post: p, CanDelete: current.Is(user)})
	}
	return c.Render(http.StatusOK, "users/show", data)
}

// Edit godoc
// @Summary Edit profile form
// @Tags users
// @Produce html
// @Param id path string true "Account ID"
// @Success 200 {string} string "HTML page"
// @Failure 403 {string} string "Forbidden page"
// @Router /users/{id}/edit [get]
func (h *UserHandler) Edit(c echo.Context) error {
	user, err := h.editable(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "users/edit", editPage{
		Page: newPage(c, "Edit user"),
		User: user,
		Form: accountForm{Name: user.Name, Email: user.Email},
	})
}

// Update godoc
// @Summary Update profile
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path string true "Account ID"
// @Param user[name] formData string false "Name"
// @Param user[email] formData string false "Email"
// @Param user[password] formData string true "Password"
// @Param user[password_confirmation] formData string false "Password confirmation"
// @Success 303 {string} string "Redirect to profile"
// @Failure 403 {string} string "Forbidden page"
// @Failure 422 {string} string "Edit form with errors"
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	user, err := h.editable(c)
	if err != nil {
		return err
	}
	attrs, err := h.accountAttrs(c)
	if err != nil {
		return err
	}

	updated, err := h.accounts.Update(c.Request().Context(), user.ID, attrs)
	if err != nil {
		if msgs, ok := errors.AsValidation(err); ok {
			page := newPage(c, "Edit user")
			page.Errors = msgs
			form := accountForm{Name: user.Name, Email: user.Email}
			if attrs.Name != nil {
				form.Name = *attrs.Name
			}
			if attrs.Email != nil {
				form.Email = *attrs.Email
			}
			return c.Render(http.StatusUnprocessableEntity, "users/edit", editPage{Page: page, User: user, Form: form})
		}
		return err
	}

	view.SetFlash(c, "success", "Profile updated")
	return c.Redirect(http.StatusSeeOther, userPath(updated.ID))
}

// Destroy godoc
// @Summary Delete a user (admin only)
// @Tags users
// @Produce html
// @Param id path string true "Account ID"
// @Success 303 {string} string "Redirect to users index"
// @Failure 403 {string} string "Forbidden page"
// @Failure 404 {string} string "Not found page"
// @Router /users/{id} [delete]
func (h *UserHandler) Destroy(c echo.Context) error {
	id, err := parseID(c, "id", errors.ErrAccountNotFound)
	if err != nil {
		return err
	}
	if err := service.CanDelete(CurrentAccount(c), id); err != nil {
		return err
	}
	if err := h.accounts.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	view.SetFlash(c, "success", "User deleted.")
	return c.Redirect(http.StatusSeeOther, "/users")
}

// Following godoc
// @Summary Accounts a user follows
// @Tags users
// @Produce html
// @Param id path string true "Account ID"
// @Param page query int false "Page number"
// @Success 200 {string} string "HTML page"
// @Router /users/{id}/following [get]
func (h *UserHandler) Following(c echo.Context) error {
	return h.showFollow(c, "Following", "following", h.follows.Following)
}

// Followers godoc
// @Summary Accounts following a user
// @Tags users
// @Produce html
// @Param id path string true "Account ID"
// @Param page query int false "Page number"
// @Success 200 {string} string "HTML page"
// @Router /users/{id}/followers [get]
func (h *UserHandler) Followers(c echo.Context) error {
	return h.showFollow(c, "Followers", "followers", h.follows.Followers)
}

func (h *UserHandler) showFollow(c echo.Context, title, suffix string, list func(ctx context.Context, id uuid.UUID, page, perPage int) ([]model.Account, int64, error)) error {
	ctx := c.Request().Context()
	id, err := parseID(c, "id", errors.ErrAccountNotFound)
	if err != nil {
		return err
	}
	user, err := h.accounts.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	stats, err := h.follows.Stats(ctx, user.ID)
	if err != nil {
		return err
	}
	page := pageParam(c)
	users, total, err := list(ctx, user.ID, page, h.pageSize)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "users/show_follow", followPage{
		Page:       newPage(c, title),
		User:       user,
		Stats:      stats,
		Users:      users,
		Pagination: view.NewPagination(page, h.pageSize, total, userPath(user.ID)+"/"+suffix),
	})
}

// editable loads the account in the path and checks the actor may edit it.
func (h *UserHandler) editable(c echo.Context) (*model.Account, error) {
	id, err := parseID(c, "id", errors.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}
	if err := service.CanEdit(CurrentAccount(c), id); err != nil {
		return nil, err
	}
	return h.accounts.GetAccount(c.Request().Context(), id)
}
