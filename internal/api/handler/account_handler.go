package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anderson-nunes/account-service/internal/core/ports"
)

// AccountHandler exposes the account use cases over HTTP.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Signup creates a NORMAL account and returns a session token.
//
// @Summary      Sign up
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users/signup [post]
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Message: out.Message, Token: out.Token})
}

// Login authenticates by email and password and returns a session token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.service.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Message: out.Message, Token: out.Token})
}

// List returns the accounts whose name matches q. ADMIN only.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Param        q    query     string  false  "Name filter"
// @Success      200  {array}   domain.PublicAccount
// @Failure      400  {object}  errorResponse
// @Router       /users [get]
func (h *AccountHandler) List(c echo.Context) error {
	req := listAccountsRequest{Query: c.QueryParam("q"), Token: ctxToken(c)}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.service.List(c.Request().Context(), ports.ListAccountsInput{
		Query: req.Query,
		Token: req.Token,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, out)
}

// GetByID returns a single account. ADMIN only.
//
// @Summary      Get an account by id
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.PublicAccount
// @Failure      400  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *AccountHandler) GetByID(c echo.Context) error {
	req := getAccountRequest{ID: c.Param("id"), Token: ctxToken(c)}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.service.GetByID(c.Request().Context(), ports.GetAccountInput{
		ID:    req.ID,
		Token: req.Token,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, out)
}

// Delete removes an account by id.
//
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	req := deleteAccountRequest{IDToDelete: c.Param("id"), Token: ctxToken(c)}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.service.Delete(c.Request().Context(), ports.DeleteAccountInput{
		IDToDelete: req.IDToDelete,
		Token:      req.Token,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: out.Message})
}

// bindAndValidate decodes the JSON body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
