package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anderson-nunes/account-service/internal/api/middleware"
	"github.com/anderson-nunes/account-service/internal/core/domain"
	"github.com/anderson-nunes/account-service/internal/core/ports"
)

type stubAccountService struct {
	signupFn  func(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error)
	loginFn   func(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error)
	listFn    func(ctx context.Context, in ports.ListAccountsInput) ([]domain.PublicAccount, error)
	getByIDFn func(ctx context.Context, in ports.GetAccountInput) (*domain.PublicAccount, error)
	deleteFn  func(ctx context.Context, in ports.DeleteAccountInput) (*ports.MessageResult, error)
}

func (s *stubAccountService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAccountService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAccountService) List(ctx context.Context, in ports.ListAccountsInput) ([]domain.PublicAccount, error) {
	return s.listFn(ctx, in)
}

func (s *stubAccountService) GetByID(ctx context.Context, in ports.GetAccountInput) (*domain.PublicAccount, error) {
	return s.getByIDFn(ctx, in)
}

func (s *stubAccountService) Delete(ctx context.Context, in ports.DeleteAccountInput) (*ports.MessageResult, error) {
	return s.deleteFn(ctx, in)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T (%v)", err, err)
	assert.Equal(t, code, he.Code)
	return he
}

func TestAccountHandler_Signup_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		signupFn: func(_ context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
			assert.Equal(t, ports.SignupInput{Name: "Fulano", Email: "fulano@email.com", Password: "fulano123"}, in)
			return &ports.AuthResult{Message: domain.MsgSignupSuccess, Token: "token-mock"}, nil
		},
	}
	h := NewAccountHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/users/signup",
		`{"name":"Fulano","email":"fulano@email.com","password":"fulano123","role":"ADMIN"}`), rec)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cadastro realizado com sucesso", resp["message"])
	assert.Equal(t, "token-mock", resp["token"])
}

func TestAccountHandler_Signup_RejectsBeforeService(t *testing.T) {
	cases := map[string]string{
		"not json":         "not-json",
		"missing name":     `{"email":"fulano@email.com","password":"fulano123"}`,
		"empty email":      `{"name":"Fulano","email":"","password":"fulano123"}`,
		"missing password": `{"name":"Fulano","email":"fulano@email.com"}`,
		"long password":    `{"name":"Fulano","email":"fulano@email.com","password":"` + strings.Repeat("a", 73) + `"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			e := newEcho()
			stub := &stubAccountService{
				signupFn: func(context.Context, ports.SignupInput) (*ports.AuthResult, error) {
					t.Fatalf("service should not be called")
					return nil, nil
				},
			}
			c := e.NewContext(jsonRequest(http.MethodPost, "/users/signup", body), httptest.NewRecorder())

			requireHTTPError(t, NewAccountHandler(stub).Signup(c), http.StatusBadRequest)
		})
	}
}

func TestAccountHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		loginFn: func(_ context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
			assert.Equal(t, "fulano@email.com", in.Email)
			assert.Equal(t, "fulano123", in.Password)
			return &ports.AuthResult{Message: domain.MsgLoginSuccess, Token: "token-mock-fulano"}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/users/login", `{"email":"fulano@email.com","password":"fulano123"}`), rec)

	require.NoError(t, NewAccountHandler(stub).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token-mock-fulano")
}

func TestAccountHandler_Login_ServiceErrorReturned(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
			return nil, domain.NotFound(domain.MsgEmailNotFound)
		},
	}
	c := e.NewContext(jsonRequest(http.MethodPost, "/users/login", `{"email":"ghost@email.com","password":"x"}`), httptest.NewRecorder())

	err := NewAccountHandler(stub).Login(c)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountHandler_List_PassesQueryAndToken(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		listFn: func(_ context.Context, in ports.ListAccountsInput) ([]domain.PublicAccount, error) {
			assert.Equal(t, ports.ListAccountsInput{Query: "ful", Token: "token-mock-astrodev"}, in)
			return []domain.PublicAccount{{ID: "id-mock-fulano", Name: "Fulano", Role: domain.RoleNormal}}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users?q=ful", nil), rec)
	c.Set(middleware.TokenKey, "token-mock-astrodev")

	require.NoError(t, NewAccountHandler(stub).List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "id-mock-fulano", resp[0]["id"])
	assert.NotContains(t, resp[0], "password")
}

func TestAccountHandler_List_MissingToken(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		listFn: func(context.Context, ports.ListAccountsInput) ([]domain.PublicAccount, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), httptest.NewRecorder())

	he := requireHTTPError(t, NewAccountHandler(stub).List(c), http.StatusBadRequest)
	assert.Contains(t, he.Message, "'token' is required")
}

func TestAccountHandler_GetByID(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		getByIDFn: func(_ context.Context, in ports.GetAccountInput) (*domain.PublicAccount, error) {
			assert.Equal(t, "id-mock-fulano", in.ID)
			return &domain.PublicAccount{ID: in.ID, Name: "Fulano", Email: "fulano@email.com", Role: domain.RoleNormal, CreatedAt: "2023-05-10T12:00:00.000Z"}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users/id-mock-fulano", nil), rec)
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("id-mock-fulano")
	c.Set(middleware.TokenKey, "token-mock-astrodev")

	require.NoError(t, NewAccountHandler(stub).GetByID(c))
	assert.JSONEq(t,
		`{"id":"id-mock-fulano","name":"Fulano","email":"fulano@email.com","role":"NORMAL","createdAt":"2023-05-10T12:00:00.000Z"}`,
		rec.Body.String())
}

func TestAccountHandler_Delete(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		deleteFn: func(_ context.Context, in ports.DeleteAccountInput) (*ports.MessageResult, error) {
			assert.Equal(t, ports.DeleteAccountInput{IDToDelete: "id-mock-fulano", Token: "token-mock-fulano"}, in)
			return &ports.MessageResult{Message: domain.MsgDeleteSuccess}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/users/id-mock-fulano", nil), rec)
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("id-mock-fulano")
	c.Set(middleware.TokenKey, "token-mock-fulano")

	require.NoError(t, NewAccountHandler(stub).Delete(c))
	assert.JSONEq(t, `{"message":"Usuário deletado com sucesso"}`, rec.Body.String())
}
