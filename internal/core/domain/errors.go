package domain

import "errors"

// Error kinds surfaced to callers of the account service.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

// Error is a caller-facing failure: a kind (ErrBadRequest or ErrNotFound)
// plus the human-readable message returned to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// BadRequest returns an Error of kind ErrBadRequest.
func BadRequest(msg string) error {
	return &Error{Kind: ErrBadRequest, Message: msg}
}

// NotFound returns an Error of kind ErrNotFound.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Messages returned by the account service.
const (
	MsgInvalidToken       = "token inválido"
	MsgAdminOnly          = "somente admins podem acessar"
	MsgEmailNotFound      = "'email' não encontrado"
	MsgWrongCredentials   = "'email' ou 'password' incorretos"
	MsgAccountMissing     = "Usuário não existe no banco de dados"
	MsgDeleteTargetAbsent = "Não foi possível encontrar o usuário"
	MsgInvalidID          = "O campo 'id' deve ser uma string"
	MsgPasswordTooLong    = "'password' deve ter no máximo 72 bytes"

	MsgSignupSuccess = "Cadastro realizado com sucesso"
	MsgLoginSuccess  = "Login realizado com sucesso"
	MsgDeleteSuccess = "Usuário deletado com sucesso"
)
