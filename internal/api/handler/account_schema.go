package handler

// --- Request types ---

// Passwords are capped at bcrypt's input limit.
type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type listAccountsRequest struct {
	Query string `json:"q"`
	Token string `json:"token" validate:"required"`
}

type getAccountRequest struct {
	ID    string `json:"id"    validate:"required"`
	Token string `json:"token" validate:"required"`
}

type deleteAccountRequest struct {
	IDToDelete string `json:"idToDelete" validate:"required"`
	Token      string `json:"token"      validate:"required"`
}

// --- Response types ---

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}
