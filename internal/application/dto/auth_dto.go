package dto

// RegisterRequest body para POST /api/auth/signup.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// SessionResponse token de sesión más el usuario (signup y login).
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
