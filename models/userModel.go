package models

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password"`
	Role         string `json:"role" db:"role"`
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RenewRequest struct {
	Token string `json:"token" validate:"required"`
}

type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
