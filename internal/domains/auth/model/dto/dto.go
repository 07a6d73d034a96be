package dto

import "sufra/infras/jwt"

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AdminTokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

func (r *AdminTokenResponse) FromToken(token *jwt.AdminToken) {
	r.Token = token.Token
	r.TokenType = token.TokenType
	r.ExpiresIn = token.ExpiresIn
}
