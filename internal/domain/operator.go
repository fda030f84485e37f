package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o operador autenticado no token
type Claims struct {
	OperatorEmail string `json:"operator_email"`
	jwt.RegisteredClaims
}
