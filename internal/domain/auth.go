package domain

import "github.com/golang-jwt/jwt/v5"

// AdminClaims são as claims do token usado nas rotas administrativas
type AdminClaims struct {
	jwt.RegisteredClaims
}
