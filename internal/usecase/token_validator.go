package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

import (
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/auth"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, err
	}

	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, err
	}

	return auth.Principal{Subject: claims.Subject, Role: role}, nil
}
