package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

const (
	jwtClaimSubject = "sub"
	jwtClaimRole    = "role"
)

// Operator is the authenticated caller behind a write request.
type Operator struct {
	Subject string
	Role    string
}

func GetOperatorFromContext(ctx context.Context) (Operator, error) {
	claims, ok := ctx.Value(operatorContextKey).(jwt.MapClaims)
	if !ok {
		return Operator{}, errors.New("operator claims not found in context or invalid type")
	}

	roleClaim, ok := claims[jwtClaimRole]
	if !ok {
		return Operator{}, fmt.Errorf("missing '%s' claim in token", jwtClaimRole)
	}
	role, ok := roleClaim.(string)
	if !ok {
		return Operator{}, fmt.Errorf("invalid type for '%s' claim: expected string, got %T", jwtClaimRole, roleClaim)
	}

	// Subject is optional; service tokens may omit it.
	subject, _ := claims[jwtClaimSubject].(string)

	return Operator{Subject: subject, Role: role}, nil
}
