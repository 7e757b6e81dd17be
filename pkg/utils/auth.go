package utils

import (
	"errors"
	"strconv"

	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/pkg/types"
	"github.com/gin-gonic/gin"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

// GetActorFromContext resolves the acting user from the JWT claims
// stashed by the auth middleware.
var GetActorFromContext = func(c *gin.Context) (user.Actor, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return user.Actor{}, err
	}
	return user.Actor{ID: claims.UserID, Role: claims.Role}, nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return uint(id), nil
}
