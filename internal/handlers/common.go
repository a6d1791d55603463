package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fintrack/internal/jwt"
)

// Date layouts accepted by the API.
const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// AuthTokener defines the token methods protected handlers need.
type AuthTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// authUserID resolves the authenticated user from the request token.
func authUserID(ctx context.Context, r *http.Request, tokener AuthTokener) (uuid.UUID, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// parseMonthParam parses an optional YYYY-MM query parameter, defaulting to
// the current month.
func parseMonthParam(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(monthLayout, value)
}
