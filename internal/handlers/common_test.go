package handlers

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fintrack/internal/jwt"
)

// authorizedTokener returns a tokener that resolves every request to userID.
func authorizedTokener(ctrl *gomock.Controller, userID uuid.UUID) *MockAuthTokener {
	tokener := NewMockAuthTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil).AnyTimes()
	tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil).AnyTimes()
	return tokener
}

// unauthorizedTokener returns a tokener that rejects every request.
func unauthorizedTokener(ctrl *gomock.Controller) *MockAuthTokener {
	tokener := NewMockAuthTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("missing authorization header")).AnyTimes()
	return tokener
}

func TestParseMonthParam(t *testing.T) {
	month, err := parseMonthParam("2024-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, month.Year())
	assert.Equal(t, 5, int(month.Month()))
	assert.Equal(t, 1, month.Day())

	_, err = parseMonthParam("05-2024")
	assert.Error(t, err)

	now, err := parseMonthParam("")
	require.NoError(t, err)
	assert.Equal(t, 1, now.Day())
}
