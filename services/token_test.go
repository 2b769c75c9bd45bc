package services

import (
	"strings"
	"testing"
	"time"

	"hotelinfo/constants"
	"hotelinfo/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = strings.Repeat("k", 32)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, "hotelinfo", "clients", time.Hour)

	token, err := svc.GenerateToken(UserInfo{UserId: 7, Username: "admin", Role: constants.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.ParseToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserInfo.UserId)
	assert.Equal(t, "admin", claims.UserInfo.Username)
	assert.Equal(t, constants.RoleAdmin, claims.UserInfo.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService(testSecret, "hotelinfo", "clients", time.Hour)
	valid, err := svc.GenerateToken(UserInfo{UserId: 1, Username: "u", Role: constants.RoleUser})
	require.NoError(t, err)

	otherKey, err := NewTokenService(strings.Repeat("x", 32), "hotelinfo", "clients", time.Hour).
		GenerateToken(UserInfo{UserId: 1, Username: "u", Role: constants.RoleUser})
	require.NoError(t, err)
	otherIssuer, err := NewTokenService(testSecret, "someone-else", "clients", time.Hour).
		GenerateToken(UserInfo{UserId: 1, Username: "u", Role: constants.RoleUser})
	require.NoError(t, err)
	otherAudience, err := NewTokenService(testSecret, "hotelinfo", "others", time.Hour).
		GenerateToken(UserInfo{UserId: 1, Username: "u", Role: constants.RoleUser})
	require.NoError(t, err)
	expired, err := NewTokenService(testSecret, "hotelinfo", "clients", -time.Minute).
		GenerateToken(UserInfo{UserId: 1, Username: "u", Role: constants.RoleUser})
	require.NoError(t, err)
	noRole, err := svc.GenerateToken(UserInfo{UserId: 1, Username: "u"})
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserInfo: UserInfo{Role: constants.RoleAdmin}}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	parts[2] = "c2lnbmF0dXJl"
	tampered := strings.Join(parts, ".")

	tests := map[string]string{
		"empty":          "",
		"bearer only":    "Bearer ",
		"garbage":        "Bearer abc.def.ghi",
		"wrong key":      otherKey,
		"wrong issuer":   otherIssuer,
		"wrong audience": otherAudience,
		"expired":        expired,
		"no role":        noRole,
		"alg none":       unsigned,
		"tampered":       tampered,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(token)
			require.Error(t, err)
			assert.True(t, errors.IsAppError(err))
		})
	}
}
