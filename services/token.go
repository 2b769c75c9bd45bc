package services

import (
	"fmt"
	"strings"
	"time"

	"hotelinfo/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId     uint   `json:"userid"`
	Username   string `json:"username"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Role       string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// TokenService signs and verifies HS256 bearer tokens.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

func NewTokenService(secret, issuer, audience string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}
}

// GenerateToken signs a token for userInfo valid for the configured expiry.
func (s *TokenService) GenerateToken(userInfo UserInfo) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			Subject:   fmt.Sprint(userInfo.UserId),
			Issuer:    s.issuer,
			Audience:  s.audience,
			IssuedAt:  now.Unix(),
			NotBefore: now.Unix(),
			ExpiresAt: now.Add(s.expiry).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature, algorithm, expiry, issuer and audience.
func (s *TokenService) ParseToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "Missing token", errors.ErrUnauthorized)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", errors.ErrInvalidToken)
	}
	if s.issuer != "" && !claims.VerifyIssuer(s.issuer, true) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token issuer", errors.ErrInvalidToken)
	}
	if s.audience != "" && !claims.VerifyAudience(s.audience, true) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token audience", errors.ErrInvalidToken)
	}
	if claims.UserInfo.Role == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token has no role", errors.ErrInvalidToken)
	}
	return claims, nil
}
